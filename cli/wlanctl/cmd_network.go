package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sagernet/sing-wlan/common"
	E "github.com/sagernet/sing-wlan/common/exceptions"
	"github.com/sagernet/sing-wlan/common/task"
	"github.com/sagernet/sing-wlan/wlan"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var passphrase string

var commandInterfaces = &cobra.Command{
	Use:   "interfaces",
	Short: "List wireless interfaces",
	Run: func(cmd *cobra.Command, args []string) {
		session := openSession(false)
		defer closeSession(session)
		descriptors, err := session.Interfaces()
		if err != nil {
			logrus.Fatal(err)
		}
		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tSTATE\tDESCRIPTION")
		for _, descriptor := range descriptors {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", descriptor.ID, descriptor.State, descriptor.Description)
		}
		writer.Flush()
	},
}

var commandScan = &cobra.Command{
	Use:   "scan",
	Short: "Scan and list visible networks",
	Run: func(cmd *cobra.Command, args []string) {
		session := openSession(true)
		defer closeSession(session)
		err := session.RequestScan()
		if err != nil {
			logrus.Fatal(err)
		}
		time.Sleep(options.ScanDelay.Build())
		err = session.RefreshNetworks()
		if err != nil {
			logrus.Fatal(err)
		}
		networks := session.ListNetworks()
		if knownOnly {
			known, err := wlan.LoadKnownNetworks(options.KnownNetworks)
			if err != nil {
				logrus.Fatal(err)
			}
			networks = common.Filter(networks, func(it wlan.NetworkRecord) bool {
				return wlan.IsKnownNetwork(known, it.SSID)
			})
		}
		printNetworks(networks)
	},
}

var knownOnly bool

func init() {
	commandScan.Flags().BoolVar(&knownOnly, "known", false, "only list networks from the known networks list")
}

func printNetworks(networks []wlan.NetworkRecord) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SSID\tBARS\tSECURITY\tENCRYPTION\tPROFILE")
	for _, network := range networks {
		fmt.Fprintf(writer, "%s\t%d\t%s\t%s\t%s\n", network.SSID, network.Bars, network.Security, network.Encryption, network.ProfileName)
	}
	writer.Flush()
}

var commandConnect = &cobra.Command{
	Use:   "connect <ssid>",
	Short: "Connect to a network and wait for the result",
	Args:  cobra.ExactArgs(1),
	Run:   connect,
}

func init() {
	commandConnect.Flags().StringVarP(&passphrase, "passphrase", "p", "", "install a profile with this shared key before connecting")
}

func connect(cmd *cobra.Command, args []string) {
	ssid := args[0]
	session := openSession(true)
	defer closeSession(session)
	err := session.RefreshNetworks()
	if err != nil {
		logrus.Fatal(err)
	}
	network, visible := session.Network(ssid)
	switch {
	case passphrase != "":
		err = session.ConnectWithPassphrase(ssid, passphrase)
	case visible && network.Security == wlan.SecurityOpen && network.ProfileName == "":
		err = session.SetProfile(ssid, "")
		if err == nil {
			err = session.Connect(ssid)
		}
	default:
		err = session.Connect(ssid)
	}
	if err != nil {
		logrus.Fatal(err)
	}
	err = awaitConnection(session, options.ConnectTimeout.Build())
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("connected to ", ssid)
	err = wlan.AddKnownNetwork(options.KnownNetworks, ssid)
	if err != nil {
		logrus.Warn(err)
	}
}

func awaitConnection(session *wlan.Session, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(options.PollInterval.Build())
	defer ticker.Stop()
	for {
		select {
		case <-deadline.C:
			return E.New("connection timed out after ", timeout)
		case <-ticker.C:
		}
		event, received := session.PollConnectionStatus()
		if !received {
			continue
		}
		switch event {
		case wlan.NotificationConnectionStart:
			logrus.Info("connecting")
		case wlan.NotificationConnectionComplete:
			return nil
		case wlan.NotificationConnectionAttemptFail:
			return E.New("connection attempt failed")
		case wlan.NotificationInvalidPassword:
			return E.New("invalid password")
		}
	}
}

var commandDisconnect = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the interface",
	Run: func(cmd *cobra.Command, args []string) {
		session := openSession(true)
		defer closeSession(session)
		err := session.Disconnect()
		if err != nil {
			logrus.Fatal(err)
		}
	},
}

var commandStatus = &cobra.Command{
	Use:   "status",
	Short: "Show the current connection",
	Run: func(cmd *cobra.Command, args []string) {
		session := openSession(true)
		defer closeSession(session)
		descriptor, _ := session.Interface()
		ssid, connected, err := session.ConnectedSSID()
		if err != nil {
			logrus.Fatal(err)
		}
		if !connected {
			fmt.Printf("%s: %s\n", descriptor.Description, descriptor.State)
			return
		}
		fmt.Printf("%s: connected to %s\n", descriptor.Description, ssid)
	},
}

var commandWatch = &cobra.Command{
	Use:   "watch",
	Short: "Print connection notifications until interrupted",
	Run: func(cmd *cobra.Command, args []string) {
		session := openSession(true)
		defer closeSession(session)
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		err := task.Run(ctx, func(ctx context.Context) error {
			return watch(ctx, session)
		}, func(ctx context.Context) error {
			return watchConnection(ctx, session)
		})
		if err != nil && !E.IsCanceled(err) {
			logrus.Fatal(err)
		}
		if dropped := session.DroppedNotifications(); dropped > 0 {
			logrus.Info("dropped ", dropped, " notifications")
		}
		if recoveries := session.NotificationChannel().Recoveries(); recoveries > 0 {
			logrus.Warn("notification channel recovered from ", recoveries, " panics")
		}
	},
}

func watch(ctx context.Context, session *wlan.Session) error {
	ticker := time.NewTicker(options.PollInterval.Build())
	defer ticker.Stop()
	for !common.Done(ctx) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		event, received := session.PollConnectionStatus()
		if received {
			descriptor, _ := session.Interface()
			fmt.Printf("%s %s (%s)\n", time.Now().Format(time.TimeOnly), event, descriptor.State)
		}
	}
	return ctx.Err()
}

// watchConnection reports changes of the associated SSID.
func watchConnection(ctx context.Context, session *wlan.Session) error {
	ticker := time.NewTicker(options.ScanDelay.Build())
	defer ticker.Stop()
	var lastSSID string
	for {
		ssid, _, err := session.ConnectedSSID()
		if err != nil {
			return err
		}
		if ssid != lastSSID {
			if ssid == "" {
				logrus.Info("not connected")
			} else {
				logrus.Info("connected to ", ssid)
			}
			lastSSID = ssid
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
