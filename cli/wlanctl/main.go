package main

import (
	"github.com/sagernet/sing-wlan/common/log"
	"github.com/sagernet/sing-wlan/conf"
	"github.com/sagernet/sing-wlan/wlan"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	permissive bool
	options    conf.Options
)

func main() {
	command := &cobra.Command{
		Use:              "wlanctl",
		Short:            "Wireless interface control",
		PersistentPreRun: preRun,
	}
	command.PersistentFlags().StringVarP(&configPath, "config", "c", "", "set configuration file path (json or yaml)")
	command.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level")
	command.PersistentFlags().BoolVar(&permissive, "permissive", false, "also select interfaces that are not ready, disconnecting or in ad hoc mode")
	command.AddCommand(
		commandInterfaces,
		commandScan,
		commandConnect,
		commandDisconnect,
		commandStatus,
		commandWatch,
		commandProfiles,
		commandProfile,
		commandAuto,
		commandKnown,
	)
	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func preRun(cmd *cobra.Command, args []string) {
	var err error
	options, err = conf.Load(configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	if logLevel != "" {
		options.Log.Level = logLevel
	}
	if permissive {
		options.SelectionPolicy = wlan.SelectionPermissive.String()
	}
	err = log.Setup(options.Log)
	if err != nil {
		logrus.Fatal(err)
	}
}

// openSession opens a session and, when resolve is set, selects the
// interface subsequent commands operate on.
func openSession(resolve bool) *wlan.Session {
	native, err := wlan.NewNative(options.NativeOptions())
	if err != nil {
		logrus.Fatal(err)
	}
	session, err := wlan.NewSession(wlan.Options{
		Native:          native,
		ClientVersion:   options.ClientVersion,
		SelectionPolicy: options.Policy(),
		StatusBuffer:    options.StatusBuffer,
	})
	if err != nil {
		logrus.Fatal(err)
	}
	err = session.Open()
	if err != nil {
		logrus.Fatal(err)
	}
	if resolve {
		_, err = session.ResolveInterface()
		if err != nil {
			session.Close()
			logrus.Fatal(err)
		}
	}
	return session
}

func closeSession(session *wlan.Session) {
	err := session.Close()
	if err != nil {
		logrus.Warn(err)
	}
}
