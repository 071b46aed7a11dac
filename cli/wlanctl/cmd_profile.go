package main

import (
	"fmt"
	"strings"

	"github.com/sagernet/sing-wlan/common"
	"github.com/sagernet/sing-wlan/wlan"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var commandProfiles = &cobra.Command{
	Use:   "profiles",
	Short: "List stored profiles",
	Run: func(cmd *cobra.Command, args []string) {
		session := openSession(true)
		defer closeSession(session)
		profiles, err := session.ProfileList()
		if err != nil {
			logrus.Fatal(err)
		}
		names := common.Map(profiles, func(it wlan.ProfileInfo) string {
			return it.Name
		})
		if len(names) > 0 {
			fmt.Println(strings.Join(names, "\n"))
		}
	},
}

var commandProfile = &cobra.Command{
	Use:   "profile",
	Short: "Inspect or delete a stored profile",
}

func init() {
	commandProfile.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored profile",
		Args:  cobra.ExactArgs(1),
		Run:   showProfile,
	})
	commandProfile.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored profile",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			session := openSession(true)
			defer closeSession(session)
			err := session.DeleteProfile(args[0])
			if err != nil {
				logrus.Fatal(err)
			}
		},
	})
}

func showProfile(cmd *cobra.Command, args []string) {
	session := openSession(true)
	defer closeSession(session)
	document, err := session.Profile(args[0])
	if err != nil {
		logrus.Fatal(err)
	}
	profile, err := wlan.ParseProfile(document)
	if err != nil {
		logrus.Warn(err)
		fmt.Println(document)
		return
	}
	fmt.Printf("name:            %s\n", profile.Name)
	fmt.Printf("ssid:            %s\n", profile.SSID)
	fmt.Printf("connection mode: %s\n", profile.ConnectionMode)
	fmt.Printf("authentication:  %s\n", profile.Security)
	fmt.Printf("encryption:      %s\n", profile.Encryption)
	fmt.Printf("shared key:      %t\n", profile.Passphrase != "")
}

var commandAuto = &cobra.Command{
	Use:   "auto",
	Short: "Find the first profile configured for automatic connection",
	Run: func(cmd *cobra.Command, args []string) {
		session := openSession(true)
		defer closeSession(session)
		name, found, err := session.FindAutoConnectProfile()
		if err != nil {
			logrus.Fatal(err)
		}
		if !found {
			logrus.Info("no auto-connect profile")
			return
		}
		fmt.Println(name)
	},
}
