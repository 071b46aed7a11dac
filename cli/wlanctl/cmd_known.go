package main

import (
	"fmt"

	"github.com/sagernet/sing-wlan/wlan"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var addKnown bool

var commandKnown = &cobra.Command{
	Use:   "known <ssid>",
	Short: "Check whether a network is in the known networks list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ssid := args[0]
		if addKnown {
			err := wlan.AddKnownNetwork(options.KnownNetworks, ssid)
			if err != nil {
				logrus.Fatal(err)
			}
			return
		}
		networks, err := wlan.LoadKnownNetworks(options.KnownNetworks)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Println(wlan.IsKnownNetwork(networks, ssid))
	},
}

func init() {
	commandKnown.Flags().BoolVar(&addKnown, "add", false, "add the network to the list")
}
