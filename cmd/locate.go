package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/travelmap/pinmap/pkg/geo"
	"github.com/travelmap/pinmap/pkg/pin"
)

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show where the map would open for you",
	Long:  "Resolves your position from your public IP address and prints the initial map viewport. Falls back to the default location when the lookup fails.",
	Run: func(cmd *cobra.Command, args []string) {
		skip, _ := cmd.Flags().GetBool("fallback")

		var locator geo.Locator
		if !skip {
			locator = geo.NewIPLocator()
		}

		v := geo.Resolve(context.Background(), locator)
		fmt.Printf("%s zoom %g\n", pin.FormatCoords(v.Lat(), v.Long()), v.Zoom)
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)

	locateCmd.Flags().BoolP("fallback", "", false, "Skip the lookup and print the fallback viewport")
}
