package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/travelmap/pinmap/pkg/pin"
	"github.com/travelmap/pinmap/pkg/pinstore"
	"github.com/travelmap/pinmap/pkg/session"
)

// pinsCmd represents the pins command
var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "List all pins on the map",
	Long:  "Fetches every pin from the backend and prints them in backend order. Your own pins are shown in blue, like their map markers.",
	Run: func(cmd *cobra.Command, args []string) {
		outputFlags, _ := cmd.Flags().GetString("output")
		delimiter, _ := cmd.Flags().GetString("delimiter")

		ctx := context.Background()
		client := apiClient()

		db, lock := openSettings()
		defer lock.Unlock()
		defer db.Close()

		auth := session.New(client, db)
		sess := auth.Restore(ctx)

		store := pinstore.New(client)
		store.Load(ctx)

		pin.PrintPins(store.Pins(), sess.Username, outputFlags, delimiter)
	},
}

func init() {
	rootCmd.AddCommand(pinsCmd)

	pinsCmd.Flags().StringP("output", "o", "turc", "Output flags: i (id), t (title), u (username), r (rating), c (coordinates), d (description), a (created at)")
	pinsCmd.Flags().StringP("delimiter", "d", " ", "Delimiter between output columns")
}
