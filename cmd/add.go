package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/travelmap/pinmap/internal/app"
	"github.com/travelmap/pinmap/pkg/pin"
	"github.com/travelmap/pinmap/pkg/pinstore"
	"github.com/travelmap/pinmap/pkg/session"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a pin at a location",
	Long:  "Drops a new pin at the given coordinates, the command-line equivalent of double-clicking the map. You must be logged in.",
	Run: func(cmd *cobra.Command, args []string) {
		lat, _ := cmd.Flags().GetFloat64("lat")
		long, _ := cmd.Flags().GetFloat64("long")
		title, _ := cmd.Flags().GetString("title")
		desc, _ := cmd.Flags().GetString("desc")
		rating, _ := cmd.Flags().GetInt("rating")

		if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("long") {
			log.Fatal("Please provide the pin location (--lat and --long flags)")
		}
		if title == "" {
			log.Fatal("Please provide a title (-t flag)")
		}

		ctx := context.Background()
		client := apiClient()

		db, lock := openSettings()
		defer lock.Unlock()
		defer db.Close()

		auth := session.New(client, db)
		auth.Restore(ctx)

		a := app.New(client, pinstore.New(client), auth, terminalRenderer{})

		draft := a.BeginDraft(lat, long)
		draft.SetTitle(title)
		draft.SetDesc(desc)
		if err := draft.SetRating(rating); err != nil {
			log.Fatal(err)
		}

		created, err := a.Submit(ctx)
		if err != nil {
			if errors.Is(err, app.ErrUnauthenticated) {
				// The renderer already printed the login prompt.
				os.Exit(1)
			}
			log.Fatal(err)
		}

		fmt.Printf("Pin %s created at %s.\n", created.ID, pin.FormatCoords(created.Lat, created.Long))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().Float64P("lat", "", 0, "Latitude of the new pin")
	addCmd.Flags().Float64P("long", "", 0, "Longitude of the new pin")
	addCmd.Flags().StringP("title", "t", "", "Title of the place")
	addCmd.Flags().StringP("desc", "", "", "Your review of the place")
	addCmd.Flags().IntP("rating", "r", 0, "Rating from 0 to 5")
}
