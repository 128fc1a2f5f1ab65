package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/travelmap/pinmap/pkg/session"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the current session",
	Long:  "Clears the locally stored session. No request is sent to the backend.",
	Run: func(cmd *cobra.Command, args []string) {
		db, lock := openSettings()
		defer lock.Unlock()
		defer db.Close()

		auth := session.New(apiClient(), db)
		if err := auth.Logout(context.Background()); err != nil {
			log.Fatal(err)
		}

		fmt.Println("Logged out.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
