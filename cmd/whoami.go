package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/travelmap/pinmap/pkg/session"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	Run: func(cmd *cobra.Command, args []string) {
		db, lock := openSettings()
		defer lock.Unlock()
		defer db.Close()

		auth := session.New(apiClient(), db)
		sess := auth.Restore(context.Background())
		if sess.Anonymous() {
			fmt.Println("anonymous")
			return
		}
		fmt.Println(sess.Username)
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
