package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/travelmap/pinmap/pkg/session"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the pin service",
	Long:  "Authenticates against the pin service and remembers the session for later commands",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if username == "" {
			log.Fatal("Please provide your username (-u flag)")
		}
		if password == "" {
			log.Fatal("Please provide your password (-p flag)")
		}

		db, lock := openSettings()
		defer lock.Unlock()
		defer db.Close()

		auth := session.New(apiClient(), db)
		sess, err := auth.Login(context.Background(), username, password)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("You are successfully logged in as %s.\n", sess.Username)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("username", "u", "", "Account username")
	loginCmd.Flags().StringP("password", "p", "", "Account password")
}
