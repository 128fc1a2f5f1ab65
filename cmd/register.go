package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/travelmap/pinmap/pkg/session"
)

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  "Creates a new account on the pin service. Registering does not log you in; run `pinmap login` afterwards.",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if username == "" {
			log.Fatal("Please provide a username (-u flag)")
		}
		if email == "" {
			log.Fatal("Please provide an email address (-e flag)")
		}
		if password == "" {
			log.Fatal("Please provide a password (-p flag)")
		}

		db, lock := openSettings()
		defer lock.Unlock()
		defer db.Close()

		auth := session.New(apiClient(), db)
		if err := auth.Register(context.Background(), username, email, password); err != nil {
			log.Fatal(err)
		}

		fmt.Println("Registration successful. You can now log in with `pinmap login`.")
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringP("username", "u", "", "Account username")
	registerCmd.Flags().StringP("email", "e", "", "Account email address")
	registerCmd.Flags().StringP("password", "p", "", "Account password")
}
