package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/travelmap/pinmap/internal/utils"
	"github.com/travelmap/pinmap/pkg/api"
	"github.com/travelmap/pinmap/pkg/storage"
	"github.com/travelmap/pinmap/pkg/whttp"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	        _
	  _ __ (_)_ __  _ __ ___   __ _ _ __
	 | '_ \| | '_ \| '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
	 | |_) | | | | | | | | | | (_| | |_) |
	 | .__/|_|_| |_|_| |_| |_|\__,_| .__/
	 |_|                           |_|

`

	defaultAPIURL = "https://travel-map-ac8b.onrender.com"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pinmap",
	Short: "A command-line client for the travel map pin service.",
	Long: LOGO + `pinmap lets you browse geotagged place reviews, drop new pins anywhere in
the world and manage your account, right from your command line.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pinmap.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("api", "", "", "Base URL of the pins backend (overrides config)")
	rootCmd.PersistentFlags().StringP("dbpath", "", "", "Path to the local settings database")
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy (Useful for debugging. Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".pinmap")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.pinmap.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("api.url", defaultAPIURL)
	viper.SetDefault("db.path", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// apiClient builds the backend client from flags and config, wiring the
// proxy into the shared HTTP client when requested.
func apiClient() *api.Client {
	if proxy, _ := rootCmd.PersistentFlags().GetString("proxy"); proxy != "" {
		if err := whttp.SetupProxy(proxy); err != nil {
			log.Fatal("Invalid Proxy String")
		}
	}

	baseURL, _ := rootCmd.PersistentFlags().GetString("api")
	if baseURL == "" {
		baseURL = viper.GetString("api.url")
	}
	return api.New(baseURL)
}

// openSettings opens the local settings database, holding a file lock for
// the lifetime of the returned DB. Callers must Close the DB and Unlock.
func openSettings() (*storage.DB, *utils.DBLock) {
	dbPath, _ := rootCmd.PersistentFlags().GetString("dbpath")
	if dbPath == "" {
		dbPath = viper.GetString("db.path")
	}
	if dbPath == "" {
		var err error
		dbPath, err = storage.DefaultPath()
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatal(err)
	}

	lock := utils.NewDBLock(dbPath)
	if err := lock.Lock(); err != nil {
		log.Fatal(err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		_ = lock.Unlock()
		log.Fatal(err)
	}
	return db, lock
}
