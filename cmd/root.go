package cmd

import (
	"errors"
	"fmt"
	"os"

	config "github.com/inference-gateway/deskcast/config"
	logger "github.com/inference-gateway/deskcast/internal/logger"
	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"
	gotenv "github.com/subosito/gotenv"
)

// V is the viper instance backing the loaded configuration
var V = viper.New()

var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "deskcast",
	Short: "Remote pointer control for a letterboxed desktop stream",
	Long: `deskcast maps pointer positions captured on a letterboxed view of a remote
desktop back onto the host screen and drives the host pointer with them.

Use 'deskcast serve' to accept pointer events over WebSocket, or 'deskcast map'
to check where a single element point lands on the source.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	flagPath, _ := rootCmd.PersistentFlags().GetString("config")

	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	configPath := config.ResolvePath(flagPath)
	cfg, err := config.LoadWithViper(V, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config from %s: %v\n", configPath, err)
		os.Exit(1)
	}
	appConfig = cfg

	logger.Init(verbose, cfg)
}

// loadDotEnv exports the variables in path without overriding the environment.
// A missing file is ignored.
func loadDotEnv(path string) error {
	if err := gotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func getConfig() (*config.Config, error) {
	if appConfig != nil {
		return appConfig, nil
	}
	return config.LoadWithViper(V, config.ResolvePath(""))
}
