package cmd

import (
	"fmt"
	"io"
	"os"

	config "github.com/inference-gateway/deskcast/config"
	cobra "github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage deskcast configuration",
	Long:  `Manage the deskcast configuration file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new project configuration",
	Long: `Initialize a new .deskcast/config.yaml configuration file in the current directory.
This creates a local configuration with default settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		flagPath, _ := cmd.Flags().GetString("config")

		configPath := config.DefaultConfigPath
		if flagPath != "" {
			configPath = flagPath
		}

		return initConfigFile(cmd.OutOrStdout(), configPath, force)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, the config file and DESKCAST_* environment overrides are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return writeConfigYAML(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfigFile(out io.Writer, configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file %s already exists (use --force to replace)", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Fprintf(out, "Successfully created %s\n", configPath)
	fmt.Fprintln(out, "You can now customize the configuration for this project.")

	return nil
}

func writeConfigYAML(out io.Writer, cfg *config.Config) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return encoder.Close()
}
