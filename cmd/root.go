package cmd

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/langsel/utils"
)

var logger = utils.Logger

var (
	configFile string
	envFile    string
	verbose    bool
)

// NewRootCommand creates the langsel command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "langsel",
		Short:         "Langsel detects whether a short text is English, Japanese or Vietnamese",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				utils.SetVerbose()
			}
			return loadEnvFile()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (default ./.env if present)")

	rootCmd.AddCommand(
		NewDetectCommand(),
		NewExtractCommand(),
		NewServerCommand(),
		NewMcpCommand(),
	)
	return rootCmd
}

// loadEnvFile loads --env-file, or ./.env when it exists, into the process environment.
func loadEnvFile() error {
	if envFile != "" {
		return godotenv.Load(envFile)
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
