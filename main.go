package main

import (
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/langsel/cmd"
)

var logger = logrus.New()

//go:embed version.txt
var version string

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Langsel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(versionCommand)
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("Failed to execute command")
	}
}
