package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tsingjyujing/langsel/config"
)

// flagBindings maps config keys to the command flags that may override them.
var flagBindings = map[string]string{
	"server.address":          "address",
	"detection.max_chars":     "max-chars",
	"detection.normalization": "normalize",
}

func readConfig(command *cobra.Command) (*config.Envelope, error) {
	viperInstance := viper.New()
	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.SetConfigName("config")
		viperInstance.SetConfigType("yaml")
		viperInstance.AddConfigPath("/etc/langsel/")
		viperInstance.AddConfigPath("$HOME/.langsel")
		viperInstance.AddConfigPath("./config")
	}
	viperInstance.SetEnvPrefix("LANGSEL")
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()
	for key, flagName := range flagBindings {
		if flag := command.Flags().Lookup(flagName); flag != nil {
			if err := viperInstance.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	envelope := config.Default()
	if err := viperInstance.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logger.Debug("No config file found, using defaults")
	} else {
		logger.Debugf("Using config file: %s", viperInstance.ConfigFileUsed())
		envelope, err = config.LoadConfigFromFile(viperInstance.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
	}
	envelope.Override(viperInstance)
	if err := envelope.Validate(); err != nil {
		return nil, err
	}
	return envelope, nil
}
