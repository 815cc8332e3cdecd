package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PYVEIL"

// initConfig loads the optional config file and wires the environment.
// Precedence is flags > environment > config file > defaults; a missing
// config file is fine unless one was named explicitly.
func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("experiment.metric", "rougeL")
	viper.SetDefault("experiment.base-url", "http://localhost:8000")
	viper.SetDefault("experiment.max-tokens", 256)
	viper.SetDefault("experiment.timeout-seconds", 60)
	viper.SetDefault("experiment.output-dir", "results")

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return nil
	}

	viper.SetConfigName("pyveil")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/pyveil")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// bindFlagToConfig makes a flag overridable via config file and environment.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		return
	}
	_ = viper.BindPFlag(key, flag)
}
