// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	configName = ".cooccur"
	envPrefix  = "COOCCUR"
)

// app carries the state shared by the commands of one root.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "cooccur",
		Short: "Consolidate co-occurrence tool output into networks",
		Long: `cooccur reads the normalized output of co-occurrence tools (SparCC,
naive correlation, Bray-Curtis, MIC, LSA, CoNet, RMT), keeps the significant
pairs and reports network statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.cooccur.yaml or $HOME/.cooccur.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newExtractCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(configName)
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else if a.verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", a.v.ConfigFileUsed())
	}

	return nil
}

// newLogger returns a production logger, or a development one when verbose.
func (a *app) newLogger() (*zap.Logger, error) {
	if a.v.GetBool("verbose") {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
