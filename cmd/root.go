/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gonozzle/InputParameters"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gonozzle",
	Short: "Rocket nozzle design, performance and regenerative cooling analysis",
	Long: `
Designs Rao bell nozzles, evaluates thrust, specific impulse and flow separation, and marches a
regenerative cooling analysis along the chamber and nozzle wall.

The engine is described by a YAML engine deck (-I, --deck). Options can also be set in a config
file (default $HOME/.gonozzle.yaml) or with environment variables like GONOZZLE_LOG_LEVEL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		var level log.Level
		if level, err = log.ParseLevel(viper.GetString("log-level")); err != nil {
			return
		}
		log.SetLevel(level)
		return
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gonozzle.yaml)")
	rootCmd.PersistentFlags().StringP("deck", "I", "", "YAML engine deck")
	rootCmd.PersistentFlags().String("log-level", "info", "logging level: debug, info, warn or error")
	for _, name := range []string{"deck", "log-level"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gonozzle" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gonozzle")
	}
	viper.SetEnvPrefix("GONOZZLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

func readDeck() (ed *InputParameters.EngineDeck, err error) {
	var (
		data []byte
		path = viper.GetString("deck")
	)
	if len(path) == 0 {
		fmt.Printf("Example File:%s\n", InputParameters.ExampleDeck)
		return nil, fmt.Errorf("must supply an engine deck (-I, --deck) in YAML format")
	}
	if data, err = ioutil.ReadFile(path); err != nil {
		return
	}
	ed = &InputParameters.EngineDeck{}
	if err = ed.Parse(data); err != nil {
		return nil, fmt.Errorf("reading engine deck %s: %w", path, err)
	}
	return
}

// Float64s converts a list option, given as a flag, config file list or comma separated env value
func Float64s(key string) (vals []float64, err error) {
	var strs []string
	if strs, err = cast.ToStringSliceE(viper.Get(key)); err != nil {
		return
	}
	for _, s := range strs {
		for _, field := range strings.Split(s, ",") {
			var v float64
			if field = strings.TrimSpace(field); field == "" {
				continue
			}
			if v, err = cast.ToFloat64E(field); err != nil {
				return nil, fmt.Errorf("option %s: %w", key, err)
			}
			vals = append(vals, v)
		}
	}
	return
}

func bindFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}
