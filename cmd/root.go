// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fugue/chksum/hash"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version and GitCommit are set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "chksum",
	Short:   "Hash bytes, files and directory trees with any algorithm",
	Version: fmt.Sprintf("%s, build %s", Version, GitCommit),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		if viper.GetBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Flags available to all subcommands
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Working directory")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSliceP("algorithm", "a", []string{hash.SHA256}, "Hash algorithms to apply")
	rootCmd.PersistentFlags().Bool("async", false, "Use non-blocking I/O")
	rootCmd.PersistentFlags().IntP("jobs", "j", runtime.NumCPU(), "Number of inputs hashed at once")
	rootCmd.PersistentFlags().Int("buffer-size", 0, "Read buffer size in bytes (0 selects the default)")

	// Bind flags to environment variables if they are present
	viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("algorithm", rootCmd.PersistentFlags().Lookup("algorithm"))
	viper.BindPFlag("async", rootCmd.PersistentFlags().Lookup("async"))
	viper.BindPFlag("jobs", rootCmd.PersistentFlags().Lookup("jobs"))
	viper.BindPFlag("buffer-size", rootCmd.PersistentFlags().Lookup("buffer-size"))

	rootCmd.RegisterFlagCompletionFunc("algorithm", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return hash.Algorithms(), cobra.ShellCompDirectiveNoFileComp
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {

	// Environment variables will be prefixed with "CHKSUM_"
	viper.SetEnvPrefix("chksum")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	home, err := os.UserHomeDir()
	if err != nil {
		fatal(err)
	}
	// Search config in home directory with name ".chksum" (without extension)
	viper.AddConfigPath(home)
	viper.SetConfigName(".chksum")

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
