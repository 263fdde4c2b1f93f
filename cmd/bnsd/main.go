// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "bnsd" replays a block stream through the name state engine and serves
// point lookups over the committed result. It is a thin wrapper: all
// consensus logic lives in the engine and chain packages.
package main

import (
	"fmt"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Redd-ID/blockstack-core/chain"
	"github.com/Redd-ID/blockstack-core/version"
)

func init() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlDebug, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
}

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:        "bnsd",
		Short:      "Name state engine daemon",
		SuggestFor: []string{"bnsd", "bns"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		replayCmd,
		serveCmd,
		versionCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"consensus rules file (json/yaml), defaults apply when empty",
	)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version.Version)
		return nil
	},
}

func loadRules() (*chain.Rules, error) {
	rules := chain.DefaultRules()
	if configFile == "" {
		return rules, nil
	}
	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bnsd failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
