// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"net/http"

	"github.com/ava-labs/avalanchego/database/memdb"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/Redd-ID/blockstack-core/engine"
)

var (
	listenAddr string
	seedFile   string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serves name lookups over JSON-RPC",
		RunE:  serveFunc,
	}
)

func init() {
	serveCmd.PersistentFlags().StringVar(
		&listenAddr,
		"listen",
		":9145",
		"address the RPC server listens on",
	)
	serveCmd.PersistentFlags().StringVar(
		&seedFile,
		"blocks",
		"",
		"optional block stream to replay before serving",
	)
}

func serveFunc(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	eng, err := engine.New(memdb.New(), rules)
	if err != nil {
		return err
	}
	defer eng.Close()

	if seedFile != "" {
		if err := replayStream(eng, seedFile); err != nil {
			return err
		}
	}

	handler, err := engine.NewHandler(eng)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/rpc", handler)

	log.Info("serving", "listen", listenAddr, "height", eng.CurrentBlockHeight())
	return http.ListenAndServe(listenAddr, mux)
}
