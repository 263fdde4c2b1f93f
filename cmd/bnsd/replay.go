// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/spf13/cobra"

	"github.com/Redd-ID/blockstack-core/chain"
	"github.com/Redd-ID/blockstack-core/engine"
)

// blockStream is the on-disk form of an indexed chain segment. Payload
// bytes are base64 per encoding/json convention.
type blockStream struct {
	Blocks []streamBlock `json:"blocks"`
}

type streamBlock struct {
	Height uint64                `json:"height"`
	Txs    []*chain.TxDescriptor `json:"txs"`
}

var (
	blocksFile string

	replayCmd = &cobra.Command{
		Use:   "replay",
		Short: "Replays a block stream and prints each consensus hash",
		RunE:  replayFunc,
	}
)

func init() {
	replayCmd.PersistentFlags().StringVar(
		&blocksFile,
		"blocks",
		"blocks.json",
		"block stream file to replay",
	)
}

func replayFunc(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	eng, err := engine.New(memdb.New(), rules)
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := replayStream(eng, blocksFile); err != nil {
		return err
	}
	return nil
}

func replayStream(eng *engine.Engine, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var stream blockStream
	if err := json.Unmarshal(raw, &stream); err != nil {
		return err
	}

	for _, blk := range stream.Blocks {
		record, err := eng.ProcessBlock(blk.Height, blk.Txs)
		if err != nil {
			return fmt.Errorf("block %d: %w", blk.Height, err)
		}
		fmt.Printf("%d %s\n", record.Height, record.ConsensusHash)
	}
	return nil
}
