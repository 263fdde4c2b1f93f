// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package engine drives the name state machine block by block and exposes
// point lookups over committed state.
package engine

import (
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	log "github.com/inconshreveable/log15"

	"github.com/Redd-ID/blockstack-core/chain"
	"github.com/Redd-ID/blockstack-core/consensus"
	"github.com/Redd-ID/blockstack-core/parser"
)

// Engine replays an ordered transaction stream against the name state
// store. Blocks are processed strictly one at a time in increasing height
// order by a single writer; queries run concurrently against committed
// state and never observe a block in flight.
type Engine struct {
	db    database.Database
	rules *chain.Rules

	// processMu serializes ProcessBlock callers; mu guards the tip and
	// the commit point so readers stay concurrent with the writer.
	processMu sync.Mutex
	mu        sync.RWMutex
	tip       chain.ChainTip
}

// New opens an engine over db, resuming from the persisted chain tip when
// one exists. The caller keeps ownership of rules; nil selects defaults.
func New(db database.Database, rules *chain.Rules) (*Engine, error) {
	if rules == nil {
		rules = chain.DefaultRules()
	}
	e := &Engine{
		db:    db,
		rules: rules,
	}
	tip, has, err := chain.GetChainTip(db)
	if err != nil {
		return nil, err
	}
	if has {
		e.tip = *tip
	} else {
		e.tip = chain.ChainTip{ConsensusHash: consensus.InitialHash()}
	}
	return e, nil
}

func (e *Engine) Close() error { return e.db.Close() }

func (e *Engine) Rules() *chain.Rules { return e.rules }

// ProcessBlock applies the block's transactions in their given order and
// commits the result atomically. Unrecognized transactions and rejected
// operations are skipped without effect; only a fatal inconsistency (height
// out of order, storage failure) returns an error, and then nothing of the
// block is committed.
func (e *Engine) ProcessBlock(height uint64, txs []*chain.TxDescriptor) (*chain.BlockRecord, error) {
	e.processMu.Lock()
	defer e.processMu.Unlock()

	tip := e.currentTip()
	if height == 0 || (tip.Height > 0 && height != tip.Height+1) {
		return nil, fmt.Errorf("%w: have tip %d, got %d", chain.ErrBlockOutOfOrder, tip.Height, height)
	}

	blockDB := versiondb.New(e.db)
	defer blockDB.Abort()

	acc, err := consensus.NewAccumulator(tip.ConsensusHash)
	if err != nil {
		return nil, err
	}
	record := &chain.BlockRecord{
		Height:   height,
		PrevHash: tip.ConsensusHash,
		Accepted: []chain.AcceptedOp{},
	}

	var rejected, skipped int
	for i, tx := range txs {
		op, err := chain.Classify(tx)
		if err != nil {
			log.Debug("skipping unrecognized tx", "height", height, "index", i, "tx", tx.ID(), "opcode", tx.Opcode)
			skipped++
			continue
		}

		// Each operation stages onto its own layer so a rejection
		// leaves no partial writes behind.
		opDB := versiondb.New(blockDB)
		opCtx := &chain.OpContext{
			Rules:      e.rules,
			DB:         opDB,
			Height:     height,
			SkipChecks: tx.UnsafeSkipChecks && e.rules.AllowUnsafeSkipChecks,
		}
		if err := op.Apply(opCtx); err != nil {
			opDB.Abort()
			if !chain.IsRejection(err) {
				return nil, fmt.Errorf("apply %s %q at height %d: %w", op.Kind(), op.Target(), height, err)
			}
			log.Debug("rejected operation",
				"height", height,
				"tx", tx.ID(),
				"kind", op.Kind(),
				"target", op.Target(),
				"reason", err,
			)
			rejected++
			continue
		}
		if err := opDB.Commit(); err != nil {
			return nil, err
		}

		opBytes, err := chain.OperationBytes(op)
		if err != nil {
			return nil, err
		}
		acc.Add(opBytes)
		record.Accepted = append(record.Accepted, chain.AcceptedOp{
			Kind:   op.Kind(),
			Target: op.Target(),
		})
	}

	record.ConsensusHash = acc.Hash()
	newTip := chain.ChainTip{Height: height, ConsensusHash: record.ConsensusHash}
	if err := chain.PutBlockRecord(blockDB, record); err != nil {
		return nil, err
	}
	if err := chain.PutChainTip(blockDB, &newTip); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := blockDB.Commit(); err != nil {
		return nil, err
	}
	e.tip = newTip

	log.Debug("block committed",
		"height", height,
		"hash", record.ConsensusHash,
		"accepted", len(record.Accepted),
		"rejected", rejected,
		"skipped", skipped,
	)
	return record, nil
}

func (e *Engine) currentTip() chain.ChainTip {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tip
}

// CurrentBlockHeight returns the latest committed height, zero before the
// first block.
func (e *Engine) CurrentBlockHeight() uint64 {
	return e.currentTip().Height
}

// CurrentConsensusHash returns the consensus hash at the chain tip.
func (e *Engine) CurrentConsensusHash() string {
	return e.currentTip().ConsensusHash
}

// GetConsensusHashAt returns the consensus hash committed at height.
func (e *Engine) GetConsensusHashAt(height uint64) (string, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	r, has, err := chain.GetBlockRecord(e.db, height)
	if !has || err != nil {
		return "", false, err
	}
	return r.ConsensusHash, true, nil
}

// GetBlockRecord returns the accepted-operation summary committed at height.
func (e *Engine) GetBlockRecord(height uint64) (*chain.BlockRecord, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return chain.GetBlockRecord(e.db, height)
}

// GetNamespace returns a namespace that has been marked ready.
func (e *Engine) GetNamespace(id string) (*chain.Namespace, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ns, has, err := chain.GetNamespace(e.db, id)
	if !has || err != nil || !ns.Ready() {
		return nil, false, err
	}
	return ns, true, nil
}

// GetNamespaceReveal returns a namespace that has been revealed but not yet
// marked ready.
func (e *Engine) GetNamespaceReveal(id string) (*chain.Namespace, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ns, has, err := chain.GetNamespace(e.db, id)
	if !has || err != nil || ns.Ready() {
		return nil, false, err
	}
	return ns, true, nil
}

func (e *Engine) GetNamespacePreorder(hash string) (*chain.NamespacePreorder, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return chain.GetNamespacePreorder(e.db, hash)
}

func (e *Engine) GetName(name string) (*chain.Name, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return chain.GetName(e.db, name)
}

func (e *Engine) GetNamePreorder(hash string) (*chain.NamePreorder, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return chain.GetNamePreorder(e.db, hash)
}

func (e *Engine) GetNamesByOwner(addr string) ([]*chain.Name, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return chain.GetNamesByOwner(e.db, addr)
}

// GetNamePrice values a fully-qualified name against its namespace's
// revealed pricing parameters.
func (e *Engine) GetNamePrice(name string) (uint64, error) {
	label, nsID, err := parser.SplitName(name)
	if err != nil {
		return 0, err
	}
	ns, has, err := e.GetNamespace(nsID)
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, chain.ErrNamespaceMissing
	}
	return chain.NamePrice(ns, label), nil
}
