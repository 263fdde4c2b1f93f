// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package consensus folds a block's accepted operations into the chained
// consensus hash that lets independent nodes agree on history.
package consensus

import (
	"encoding/hex"

	"github.com/ava-labs/avalanchego/utils/hashing"
)

// HashLen is the byte width of a consensus hash.
const HashLen = 16

// InitialHash seeds the chain before any block is processed.
func InitialHash() string {
	return hex.EncodeToString(hashing.ComputeHash256(nil)[:HashLen])
}

// Accumulator folds the canonical bytes of each accepted operation, in
// order, into a hash chained onto the previous block's. Accepted operations
// are the only input: the accumulator is order-sensitive and nothing else
// reaches it.
type Accumulator struct {
	buf []byte
}

// NewAccumulator starts a block's fold from the previous consensus hash.
func NewAccumulator(prevHash string) (*Accumulator, error) {
	prev, err := hex.DecodeString(prevHash)
	if err != nil {
		return nil, err
	}
	return &Accumulator{buf: prev}, nil
}

// Add appends one accepted operation's canonical bytes to the fold.
func (a *Accumulator) Add(opBytes []byte) {
	a.buf = append(a.buf, opBytes...)
}

// Hash returns the block's consensus hash. It may be called repeatedly; the
// result reflects the operations added so far.
func (a *Accumulator) Hash() string {
	return hex.EncodeToString(hashing.ComputeHash256(a.buf)[:HashLen])
}
