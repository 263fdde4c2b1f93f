// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// AcceptedOp tags one accepted operation inside a block record.
type AcceptedOp struct {
	Kind   OpKind `serialize:"true" json:"kind"`
	Target string `serialize:"true" json:"target"`
}

// BlockRecord is the durable summary of one processed block: the operations
// that were accepted, in order, and the consensus hash they folded into.
type BlockRecord struct {
	Height        uint64       `serialize:"true" json:"height"`
	PrevHash      string       `serialize:"true" json:"prevHash"`
	ConsensusHash string       `serialize:"true" json:"consensusHash"`
	Accepted      []AcceptedOp `serialize:"true" json:"accepted"`
}

// ChainTip is the singleton record pointing at the latest committed block.
type ChainTip struct {
	Height        uint64 `serialize:"true" json:"height"`
	ConsensusHash string `serialize:"true" json:"consensusHash"`
}
