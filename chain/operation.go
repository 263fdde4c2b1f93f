// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
)

// OpKind enumerates the recognized operation kinds.
type OpKind uint8

const (
	OpUnknown OpKind = iota
	OpNamespacePreorder
	OpNamespaceReveal
	OpNamespaceReady
	OpNamePreorder
	OpNameRegister
	OpNameUpdate
	OpNameTransfer
	OpNameRenew
	OpNameRevoke
)

func (k OpKind) String() string {
	switch k {
	case OpNamespacePreorder:
		return "NAMESPACE_PREORDER"
	case OpNamespaceReveal:
		return "NAMESPACE_REVEAL"
	case OpNamespaceReady:
		return "NAMESPACE_READY"
	case OpNamePreorder:
		return "NAME_PREORDER"
	case OpNameRegister:
		return "NAME_REGISTRATION"
	case OpNameUpdate:
		return "NAME_UPDATE"
	case OpNameTransfer:
		return "NAME_TRANSFER"
	case OpNameRenew:
		return "NAME_RENEWAL"
	case OpNameRevoke:
		return "NAME_REVOKE"
	default:
		return "UNKNOWN"
	}
}

// OpContext is the environment an operation applies against. DB is a
// staging view over the current block; a rejection must leave it untouched,
// which the block processor guarantees by discarding the staging layer.
type OpContext struct {
	Rules  *Rules
	DB     database.Database
	Height uint64

	// SkipChecks bypasses ownership and timing validation. Set only when
	// the descriptor asks for it and Rules.AllowUnsafeSkipChecks permits.
	SkipChecks bool
}

// Operation is a classified transaction ready to apply. Apply returns nil
// on acceptance, a *RejectionError on a failed precondition, and any other
// error on fatal inconsistency.
type Operation interface {
	Kind() OpKind
	// Target is the identifier the operation affects: a commitment hash
	// for preorders, a namespace id or fully-qualified name otherwise.
	Target() string
	Apply(ctx *OpContext) error
}

type canonicalOp struct {
	Op Operation `serialize:"true"`
}

// OperationBytes returns the canonical serialization of an accepted
// operation, the only form folded into the consensus hash. The codec writes
// a type tag followed by the fields in declaration order, so distinct kinds
// and contents never collide.
func OperationBytes(op Operation) ([]byte, error) {
	return Marshal(&canonicalOp{Op: op})
}
