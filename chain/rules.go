// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// RevokeAuth names who may revoke a registered name.
type RevokeAuth uint8

const (
	// RevokeByOwner allows only the name's current owner to revoke it.
	RevokeByOwner RevokeAuth = iota
	// RevokeByNamespaceOperator additionally allows the address that
	// revealed the owning namespace to revoke any name inside it.
	RevokeByNamespaceOperator
)

// Rules carries the consensus parameters of the engine. Two nodes replaying
// the same transaction stream must run with identical rules to agree on
// history.
type Rules struct {
	// NamespacePreorderExpiry is the number of blocks a namespace preorder
	// stays claimable by a reveal.
	NamespacePreorderExpiry uint64 `json:"namespacePreorderExpiry"`

	// NamespaceRevealWindow is the number of blocks between a reveal and
	// the latest block at which the namespace may be marked ready.
	NamespaceRevealWindow uint64 `json:"namespaceRevealWindow"`

	// NamePreorderExpiry is the number of blocks a name preorder stays
	// claimable by a register.
	NamePreorderExpiry uint64 `json:"namePreorderExpiry"`

	// ConsensusHashWindow is the number of trailing blocks whose consensus
	// hashes remain valid anti-replay anchors for name updates.
	ConsensusHashWindow uint64 `json:"consensusHashWindow"`

	RevokePolicy RevokeAuth `json:"revokePolicy"`

	// AllowUnsafeSkipChecks honors TxDescriptor.UnsafeSkipChecks, which
	// bypasses ownership and timing validation on name operations. Testing
	// only; never enable on a node that must agree with peers.
	AllowUnsafeSkipChecks bool `json:"allowUnsafeSkipChecks"`
}

func DefaultRules() *Rules {
	return &Rules{
		NamespacePreorderExpiry: 144,
		NamespaceRevealWindow:   1008,
		NamePreorderExpiry:      144,
		ConsensusHashWindow:     4096,
		RevokePolicy:            RevokeByOwner,
	}
}
