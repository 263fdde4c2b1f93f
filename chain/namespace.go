// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// PriceBuckets is the number of per-length price exponents a namespace
// reveal carries. Names longer than the last bucket use the last bucket.
const PriceBuckets = 16

// Namespace is the record of a revealed namespace. ReadyAt stays zero until
// the ready operation lands; only ready namespaces accept registrations.
type Namespace struct {
	ID string `serialize:"true" json:"id"`

	// Operator is the address the reveal paid to. It alone may mark the
	// namespace ready, and under RevokeByNamespaceOperator it may revoke
	// names inside the namespace.
	Operator       string `serialize:"true" json:"operator"`
	OperatorScript string `serialize:"true" json:"operatorScript"`

	// Lifetime is the number of blocks a registered name stays live before
	// it must be renewed. Zero means names never expire.
	Lifetime uint64 `serialize:"true" json:"lifetime"`

	// Pricing parameters, fixed at reveal.
	Coeff            uint64             `serialize:"true" json:"coeff"`
	Base             uint64             `serialize:"true" json:"base"`
	Buckets          [PriceBuckets]byte `serialize:"true" json:"buckets"`
	NonalphaDiscount uint8              `serialize:"true" json:"nonalphaDiscount"`
	NoVowelDiscount  uint8              `serialize:"true" json:"noVowelDiscount"`

	RevealedAt uint64 `serialize:"true" json:"revealedAt"`
	ReadyAt    uint64 `serialize:"true" json:"readyAt"`
}

func (n *Namespace) Ready() bool { return n.ReadyAt > 0 }

// NamespacePreorder is a live hash commitment to a namespace identifier.
// The identifier itself is unknown until the reveal that consumes it.
type NamespacePreorder struct {
	Hash   string `serialize:"true" json:"hash"`
	Payer  string `serialize:"true" json:"payer"`
	Height uint64 `serialize:"true" json:"height"`
}

func (p *NamespacePreorder) Expired(rules *Rules, height uint64) bool {
	return height > p.Height+rules.NamespacePreorderExpiry
}
