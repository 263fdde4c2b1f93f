// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// Name is the record of a registered fully-qualified name.
type Name struct {
	Name      string `serialize:"true" json:"name"`
	Namespace string `serialize:"true" json:"namespace"`

	// Owner is the address that controls the name. SenderScript is the
	// scriptPubKey form of the address that most recently registered or
	// received the name, kept distinct from Owner for audit.
	Owner        string `serialize:"true" json:"owner"`
	SenderScript string `serialize:"true" json:"senderScript"`

	// ValueHash is the opaque digest attached by the latest update, hex.
	// Empty until the first update, and cleared by transfers that do not
	// keep data.
	ValueHash string `serialize:"true" json:"valueHash"`

	// ConsensusHash is the anti-replay anchor embedded in the latest
	// accepted update. Transfers leave it untouched.
	ConsensusHash string `serialize:"true" json:"consensusHash"`

	FirstRegistered uint64 `serialize:"true" json:"firstRegistered"`

	// ExpireAt is the first height at which the name is expired. Zero
	// means the owning namespace grants unlimited lifetime.
	ExpireAt uint64 `serialize:"true" json:"expireAt"`

	Revoked bool `serialize:"true" json:"revoked"`
}

func (n *Name) Expired(height uint64) bool {
	return n.ExpireAt > 0 && height >= n.ExpireAt
}

// Registerable reports whether a register may claim the name at the given
// height. Live names owned by someone block registration; expired and
// revoked ones do not.
func (n *Name) Registerable(height uint64) bool {
	return n.Revoked || n.Expired(height)
}

// NamePreorder is a live hash commitment to a fully-qualified name.
type NamePreorder struct {
	Hash         string `serialize:"true" json:"hash"`
	Payer        string `serialize:"true" json:"payer"`
	RegisterAddr string `serialize:"true" json:"registerAddr"`
	Height       uint64 `serialize:"true" json:"height"`
}

func (p *NamePreorder) Expired(rules *Rules, height uint64) bool {
	return height > p.Height+rules.NamePreorderExpiry
}
