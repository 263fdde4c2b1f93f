// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/ids"
	"golang.org/x/crypto/sha3"
)

// TxDescriptor is the structured form of one blockchain transaction as
// delivered by the upstream indexer. Signature validity is the indexer's
// responsibility: Sender is assumed to be cryptographically authorized.
type TxDescriptor struct {
	// Opcode is the wire tag that selects the operation kind.
	Opcode byte `json:"opcode"`

	// Payload is the opcode-specific encoding that follows the tag.
	Payload []byte `json:"payload"`

	// Sender is the address authorized by the transaction inputs;
	// SenderScript is its scriptPubKey form.
	Sender       string `json:"sender"`
	SenderScript string `json:"senderScript"`

	// Recipients are the output addresses, order preserved.
	Recipients []string `json:"recipients"`

	Height uint64 `json:"height"`

	// UnsafeSkipChecks requests the ownership/timing validation bypass.
	// Ignored unless Rules.AllowUnsafeSkipChecks is set; testing only.
	UnsafeSkipChecks bool `json:"unsafeSkipChecks,omitempty"`
}

// ID derives a stable identifier from the descriptor contents.
func (t *TxDescriptor) ID() ids.ID {
	h := sha3.New256()
	h.Write([]byte{t.Opcode})
	h.Write(t.Payload)
	h.Write([]byte(t.Sender))
	h.Write([]byte(t.SenderScript))
	for _, r := range t.Recipients {
		h.Write([]byte(r))
	}
	hgt := make([]byte, 8)
	binary.BigEndian.PutUint64(hgt, t.Height)
	h.Write(hgt)

	id, _ := ids.ToID(h.Sum(nil))
	return id
}

// Recipient returns the first output address, if any.
func (t *TxDescriptor) Recipient() (string, bool) {
	if len(t.Recipients) == 0 {
		return "", false
	}
	return t.Recipients[0], true
}
