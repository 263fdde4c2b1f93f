// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/hex"

	"github.com/ava-labs/avalanchego/utils/hashing"
)

// CommitmentHashLen is the byte width of a preorder commitment (hash160).
const CommitmentHashLen = 20

// SaltLen is the byte width of the salt revealed alongside an identifier.
const SaltLen = 16

// NamespaceCommitment is the hash160 of (namespace identifier || salt),
// hex-encoded. A preorder publishes only this commitment, hiding the
// identifier until the reveal.
func NamespaceCommitment(namespace string, salt []byte) string {
	return commitment([]byte(namespace), salt)
}

// NameCommitment is the hash160 of (fully-qualified name || salt), hex.
func NameCommitment(name string, salt []byte) string {
	return commitment([]byte(name), salt)
}

func commitment(id []byte, salt []byte) string {
	b := make([]byte, 0, len(id)+len(salt))
	b = append(b, id...)
	b = append(b, salt...)
	return hex.EncodeToString(hashing.ComputeHash160(b))
}

// PayToAddrScript renders the p2pkh scriptPubKey form of an address. The
// engine records this script alongside the owner address; upstream supplies
// the real script for registrations, and transfers derive the recipient's.
func PayToAddrScript(addr string) string {
	return "76a914" + hex.EncodeToString(hashing.ComputeHash160([]byte(addr))) + "88ac"
}
