// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/Redd-ID/blockstack-core/parser"
)

// Wire opcodes, one byte each, as emitted by the upstream indexer.
const (
	OpcodeNamespacePreorder byte = '*'
	OpcodeNamespaceReveal   byte = '&'
	OpcodeNamespaceReady    byte = '!'
	OpcodeNamePreorder      byte = '?'
	OpcodeNameRegister      byte = ':'
	OpcodeNameUpdate        byte = '+'
	OpcodeNameTransfer      byte = '>'
	OpcodeNameRevoke        byte = '~'
)

// ValueHashLen is the byte width of a name's value hash.
const ValueHashLen = 20

// ConsensusHashLen is the byte width of a consensus hash.
const ConsensusHashLen = 16

// revealFixedLen is the byte width of the fixed reveal header: lifetime(4),
// coeff(2), base(2), buckets(16), nonalpha(1), novowel(1), idLen(1).
const revealFixedLen = 27

// Classify maps a transaction descriptor to a typed operation. It is a pure
// function of the descriptor fields and never consults chain state. Unknown
// opcodes and malformed payloads return ErrNotRecognized so that unrelated
// blockchain traffic is skippable without halting the stream.
func Classify(tx *TxDescriptor) (Operation, error) {
	switch tx.Opcode {
	case OpcodeNamespacePreorder:
		return classifyNamespacePreorder(tx)
	case OpcodeNamespaceReveal:
		return classifyNamespaceReveal(tx)
	case OpcodeNamespaceReady:
		return classifyNamespaceReady(tx)
	case OpcodeNamePreorder:
		return classifyNamePreorder(tx)
	case OpcodeNameRegister:
		return classifyNameRegister(tx)
	case OpcodeNameUpdate:
		return classifyNameUpdate(tx)
	case OpcodeNameTransfer:
		return classifyNameTransfer(tx)
	case OpcodeNameRevoke:
		return classifyNameRevoke(tx)
	default:
		return nil, ErrNotRecognized
	}
}

// payload: commitment hash (20B)
func classifyNamespacePreorder(tx *TxDescriptor) (Operation, error) {
	if len(tx.Payload) != CommitmentHashLen {
		return nil, ErrNotRecognized
	}
	return &NamespacePreorderOp{
		CommitHash: hex.EncodeToString(tx.Payload),
		Payer:      tx.Sender,
	}, nil
}

// payload: lifetime(4) coeff(2) base(2) buckets(16) nonalpha(1) novowel(1)
// idLen(1) id(idLen) salt(16); operator is the first recipient
func classifyNamespaceReveal(tx *TxDescriptor) (Operation, error) {
	p := tx.Payload
	if len(p) < revealFixedLen {
		return nil, ErrNotRecognized
	}
	idLen := int(p[revealFixedLen-1])
	if len(p) != revealFixedLen+idLen+SaltLen {
		return nil, ErrNotRecognized
	}
	id := string(p[revealFixedLen : revealFixedLen+idLen])
	if parser.CheckNamespace(id) != nil {
		return nil, ErrNotRecognized
	}
	operator, ok := tx.Recipient()
	if !ok {
		return nil, ErrNotRecognized
	}

	op := &NamespaceRevealOp{
		ID:               id,
		Salt:             p[revealFixedLen+idLen:],
		Lifetime:         uint64(binary.BigEndian.Uint32(p[0:4])),
		Coeff:            uint64(binary.BigEndian.Uint16(p[4:6])),
		Base:             uint64(binary.BigEndian.Uint16(p[6:8])),
		NonalphaDiscount: p[24],
		NoVowelDiscount:  p[25],
		Payer:            tx.Sender,
		Operator:         operator,
		OperatorScript:   PayToAddrScript(operator),
	}
	copy(op.Buckets[:], p[8:24])
	return op, nil
}

// payload: namespace identifier
func classifyNamespaceReady(tx *TxDescriptor) (Operation, error) {
	id := string(tx.Payload)
	if parser.CheckNamespace(id) != nil {
		return nil, ErrNotRecognized
	}
	return &NamespaceReadyOp{
		ID:     id,
		Sender: tx.Sender,
	}, nil
}

// payload: commitment hash (20B); optional first recipient is the address
// the eventual register must assign ownership to
func classifyNamePreorder(tx *TxDescriptor) (Operation, error) {
	if len(tx.Payload) != CommitmentHashLen {
		return nil, ErrNotRecognized
	}
	registerAddr, _ := tx.Recipient()
	return &NamePreorderOp{
		CommitHash:   hex.EncodeToString(tx.Payload),
		Payer:        tx.Sender,
		RegisterAddr: registerAddr,
	}, nil
}

// payload: nameLen(1) name(nameLen) salt(16, register) | nothing (renewal);
// a register assigns ownership to the first recipient
func classifyNameRegister(tx *TxDescriptor) (Operation, error) {
	p := tx.Payload
	if len(p) < 1 {
		return nil, ErrNotRecognized
	}
	nameLen := int(p[0])
	name, rest, err := splitName(p[1:], nameLen)
	if err != nil {
		return nil, err
	}

	// No revealed salt means the sender is renewing a name it already
	// owns rather than consuming a preorder.
	if len(rest) == 0 {
		return &NameRenewOp{
			Name:   name,
			Sender: tx.Sender,
		}, nil
	}
	if len(rest) != SaltLen {
		return nil, ErrNotRecognized
	}
	owner, ok := tx.Recipient()
	if !ok {
		return nil, ErrNotRecognized
	}
	return &NameRegisterOp{
		Name:         name,
		Salt:         rest,
		Owner:        owner,
		SenderScript: PayToAddrScript(owner),
	}, nil
}

// payload: nameLen(1) name(nameLen) valueHash(20) consensusHash(16)
func classifyNameUpdate(tx *TxDescriptor) (Operation, error) {
	p := tx.Payload
	if len(p) < 1 {
		return nil, ErrNotRecognized
	}
	nameLen := int(p[0])
	name, rest, err := splitName(p[1:], nameLen)
	if err != nil {
		return nil, err
	}
	if len(rest) != ValueHashLen+ConsensusHashLen {
		return nil, ErrNotRecognized
	}
	return &NameUpdateOp{
		Name:          name,
		ValueHash:     hex.EncodeToString(rest[:ValueHashLen]),
		ConsensusHash: hex.EncodeToString(rest[ValueHashLen:]),
		Sender:        tx.Sender,
	}, nil
}

// payload: keepData(1) nameLen(1) name(nameLen); new owner is the first
// recipient
func classifyNameTransfer(tx *TxDescriptor) (Operation, error) {
	p := tx.Payload
	if len(p) < 2 {
		return nil, ErrNotRecognized
	}
	if p[0] > 1 {
		return nil, ErrNotRecognized
	}
	nameLen := int(p[1])
	name, rest, err := splitName(p[2:], nameLen)
	if err != nil || len(rest) != 0 {
		return nil, ErrNotRecognized
	}
	newOwner, ok := tx.Recipient()
	if !ok {
		return nil, ErrNotRecognized
	}
	return &NameTransferOp{
		Name:     name,
		KeepData: p[0] == 1,
		NewOwner: newOwner,
		Sender:   tx.Sender,
	}, nil
}

// payload: fully-qualified name
func classifyNameRevoke(tx *TxDescriptor) (Operation, error) {
	name := string(tx.Payload)
	if parser.CheckName(name) != nil {
		return nil, ErrNotRecognized
	}
	return &NameRevokeOp{
		Name:   name,
		Sender: tx.Sender,
	}, nil
}

func splitName(p []byte, nameLen int) (string, []byte, error) {
	if nameLen == 0 || len(p) < nameLen {
		return "", nil, ErrNotRecognized
	}
	name := string(p[:nameLen])
	if parser.CheckName(name) != nil {
		return "", nil, ErrNotRecognized
	}
	return name, p[nameLen:], nil
}
