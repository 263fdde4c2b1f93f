// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

// RejectionError marks an operation that failed a lifecycle precondition.
// Rejections are expected consensus behavior: the operation is skipped, no
// state changes, and nothing is recorded. Any other error returned from the
// apply path is a fatal inconsistency and halts block processing.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string { return e.Reason }

func reject(reason string) error { return &RejectionError{Reason: reason} }

// IsRejection reports whether err is a silent-rejection error rather than a
// fatal one.
func IsRejection(err error) bool {
	var r *RejectionError
	return errors.As(err, &r)
}

var (
	// Classification
	ErrNotRecognized = errors.New("transaction not recognized")

	// Namespace lifecycle
	ErrCommitmentExists       = reject("commitment hash already seen")
	ErrNamespacePreorderGone  = reject("namespace preorder missing")
	ErrNamespacePreorderStale = reject("namespace preorder expired")
	ErrNamespaceExists        = reject("namespace already ready")
	ErrNamespaceMissing       = reject("namespace missing")
	ErrNamespaceNotRevealed   = reject("namespace not in revealed state")
	ErrNamespaceNotReady      = reject("namespace not ready")
	ErrNamespaceRevealElapsed = reject("namespace reveal window elapsed")
	ErrNotNamespaceOperator   = reject("sender did not reveal this namespace")
	ErrCommitmentHashMismatch = reject("commitment hash does not match reveal")

	// Name lifecycle
	ErrNamePreorderGone  = reject("name preorder missing")
	ErrNamePreorderStale = reject("name preorder expired")
	ErrNameTaken         = reject("name registered and not expired")
	ErrNameMissing       = reject("name missing")
	ErrNameExpired       = reject("name expired")
	ErrNameRevoked       = reject("name revoked")
	ErrNotNameOwner      = reject("sender does not own name")
	ErrStaleConsensus    = reject("consensus hash not produced by this chain")

	// Block correctness (fatal)
	ErrBlockOutOfOrder = errors.New("block height out of order")
)
