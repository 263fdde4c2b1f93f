// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ Operation = &NamespacePreorderOp{}

// NamespacePreorderOp commits to a namespace identifier by hash, hiding the
// identifier until the reveal.
type NamespacePreorderOp struct {
	CommitHash string `serialize:"true" json:"commitHash"`
	Payer      string `serialize:"true" json:"payer"`
}

func (o *NamespacePreorderOp) Kind() OpKind   { return OpNamespacePreorder }
func (o *NamespacePreorderOp) Target() string { return o.CommitHash }

func (o *NamespacePreorderOp) Apply(ctx *OpContext) error {
	// At most one live preorder per commitment hash. A lapsed one no
	// longer guards the commitment and is overwritten.
	if existing, has, err := GetNamespacePreorder(ctx.DB, o.CommitHash); err != nil {
		return err
	} else if has && !existing.Expired(ctx.Rules, ctx.Height) {
		return ErrCommitmentExists
	}

	return PutNamespacePreorder(ctx.DB, &NamespacePreorder{
		Hash:   o.CommitHash,
		Payer:  o.Payer,
		Height: ctx.Height,
	})
}
