// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ Operation = &NamePreorderOp{}

// NamePreorderOp commits to a fully-qualified name by hash. The owning
// namespace is unknown until the register opens the commitment, so no
// namespace check happens here.
type NamePreorderOp struct {
	CommitHash   string `serialize:"true" json:"commitHash"`
	Payer        string `serialize:"true" json:"payer"`
	RegisterAddr string `serialize:"true" json:"registerAddr"`
}

func (o *NamePreorderOp) Kind() OpKind   { return OpNamePreorder }
func (o *NamePreorderOp) Target() string { return o.CommitHash }

func (o *NamePreorderOp) Apply(ctx *OpContext) error {
	// At most one live preorder per commitment hash. A lapsed one no
	// longer guards the commitment and is overwritten.
	if existing, has, err := GetNamePreorder(ctx.DB, o.CommitHash); err != nil {
		return err
	} else if has && !existing.Expired(ctx.Rules, ctx.Height) {
		return ErrCommitmentExists
	}

	return PutNamePreorder(ctx.DB, &NamePreorder{
		Hash:         o.CommitHash,
		Payer:        o.Payer,
		RegisterAddr: o.RegisterAddr,
		Height:       ctx.Height,
	})
}
