// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// NamespaceRevealOp opens the commitment made by a namespace preorder and
// fixes the namespace's lifetime and pricing parameters.
type NamespaceRevealOp struct {
	ID   string `serialize:"true" json:"id"`
	Salt []byte `serialize:"true" json:"salt"`

	Lifetime         uint64             `serialize:"true" json:"lifetime"`
	Coeff            uint64             `serialize:"true" json:"coeff"`
	Base             uint64             `serialize:"true" json:"base"`
	Buckets          [PriceBuckets]byte `serialize:"true" json:"buckets"`
	NonalphaDiscount uint8              `serialize:"true" json:"nonalphaDiscount"`
	NoVowelDiscount  uint8              `serialize:"true" json:"noVowelDiscount"`

	Payer          string `serialize:"true" json:"payer"`
	Operator       string `serialize:"true" json:"operator"`
	OperatorScript string `serialize:"true" json:"operatorScript"`
}

var _ Operation = &NamespaceRevealOp{}

func (o *NamespaceRevealOp) Kind() OpKind   { return OpNamespaceReveal }
func (o *NamespaceRevealOp) Target() string { return o.ID }

func (o *NamespaceRevealOp) Apply(ctx *OpContext) error {
	// A ready namespace is live; it cannot be re-revealed. A revealed but
	// never-readied namespace may be, once its preorder path recurs.
	if ns, has, err := GetNamespace(ctx.DB, o.ID); err != nil {
		return err
	} else if has && ns.Ready() {
		return ErrNamespaceExists
	}

	hash := NamespaceCommitment(o.ID, o.Salt)
	preorder, has, err := GetNamespacePreorder(ctx.DB, hash)
	if err != nil {
		return err
	}
	if !has {
		return ErrNamespacePreorderGone
	}
	if preorder.Expired(ctx.Rules, ctx.Height) {
		return ErrNamespacePreorderStale
	}
	// The reveal must come from the key that paid for the preorder.
	if preorder.Payer != o.Payer {
		return ErrCommitmentHashMismatch
	}

	if err := DeleteNamespacePreorder(ctx.DB, hash); err != nil {
		return err
	}
	return PutNamespace(ctx.DB, &Namespace{
		ID:               o.ID,
		Operator:         o.Operator,
		OperatorScript:   o.OperatorScript,
		Lifetime:         o.Lifetime,
		Coeff:            o.Coeff,
		Base:             o.Base,
		Buckets:          o.Buckets,
		NonalphaDiscount: o.NonalphaDiscount,
		NoVowelDiscount:  o.NoVowelDiscount,
		RevealedAt:       ctx.Height,
	})
}
