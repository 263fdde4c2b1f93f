// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/Redd-ID/blockstack-core/parser"
)

var _ Operation = &NameRegisterOp{}

// NameRegisterOp opens a name preorder's commitment and creates the name
// record. Expired and revoked names are re-registrable; live ones are not.
type NameRegisterOp struct {
	Name string `serialize:"true" json:"name"`
	Salt []byte `serialize:"true" json:"salt"`

	Owner        string `serialize:"true" json:"owner"`
	SenderScript string `serialize:"true" json:"senderScript"`
}

func (o *NameRegisterOp) Kind() OpKind   { return OpNameRegister }
func (o *NameRegisterOp) Target() string { return o.Name }

func (o *NameRegisterOp) Apply(ctx *OpContext) error {
	_, nsID, err := parser.SplitName(o.Name)
	if err != nil {
		return reject(err.Error())
	}
	ns, has, err := GetNamespace(ctx.DB, nsID)
	if err != nil {
		return err
	}
	if !has {
		return ErrNamespaceMissing
	}
	if !ns.Ready() {
		return ErrNamespaceNotReady
	}

	if existing, has, err := GetName(ctx.DB, o.Name); err != nil {
		return err
	} else if has && !existing.Registerable(ctx.Height) {
		return ErrNameTaken
	}

	hash := NameCommitment(o.Name, o.Salt)
	preorder, has, err := GetNamePreorder(ctx.DB, hash)
	if err != nil {
		return err
	}
	if !has {
		return ErrNamePreorderGone
	}
	if preorder.Expired(ctx.Rules, ctx.Height) {
		return ErrNamePreorderStale
	}
	// When the preorder named a register address, the register must honor
	// it; this is what makes the commitment front-running proof.
	if preorder.RegisterAddr != "" && preorder.RegisterAddr != o.Owner {
		return ErrCommitmentHashMismatch
	}

	if err := DeleteNamePreorder(ctx.DB, hash); err != nil {
		return err
	}

	var expireAt uint64
	if ns.Lifetime > 0 {
		expireAt = ctx.Height + ns.Lifetime
	}
	return PutName(ctx.DB, &Name{
		Name:            o.Name,
		Namespace:       nsID,
		Owner:           o.Owner,
		SenderScript:    o.SenderScript,
		FirstRegistered: ctx.Height,
		ExpireAt:        expireAt,
	})
}
