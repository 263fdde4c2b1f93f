// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ Operation = &NameRenewOp{}

// NameRenewOp extends a live name's expiration by the owning namespace's
// lifetime, measured from the renewal block.
type NameRenewOp struct {
	Name   string `serialize:"true" json:"name"`
	Sender string `serialize:"true" json:"sender"`
}

func (o *NameRenewOp) Kind() OpKind   { return OpNameRenew }
func (o *NameRenewOp) Target() string { return o.Name }

func (o *NameRenewOp) Apply(ctx *OpContext) error {
	n, has, err := GetName(ctx.DB, o.Name)
	if err != nil {
		return err
	}
	if !has {
		return ErrNameMissing
	}
	if n.Revoked {
		return ErrNameRevoked
	}
	if n.Expired(ctx.Height) {
		return ErrNameExpired
	}
	if n.Owner != o.Sender {
		return ErrNotNameOwner
	}

	ns, has, err := GetNamespace(ctx.DB, n.Namespace)
	if err != nil {
		return err
	}
	if !has {
		return ErrNamespaceMissing
	}
	if ns.Lifetime > 0 {
		n.ExpireAt = ctx.Height + ns.Lifetime
	}
	return PutName(ctx.DB, n)
}
