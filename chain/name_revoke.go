// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ Operation = &NameRevokeOp{}

// NameRevokeOp marks a name permanently unusable. The record is kept for
// audit; the name becomes re-registrable. Who may revoke is set by
// Rules.RevokePolicy.
type NameRevokeOp struct {
	Name   string `serialize:"true" json:"name"`
	Sender string `serialize:"true" json:"sender"`
}

func (o *NameRevokeOp) Kind() OpKind   { return OpNameRevoke }
func (o *NameRevokeOp) Target() string { return o.Name }

func (o *NameRevokeOp) Apply(ctx *OpContext) error {
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

	authorized := n.Owner == o.Sender
	if ctx.Rules.RevokePolicy == RevokeByNamespaceOperator && !authorized {
		ns, has, err := GetNamespace(ctx.DB, n.Namespace)
		if err != nil {
			return err
		}
		authorized = has && ns.Operator == o.Sender
	}
	if !authorized {
		return ErrNotNameOwner
	}

	n.Revoked = true
	n.ValueHash = ""
	return PutName(ctx.DB, n)
}
