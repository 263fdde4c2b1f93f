// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ Operation = &NameTransferOp{}

// NameTransferOp moves a name to a new owner. It is a pure ownership
// mutation: value hash is preserved or cleared per KeepData, and the name's
// recorded consensus hash is untouched, so transfers and updates compose in
// any order.
type NameTransferOp struct {
	Name     string `serialize:"true" json:"name"`
	KeepData bool   `serialize:"true" json:"keepData"`
	NewOwner string `serialize:"true" json:"newOwner"`
	Sender   string `serialize:"true" json:"sender"`
}

func (o *NameTransferOp) Kind() OpKind   { return OpNameTransfer }
func (o *NameTransferOp) Target() string { return o.Name }

func (o *NameTransferOp) Apply(ctx *OpContext) error {
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
	if !ctx.SkipChecks {
		if n.Expired(ctx.Height) {
			return ErrNameExpired
		}
		if n.Owner != o.Sender {
			return ErrNotNameOwner
		}
	}

	n.Owner = o.NewOwner
	n.SenderScript = PayToAddrScript(o.NewOwner)
	if !o.KeepData {
		n.ValueHash = ""
	}
	return PutName(ctx.DB, n)
}
