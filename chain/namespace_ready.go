// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ Operation = &NamespaceReadyOp{}

// NamespaceReadyOp opens a revealed namespace for name registrations.
type NamespaceReadyOp struct {
	ID     string `serialize:"true" json:"id"`
	Sender string `serialize:"true" json:"sender"`
}

func (o *NamespaceReadyOp) Kind() OpKind   { return OpNamespaceReady }
func (o *NamespaceReadyOp) Target() string { return o.ID }

func (o *NamespaceReadyOp) Apply(ctx *OpContext) error {
	ns, has, err := GetNamespace(ctx.DB, o.ID)
	if err != nil {
		return err
	}
	if !has {
		return ErrNamespaceMissing
	}
	if ns.Ready() {
		return ErrNamespaceNotRevealed
	}
	// Only the reveal's recipient key may open the namespace.
	if ns.Operator != o.Sender {
		return ErrNotNamespaceOperator
	}
	if ctx.Height > ns.RevealedAt+ctx.Rules.NamespaceRevealWindow {
		return ErrNamespaceRevealElapsed
	}

	ns.ReadyAt = ctx.Height
	return PutNamespace(ctx.DB, ns)
}
