// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ Operation = &NameUpdateOp{}

// NameUpdateOp attaches a value hash to a name. The embedded consensus hash
// is the anti-replay anchor: it must be one this chain produced within the
// consensus window, so an update captured on another fork cannot be
// replayed here. The accepted hash is recorded on the name.
type NameUpdateOp struct {
	Name          string `serialize:"true" json:"name"`
	ValueHash     string `serialize:"true" json:"valueHash"`
	ConsensusHash string `serialize:"true" json:"consensusHash"`
	Sender        string `serialize:"true" json:"sender"`
}

func (o *NameUpdateOp) Kind() OpKind   { return OpNameUpdate }
func (o *NameUpdateOp) Target() string { return o.Name }

func (o *NameUpdateOp) Apply(ctx *OpContext) error {
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
		ok, err := HasConsensusHash(ctx.DB, ctx.Rules, ctx.Height, o.ConsensusHash)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStaleConsensus
		}
	}

	n.ValueHash = o.ValueHash
	n.ConsensusHash = o.ConsensusHash
	return PutName(ctx.DB, n)
}
