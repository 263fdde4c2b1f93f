// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
)

func testRevealOp(id string, salt []byte, payer, operator string) *NamespaceRevealOp {
	return &NamespaceRevealOp{
		ID:               id,
		Salt:             salt,
		Lifetime:         1000,
		Coeff:            250,
		Base:             4,
		Buckets:          [PriceBuckets]byte{6, 5, 4, 3, 2, 1},
		NonalphaDiscount: 10,
		NoVowelDiscount:  10,
		Payer:            payer,
		Operator:         operator,
		OperatorScript:   PayToAddrScript(operator),
	}
}

func TestNamespaceLifecycle(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	rules := DefaultRules()
	salt := bytes.Repeat([]byte{0x7}, SaltLen)
	commit := NamespaceCommitment("test", salt)

	ctx := func(height uint64) *OpContext {
		return &OpContext{Rules: rules, DB: db, Height: height}
	}

	preorder := &NamespacePreorderOp{CommitHash: commit, Payer: "payer"}
	if err := preorder.Apply(ctx(1)); err != nil {
		t.Fatal(err)
	}
	// duplicate commitment
	if err := preorder.Apply(ctx(2)); !errors.Is(err, ErrCommitmentExists) {
		t.Fatalf("expected %v, got %v", ErrCommitmentExists, err)
	}

	// reveal by the wrong payer
	wrongPayer := testRevealOp("test", salt, "thief", "operator")
	if err := wrongPayer.Apply(ctx(2)); !errors.Is(err, ErrCommitmentHashMismatch) {
		t.Fatalf("expected %v, got %v", ErrCommitmentHashMismatch, err)
	}

	// reveal with a salt that does not open the commitment
	badSalt := testRevealOp("test", bytes.Repeat([]byte{0x8}, SaltLen), "payer", "operator")
	if err := badSalt.Apply(ctx(2)); !errors.Is(err, ErrNamespacePreorderGone) {
		t.Fatalf("expected %v, got %v", ErrNamespacePreorderGone, err)
	}

	reveal := testRevealOp("test", salt, "payer", "operator")
	if err := reveal.Apply(ctx(2)); err != nil {
		t.Fatal(err)
	}
	// the reveal consumed the preorder
	if _, has, err := GetNamespacePreorder(db, commit); has || err != nil {
		t.Fatalf("unexpected has %v, err %v", has, err)
	}
	ns, has, err := GetNamespace(db, "test")
	if err != nil || !has {
		t.Fatalf("unexpected has %v, err %v", has, err)
	}
	if ns.Ready() || ns.RevealedAt != 2 || ns.Operator != "operator" {
		t.Fatalf("unexpected namespace %+v", ns)
	}

	// ready from the wrong key
	imposter := &NamespaceReadyOp{ID: "test", Sender: "payer"}
	if err := imposter.Apply(ctx(3)); !errors.Is(err, ErrNotNamespaceOperator) {
		t.Fatalf("expected %v, got %v", ErrNotNamespaceOperator, err)
	}

	ready := &NamespaceReadyOp{ID: "test", Sender: "operator"}
	if err := ready.Apply(ctx(3)); err != nil {
		t.Fatal(err)
	}
	ns, _, err = GetNamespace(db, "test")
	if err != nil {
		t.Fatal(err)
	}
	if !ns.Ready() || ns.ReadyAt != 3 {
		t.Fatalf("unexpected namespace %+v", ns)
	}

	// a ready namespace cannot be readied again or re-revealed
	if err := ready.Apply(ctx(4)); !errors.Is(err, ErrNamespaceNotRevealed) {
		t.Fatalf("expected %v, got %v", ErrNamespaceNotRevealed, err)
	}
	if err := reveal.Apply(ctx(4)); !errors.Is(err, ErrNamespaceExists) {
		t.Fatalf("expected %v, got %v", ErrNamespaceExists, err)
	}
}

func TestNamespacePreorderExpiry(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	rules := DefaultRules()
	rules.NamespacePreorderExpiry = 10

	salt := bytes.Repeat([]byte{0x7}, SaltLen)
	commit := NamespaceCommitment("slow", salt)

	preorder := &NamespacePreorderOp{CommitHash: commit, Payer: "payer"}
	if err := preorder.Apply(&OpContext{Rules: rules, DB: db, Height: 1}); err != nil {
		t.Fatal(err)
	}

	reveal := testRevealOp("slow", salt, "payer", "operator")
	err := reveal.Apply(&OpContext{Rules: rules, DB: db, Height: 12})
	if !errors.Is(err, ErrNamespacePreorderStale) {
		t.Fatalf("expected %v, got %v", ErrNamespacePreorderStale, err)
	}

	// height 11 is the last claimable block
	if err := reveal.Apply(&OpContext{Rules: rules, DB: db, Height: 11}); err != nil {
		t.Fatal(err)
	}
}

func TestNamespacePreorderReuseAfterExpiry(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	rules := DefaultRules()
	rules.NamespacePreorderExpiry = 10

	salt := bytes.Repeat([]byte{0x7}, SaltLen)
	commit := NamespaceCommitment("slow", salt)

	first := &NamespacePreorderOp{CommitHash: commit, Payer: "payer"}
	if err := first.Apply(&OpContext{Rules: rules, DB: db, Height: 1}); err != nil {
		t.Fatal(err)
	}

	// while live the commitment is held
	second := &NamespacePreorderOp{CommitHash: commit, Payer: "payer2"}
	if err := second.Apply(&OpContext{Rules: rules, DB: db, Height: 5}); !errors.Is(err, ErrCommitmentExists) {
		t.Fatalf("expected %v, got %v", ErrCommitmentExists, err)
	}

	// once lapsed it is claimable again, by anyone
	if err := second.Apply(&OpContext{Rules: rules, DB: db, Height: 100}); err != nil {
		t.Fatalf("expired commitment must be reclaimable: %v", err)
	}
	p, has, err := GetNamespacePreorder(db, commit)
	if err != nil || !has {
		t.Fatalf("unexpected has %v, err %v", has, err)
	}
	if p.Payer != "payer2" || p.Height != 100 {
		t.Fatalf("unexpected preorder %+v", p)
	}

	// and the fresh preorder is revealable
	reveal := testRevealOp("slow", salt, "payer2", "operator")
	if err := reveal.Apply(&OpContext{Rules: rules, DB: db, Height: 101}); err != nil {
		t.Fatal(err)
	}
}

func TestNamespaceReadyWindow(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	rules := DefaultRules()
	rules.NamespaceRevealWindow = 5

	salt := bytes.Repeat([]byte{0x7}, SaltLen)
	preorder := &NamespacePreorderOp{CommitHash: NamespaceCommitment("late", salt), Payer: "payer"}
	if err := preorder.Apply(&OpContext{Rules: rules, DB: db, Height: 1}); err != nil {
		t.Fatal(err)
	}
	reveal := testRevealOp("late", salt, "payer", "operator")
	if err := reveal.Apply(&OpContext{Rules: rules, DB: db, Height: 2}); err != nil {
		t.Fatal(err)
	}

	ready := &NamespaceReadyOp{ID: "late", Sender: "operator"}
	err := ready.Apply(&OpContext{Rules: rules, DB: db, Height: 8})
	if !errors.Is(err, ErrNamespaceRevealElapsed) {
		t.Fatalf("expected %v, got %v", ErrNamespaceRevealElapsed, err)
	}
	if err := ready.Apply(&OpContext{Rules: rules, DB: db, Height: 7}); err != nil {
		t.Fatal(err)
	}
}
