// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consensus

import (
	"encoding/hex"
	"testing"
)

func TestInitialHash(t *testing.T) {
	t.Parallel()

	h := InitialHash()
	if len(h) != 2*HashLen {
		t.Fatalf("hash length expected %d, got %d", 2*HashLen, len(h))
	}
	if h != InitialHash() {
		t.Fatal("initial hash must be stable")
	}
	if _, err := hex.DecodeString(h); err != nil {
		t.Fatal(err)
	}
}

func TestAccumulatorDeterminism(t *testing.T) {
	t.Parallel()

	ops := [][]byte{[]byte("first"), []byte("second"), []byte("third")}

	fold := func(prev string, ops [][]byte) string {
		acc, err := NewAccumulator(prev)
		if err != nil {
			t.Fatal(err)
		}
		for _, op := range ops {
			acc.Add(op)
		}
		return acc.Hash()
	}

	a := fold(InitialHash(), ops)
	b := fold(InitialHash(), ops)
	if a != b {
		t.Fatalf("same inputs, different hashes: %q vs %q", a, b)
	}
	if len(a) != 2*HashLen {
		t.Fatalf("hash length expected %d, got %d", 2*HashLen, len(a))
	}

	// order matters
	swapped := fold(InitialHash(), [][]byte{ops[1], ops[0], ops[2]})
	if swapped == a {
		t.Fatal("reordered operations must change the hash")
	}

	// the previous hash matters
	chained := fold(a, ops)
	if chained == a || chained == b {
		t.Fatal("chaining must change the hash")
	}
	if chained != fold(a, ops) {
		t.Fatal("chained fold must be deterministic")
	}
}

func TestAccumulatorEmptyBlock(t *testing.T) {
	t.Parallel()

	acc, err := NewAccumulator(InitialHash())
	if err != nil {
		t.Fatal(err)
	}
	h := acc.Hash()
	if h == InitialHash() {
		t.Fatal("an empty block still advances the hash")
	}

	// Hash is a fold over what was added so far, not a one-shot.
	acc.Add([]byte("op"))
	if acc.Hash() == h {
		t.Fatal("adding an operation must change the hash")
	}
}

func TestNewAccumulatorRejectsBadHex(t *testing.T) {
	t.Parallel()

	if _, err := NewAccumulator("not-hex"); err == nil {
		t.Fatal("expected error")
	}
}
