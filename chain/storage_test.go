// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
)

func TestStorageKeys(t *testing.T) {
	t.Parallel()

	tt := []struct {
		key      []byte
		expected []byte
	}{
		{
			key:      NamespaceKey("test"),
			expected: append([]byte{namespacePrefix, keyDelimiter}, []byte("test")...),
		},
		{
			key:      NamespacePreorderKey("aabb"),
			expected: append([]byte{namespacePreorderPrefix, keyDelimiter}, []byte("aabb")...),
		},
		{
			key:      NameKey("foo.test"),
			expected: append([]byte{namePrefix, keyDelimiter}, []byte("foo.test")...),
		},
		{
			key:      NamePreorderKey("ccdd"),
			expected: append([]byte{namePreorderPrefix, keyDelimiter}, []byte("ccdd")...),
		},
		{
			key:      BlockKey(257),
			expected: []byte{blockPrefix, keyDelimiter, 0, 0, 0, 0, 0, 0, 1, 1},
		},
	}
	for i, tv := range tt {
		if !bytes.Equal(tv.key, tv.expected) {
			t.Fatalf("#%d: key expected %q, got %q", i, tv.expected, tv.key)
		}
	}
}

func TestRecordRoundtrip(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	if _, has, err := GetNamespace(db, "test"); has || err != nil {
		t.Fatalf("unexpected has %v, err %v", has, err)
	}

	ns := &Namespace{
		ID:       "test",
		Operator: "operator-addr",
		Lifetime: 52595,
		Coeff:    250,
		Base:     4,
		Buckets:  [PriceBuckets]byte{6, 5, 4, 3, 2, 1},

		NonalphaDiscount: 10,
		NoVowelDiscount:  10,
		RevealedAt:       2,
	}
	if err := PutNamespace(db, ns); err != nil {
		t.Fatal(err)
	}
	got, has, err := GetNamespace(db, "test")
	if err != nil || !has {
		t.Fatalf("unexpected has %v, err %v", has, err)
	}
	if got.Lifetime != 52595 || got.Buckets[1] != 5 || got.Ready() {
		t.Fatalf("namespace did not round trip: %+v", got)
	}

	n := &Name{
		Name:            "foo.test",
		Namespace:       "test",
		Owner:           "owner-addr",
		SenderScript:    PayToAddrScript("owner-addr"),
		FirstRegistered: 5,
		ExpireAt:        5 + 52595,
	}
	if err := PutName(db, n); err != nil {
		t.Fatal(err)
	}
	gotName, has, err := GetName(db, "foo.test")
	if err != nil || !has {
		t.Fatalf("unexpected has %v, err %v", has, err)
	}
	if gotName.Owner != "owner-addr" || gotName.Revoked {
		t.Fatalf("name did not round trip: %+v", gotName)
	}

	p := &NamePreorder{Hash: "aa", Payer: "payer", Height: 4}
	if err := PutNamePreorder(db, p); err != nil {
		t.Fatal(err)
	}
	if err := DeleteNamePreorder(db, "aa"); err != nil {
		t.Fatal(err)
	}
	if _, has, err := GetNamePreorder(db, "aa"); has || err != nil {
		t.Fatalf("unexpected has %v, err %v", has, err)
	}
}

func TestHasConsensusHash(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	rules := DefaultRules()
	rules.ConsensusHashWindow = 3

	for h := uint64(1); h <= 6; h++ {
		if err := PutBlockRecord(db, &BlockRecord{
			Height:        h,
			ConsensusHash: blockHashAt(h),
		}); err != nil {
			t.Fatal(err)
		}
	}

	tt := []struct {
		height uint64
		hash   string
		has    bool
	}{
		{height: 7, hash: blockHashAt(6), has: true},
		{height: 7, hash: blockHashAt(4), has: true},
		{height: 7, hash: blockHashAt(3), has: false}, // aged out
		{height: 7, hash: "ffffffffffffffffffffffffffffffff", has: false},
		{height: 1, hash: blockHashAt(1), has: false}, // nothing prior
	}
	for i, tv := range tt {
		has, err := HasConsensusHash(db, rules, tv.height, tv.hash)
		if err != nil {
			t.Fatal(err)
		}
		if has != tv.has {
			t.Fatalf("#%d: has expected %v, got %v", i, tv.has, has)
		}
	}
}

func blockHashAt(h uint64) string {
	return string(rune('a'+h)) + "0c0ffee0c0ffee0c0ffee0c0ffee000"
}

func TestGetNamesByOwner(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	for _, n := range []*Name{
		{Name: "a.test", Namespace: "test", Owner: "alice"},
		{Name: "b.test", Namespace: "test", Owner: "bob"},
		{Name: "c.test", Namespace: "test", Owner: "alice"},
	} {
		if err := PutName(db, n); err != nil {
			t.Fatal(err)
		}
	}

	names, err := GetNamesByOwner(db, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if names[0].Name != "a.test" || names[1].Name != "c.test" {
		t.Fatalf("unexpected names %q %q", names[0].Name, names[1].Name)
	}
}
