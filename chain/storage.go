// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
)

// 0x0/ (namespaces, by identifier)
// 0x1/ (namespace preorders, by commitment hash)
// 0x2/ (names, by fully-qualified name)
// 0x3/ (name preorders, by commitment hash)
// 0x4/ (block records, by big-endian height)

const (
	namespacePrefix         = 0x0
	namespacePreorderPrefix = 0x1
	namePrefix              = 0x2
	namePreorderPrefix      = 0x3
	blockPrefix             = 0x4

	keyDelimiter byte = '/'
)

var chainTipKey = []byte("chain_tip")

func NamespaceKey(id string) []byte {
	return append([]byte{namespacePrefix, keyDelimiter}, id...)
}

func NamespacePreorderKey(hash string) []byte {
	return append([]byte{namespacePreorderPrefix, keyDelimiter}, hash...)
}

func NameKey(name string) []byte {
	return append([]byte{namePrefix, keyDelimiter}, name...)
}

func NamePreorderKey(hash string) []byte {
	return append([]byte{namePreorderPrefix, keyDelimiter}, hash...)
}

func BlockKey(height uint64) []byte {
	k := make([]byte, 2+8)
	k[0] = blockPrefix
	k[1] = keyDelimiter
	binary.BigEndian.PutUint64(k[2:], height)
	return k
}

func getRecord(db database.KeyValueReader, k []byte, v interface{}) (bool, error) {
	has, err := db.Has(k)
	if err != nil || !has {
		return false, err
	}
	src, err := db.Get(k)
	if err != nil {
		return false, err
	}
	if _, err := Unmarshal(src, v); err != nil {
		return false, err
	}
	return true, nil
}

func putRecord(db database.KeyValueWriter, k []byte, v interface{}) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	return db.Put(k, b)
}

func GetNamespace(db database.KeyValueReader, id string) (*Namespace, bool, error) {
	ns := new(Namespace)
	has, err := getRecord(db, NamespaceKey(id), ns)
	if !has || err != nil {
		return nil, false, err
	}
	return ns, true, nil
}

func PutNamespace(db database.KeyValueWriter, ns *Namespace) error {
	return putRecord(db, NamespaceKey(ns.ID), ns)
}

func GetNamespacePreorder(db database.KeyValueReader, hash string) (*NamespacePreorder, bool, error) {
	p := new(NamespacePreorder)
	has, err := getRecord(db, NamespacePreorderKey(hash), p)
	if !has || err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func PutNamespacePreorder(db database.KeyValueWriter, p *NamespacePreorder) error {
	return putRecord(db, NamespacePreorderKey(p.Hash), p)
}

func DeleteNamespacePreorder(db database.KeyValueWriter, hash string) error {
	return db.Delete(NamespacePreorderKey(hash))
}

func GetName(db database.KeyValueReader, name string) (*Name, bool, error) {
	n := new(Name)
	has, err := getRecord(db, NameKey(name), n)
	if !has || err != nil {
		return nil, false, err
	}
	return n, true, nil
}

func PutName(db database.KeyValueWriter, n *Name) error {
	return putRecord(db, NameKey(n.Name), n)
}

func GetNamePreorder(db database.KeyValueReader, hash string) (*NamePreorder, bool, error) {
	p := new(NamePreorder)
	has, err := getRecord(db, NamePreorderKey(hash), p)
	if !has || err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func PutNamePreorder(db database.KeyValueWriter, p *NamePreorder) error {
	return putRecord(db, NamePreorderKey(p.Hash), p)
}

func DeleteNamePreorder(db database.KeyValueWriter, hash string) error {
	return db.Delete(NamePreorderKey(hash))
}

func GetBlockRecord(db database.KeyValueReader, height uint64) (*BlockRecord, bool, error) {
	r := new(BlockRecord)
	has, err := getRecord(db, BlockKey(height), r)
	if !has || err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func PutBlockRecord(db database.KeyValueWriter, r *BlockRecord) error {
	return putRecord(db, BlockKey(r.Height), r)
}

func GetChainTip(db database.KeyValueReader) (*ChainTip, bool, error) {
	t := new(ChainTip)
	has, err := getRecord(db, chainTipKey, t)
	if !has || err != nil {
		return nil, false, err
	}
	return t, true, nil
}

func PutChainTip(db database.KeyValueWriter, t *ChainTip) error {
	return putRecord(db, chainTipKey, t)
}

// HasConsensusHash reports whether hash was produced by this chain at any of
// the rules.ConsensusHashWindow blocks before height. Older hashes are
// stale anchors and must not authorize updates.
func HasConsensusHash(db database.KeyValueReader, rules *Rules, height uint64, hash string) (bool, error) {
	if height == 0 {
		return false, nil
	}
	low := uint64(1)
	if rules.ConsensusHashWindow < height {
		low = height - rules.ConsensusHashWindow
	}
	for h := height - 1; h >= low; h-- {
		r, has, err := GetBlockRecord(db, h)
		if err != nil {
			return false, err
		}
		if has && r.ConsensusHash == hash {
			return true, nil
		}
	}
	return false, nil
}

// GetNamesByOwner scans the name bucket for records currently owned by addr.
func GetNamesByOwner(db database.Database, addr string) ([]*Name, error) {
	it := db.NewIteratorWithPrefix([]byte{namePrefix, keyDelimiter})
	defer it.Release()

	names := []*Name{}
	for it.Next() {
		n := new(Name)
		if _, err := Unmarshal(it.Value(), n); err != nil {
			return nil, err
		}
		if n.Owner == addr {
			names = append(names, n)
		}
	}
	return names, it.Error()
}
