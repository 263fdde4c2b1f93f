// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "strings"

// Name pricing follows the revealed namespace parameters: the label length
// selects a bucket exponent, price = coeff * base^exponent, and names that
// carry no vowels or carry digits/punctuation are discounted. This is a
// pure valuation; fee collection and fee markets are upstream concerns.

const minNamePrice = 1

// NamePrice returns the registration price of a label in the namespace.
func NamePrice(ns *Namespace, label string) uint64 {
	if len(label) == 0 {
		return 0
	}
	bucket := len(label) - 1
	if bucket >= PriceBuckets {
		bucket = PriceBuckets - 1
	}
	price := satPow(ns.Base, uint64(ns.Buckets[bucket]))
	price = satMul(price, ns.Coeff)

	discount := uint64(1)
	if !strings.ContainsAny(label, "aeiouy") && ns.NoVowelDiscount > 1 {
		discount = uint64(ns.NoVowelDiscount)
	}
	if strings.ContainsAny(label, "0123456789-_+") && uint64(ns.NonalphaDiscount) > discount {
		discount = uint64(ns.NonalphaDiscount)
	}
	price /= discount

	if price < minNamePrice {
		return minNamePrice
	}
	return price
}

const maxUint64 = ^uint64(0)

func satMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > maxUint64/b {
		return maxUint64
	}
	return a * b
}

func satPow(base, exp uint64) uint64 {
	if base == 0 {
		return 0
	}
	out := uint64(1)
	for i := uint64(0); i < exp; i++ {
		out = satMul(out, base)
		if out == maxUint64 {
			return out
		}
	}
	return out
}
