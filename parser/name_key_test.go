// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckNamespace(t *testing.T) {
	t.Parallel()

	tt := []struct {
		namespace string
		err       error
	}{
		{
			namespace: "test",
			err:       nil,
		},
		{
			namespace: "id-tld_0",
			err:       nil,
		},
		{
			namespace: "",
			err:       ErrInvalidNamespace,
		},
		{
			namespace: "Test",
			err:       ErrInvalidNamespace,
		},
		{
			namespace: "te.st",
			err:       ErrInvalidNamespace,
		},
		{
			namespace: strings.Repeat("a", MaxNamespaceSize+1),
			err:       ErrInvalidNamespace,
		},
	}
	for i, tv := range tt {
		if err := CheckNamespace(tv.namespace); !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
	}
}

func TestSplitName(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name      string
		label     string
		namespace string
		err       error
	}{
		{
			name:      "foo.test",
			label:     "foo",
			namespace: "test",
			err:       nil,
		},
		{
			name:      "a+b_c-d.id",
			label:     "a+b_c-d",
			namespace: "id",
			err:       nil,
		},
		{
			name: "foo",
			err:  ErrInvalidName,
		},
		{
			name: "foo.bar.test",
			err:  ErrInvalidName,
		},
		{
			name: ".test",
			err:  ErrInvalidLabel,
		},
		{
			name: "foo.",
			err:  ErrInvalidNamespace,
		},
		{
			name: "Foo.test",
			err:  ErrInvalidLabel,
		},
		{
			name: strings.Repeat("a", MaxNameSize) + ".test",
			err:  ErrNameTooBig,
		},
	}
	for i, tv := range tt {
		label, namespace, err := SplitName(tv.name)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if label != tv.label {
			t.Fatalf("#%d: label expected %q, got %q", i, tv.label, label)
		}
		if namespace != tv.namespace {
			t.Fatalf("#%d: namespace expected %q, got %q", i, tv.namespace, namespace)
		}
	}
}
