// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines identifier parsing for namespaces and names.
package parser

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// MaxNamespaceSize bounds a namespace identifier ("test" in "foo.test").
	MaxNamespaceSize = 19
	// MaxNameSize bounds a fully-qualified name ("foo.test"), delimiter included.
	MaxNameSize = 37

	Delimiter          = "."
	ByteDelimiter byte = '.'
)

var (
	ErrInvalidNamespace = errors.New("namespace must be ^[a-z0-9_-]{1,19}$")
	ErrInvalidLabel     = errors.New("label must be ^[a-z0-9_+-]{1,34}$")
	ErrInvalidName      = errors.New("name is not of the form label.namespace")
	ErrNameTooBig       = errors.New("fully-qualified name too big")

	namespaceReg = regexp.MustCompile("^[a-z0-9_-]{1,19}$")
	labelReg     = regexp.MustCompile("^[a-z0-9_+-]{1,34}$")
)

// CheckNamespace returns an error if the namespace identifier format is invalid.
func CheckNamespace(namespace string) error {
	if !namespaceReg.MatchString(namespace) {
		return ErrInvalidNamespace
	}
	return nil
}

// CheckLabel returns an error if the name label format is invalid.
func CheckLabel(label string) error {
	if !labelReg.MatchString(label) {
		return ErrInvalidLabel
	}
	return nil
}

// CheckName returns an error if the fully-qualified name format is invalid.
func CheckName(name string) error {
	_, _, err := SplitName(name)
	return err
}

// SplitName splits a fully-qualified name into its label and namespace.
func SplitName(name string) (label string, namespace string, err error) {
	if len(name) > MaxNameSize {
		return "", "", ErrNameTooBig
	}
	segments := strings.Split(name, Delimiter)
	if len(segments) != 2 {
		return "", "", ErrInvalidName
	}
	label = segments[0]
	if err := CheckLabel(label); err != nil {
		return "", "", err
	}
	namespace = segments[1]
	if err := CheckNamespace(namespace); err != nil {
		return "", "", err
	}
	return label, namespace, nil
}
