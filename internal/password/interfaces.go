// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package password

type HasherInterface interface {
	Hash(string) (string, error)
	Verify(string, string) bool
	VerifyDummy(string) bool
}
