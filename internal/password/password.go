// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package password

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var _ HasherInterface = (*Hasher)(nil)

type Hasher struct {
	cost int

	// dummy is compared against when the account does not exist so that a
	// missing user costs the same as a wrong password
	dummy     []byte
	dummyOnce sync.Once
}

// Hash returns the bcrypt hash of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plain matches hash.
func (h *Hasher) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// VerifyDummy burns one comparison and always reports false.
func (h *Hasher) VerifyDummy(plain string) bool {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("community-service"), h.cost)
	})

	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
	return false
}

// NewHasher returns a Hasher using cost, falling back to bcrypt.DefaultCost when out of range.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// IsTooLong reports whether plain exceeds what bcrypt accepts.
func IsTooLong(err error) bool {
	return errors.Is(err, bcrypt.ErrPasswordTooLong)
}
