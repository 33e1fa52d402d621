// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "testing"

func TestBoundTo(t *testing.T) {
	a := "community-a"

	tests := []struct {
		name      string
		user      *User
		principal *Principal
		community string
		expected  bool
	}{
		{name: "nil", community: a, expected: false},
		{name: "unbound", user: &User{}, principal: &Principal{}, community: a, expected: false},
		{name: "bound to same", user: &User{CommunityID: &a}, principal: &Principal{CommunityID: &a}, community: a, expected: true},
		{name: "bound to other", user: &User{CommunityID: &a}, principal: &Principal{CommunityID: &a}, community: "community-b", expected: false},
		{name: "empty community id", user: &User{CommunityID: &a}, principal: &Principal{CommunityID: &a}, community: "", expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.user.BoundTo(test.community); got != test.expected {
				t.Errorf("user: expected %v, got %v", test.expected, got)
			}

			if got := test.principal.BoundTo(test.community); got != test.expected {
				t.Errorf("principal: expected %v, got %v", test.expected, got)
			}
		})
	}
}
