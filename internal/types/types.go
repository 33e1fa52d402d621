// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Community struct {
	ID        string    `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Name      string    `db:"name" json:"name"`
	Domain    string    `db:"domain" json:"domain"`
	Enabled   bool      `db:"enabled" json:"enabled"`
	Locale    string    `db:"locale" json:"locale"`
	Currency  string    `db:"currency" json:"currency"`
	Country   string    `db:"country" json:"country"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// User is a principal. CommunityID is nil for platform-level users.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"first_name,omitempty"`
	LastName     string    `db:"last_name" json:"last_name,omitempty"`
	CommunityID  *string   `db:"community_id" json:"community_id"`
	ShortID      *string   `db:"short_id" json:"short_id,omitempty"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// BoundTo reports whether the user is bound to the given community.
func (u *User) BoundTo(communityID string) bool {
	return u != nil && u.CommunityID != nil && *u.CommunityID == communityID
}

type Configuration struct {
	ID                string    `db:"id" json:"id"`
	CommunityID       string    `db:"community_id" json:"community_id"`
	Theme             string    `db:"theme" json:"theme"`
	PrimaryColor      string    `db:"primary_color" json:"primary_color"`
	SecondaryColor    string    `db:"secondary_color" json:"secondary_color"`
	FontFamily        string    `db:"font_family" json:"font_family"`
	LogoURL           string    `db:"logo_url" json:"logo_url"`
	MarketplaceActive bool      `db:"marketplace_active" json:"marketplace_active"`
	AllowRegistration bool      `db:"allow_registration" json:"allow_registration"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type Section struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Position int               `json:"position"`
	Props    map[string]string `json:"props,omitempty"`
}

type LandingPage struct {
	ID          string    `db:"id" json:"id"`
	CommunityID string    `db:"community_id" json:"community_id"`
	Title       string    `db:"title" json:"title"`
	Sections    []Section `db:"sections" json:"sections"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type NavBar struct {
	ID          string    `db:"id" json:"id"`
	CommunityID string    `db:"community_id" json:"community_id"`
	Links       []Link    `db:"links" json:"links"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type LinkSection struct {
	Title string `json:"title"`
	Links []Link `json:"links"`
}

type Footer struct {
	ID          string        `db:"id" json:"id"`
	CommunityID string        `db:"community_id" json:"community_id"`
	Sections    []LinkSection `db:"sections" json:"sections"`
	Copyright   string        `db:"copyright" json:"copyright"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

type Page struct {
	ID          string    `db:"id" json:"id"`
	CommunityID string    `db:"community_id" json:"community_id"`
	Title       string    `db:"title" json:"title"`
	EndPoint    string    `db:"end_point" json:"end_point"`
	Position    int       `db:"position" json:"position"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ContactSubmission struct {
	ID          string    `db:"id" json:"id"`
	CommunityID string    `db:"community_id" json:"community_id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Message     string    `db:"message" json:"message"`
	Sample      bool      `db:"sample" json:"sample"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Translation struct {
	ID          string `db:"id" json:"id"`
	CommunityID string `db:"community_id" json:"community_id"`
	Locale      string `db:"locale" json:"locale"`
	Key         string `db:"key" json:"key"`
	Value       string `db:"value" json:"value"`
}

// Bundle is the public view of a community's one-to-one children.
type Bundle struct {
	Community   *Community   `json:"community"`
	LandingPage *LandingPage `json:"landing_page"`
	NavBar      *NavBar      `json:"nav_bar"`
	Footer      *Footer      `json:"footer"`
}

// Principal is the caller identity carried by a validated session token.
type Principal struct {
	ID          string    `json:"id"`
	CommunityID *string   `json:"community_id"`
	TokenID     string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// BoundTo reports whether the principal is bound to the given community.
func (p *Principal) BoundTo(communityID string) bool {
	return p != nil && p.CommunityID != nil && *p.CommunityID == communityID
}
