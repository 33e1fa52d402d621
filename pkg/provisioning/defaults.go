// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"crypto/rand"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/canonical/community-service/internal/types"
)

const (
	DefaultLocale   = "en"
	DefaultCurrency = "USD"
	DefaultCountry  = "US"

	defaultTheme          = "light"
	defaultPrimaryColor   = "#E95420"
	defaultSecondaryColor = "#772953"
	defaultFontFamily     = "Ubuntu"

	slugSuffixLength = 6
	shortIDLength    = 8
	maxSlugBaseLen   = 48

	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Defaults holds the values every new community starts from. They are applied
// explicitly before the first insert.
type Defaults struct {
	Locale   string
	Currency string
	Country  string
}

// Validate checks the defaults are a BCP 47 tag, an ISO 4217 code and an ISO 3166 region.
func (d Defaults) Validate() error {
	if _, err := language.Parse(d.Locale); err != nil {
		return fmt.Errorf("invalid default locale %q: %w", d.Locale, err)
	}

	if _, err := currency.ParseISO(d.Currency); err != nil {
		return fmt.Errorf("invalid default currency %q: %w", d.Currency, err)
	}

	region, err := language.ParseRegion(d.Country)
	if err != nil || !region.IsCountry() {
		return fmt.Errorf("invalid default country %q", d.Country)
	}

	return nil
}

// NewDefaults falls back to the package defaults for empty values.
func NewDefaults(locale, currency, country string) Defaults {
	d := Defaults{Locale: DefaultLocale, Currency: DefaultCurrency, Country: DefaultCountry}

	if locale != "" {
		d.Locale = locale
	}
	if currency != "" {
		d.Currency = strings.ToUpper(currency)
	}
	if country != "" {
		d.Country = strings.ToUpper(country)
	}

	return d
}

type pageSpec struct {
	Title    string
	EndPoint string
}

var defaultPages = []pageSpec{
	{Title: "Home", EndPoint: "/"},
	{Title: "Services", EndPoint: "/services"},
	{Title: "About", EndPoint: "/about"},
	{Title: "Portfolio", EndPoint: "/portfolio"},
	{Title: "Team", EndPoint: "/team"},
	{Title: "Contact", EndPoint: "/contact"},
}

func landingSections(name string) []types.Section {
	return []types.Section{
		{Type: "hero", Title: fmt.Sprintf("Welcome to %s", name), Position: 0, Props: map[string]string{"cta_label": "Get in touch", "cta_url": "/contact"}},
		{Type: "features", Title: "What we do", Position: 1},
		{Type: "testimonials", Title: "What people say", Position: 2},
		{Type: "gallery", Title: "Our work", Position: 3},
		{Type: "contact", Title: "Contact us", Position: 4},
	}
}

func navLinks() []types.Link {
	links := make([]types.Link, 0, len(defaultPages))
	for _, p := range defaultPages {
		links = append(links, types.Link{Label: p.Title, URL: p.EndPoint})
	}

	return links
}

func footerSections() []types.LinkSection {
	return []types.LinkSection{
		{
			Title: "Company",
			Links: []types.Link{{Label: "About", URL: "/about"}, {Label: "Team", URL: "/team"}},
		},
		{
			Title: "Work",
			Links: []types.Link{{Label: "Services", URL: "/services"}, {Label: "Portfolio", URL: "/portfolio"}},
		},
		{
			Title: "Support",
			Links: []types.Link{{Label: "Contact", URL: "/contact"}},
		},
	}
}

func translationEntries(communityID, locale, name string) []*types.Translation {
	entries := map[string]string{
		"site.title":       name,
		"nav.home":         "Home",
		"nav.services":     "Services",
		"nav.about":        "About",
		"nav.portfolio":    "Portfolio",
		"nav.team":         "Team",
		"nav.contact":      "Contact",
		"contact.submit":   "Send",
		"contact.success":  "Thanks, we will get back to you soon.",
		"footer.copyright": fmt.Sprintf("© %s", name),
	}

	translations := make([]*types.Translation, 0, len(entries))
	for k, v := range entries {
		translations = append(translations, &types.Translation{
			CommunityID: communityID,
			Locale:      locale,
			Key:         k,
			Value:       v,
		})
	}

	return translations
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugBase turns a display name into lower-case ASCII words joined by dashes.
func slugBase(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}

	base := strings.TrimRight(b.String(), "-")
	if len(base) > maxSlugBaseLen {
		base = strings.TrimRight(base[:maxSlugBaseLen], "-")
	}

	if base == "" {
		return "community"
	}

	return base
}

func randomString(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i := range buf {
		buf[i] = idAlphabet[int(buf[i])%len(idAlphabet)]
	}

	return string(buf), nil
}

// newSlug appends a random suffix so that equal display names get distinct slugs.
func newSlug(name string) (string, error) {
	suffix, err := randomString(slugSuffixLength)
	if err != nil {
		return "", err
	}

	return slugBase(name) + "-" + suffix, nil
}

func newShortID() (string, error) {
	return randomString(shortIDLength)
}
