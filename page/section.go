package page

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned for a section name that is not part of the page.
var ErrUnknownSection = errors.New("page: unknown section")

// SectionKind names one of the page's fixed sections.
type SectionKind string

const (
	Hero      SectionKind = "hero"
	Story     SectionKind = "story"
	Events    SectionKind = "events"
	DressCode SectionKind = "dresscode"
	Gallery   SectionKind = "gallery"
	Footer    SectionKind = "footer"
)

// Order is the fixed top-to-bottom order of the sections.
var Order = []SectionKind{Hero, Story, Events, DressCode, Gallery, Footer}

var sectionAliases = map[string]SectionKind{
	"narrative":     Story,
	"our-story":     Story,
	"event-details": Events,
	"event":         Events,
	"dress-code":    DressCode,
}

// ParseSectionKind maps a section name, or one of its aliases, to a
// SectionKind. Matching ignores case and surrounding space.
func ParseSectionKind(s string) (SectionKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Order {
		if string(k) == name {
			return k, nil
		}
	}
	if k, ok := sectionAliases[name]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Revealed reports whether the section's blocks are revealed on scroll. The
// hero and the footer are always shown as-is.
func (k SectionKind) Revealed() bool {
	return k != Hero && k != Footer
}

// Toggles switches sections on or off by kind. A kind that is absent is on.
type Toggles map[SectionKind]bool

// Enabled reports whether k should be composed.
func (t Toggles) Enabled(k SectionKind) bool {
	on, ok := t[k]
	return !ok || on
}

// ParseToggles converts a name-keyed on/off list, as found in config files,
// into Toggles keyed by canonical kind. Aliases are accepted. When a kind is
// named more than once, off wins.
func ParseToggles(m map[string]bool) (Toggles, error) {
	t := make(Toggles, len(m))
	for name, on := range m {
		k, err := ParseSectionKind(name)
		if err != nil {
			return nil, err
		}
		if prev, ok := t[k]; ok {
			on = on && prev
		}
		t[k] = on
	}
	return t, nil
}

// canonical rekeys t by canonical kind, resolving aliases.
func (t Toggles) canonical() (Toggles, error) {
	m := make(map[string]bool, len(t))
	for k, on := range t {
		m[string(k)] = on
	}
	return ParseToggles(m)
}
