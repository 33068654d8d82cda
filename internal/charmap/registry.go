package charmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned for names that do not match a preset.
var ErrUnknown = errors.New("unknown charmap")

// CustomName is reported by Name for ramps that are not presets.
const CustomName = "custom"

type preset struct {
	name string
	new  func() CharMap
}

// Presets in listing order.
var presets = []preset{
	{"chars1", func() CharMap { return NewLookup(Chars1) }},
	{"chars2", func() CharMap { return NewLookup(Chars2) }},
	{"chars3", func() CharMap { return NewLookup(Chars3) }},
	{"solid", func() CharMap { return NewLookup(Solid) }},
	{"dotted", func() CharMap { return NewLookup(Dotted) }},
	{"gradient", func() CharMap { return NewLookup(Gradient) }},
	{"blackwhite", func() CharMap { return NewLookup(BlackWhite) }},
	{"bw-dotted", func() CharMap { return NewLookup(BWDotted) }},
	{"braille", func() CharMap { return Braille{} }},
	{"mosaic", func() CharMap { return Mosaic{} }},
	{"teletext", func() CharMap { return Teletext{} }},
}

// Get returns the preset with the given name (case-insensitive).
func Get(name string) (CharMap, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if p.name == n {
			return p.new(), nil
		}
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
}

// Custom returns a Lookup over an arbitrary ramp ordered sparse to dense.
func Custom(ramp string) (CharMap, error) {
	if ramp == "" {
		return nil, errors.New("empty character ramp")
	}
	return NewLookup(ramp), nil
}

// Names lists the preset names in a stable order.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// Name returns the preset name matching cm, or CustomName.
func Name(cm CharMap) string {
	for _, p := range presets {
		if equal(p.new(), cm) {
			return p.name
		}
	}
	return CustomName
}

func equal(a, b CharMap) bool {
	la, aok := a.(Lookup)
	lb, bok := b.(Lookup)
	if aok || bok {
		return aok && bok && string(la) == string(lb)
	}
	return a == b
}
