package model

import (
	"fmt"
	"sort"
)

// Option describes one tunable formatter setting and the candidate values
// the search tries for it.
type Option struct {
	Name        string
	Description string
	Values      []string
}

// Preset is a named baseline configuration. Pinned settings are part of the
// preset's intent and are never mutated by the search.
type Preset struct {
	Name        string
	Description string
	Settings    Configuration
	Pinned      []string
}

// IsPinned reports whether the preset pins the given setting.
func (p Preset) IsPinned(setting string) bool {
	for _, name := range p.Pinned {
		if name == setting {
			return true
		}
	}

	return false
}

// OptionSpace is the catalogue of tunable settings plus the baseline presets.
// It is read-only once built.
type OptionSpace struct {
	options  map[string]Option
	settings []string
	presets  []Preset
}

// NewOptionSpace validates and copies the given options and presets.
// Presets keep their declaration order.
func NewOptionSpace(options []Option, presets []Preset) (OptionSpace, error) {
	space := OptionSpace{
		options:  make(map[string]Option, len(options)),
		settings: make([]string, 0, len(options)),
		presets:  make([]Preset, 0, len(presets)),
	}

	for _, opt := range options {
		if len(opt.Values) == 0 {
			return OptionSpace{}, fmt.Errorf("%w: %s", ErrEmptyDomain, opt.Name)
		}

		if _, ok := space.options[opt.Name]; ok {
			return OptionSpace{}, fmt.Errorf("%w: %s", ErrDuplicateOption, opt.Name)
		}

		opt.Values = dedupValues(opt.Values)
		space.options[opt.Name] = opt
		space.settings = append(space.settings, opt.Name)
	}

	sort.Strings(space.settings)

	seen := make(map[string]struct{}, len(presets))
	for _, preset := range presets {
		if _, ok := seen[preset.Name]; ok {
			return OptionSpace{}, fmt.Errorf("%w: %s", ErrDuplicatePreset, preset.Name)
		}

		seen[preset.Name] = struct{}{}
		preset.Settings = preset.Settings.Clone()
		preset.Pinned = append([]string(nil), preset.Pinned...)
		space.presets = append(space.presets, preset)
	}

	return space, nil
}

func dedupValues(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Settings returns every tunable setting name in lexicographic order.
func (s OptionSpace) Settings() []string {
	return append([]string(nil), s.settings...)
}

// Domain returns the candidate values of a setting in declaration order.
func (s OptionSpace) Domain(setting string) []string {
	opt, ok := s.options[setting]
	if !ok {
		return nil
	}

	return append([]string(nil), opt.Values...)
}

// Option returns the full description of a setting.
func (s OptionSpace) Option(setting string) (Option, bool) {
	opt, ok := s.options[setting]
	if !ok {
		return Option{}, false
	}

	opt.Values = append([]string(nil), opt.Values...)

	return opt, true
}

// Presets returns the baseline presets in declaration order.
func (s OptionSpace) Presets() []Preset {
	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		p.Settings = p.Settings.Clone()
		p.Pinned = append([]string(nil), p.Pinned...)
		out = append(out, p)
	}

	return out
}

// Preset looks up a preset by name.
func (s OptionSpace) Preset(name string) (Preset, error) {
	for _, p := range s.Presets() {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
}
