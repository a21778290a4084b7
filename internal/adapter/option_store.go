package adapter

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

//go:embed catalogue/builtin.yaml
var builtinCatalogue []byte

// OptionStore loads option catalogues.
type OptionStore interface {
	// Load reads a catalogue from a YAML file.
	Load(ctx context.Context, path m.Path) (m.OptionSpace, error)

	// Default returns the catalogue of the builtin formatter.
	Default(ctx context.Context) (m.OptionSpace, error)
}

type optionEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Values      []any  `yaml:"values"`
}

type presetEntry struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Settings    map[string]any `yaml:"settings"`
	Pinned      []string       `yaml:"pinned"`
}

type catalogueFile struct {
	Options []optionEntry `yaml:"options"`
	Presets []presetEntry `yaml:"presets"`
}

// LocalOptionStore reads catalogues through a SourceFSAdapter.
type LocalOptionStore struct {
	fs SourceFSAdapter
}

// NewLocalOptionStore constructs a LocalOptionStore.
func NewLocalOptionStore(fsAdapter SourceFSAdapter) *LocalOptionStore {
	return &LocalOptionStore{fs: fsAdapter}
}

// Load implements OptionStore.
func (s *LocalOptionStore) Load(ctx context.Context, path m.Path) (m.OptionSpace, error) {
	if err := ctx.Err(); err != nil {
		return m.OptionSpace{}, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read option catalogue", "path", path, "error", err)
		return m.OptionSpace{}, fmt.Errorf("reading option catalogue: %w", err)
	}

	space, err := ParseCatalogue(data)
	if err != nil {
		return m.OptionSpace{}, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Loaded option catalogue", "path", path, "settings", len(space.Settings()), "presets", len(space.Presets()))

	return space, nil
}

// Default implements OptionStore.
func (s *LocalOptionStore) Default(ctx context.Context) (m.OptionSpace, error) {
	if err := ctx.Err(); err != nil {
		return m.OptionSpace{}, err
	}

	return ParseCatalogue(builtinCatalogue)
}

// ParseCatalogue decodes a YAML option catalogue. Scalar values of any type
// are normalized to their string form.
func ParseCatalogue(data []byte) (m.OptionSpace, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return m.OptionSpace{}, fmt.Errorf("parsing option catalogue: %w", err)
	}

	options := make([]m.Option, 0, len(file.Options))
	for _, o := range file.Options {
		values := make([]string, 0, len(o.Values))
		for _, v := range o.Values {
			values = append(values, scalarString(v))
		}

		options = append(options, m.Option{Name: o.Name, Description: o.Description, Values: values})
	}

	presets := make([]m.Preset, 0, len(file.Presets))
	for _, p := range file.Presets {
		settings := make(m.Configuration, len(p.Settings))
		for k, v := range p.Settings {
			settings[k] = scalarString(v)
		}

		presets = append(presets, m.Preset{
			Name:        p.Name,
			Description: p.Description,
			Settings:    settings,
			Pinned:      p.Pinned,
		})
	}

	return m.NewOptionSpace(options, presets)
}

func scalarString(v any) string {
	if v == nil {
		return ""
	}

	return fmt.Sprint(v)
}
