package file

import (
	"bytes"
	"os"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
	"gopkg.in/yaml.v3"
)

type presetsDocument struct {
	Presets []draft.Preset `yaml:"presets"`
}

// LoadPresets reads a presets YAML file from disk.
func LoadPresets(path string) ([]draft.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read presets file %s", path)
	}
	presets, err := ParsePresets(data)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse presets file %s", path)
	}
	return presets, nil
}

// ParsePresets accepts a document with a top-level "presets" list or a bare
// list. Unknown keys are rejected so typos do not silently drop trades.
func ParsePresets(data []byte) ([]draft.Preset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, crerr.New("presets file is empty")
	}

	var presets []draft.Preset
	dec := yaml.NewDecoder(bytes.NewReader(trimmed))
	dec.KnownFields(true)
	if trimmed[0] == '-' {
		if err := dec.Decode(&presets); err != nil {
			return nil, crerr.Wrap(err, "decode presets list")
		}
	} else {
		var doc presetsDocument
		if err := dec.Decode(&doc); err != nil {
			return nil, crerr.Wrap(err, "decode presets document")
		}
		presets = doc.Presets
	}

	seen := make(map[string]struct{}, len(presets))
	for i := range presets {
		p := &presets[i]
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, crerr.Newf("preset %d has no name", i)
		}
		key := strings.ToLower(p.Name)
		if _, dup := seen[key]; dup {
			return nil, crerr.Newf("duplicate preset name %q", p.Name)
		}
		seen[key] = struct{}{}

		if p.UserTeam != nil && *p.UserTeam < 0 {
			return nil, crerr.Newf("preset %q: user team must not be negative", p.Name)
		}
		for j, t := range p.Trades {
			if t.Kind != trade.KindPick && t.Kind != trade.KindRounds {
				return nil, crerr.Wrapf(trade.ErrInvalidKind, "preset %q trade %d: %q", p.Name, j, t.Kind)
			}
		}
	}

	return presets, nil
}
