package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flirt/internal/game"
)

// YAMLDeck represents the YAML structure for a deck file.
type YAMLDeck struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	Opportunities []YAMLOpportunity `yaml:"opportunities"`
}

// YAMLOpportunity represents a single deck entry in YAML format.
type YAMLOpportunity struct {
	Name   string `yaml:"name"`
	Text   string `yaml:"text"`
	Time   int    `yaml:"time"`
	Hearts int    `yaml:"hearts"`
	Cards  int    `yaml:"cards"`
}

// ParseYAML parses and validates a YAML deck.
func ParseYAML(data []byte) (Deck, error) {
	var yd YAMLDeck
	if err := yaml.Unmarshal(data, &yd); err != nil {
		return Deck{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	d := Deck{
		ID:    yd.ID,
		Name:  yd.Name,
		Specs: make([]game.Spec, len(yd.Opportunities)),
	}
	if d.Name == "" {
		d.Name = d.ID
	}
	for i, o := range yd.Opportunities {
		d.Specs[i] = game.Spec{
			Name:         o.Name,
			Text:         o.Text,
			Time:         o.Time,
			HeartsNeeded: o.Hearts,
			Cards:        o.Cards,
		}
	}

	if err := d.Validate(); err != nil {
		return Deck{}, err
	}
	return d, nil
}

// LoadFile loads a deck from a YAML file.
func LoadFile(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("reading deck %s: %w", path, err)
	}
	d, err := ParseYAML(data)
	if err != nil {
		return Deck{}, fmt.Errorf("parsing deck %s: %w", path, err)
	}
	return d, nil
}
