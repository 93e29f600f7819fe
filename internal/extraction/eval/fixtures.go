package eval

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed fixtures/*.txt fixtures/*.json
var fixtureFS embed.FS

// Fixture bundles raw OCR text with its expected extraction output.
type Fixture struct {
	Name        string
	Text        string
	GroundTruth *GroundTruth
}

var fixtureNames = []string{
	"sveston_store",
	"dublin_cafe",
	"us_electronics",
	"lahore_food",
}

// LoadFixtures loads all embedded fixture pairs (txt + json).
func LoadFixtures() ([]*Fixture, error) {
	fixtures := make([]*Fixture, 0, len(fixtureNames))
	for _, name := range fixtureNames {
		f, err := loadFixture(name)
		if err != nil {
			return nil, fmt.Errorf("load fixture %q: %w", name, err)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

func loadFixture(name string) (*Fixture, error) {
	textBytes, err := fixtureFS.ReadFile("fixtures/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	jsonBytes, err := fixtureFS.ReadFile("fixtures/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("read ground truth: %w", err)
	}

	var gt GroundTruth
	if err := json.Unmarshal(jsonBytes, &gt); err != nil {
		return nil, fmt.Errorf("parse ground truth: %w", err)
	}

	return &Fixture{
		Name:        name,
		Text:        strings.TrimSuffix(string(textBytes), "\n"),
		GroundTruth: &gt,
	}, nil
}
