package fixture

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a fixture document. Unknown keys are rejected.
func ParseYAML(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty fixture")
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if fx.Root == nil {
		return nil, errors.New("fixture has no root")
	}
	return &fx, nil
}
