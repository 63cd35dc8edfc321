package input

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Valves []yamlValve `yaml:"valves"`
}

type yamlValve struct {
	Name    string   `yaml:"name"`
	Rate    uint32   `yaml:"rate"`
	Tunnels []string `yaml:"tunnels"`
}

// ParseYAML reads a `valves:` document. Unknown keys and empty names are
// syntax errors; an empty document yields an empty network.
func ParseYAML(r io.Reader) (*Network, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("input: %w: %v", ErrSyntax, err)
	}

	decls := make([]declaration, 0, len(doc.Valves))
	for i, v := range doc.Valves {
		if !nameRe.MatchString(v.Name) {
			return nil, fmt.Errorf("input: valves[%d]: %w: name %q", i, ErrSyntax, v.Name)
		}
		for _, t := range v.Tunnels {
			if !nameRe.MatchString(t) {
				return nil, fmt.Errorf("input: valves[%d]: %w: tunnel %q", i, ErrSyntax, t)
			}
		}
		decls = append(decls, declaration{name: v.Name, rate: v.Rate, tunnels: v.Tunnels})
	}

	return assemble(decls)
}
