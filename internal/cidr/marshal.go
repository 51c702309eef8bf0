package cidr

import "gopkg.in/yaml.v3"

// MarshalText implements encoding.TextMarshaler so blocks render in
// a.b.c.d/n notation inside JSON documents.
func (b Block) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Block) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for gopkg.in/yaml.v3, which does
// not consult encoding.TextMarshaler.
func (b Block) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}
