package config

import (
	"github.com/imamik/zoneplan/internal/cidr"
)

// Values is one layer of variable assignments, keyed by variable name.
type Values map[string]any

// kind is the declared type of a recognized variable.
type kind int

const (
	kindString kind = iota
	kindBool
	kindUint
	kindNullableUint
	kindCIDR
)

func (k kind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindBool:
		return "bool"
	case kindUint:
		return "uint"
	case kindNullableUint:
		return "uint or null"
	case kindCIDR:
		return "CIDR"
	}
	return "unknown"
}

// schema declares every recognized variable and its type. Keys absent
// from the schema are unknown variables regardless of which layer they
// come from.
var schema = map[string]kind{
	"region":               kindString,
	"parentCidr":           kindCIDR,
	"extraBits":            kindUint,
	"preferredSubnetCount": kindNullableUint,
	"mapPublicIp":          kindBool,
	"vpcRef":               kindString,
	"nameTag":              kindString,
}

// Defaults returns the compiled-in variable layer, the lowest-priority
// source. Every recognized variable has an entry here.
func Defaults() Values {
	return Values{
		"region":               "eu-central-1",
		"parentCidr":           "10.0.0.0/16",
		"extraBits":            uint(8),
		"preferredSubnetCount": nil,
		"mapPublicIp":          false,
		"vpcRef":               "",
		"nameTag":              "zoneplan",
	}
}

// Resolve merges the three variable layers in increasing priority
// (overrides > valuesFile > defaults) into a Configuration.
//
// A key in valuesFile or overrides that the defaults do not declare fails
// with UnknownVariableError; a value whose type does not match the
// variable's declared type fails with TypeMismatchError. Resolve is pure:
// it never touches the environment or the filesystem.
func Resolve(defaults, valuesFile, overrides Values) (*Configuration, error) {
	merged := make(Values, len(schema))

	for _, layer := range []Values{defaults, valuesFile, overrides} {
		for name, value := range layer {
			k, ok := schema[name]
			if !ok {
				return nil, &UnknownVariableError{Name: name}
			}
			normalized, err := normalize(name, k, value)
			if err != nil {
				return nil, err
			}
			merged[name] = normalized
		}
	}

	// Safe assertions so a partial defaults layer yields zero values for
	// Validate to reject instead of a panic.
	cfg := &Configuration{}
	cfg.Region, _ = merged["region"].(string)
	cfg.ParentCIDR, _ = merged["parentCidr"].(cidr.Block)
	cfg.ExtraBits, _ = merged["extraBits"].(uint)
	cfg.MapPublicIP, _ = merged["mapPublicIp"].(bool)
	cfg.VPCRef, _ = merged["vpcRef"].(string)
	cfg.NameTag, _ = merged["nameTag"].(string)
	if count, ok := merged["preferredSubnetCount"].(uint); ok {
		cfg.PreferredSubnetCount = &count
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize checks a raw value against the variable's declared kind and
// converts it to the canonical representation. YAML decodes integers as
// int, so non-negative ints are accepted for uint variables.
func normalize(name string, k kind, value any) (any, error) {
	switch k {
	case kindString:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case kindBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case kindUint:
		if u, ok := toUint(value); ok {
			return u, nil
		}
	case kindNullableUint:
		if value == nil {
			return nil, nil
		}
		if u, ok := toUint(value); ok {
			return u, nil
		}
	case kindCIDR:
		switch v := value.(type) {
		case cidr.Block:
			return v, nil
		case string:
			block, err := cidr.Parse(v)
			if err != nil {
				return nil, &TypeMismatchError{Name: name, Want: k.String(), Got: v}
			}
			return block, nil
		}
	}
	return nil, &TypeMismatchError{Name: name, Want: k.String(), Got: value}
}

func toUint(value any) (uint, bool) {
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v >= 0 {
			return uint(v), true
		}
	}
	return 0, false
}
