package config

import (
	"os"
	"strconv"
)

// envVars maps ZONEPLAN_* environment variables to variable names.
var envVars = map[string]string{
	"ZONEPLAN_REGION":      "region",
	"ZONEPLAN_PARENT_CIDR": "parentCidr",
	"ZONEPLAN_EXTRA_BITS":  "extraBits",
	"ZONEPLAN_COUNT":       "preferredSubnetCount",
	"ZONEPLAN_PUBLIC_IP":   "mapPublicIp",
	"ZONEPLAN_VPC_REF":     "vpcRef",
	"ZONEPLAN_NAME_TAG":    "nameTag",
}

// EnvOverrides reads ZONEPLAN_* environment variables into an override
// layer. Unset variables are absent from the result; malformed numeric or
// boolean values surface as TypeMismatchError.
func EnvOverrides() (Values, error) {
	overrides := Values{}

	for env, name := range envVars {
		raw, ok := os.LookupEnv(env)
		if !ok {
			continue
		}

		switch schema[name] {
		case kindUint, kindNullableUint:
			u, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				return nil, &TypeMismatchError{Name: name, Want: schema[name].String(), Got: raw}
			}
			overrides[name] = uint(u)
		case kindBool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, &TypeMismatchError{Name: name, Want: schema[name].String(), Got: raw}
			}
			overrides[name] = b
		default:
			overrides[name] = raw
		}
	}

	return overrides, nil
}
