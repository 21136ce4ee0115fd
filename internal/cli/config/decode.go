package config

import (
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes a TOML document into a Config.
//
// The five fixed keys are decoded into their typed fields. Every other
// top-level key must hold a table and becomes a Profile. On failure the
// returned error is a *DecodeError and no Config is returned.
func Parse(text string) (*Config, error) {
	return ParseBytes([]byte(text))
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(data []byte) (*Config, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, syntaxError(err)
	}
	return fromTree(tree)
}

func fromTree(tree map[string]any) (*Config, error) {
	cfg := &Config{Profiles: make(map[string]Profile)}

	raw, ok := tree[KeyVersion]
	if !ok {
		return nil, missingField(KeyVersion)
	}
	version, ok := raw.(int64)
	if !ok {
		return nil, typeMismatch(KeyVersion, "integer", raw)
	}
	cfg.Version = version

	var err error
	if cfg.LocalDeploymentImage, err = optionalString(tree, KeyLocalDeploymentImage, KeyLocalDeploymentImage); err != nil {
		return nil, err
	}
	if cfg.MongoshPath, err = optionalString(tree, KeyMongoshPath, KeyMongoshPath); err != nil {
		return nil, err
	}
	if cfg.TelemetryEnabled, err = optionalBool(tree, KeyTelemetryEnabled, KeyTelemetryEnabled); err != nil {
		return nil, err
	}
	if cfg.SkipUpdateCheck, err = optionalBool(tree, KeySkipUpdateCheck, KeySkipUpdateCheck); err != nil {
		return nil, err
	}

	// Sorted so the reported error is stable when several profiles are invalid.
	names := make([]string, 0, len(tree))
	for key := range tree {
		if !IsFixedKey(key) {
			names = append(names, key)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		profile, err := decodeProfile(name, tree[name])
		if err != nil {
			return nil, err
		}
		cfg.Profiles[name] = profile
	}

	return cfg, nil
}

func decodeProfile(name string, raw any) (Profile, error) {
	table, ok := raw.(map[string]any)
	if !ok {
		return Profile{}, typeMismatch(name, "table", raw)
	}

	var (
		p   Profile
		err error
	)
	if v, ok := table[KeyAuthType]; ok {
		token, ok := v.(string)
		if !ok {
			return Profile{}, typeMismatch(name+"."+KeyAuthType, "string", v)
		}
		at, ok := ParseAuthType(token)
		if !ok {
			return Profile{}, unknownVariant(name+"."+KeyAuthType, token, AuthTypeTokens)
		}
		p.AuthType = &at
	}
	if p.OrgID, err = optionalString(table, KeyOrgID, name+"."+KeyOrgID); err != nil {
		return Profile{}, err
	}
	if p.ProjectID, err = optionalString(table, KeyProjectID, name+"."+KeyProjectID); err != nil {
		return Profile{}, err
	}
	if p.Service, err = optionalString(table, KeyService, name+"."+KeyService); err != nil {
		return Profile{}, err
	}
	if p.Output, err = optionalString(table, KeyOutput, name+"."+KeyOutput); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func optionalString(table map[string]any, key, path string) (*string, error) {
	raw, ok := table[key]
	if !ok {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, typeMismatch(path, "string", raw)
	}
	return &s, nil
}

func optionalBool(table map[string]any, key, path string) (*bool, error) {
	raw, ok := table[key]
	if !ok {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, typeMismatch(path, "boolean", raw)
	}
	return &b, nil
}

// typeName names a decoded TOML value using TOML type names.
func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case map[string]any:
		return "table"
	case []any:
		return "array"
	case time.Time:
		return "offset datetime"
	case toml.LocalDateTime:
		return "local datetime"
	case toml.LocalDate:
		return "local date"
	case toml.LocalTime:
		return "local time"
	case nil:
		return "nothing"
	}
	return "unknown"
}
