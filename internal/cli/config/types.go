package config

import (
	"fmt"
	"sort"
)

// Fixed top-level keys. Any other top-level key names a profile.
const (
	KeyVersion              = "version"
	KeyLocalDeploymentImage = "local_deployment_image"
	KeyMongoshPath          = "mongosh_path"
	KeyTelemetryEnabled     = "telemetry_enabled"
	KeySkipUpdateCheck      = "skip_update_check"
)

// Profile keys.
const (
	KeyAuthType  = "auth_type"
	KeyOrgID     = "org_id"
	KeyProjectID = "project_id"
	KeyService   = "service"
	KeyOutput    = "output"
)

// FixedKeys lists the top-level keys that are never profile names.
var FixedKeys = []string{
	KeyVersion,
	KeyLocalDeploymentImage,
	KeyMongoshPath,
	KeyTelemetryEnabled,
	KeySkipUpdateCheck,
}

// IsFixedKey reports whether key is one of the fixed top-level settings.
func IsFixedKey(key string) bool {
	switch key {
	case KeyVersion, KeyLocalDeploymentImage, KeyMongoshPath, KeyTelemetryEnabled, KeySkipUpdateCheck:
		return true
	}
	return false
}

// Config is the decoded Atlas CLI configuration document.
type Config struct {
	Version              int64   `json:"version" yaml:"version"`
	LocalDeploymentImage *string `json:"local_deployment_image,omitempty" yaml:"local_deployment_image,omitempty"`
	MongoshPath          *string `json:"mongosh_path,omitempty" yaml:"mongosh_path,omitempty"`
	TelemetryEnabled     *bool   `json:"telemetry_enabled,omitempty" yaml:"telemetry_enabled,omitempty"`
	SkipUpdateCheck      *bool   `json:"skip_update_check,omitempty" yaml:"skip_update_check,omitempty"`

	// Profiles holds every top-level table keyed by its name.
	Profiles map[string]Profile `json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

// Profile is a named set of context settings.
type Profile struct {
	AuthType  *AuthType `json:"auth_type,omitempty" yaml:"auth_type,omitempty"`
	OrgID     *string   `json:"org_id,omitempty" yaml:"org_id,omitempty"`
	ProjectID *string   `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Service   *string   `json:"service,omitempty" yaml:"service,omitempty"`
	Output    *string   `json:"output,omitempty" yaml:"output,omitempty"`
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (Profile, bool) {
	p, ok := c.Profiles[name]
	return p, ok
}

// ProfileNames returns the profile names in lexical order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AuthType is the authentication mechanism of a profile.
type AuthType uint8

// Zero is not a valid AuthType, so an unset value never reads as a real one.
const (
	AuthTypeUserAccount AuthType = iota + 1
	AuthTypeAPIKeys
	AuthTypeServiceAccount
)

// AuthTypeTokens lists the accepted auth_type values in declaration order.
var AuthTypeTokens = []string{"user_account", "api_keys", "service_account"}

// ParseAuthType maps an external token to its AuthType. Matching is exact.
func ParseAuthType(token string) (AuthType, bool) {
	switch token {
	case "user_account":
		return AuthTypeUserAccount, true
	case "api_keys":
		return AuthTypeAPIKeys, true
	case "service_account":
		return AuthTypeServiceAccount, true
	}
	return 0, false
}

// String returns the external token.
func (a AuthType) String() string {
	switch a {
	case AuthTypeUserAccount:
		return "user_account"
	case AuthTypeAPIKeys:
		return "api_keys"
	case AuthTypeServiceAccount:
		return "service_account"
	}
	return fmt.Sprintf("AuthType(%d)", uint8(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a AuthType) MarshalText() ([]byte, error) {
	if a < AuthTypeUserAccount || a > AuthTypeServiceAccount {
		return nil, fmt.Errorf("invalid auth type %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AuthType) UnmarshalText(text []byte) error {
	v, ok := ParseAuthType(string(text))
	if !ok {
		return unknownVariant(KeyAuthType, string(text), AuthTypeTokens)
	}
	*a = v
	return nil
}
