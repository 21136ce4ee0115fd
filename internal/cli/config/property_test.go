package config

import (
	"errors"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pelletier/go-toml/v2"
)

func marshalDoc(t *testing.T, doc map[string]any) string {
	t.Helper()
	data, err := toml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	return string(data)
}

// Fixed settings written to a document come back unchanged and present.
func TestProperty_FixedFieldsRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("fixed fields survive decoding", prop.ForAll(
		func(version int64, image, mongosh string, telemetry, skip bool) bool {
			doc := marshalDoc(t, map[string]any{
				KeyVersion:              version,
				KeyLocalDeploymentImage: image,
				KeyMongoshPath:          mongosh,
				KeyTelemetryEnabled:     telemetry,
				KeySkipUpdateCheck:      skip,
			})
			cfg, err := Parse(doc)
			if err != nil {
				return false
			}
			return cfg.Version == version &&
				cfg.LocalDeploymentImage != nil && *cfg.LocalDeploymentImage == image &&
				cfg.MongoshPath != nil && *cfg.MongoshPath == mongosh &&
				cfg.TelemetryEnabled != nil && *cfg.TelemetryEnabled == telemetry &&
				cfg.SkipUpdateCheck != nil && *cfg.SkipUpdateCheck == skip &&
				len(cfg.Profiles) == 0
		},
		gen.Int64(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("omitted settings stay unset", prop.ForAll(
		func(version int64, setImage, setTelemetry bool) bool {
			doc := map[string]any{KeyVersion: version}
			if setImage {
				doc[KeyLocalDeploymentImage] = ""
			}
			if setTelemetry {
				doc[KeyTelemetryEnabled] = false
			}
			cfg, err := Parse(marshalDoc(t, doc))
			if err != nil {
				return false
			}
			return (cfg.LocalDeploymentImage != nil) == setImage &&
				(cfg.TelemetryEnabled != nil) == setTelemetry &&
				cfg.MongoshPath == nil &&
				cfg.SkipUpdateCheck == nil
		},
		gen.Int64(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Every non-fixed top-level key is collected as a profile, and nothing else is.
func TestProperty_CatchAllProfiles(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genNames := gen.SliceOf(gen.RegexMatch(`[a-z][a-z0-9_]{0,11}`)).
		Map(func(names []string) []string {
			seen := make(map[string]bool)
			var out []string
			for _, n := range names {
				if n == "" || IsFixedKey(n) || seen[n] {
					continue
				}
				seen[n] = true
				out = append(out, n)
			}
			sort.Strings(out)
			return out
		})

	properties.Property("profiles are exactly the non-fixed keys", prop.ForAll(
		func(names []string, withService bool) bool {
			doc := map[string]any{
				KeyVersion:         int64(2),
				KeyMongoshPath:     "/usr/bin/mongosh",
				KeySkipUpdateCheck: true,
			}
			for i, n := range names {
				profile := map[string]any{}
				// Alternate which fields are set so profiles differ in shape.
				if i%2 == 0 {
					profile[KeyAuthType] = "api_keys"
				} else {
					profile[KeyOrgID] = n
				}
				if withService {
					profile[KeyService] = "cloud"
				}
				doc[n] = profile
			}

			cfg, err := Parse(marshalDoc(t, doc))
			if err != nil {
				return false
			}
			got := cfg.ProfileNames()
			if len(got) != len(names) {
				return false
			}
			for i := range got {
				if got[i] != names[i] {
					return false
				}
			}
			for i, n := range names {
				p := cfg.Profiles[n]
				if i%2 == 0 {
					if p.AuthType == nil || *p.AuthType != AuthTypeAPIKeys || p.OrgID != nil {
						return false
					}
				} else {
					if p.AuthType != nil || p.OrgID == nil || *p.OrgID != n {
						return false
					}
				}
				if (p.Service != nil) != withService || p.ProjectID != nil || p.Output != nil {
					return false
				}
			}
			return true
		},
		genNames,
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// auth_type decodes only for the three known tokens.
func TestProperty_AuthTypeClosed(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	genToken := gen.OneGenOf(
		gen.OneConstOf("user_account", "api_keys", "service_account"),
		gen.AlphaString(),
		gen.RegexMatch(`(user|api|service)_(account|keys|Account|KEYS)`),
	)

	properties.Property("auth_type accepts exactly the known tokens", prop.ForAll(
		func(token string) bool {
			doc := marshalDoc(t, map[string]any{
				KeyVersion: int64(2),
				"p":        map[string]any{KeyAuthType: token},
			})
			cfg, err := Parse(doc)

			want, known := ParseAuthType(token)
			if !known {
				return cfg == nil && errors.Is(err, ErrUnknownVariant)
			}
			if err != nil {
				return false
			}
			got := cfg.Profiles["p"].AuthType
			return got != nil && *got == want && got.String() == token
		},
		genToken,
	))

	properties.TestingRun(t)
}
