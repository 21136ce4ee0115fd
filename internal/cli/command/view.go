package command

import (
	"fmt"
	"strconv"

	"github.com/yndnr/atlascfg/internal/cli/config"
	"github.com/yndnr/atlascfg/internal/cli/output"
	"github.com/yndnr/atlascfg/internal/infra/confloader"
	"github.com/yndnr/atlascfg/internal/telemetry/logger"
)

// configView renders a whole Config as a settings table followed by a
// profiles table.
type configView struct {
	cfg *config.Config
}

func (v configView) Tables() []*output.Table {
	settings := &output.Table{Title: "SETTINGS"}
	settings.SetHeaders("FIELD", "VALUE")
	settings.AddRow(config.KeyVersion, strconv.FormatInt(v.cfg.Version, 10))
	settings.AddRow(config.KeyLocalDeploymentImage, output.Cell(v.cfg.LocalDeploymentImage, text))
	settings.AddRow(config.KeyMongoshPath, output.Cell(v.cfg.MongoshPath, text))
	settings.AddRow(config.KeyTelemetryEnabled, output.Cell(v.cfg.TelemetryEnabled, strconv.FormatBool))
	settings.AddRow(config.KeySkipUpdateCheck, output.Cell(v.cfg.SkipUpdateCheck, strconv.FormatBool))

	profiles := &output.Table{Title: "PROFILES"}
	profiles.SetHeaders("NAME", "AUTH_TYPE", "ORG_ID", "PROJECT_ID", "SERVICE", "OUTPUT")
	for _, name := range v.cfg.ProfileNames() {
		p := v.cfg.Profiles[name]
		profiles.AddRow(name,
			output.Cell(p.AuthType, config.AuthType.String),
			output.Cell(p.OrgID, text),
			output.Cell(p.ProjectID, text),
			output.Cell(p.Service, text),
			output.Cell(p.Output, text),
		)
	}

	return []*output.Table{settings, profiles}
}

// profileEntry is one line of `config profiles`.
type profileEntry struct {
	Name     string           `json:"name" yaml:"name"`
	AuthType *config.AuthType `json:"auth_type,omitempty" yaml:"auth_type,omitempty"`
}

type profileList []profileEntry

func newProfileList(cfg *config.Config) profileList {
	list := make(profileList, 0, len(cfg.Profiles))
	for _, name := range cfg.ProfileNames() {
		list = append(list, profileEntry{Name: name, AuthType: cfg.Profiles[name].AuthType})
	}
	return list
}

func (l profileList) Tables() []*output.Table {
	t := &output.Table{}
	t.SetHeaders("NAME", "AUTH_TYPE")
	for _, e := range l {
		t.AddRow(e.Name, output.Cell(e.AuthType, config.AuthType.String))
	}
	return []*output.Table{t}
}

// namedProfile is the output of `config describe`.
type namedProfile struct {
	Name           string `json:"name" yaml:"name"`
	config.Profile `yaml:",inline"`
}

func (p namedProfile) Tables() []*output.Table {
	t := &output.Table{}
	t.SetHeaders("FIELD", "VALUE")
	t.AddRow("name", p.Name)
	t.AddRow(config.KeyAuthType, output.Cell(p.AuthType, config.AuthType.String))
	t.AddRow(config.KeyOrgID, output.Cell(p.OrgID, text))
	t.AddRow(config.KeyProjectID, output.Cell(p.ProjectID, text))
	t.AddRow(config.KeyService, output.Cell(p.Service, text))
	t.AddRow(config.KeyOutput, output.Cell(p.Output, text))
	return []*output.Table{t}
}

// validation is the output of `config validate`.
type validation struct {
	Path     string `json:"path" yaml:"path"`
	Valid    bool   `json:"valid" yaml:"valid"`
	Profiles int    `json:"profiles,omitempty" yaml:"profiles,omitempty"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Field    string `json:"field,omitempty" yaml:"field,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int    `json:"column,omitempty" yaml:"column,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (v validation) Tables() []*output.Table {
	t := &output.Table{}
	t.SetHeaders("FIELD", "VALUE")
	t.AddRow("path", v.Path)
	t.AddRow("valid", strconv.FormatBool(v.Valid))
	if v.Valid {
		t.AddRow("profiles", strconv.Itoa(v.Profiles))
		return []*output.Table{t}
	}
	t.AddRow("kind", v.Kind)
	t.AddRow("field", v.Field)
	if v.Line > 0 {
		t.AddRow("position", strconv.Itoa(v.Line)+":"+strconv.Itoa(v.Column))
	}
	t.AddRow("error", v.Error)
	return []*output.Table{t}
}

// keyValues is the output of `config get` without a key: every effective
// key in order, credentials redacted.
type keyValues [][2]string

func newKeyValues(l *confloader.Loader) keyValues {
	keys := l.Keys()
	kv := make(keyValues, 0, len(keys))
	for _, key := range keys {
		kv = append(kv, [2]string{key, logger.RedactValue(key, fmt.Sprint(l.Get(key)))})
	}
	return kv
}

func (kv keyValues) Tables() []*output.Table {
	t := &output.Table{}
	t.SetHeaders("KEY", "VALUE")
	for _, pair := range kv {
		t.AddRow(pair[0], pair[1])
	}
	return []*output.Table{t}
}

func text(s string) string { return s }
