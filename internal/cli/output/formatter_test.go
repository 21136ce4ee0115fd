package output

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter")
	}
	if _, ok := NewFormatter(FormatYAML).(*YAMLFormatter); !ok {
		t.Error("expected YAMLFormatter")
	}
	if _, ok := NewFormatter(FormatTable).(*TableFormatter); !ok {
		t.Error("expected TableFormatter")
	}
	if _, ok := NewFormatter("unknown").(*TableFormatter); !ok {
		t.Error("unknown format should default to table")
	}
}

type sample struct {
	Name    string  `json:"name" yaml:"name"`
	Output  *string `json:"output,omitempty" yaml:"output,omitempty"`
	Enabled *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

func TestJSONFormatter_Format(t *testing.T) {
	out := "json"
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sample{Name: "p", Output: &out}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, `"name": "p"`) || !strings.Contains(got, `"output": "json"`) {
		t.Errorf("Format() = %s", got)
	}
	if strings.Contains(got, "enabled") {
		t.Errorf("unset field should be omitted: %s", got)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	enabled := false
	var buf bytes.Buffer
	if err := (&YAMLFormatter{}).Format(&buf, sample{Name: "p", Enabled: &enabled}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "name: p\nenabled: false\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

type twoTables struct{}

func (twoTables) Tables() []*Table {
	return []*Table{
		{Title: "SETTINGS", Headers: []string{"FIELD", "VALUE"}, Rows: [][]string{{"version", "2"}}},
		{Headers: []string{"NAME"}, Rows: [][]string{{"p1"}, {"p2"}}},
	}
}

func TestTableFormatter_Tabular(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, twoTables{}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "SETTINGS\nFIELD    VALUE\nversion  2\n\nNAME\np1\np2\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestTableFormatter_NoHeaders(t *testing.T) {
	tbl := &Table{Title: "T", Headers: []string{"A", "B"}, Rows: [][]string{{"1", ""}}}

	var buf bytes.Buffer
	if err := (&TableFormatter{NoHeaders: true}).Format(&buf, tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.String() != "1  -\n" {
		t.Errorf("Format() = %q, want %q", buf.String(), "1  -\n")
	}
}

func TestTableFormatter_TableValueAndNil(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, nil); err != nil || buf.Len() != 0 {
		t.Errorf("Format(nil) = %q, %v", buf.String(), err)
	}

	tbl := Table{Headers: []string{"K"}}
	tbl.AddRow("v")
	if err := (&TableFormatter{}).Format(&buf, tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.String() != "K\nv\n" {
		t.Errorf("Format() = %q", buf.String())
	}
}

func TestTableFormatter_FallbackToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"a": 1`) {
		t.Errorf("Format() = %q, want JSON fallback", buf.String())
	}
}

func TestTable_SetHeadersAndRender(t *testing.T) {
	var tbl Table
	tbl.SetHeaders("NAME", "AUTH_TYPE")
	tbl.AddRow("profile_1", "user_account")
	tbl.AddRow("p", "")

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "NAME       AUTH_TYPE\nprofile_1  user_account\np          -\n"
	if buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}
}

func TestCell(t *testing.T) {
	if got := Cell[bool](nil, strconv.FormatBool); got != Unset {
		t.Errorf("Cell(nil) = %q, want %q", got, Unset)
	}
	v := false
	if got := Cell(&v, strconv.FormatBool); got != "false" {
		t.Errorf("Cell(&false) = %q, want false", got)
	}
}
