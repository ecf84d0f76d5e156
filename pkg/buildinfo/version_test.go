package buildinfo

import (
	"strings"
	"testing"
)

func TestStringIncludesAllFields(t *testing.T) {
	s := String()
	for _, want := range []string{Version, Commit, Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, want it to contain %q", s, want)
		}
	}
}

func TestTemplateIncludesCommitAndDate(t *testing.T) {
	tmpl := Template()
	if !strings.Contains(tmpl, "{{.Name}}") {
		t.Errorf("Template() = %q, want it to reference {{.Name}}", tmpl)
	}
	if !strings.Contains(tmpl, Commit) || !strings.Contains(tmpl, Date) {
		t.Errorf("Template() = %q, want it to contain commit and date", tmpl)
	}
}
