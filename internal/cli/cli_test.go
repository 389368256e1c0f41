package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkeech/tagmap/internal/config"
	"github.com/dkeech/tagmap/internal/selector"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagBaseBranch = ""
	flagMappingsFile = ""
	flagVerbose = false
	flagNoBaseline = false
}

func TestBuildOverrides_NoFlags(t *testing.T) {
	resetFlags()
	m := buildOverrides()
	if len(m) != 0 {
		t.Errorf("buildOverrides() with no flags = %v, want empty map", m)
	}
}

func TestBuildOverrides_AllFlags(t *testing.T) {
	resetFlags()
	flagBaseBranch = "origin/develop"
	flagMappingsFile = "custom.json"
	flagVerbose = true
	flagNoBaseline = true

	m := buildOverrides()

	expected := map[string]string{
		"baseBranch":   "origin/develop",
		"mappingsFile": "custom.json",
		"verbose":      "true",
		"addBaseline":  "false",
	}
	if len(m) != len(expected) {
		t.Fatalf("buildOverrides() returned %d entries, want %d", len(m), len(expected))
	}
	for k, v := range expected {
		if m[k] != v {
			t.Errorf("buildOverrides()[%q] = %q, want %q", k, m[k], v)
		}
	}
}

func TestBuildOverrides_NoBaselineOnly(t *testing.T) {
	resetFlags()
	flagNoBaseline = true

	m := buildOverrides()
	if len(m) != 1 || m["addBaseline"] != "false" {
		t.Errorf("buildOverrides() = %v, want only addBaseline=false", m)
	}
}

func TestFormatTags(t *testing.T) {
	tests := []struct {
		name string
		tags selector.TagSet
		want string
	}{
		{"empty", selector.TagSet{}, "(none)"},
		{"single", selector.TagSet{"@auth": {}}, "@auth"},
		{"sorted", selector.TagSet{"@ui": {}, "@api": {}, "@auth": {}}, "@api @auth @ui"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTags(tt.tags); got != tt.want {
				t.Errorf("formatTags = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()
	if err := scaffold(dir); err != nil {
		t.Fatalf("scaffold error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "test-mappings.json"))
	if err != nil {
		t.Fatalf("mapping sample not written: %v", err)
	}
	if !strings.Contains(string(data), "@auth") {
		t.Errorf("mapping sample missing @auth rule: %s", data)
	}

	data, err = os.ReadFile(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("config sample not written: %v", err)
	}
	if !strings.Contains(string(data), "baseBranch") {
		t.Errorf("config sample missing baseBranch: %s", data)
	}
}

func TestScaffold_NoOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test-mappings.json")
	if err := os.WriteFile(path, []byte(`{"@mine": ["src/"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := scaffold(dir); err != nil {
		t.Fatalf("scaffold error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "@mine") {
		t.Error("scaffold overwrote an existing mapping file")
	}
}

func TestResolveFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.json")
	content := `{"@auth": ["src/auth/"], "@api": ["src/api/"], "@ui": ["src/components/"]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.MappingsFile = path

	filter, err := resolveFilter([]string{"src/auth/login.ts", "src/api/users.ts"}, cfg)
	if err != nil {
		t.Fatalf("resolveFilter error: %v", err)
	}
	want := "(@api|@auth|@smoke)"
	if filter != want {
		t.Errorf("resolveFilter = %q, want %q", filter, want)
	}
}

func TestResolveFilter_MissingMapping(t *testing.T) {
	cfg := config.Default()
	cfg.MappingsFile = filepath.Join(t.TempDir(), "nope.json")

	_, err := resolveFilter([]string{"src/auth/login.ts"}, cfg)
	if err == nil {
		t.Fatal("expected error for missing mapping file; the run path converts it to a match-all filter")
	}
}

func TestResolveFilter_ObservesMappingEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.json")
	if err := os.WriteFile(path, []byte(`{"@auth": ["src/auth/"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.MappingsFile = path
	changed := []string{"src/auth/login.ts"}

	first, err := resolveFilter(changed, cfg)
	if err != nil {
		t.Fatalf("resolveFilter error: %v", err)
	}
	if first != "(@auth|@smoke)" {
		t.Errorf("first filter = %q, want %q", first, "(@auth|@smoke)")
	}

	// The shared loader must not serve a stale table on the next call.
	if err := os.WriteFile(path, []byte(`{"@login": ["src/auth/"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := resolveFilter(changed, cfg)
	if err != nil {
		t.Fatalf("resolveFilter error: %v", err)
	}
	if second != "(@login|@smoke)" {
		t.Errorf("second filter = %q, want %q", second, "(@login|@smoke)")
	}
}

func TestChooseFilter_EmptyChangedSkipsMapping(t *testing.T) {
	// A missing mapping file would fault to match-all; getting the baseline
	// tag back proves the mapping source is never consulted when nothing
	// changed.
	cfg := config.Default()
	cfg.MappingsFile = filepath.Join(t.TempDir(), "nope.json")

	if got := chooseFilter(cfg, nil); got != selector.BaselineTag {
		t.Errorf("chooseFilter(empty changed set) = %q, want %q", got, selector.BaselineTag)
	}
}

func TestChooseFilter_ComposesFromMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.json")
	if err := os.WriteFile(path, []byte(`{"@auth": ["src/auth/"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.MappingsFile = path

	got := chooseFilter(cfg, []string{"src/auth/login.ts"})
	if got != "(@auth|@smoke)" {
		t.Errorf("chooseFilter = %q, want %q", got, "(@auth|@smoke)")
	}
}

func TestChooseFilter_MappingFaultRunsAll(t *testing.T) {
	cfg := config.Default()
	cfg.MappingsFile = filepath.Join(t.TempDir(), "nope.json")

	if got := chooseFilter(cfg, []string{"src/auth/login.ts"}); got != selector.MatchAll {
		t.Errorf("chooseFilter with broken mapping = %q, want %q", got, selector.MatchAll)
	}
}

func TestBypassed(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"0", false},
		{"", false},
		{"true", false},
	}
	for _, tt := range tests {
		t.Setenv(EnvDisable, tt.value)
		if got := bypassed(); got != tt.want {
			t.Errorf("bypassed() with %s=%q = %v, want %v", EnvDisable, tt.value, got, tt.want)
		}
	}
}
