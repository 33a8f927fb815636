package main

import (
	"os"
	"path/filepath"
	"testing"

	"flint/internal/source"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flint.toml")
	content := `
[diagnostics]
include_dirs = ["lib", "vendor/include"]
color = "off"
prog = "flintc"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Diagnostics.IncludeDirs) != 2 || cfg.Diagnostics.IncludeDirs[0] != "lib" {
		t.Errorf("include_dirs = %v", cfg.Diagnostics.IncludeDirs)
	}
	if cfg.Diagnostics.Color != "off" || cfg.Diagnostics.Prog != "flintc" {
		t.Errorf("color/prog = %q/%q", cfg.Diagnostics.Color, cfg.Diagnostics.Prog)
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatal(err)
		}
	}()

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default flint.toml must not error, got %v", err)
	}
	if len(cfg.Diagnostics.IncludeDirs) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestParseOffsetPairs(t *testing.T) {
	reg := source.NewRegistry()
	buf := reg.Get(reg.AddBuffer("t.fl", []byte("0123456789"), source.NoLoc))

	start, end, err := parseOffsetPair(buf, "2-6")
	if err != nil || start != 2 || end != 6 {
		t.Errorf("parseOffsetPair(2-6) = (%d, %d, %v)", start, end, err)
	}
	for _, bad := range []string{"6-2", "x-3", "1-99", "nodash", "-1-2"} {
		if _, _, err := parseOffsetPair(buf, bad); err == nil {
			t.Errorf("parseOffsetPair(%q) succeeded, want error", bad)
		}
	}

	fixits, err := parseFixIts(buf, []string{"3-5=replacement"})
	if err != nil || len(fixits) != 1 || fixits[0].Text != "replacement" {
		t.Errorf("parseFixIts = (%v, %v)", fixits, err)
	}
	if _, err := parseFixIts(buf, []string{"3-5"}); err == nil {
		t.Error("fix spec without '=' must fail")
	}
}
