package config

import (
	"os"
	"path/filepath"
	"testing"

	"taskpad/internal/task"
)

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.Dir != dir {
		t.Errorf("Dir=%q, want %q", cfg.Dir, dir)
	}
	if cfg.SortKey() != task.SortByPriority {
		t.Errorf("SortKey=%q, want %q", cfg.SortKey(), task.SortByPriority)
	}
	if cfg.Settings.DateLayout != task.DateLayout {
		t.Errorf("DateLayout=%q, want %q", cfg.Settings.DateLayout, task.DateLayout)
	}
	if cfg.Settings.Listen != DefaultListen {
		t.Errorf("Listen=%q, want %q", cfg.Settings.Listen, DefaultListen)
	}
}

func TestLoad_ReadsSettings(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, `
sort: endDate
date_layout: "02 Jan 2006"
listen: ":9090"
import:
  list: Work
  priority: 4
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.SortKey() != task.SortByEndDate {
		t.Errorf("SortKey=%q, want %q", cfg.SortKey(), task.SortByEndDate)
	}
	if cfg.Settings.DateLayout != "02 Jan 2006" {
		t.Errorf("DateLayout=%q", cfg.Settings.DateLayout)
	}
	if cfg.Settings.Listen != ":9090" {
		t.Errorf("Listen=%q", cfg.Settings.Listen)
	}
	if cfg.Settings.Import.List != "Work" || cfg.Settings.Import.Priority != 4 {
		t.Errorf("Import=%+v", cfg.Settings.Import)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "listen: \":7000\"\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.Settings.DateLayout != task.DateLayout {
		t.Errorf("DateLayout=%q, want default", cfg.Settings.DateLayout)
	}
	if cfg.SortKey() != task.SortByPriority {
		t.Errorf("SortKey=%q, want default", cfg.SortKey())
	}
}

func TestLoad_InvalidSettings(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "sort: [",
		"bad sort":        "sort: title\n",
		"priority bounds": "import:\n  priority: 42\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeSettings(t, dir, content)

			if _, err := Load(dir); err == nil {
				t.Fatalf("Load() err=nil, want error")
			}
		})
	}
}

func TestDefaultConfigDir_EnvOverride(t *testing.T) {
	t.Setenv(DirEnv, "/tmp/taskpad-test")
	if got := DefaultConfigDir(); got != "/tmp/taskpad-test" {
		t.Errorf("DefaultConfigDir()=%q, want override", got)
	}

	t.Setenv(DirEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/xdg", AppName) {
		t.Errorf("DefaultConfigDir()=%q, want xdg path", got)
	}
}

func TestClone_SharesViewState(t *testing.T) {
	cfg := New(t.TempDir())
	cp := cfg.Clone()
	cp.Quiet = true
	cp.SetSortKey(task.SortByEndDate)

	if cfg.Quiet {
		t.Error("Quiet leaked into the original config")
	}
	if cfg.SortKey() != task.SortByEndDate {
		t.Errorf("SortKey=%q, want the clone's change to be shared", cfg.SortKey())
	}
}

func TestTokenHelpers(t *testing.T) {
	cfg := New(t.TempDir())
	if cfg.HasToken() {
		t.Fatal("HasToken()=true on empty dir")
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}
	if !cfg.HasToken() {
		t.Fatal("HasToken()=false after write")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("RemoveToken() err=%v", err)
	}
	if cfg.HasToken() {
		t.Fatal("HasToken()=true after remove")
	}
}
