package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "ted-iptv"
	if !strings.Contains(configDir, "ted-iptv") {
		t.Errorf("GetConfigDir() = %v, should contain 'ted-iptv'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}

	if reg.Preferences.SkeletonRows != 3 {
		t.Errorf("NewRegistry().Preferences.SkeletonRows = %v, want 3", reg.Preferences.SkeletonRows)
	}
}

func TestRegistryCollectionRoundTrip(t *testing.T) {
	reg := NewRegistry()

	col := source.NewCollection()
	a := source.NewXtreamSource(source.XtreamData{
		Name:      "Living Room",
		ServerURL: "http://iptv.example.com:8080",
		Username:  "ted",
		Password:  "hunter2",
	})
	b := source.NewM3USource(source.M3UData{
		Name:        "Free Channels",
		PlaylistURL: "https://example.com/list.m3u",
	})
	if err := col.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := col.Add(b); err != nil {
		t.Fatal(err)
	}
	if err := col.SetActive(b.ID); err != nil {
		t.Fatal(err)
	}

	reg.SetCollection(col)

	restored := reg.Collection()
	if restored.Len() != 2 {
		t.Fatalf("restored Len() = %d, want 2", restored.Len())
	}
	if restored.ActiveID != b.ID {
		t.Errorf("restored ActiveID = %q, want %q", restored.ActiveID, b.ID)
	}
	if restored.Sources[0].Name != "Living Room" {
		t.Errorf("order not preserved: Sources[0].Name = %q", restored.Sources[0].Name)
	}
}

func TestRegistryCollectionSkipsInvalidEntries(t *testing.T) {
	reg := NewRegistry()
	reg.Sources = []source.Source{
		{ID: "bad", Name: "Broken", Type: source.TypeM3U, PlaylistURL: "ftp://nope"},
	}
	reg.ActiveSourceID = "bad"

	col := reg.Collection()
	if col.Len() != 0 {
		t.Errorf("invalid source should be skipped, got len %d", col.Len())
	}
	if col.ActiveID != "" {
		t.Errorf("dangling active id should be cleared, got %q", col.ActiveID)
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME override is Unix-only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	reg := NewRegistry()
	col := source.NewCollection()
	src := source.NewM3USource(source.M3UData{
		Name:        "Saved",
		PlaylistURL: "https://example.com/list.m3u",
		EPGURL:      "https://example.com/epg.xml",
	})
	if err := col.Add(src); err != nil {
		t.Fatal(err)
	}
	reg.SetCollection(col)

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}

	loaded, err := loadRegistryFromDisk()
	if err != nil {
		t.Fatalf("load error = %v", err)
	}
	if len(loaded.Sources) != 1 {
		t.Fatalf("loaded %d sources, want 1", len(loaded.Sources))
	}
	if loaded.Sources[0].EPGURL != "https://example.com/epg.xml" {
		t.Errorf("EPGURL not round-tripped: %q", loaded.Sources[0].EPGURL)
	}
}

func TestRegistrySaveOmitsEmptyEPGURL(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME override is Unix-only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	reg := NewRegistry()
	col := source.NewCollection()
	src := source.NewM3USource(source.M3UData{
		Name:        "No EPG",
		PlaylistURL: "https://example.com/list.m3u",
	})
	if err := col.Add(src); err != nil {
		t.Fatal(err)
	}
	reg.SetCollection(col)

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath, _ := GetConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}

	// Absence on disk, not an empty string
	if strings.Contains(string(data), "epg_url") {
		t.Error("epg_url key should be absent when no EPG URL was supplied")
	}
}

func TestReloadRegistryReadsLatestDiskState(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME override is Unix-only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
	if len(first.Sources) != 0 {
		t.Fatalf("fresh config dir should yield an empty registry, got %d sources", len(first.Sources))
	}

	// Another process writes the file.
	reg := NewRegistry()
	col := source.NewCollection()
	src := source.NewM3USource(source.M3UData{
		Name:        "External",
		PlaylistURL: "https://example.com/list.m3u",
	})
	if err := col.Add(src); err != nil {
		t.Fatal(err)
	}
	reg.SetCollection(col)
	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// The cached instance does not see the external write.
	cached, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if len(cached.Sources) != 0 {
		t.Errorf("LoadRegistry() should return the cached instance, got %d sources", len(cached.Sources))
	}

	// A reload picks up the external write.
	reloaded, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
	if len(reloaded.Sources) != 1 {
		t.Fatalf("reloaded %d sources, want 1", len(reloaded.Sources))
	}
	if reloaded.Sources[0].Name != "External" {
		t.Errorf("reloaded source name = %q, want %q", reloaded.Sources[0].Name, "External")
	}
}
