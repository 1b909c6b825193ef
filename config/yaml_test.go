package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAML_OverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := "protocol_version: v5\nauto_close: false\nbuffer_size: 128\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	opts, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.ProtocolVersion != ProtocolV5 {
		t.Errorf("expected protocol v5, got %q", opts.ProtocolVersion)
	}
	if opts.AutoClose {
		t.Errorf("expected auto_close false")
	}
	if opts.BufferSize != 128 {
		t.Errorf("expected buffer size 128, got %d", opts.BufferSize)
	}
	if !opts.AutoEvents {
		t.Errorf("expected auto_events to retain default true")
	}
}

func TestLoadYAML_MissingFileReturnsError(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
