package config

import "testing"

func TestDefault_MatchesSpecDefaults(t *testing.T) {
	o := Default()
	if o.ProtocolVersion != ProtocolV4 {
		t.Errorf("expected default protocol v4, got %q", o.ProtocolVersion)
	}
	if o.OutputFormat != OutputChunks {
		t.Errorf("expected default output chunks, got %q", o.OutputFormat)
	}
	if !o.AutoEvents || !o.AutoClose {
		t.Errorf("expected auto_events and auto_close true by default")
	}
	if o.AutoContext {
		t.Errorf("expected auto_context false by default")
	}
}

func TestNew_AppliesOptionsOverDefaults(t *testing.T) {
	o := New(
		WithMessageID("m1"),
		WithProtocolVersion(ProtocolV5),
		WithAutoClose(false),
	)
	if o.MessageID != "m1" {
		t.Errorf("expected message id m1, got %q", o.MessageID)
	}
	if o.ProtocolVersion != ProtocolV5 {
		t.Errorf("expected protocol v5, got %q", o.ProtocolVersion)
	}
	if o.AutoClose {
		t.Errorf("expected auto_close false")
	}
}

func TestNew_NonPositiveBufferSizeFallsBackToDefault(t *testing.T) {
	o := New(WithBufferSize(0))
	if o.BufferSize != defaultBufferSize {
		t.Errorf("expected default buffer size %d, got %d", defaultBufferSize, o.BufferSize)
	}
}
