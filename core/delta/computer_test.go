package delta

import "testing"

func TestComputer_MonotoneCumulativePrefix(t *testing.T) {
	c := NewComputer()

	chunks := []string{"I", "I am", "I am ready"}
	want := []string{"I", " am", " ready"}

	var rebuilt string
	for i, chunk := range chunks {
		out, ok := c.Next("run-1", chunk)
		if !ok {
			t.Fatalf("chunk %d: expected emission, got none", i)
		}
		if out != want[i] {
			t.Errorf("chunk %d: expected delta %q, got %q", i, want[i], out)
		}
		rebuilt += out
	}
	if rebuilt != "I am ready" {
		t.Errorf("expected reconstructed text %q, got %q", "I am ready", rebuilt)
	}
}

func TestComputer_TrueIncrements(t *testing.T) {
	c := NewComputer()

	out1, ok := c.Next("run-1", "Hello")
	if !ok || out1 != "Hello" {
		t.Fatalf("expected first increment Hello, got %q ok=%v", out1, ok)
	}

	out2, ok := c.Next("run-1", " world")
	if !ok || out2 != " world" {
		t.Fatalf("expected second increment ' world', got %q ok=%v", out2, ok)
	}
}

func TestComputer_DuplicateShorterOrEqualIsSuppressed(t *testing.T) {
	c := NewComputer()

	if _, ok := c.Next("run-1", "I am ready"); !ok {
		t.Fatalf("expected first chunk to emit")
	}
	if _, ok := c.Next("run-1", "I am ready"); ok {
		t.Errorf("expected duplicate equal-length chunk to be suppressed")
	}
	if _, ok := c.Next("run-1", "I am"); ok {
		t.Errorf("expected shorter chunk to be suppressed")
	}
}

func TestComputer_ResetOnRunStart(t *testing.T) {
	c := NewComputer()

	if _, ok := c.Next("run-1", "partial"); !ok {
		t.Fatalf("expected first chunk to emit")
	}

	c.Reset("run-1")

	out, ok := c.Next("run-1", "fresh")
	if !ok || out != "fresh" {
		t.Errorf("expected fresh full delta after reset, got %q ok=%v", out, ok)
	}
}

func TestComputer_IndependentRuns(t *testing.T) {
	c := NewComputer()

	if out, ok := c.Next("run-a", "foo"); !ok || out != "foo" {
		t.Fatalf("run-a: expected foo, got %q ok=%v", out, ok)
	}
	if out, ok := c.Next("run-b", "bar"); !ok || out != "bar" {
		t.Fatalf("run-b: expected bar, got %q ok=%v", out, ok)
	}
	if out, ok := c.Next("run-a", "foobaz"); !ok || out != "baz" {
		t.Errorf("run-a: expected baz after foo prefix, got %q ok=%v", out, ok)
	}
}

func TestComputer_Forget(t *testing.T) {
	c := NewComputer()
	c.Next("run-1", "hello")
	c.Forget("run-1")

	out, ok := c.Next("run-1", "hello")
	if !ok || out != "hello" {
		t.Errorf("expected forgotten run to start fresh, got %q ok=%v", out, ok)
	}
}
