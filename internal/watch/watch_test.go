package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func next(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
		return ""
	}
}

func TestFile_InitialAndChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hash.txt")
	if err := os.WriteFile(path, []byte("  first\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func(s string) { got <- s })
	}()

	if s := next(t, got); s != "first" {
		t.Fatalf("initial content = %q, want %q", s, "first")
	}

	if err := os.WriteFile(path, []byte("second\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if s := next(t, got); s != "second" {
		t.Fatalf("changed content = %q, want %q", s, "second")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("File() returned %v after cancel, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("File() did not return after cancel")
	}
}

func TestFile_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hash.txt")
	if err := os.WriteFile(path, []byte("only"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan string, 16)
	go func() { _ = File(ctx, path, func(s string) { got <- s }) }()
	next(t, got)

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case s := <-got:
		t.Fatalf("unexpected callback %q for sibling file", s)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFile_MissingFile(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), func(string) {
		t.Error("callback called for missing file")
	})
	if err == nil {
		t.Fatal("File() = nil, want error for missing file")
	}
}
