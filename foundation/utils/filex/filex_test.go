// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for existence checks, atomic writes and path expansion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-19 v0.2.0: Tests for WriteAtomic and ExpandPath

package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExistsAndIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tokens.txt")
	if err := os.WriteFile(file, []byte("x , IDENTIFIER\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(file) || !IsFile(file) {
		t.Error("file should exist and be a regular file")
	}
	if !IsDir(dir) || IsFile(dir) {
		t.Error("directory misclassified")
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Error("missing path reported as existing")
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := WriteAtomic(path, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	if err := WriteAtomic(path, []byte("second"), 0644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestWriteAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.txt")
	if err := WriteAtomic(path, []byte("x"), 0644); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "history.db")
	if err := EnsureParentDir(path, 0755); err != nil {
		t.Fatalf("EnsureParentDir() error = %v", err)
	}
	if !IsDir(filepath.Dir(path)) {
		t.Error("parent directory not created")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	t.Setenv("TINY_TEST_DIR", "/tmp/tiny")

	tests := []struct {
		input string
		want  string
	}{
		{"~/x.db", filepath.Join(home, "x.db")},
		{"$TINY_TEST_DIR/h.db", "/tmp/tiny/h.db"},
		{"plain.db", "plain.db"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
