package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectStaticRootExplicit(t *testing.T) {
	if got := detectStaticRoot("/srv/site"); got != "/srv/site" {
		t.Fatalf("expected explicit dir, got %q", got)
	}
}

func TestDetectStaticRootFindsParentIndex(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "cmd", "server")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	got, err := filepath.EvalSymlinks(detectStaticRoot(""))
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDetectStaticRootFallsBackToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	got, err := filepath.EvalSymlinks(detectStaticRoot(""))
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if fileExists(path) {
		t.Fatal("expected missing file")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(path) {
		t.Fatal("expected file to exist")
	}
	if fileExists(dir) {
		t.Fatal("directories are not files")
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
