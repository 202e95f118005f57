package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `name: Portal
modules:
  - module: G1
    title: Módulo 1
    items:
      - name: Matemática Básica
        description: Frações
      - name: História
  - module: G2
    title: Módulo 2
    items:
      - name: Química
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "search", "--catalog", path, "fra")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.HasPrefix(out, "1 resultado encontrado\n") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "Química") {
		t.Errorf("non-matching item printed:\n%s", out)
	}
}

func TestSearchCommandJoinsArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "search", "--catalog", path, "-o", "yaml", "matematica", "basica")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "total: 1") {
		t.Errorf("output = %q", out)
	}
}

func TestSearchCommandErrors(t *testing.T) {
	if _, err := runCmd(t, "search", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "x"); err == nil {
		t.Error("expected error for a missing catalog")
	}
	if _, err := runCmd(t, "search", "-o", "xml", "x"); err == nil {
		t.Error("expected error for an unknown format")
	}
	if _, err := runCmd(t, "search"); err == nil {
		t.Error("expected error without a query")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "portal-search ") {
		t.Errorf("output = %q", out)
	}
}
