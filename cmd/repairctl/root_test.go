package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func useMemoryStore(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SHOP_CONFIG_PATH", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != Version {
		t.Fatalf("expected %q, got %q", Version, out)
	}
}

func TestSeed_MemoryStore(t *testing.T) {
	useMemoryStore(t)

	out, err := run(t, "seed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "services: ") || !strings.Contains(out, "slots created: ") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSeed_SkipSlots(t *testing.T) {
	useMemoryStore(t)

	out, err := run(t, "seed", "--skip-slots")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "slots created") {
		t.Fatalf("slots should be skipped: %q", out)
	}
}

func TestCreateTables_RequiresDynamoDB(t *testing.T) {
	useMemoryStore(t)

	if _, err := run(t, "create-tables"); err == nil {
		t.Fatalf("expected error for memory driver")
	}
}

func TestReconcile_NothingPending(t *testing.T) {
	useMemoryStore(t)

	out, err := run(t, "reconcile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "released: 0" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExport_WritesWorkbook(t *testing.T) {
	useMemoryStore(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if _, err := run(t, "export", "--out", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("workbook is empty")
	}
}
