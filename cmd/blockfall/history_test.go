package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func TestPrintSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	start := time.Date(2026, 1, 2, 15, 4, 5, 0, time.Local)
	if _, err := store.SaveSession(storage.SessionEntry{
		SessionID: "abc",
		Engine:    "classic",
		StartedAt: start,
		EndedAt:   start.Add(90 * time.Second),
		Updates:   42,
	}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	var out bytes.Buffer
	if !printSession(&out, store, "abc") {
		t.Fatal("printSession(abc) = false")
	}
	for _, want := range []string{"abc", "classic", "2026-01-02 15:04:05", "1m30s", "42"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if printSession(&out, store, "missing") {
		t.Error("printSession(missing) = true")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output for a missing session: %q", out.String())
	}
}
