package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/visaetude/prepcore/ent"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Fatalf("PRAGMA %s: %v", tt.pragma, err)
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %s, want %s", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrateCreatesTables(t *testing.T) {
	s := openTestStore(t)

	exam, err := s.Client().Exam.Create().
		SetCode("TEF").
		SetName("Test d'évaluation de français").
		SetLanguage("fr").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}
	if exam.Code != "TEF" {
		t.Errorf("Code = %q", exam.Code)
	}
}

func TestWithTxCommit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx *ent.Client) error {
		_, err := tx.Exam.Create().SetCode("TCF").SetName("TCF").Save(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	n, err := s.Client().Exam.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("exam count = %d, want 1", n)
	}
}

func TestWithTxRollback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx *ent.Client) error {
		if _, err := tx.Exam.Create().SetCode("DELF").SetName("DELF").Save(ctx); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx() error = %v, want boom", err)
	}

	n, err := s.Client().Exam.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("exam count = %d, want 0 after rollback", n)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "custom", "prep.db")
	t.Setenv("PREPCORE_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath() error = %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}
