package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCommit_WritesAndDetectsNoChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.ts")

	changed, err := commit(path, []byte("v1"))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("first commit should report a change")
	}

	changed, err = commit(path, []byte("v1"))
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("identical content should report no change")
	}

	changed, err = commit(path, []byte("v2"))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("different content should report a change")
	}
	got, _ := os.ReadFile(path)
	if string(got) != "v2" {
		t.Errorf("artifact = %q, want v2", got)
	}
}

func TestCommit_NoChangeLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.ts")
	if _, err := commit(path, []byte("stable")); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := commit(path, []byte("stable")); err != nil {
		t.Fatal(err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("no-change commit must not rewrite the file")
	}
}

func TestCommit_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.ts")
	if _, err := commit(path, []byte("v1")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "tables.ts" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestLock_RejectsConcurrentRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "tables.ts")

	lk, err := acquireLock(output)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := acquireLock(output); !errors.Is(err, ErrConcurrentRun) {
		t.Fatalf("second acquire = %v, want ErrConcurrentRun", err)
	}

	lk.release()
	lk2, err := acquireLock(output)
	if err != nil {
		t.Fatalf("acquire after release failed: %v", err)
	}
	lk2.release()
}

func TestContentHash_Stable(t *testing.T) {
	a := contentHash([]byte("same bytes"))
	b := contentHash([]byte("same bytes"))
	if a != b {
		t.Error("hash must be stable for identical input")
	}
	if a == contentHash([]byte("other bytes")) {
		t.Error("hash should differ for different input")
	}
}
