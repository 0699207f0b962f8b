package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// lock is an exclusive lockfile next to the output artifact. A run holds it
// for its whole duration; a second invocation against the same output is
// rejected rather than interleaved.
type lock struct {
	path string
}

func acquireLock(output string) (*lock, error) {
	path := output + ".lock"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: lock held at %s", ErrConcurrentRun, path)
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	fmt.Fprintf(f, "%s %d\n", uuid.NewString(), os.Getpid())
	f.Close()
	return &lock{path: path}, nil
}

func (l *lock) release() {
	os.Remove(l.path)
}

func contentHash(b []byte) uint64 {
	return xxh3.Hash(b)
}

// commit atomically replaces the artifact at path with data, unless the
// existing content already hashes identically. Write-to-temp then rename is
// the sole commit point: a cancelled or failed run leaves the previous
// artifact byte-identical.
func commit(path string, data []byte) (changed bool, err error) {
	prev, err := os.ReadFile(path)
	if err == nil && contentHash(prev) == contentHash(data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read previous artifact: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".schemagen-*.tmp")
	if err != nil {
		return false, fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return false, fmt.Errorf("write temp artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("commit artifact: %w", err)
	}
	return true, nil
}
