package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/goccy/go-json"
)

// FileCollection keeps records in memory and rewrites a single JSON file on
// every mutation. Writes are atomic (temp file + rename) so a crash never
// leaves a half-written document behind.
type FileCollection[T any] struct {
	path  string
	mu    sync.RWMutex
	items []T
}

// NewFileCollection opens the collection backed by the JSON document at path.
// A missing file starts an empty collection. An unreadable or corrupt file
// also starts empty, with a warning, so the bot keeps running.
func NewFileCollection[T any](path string) *FileCollection[T] {
	fc := &FileCollection[T]{path: path, items: make([]T, 0)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn(fmt.Sprintf("Could not read %s, starting empty: %v", path, err), "Store")
		}
		return fc
	}

	if err := json.Unmarshal(data, &fc.items); err != nil {
		logger.Warn(fmt.Sprintf("Corrupt data in %s, starting empty: %v", path, err), "Store")
		fc.items = make([]T, 0)
	}
	return fc
}

// Append adds a record and rewrites the file.
func (fc *FileCollection[T]) Append(item T) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.items = append(fc.items, item)
	fc.persist()
	return nil
}

// All returns a copy of every record in insertion order.
func (fc *FileCollection[T]) All() []T {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	out := make([]T, len(fc.items))
	copy(out, fc.items)
	return out
}

// Filter returns the records matching pred, in insertion order.
func (fc *FileCollection[T]) Filter(pred func(T) bool) []T {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	out := make([]T, 0)
	for _, item := range fc.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// ReplaceAll swaps the entire contents and rewrites the file.
func (fc *FileCollection[T]) ReplaceAll(items []T) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.items = make([]T, len(items))
	copy(fc.items, items)
	fc.persist()
	return nil
}

// DeleteWhere removes every record matching pred and rewrites the file.
func (fc *FileCollection[T]) DeleteWhere(pred func(T) bool) (int, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	kept := make([]T, 0, len(fc.items))
	for _, item := range fc.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	removed := len(fc.items) - len(kept)
	if removed > 0 {
		fc.items = kept
		fc.persist()
	}
	return removed, nil
}

// persist rewrites the whole document. The caller must hold the write lock.
// A failed write is logged only; the in-memory copy stays authoritative.
func (fc *FileCollection[T]) persist() {
	data, err := json.MarshalIndent(fc.items, "", "    ")
	if err != nil {
		logger.Error(fmt.Sprintf("Could not encode %s: %v", fc.path, err), "Store")
		return
	}

	if err := writeFileAtomic(fc.path, data); err != nil {
		logger.Error(fmt.Sprintf("Could not save %s: %v", fc.path, err), "Store")
	}
}

// writeFileAtomic writes data through a temp file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	f, err := os.OpenFile(tmp, os.O_RDWR, 0644)
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to open temp file for sync: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	f.Close()

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
