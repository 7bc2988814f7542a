package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps each collection in <dir>/<kind>.json as a plain JSON
// array, with the id counter beside it in <dir>/<kind>.seq.json.
type FileBackend struct {
	dir string
}

type sequenceFile struct {
	LastID int `json:"last_id"`
}

// NewFileBackend creates dir if needed and seeds an empty array for every
// collection that has no file yet.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	b := &FileBackend{dir: dir}
	for _, kind := range Kinds {
		path := b.dataPath(kind)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("init %s: %w", path, err)
			}
		}
	}
	return b, nil
}

func (b *FileBackend) dataPath(kind Kind) string {
	return filepath.Join(b.dir, string(kind)+".json")
}

func (b *FileBackend) seqPath(kind Kind) string {
	return filepath.Join(b.dir, string(kind)+".seq.json")
}

func (b *FileBackend) Read(_ context.Context, kind Kind) (Snapshot, error) {
	data, err := os.ReadFile(b.dataPath(kind))
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Data: data}
	raw, err := os.ReadFile(b.seqPath(kind))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// collections written before the counter existed
	case err != nil:
		return Snapshot{}, err
	default:
		var seq sequenceFile
		if err := json.Unmarshal(raw, &seq); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", b.seqPath(kind), err)
		}
		snap.LastID = seq.LastID
	}
	return snap, nil
}

func (b *FileBackend) Write(_ context.Context, kind Kind, snap Snapshot) error {
	seq, err := json.Marshal(sequenceFile{LastID: snap.LastID})
	if err != nil {
		return err
	}
	if err := writeFileAtomic(b.seqPath(kind), seq); err != nil {
		return err
	}
	return writeFileAtomic(b.dataPath(kind), snap.Data)
}

func (b *FileBackend) Close() error {
	return nil
}

// writeFileAtomic replaces path through a rename so readers never observe a
// half-written file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
