// Copyright 2026 Atrium Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/storage"
	"github.com/atriumlabs/converso/storage/badger"
)

const (
	maxNameLen   = 30
	maxOwnerLen  = 30
	minPromptLen = 50
	maxPromptLen = 2000

	knowledgeFile = "KB.txt"
	indexDir      = "index"
	rebuildDir    = "index.rebuild"
	metadataFile  = "metadata.json"
	promptFile    = "prompt.txt"
)

// FileRecord notes one ingested file in a project's metadata.
type FileRecord struct {
	FileName  string `json:"file_name"`
	WordCount int    `json:"word_count"`
}

// Metadata describes a project on disk. Password is an opaque
// pre-encrypted credential; this package stores and returns it without
// interpreting it.
type Metadata struct {
	Name      string       `json:"project_name"`
	Owner     string       `json:"project_owner"`
	CreatedAt time.Time    `json:"creation_date"`
	Protected bool         `json:"flag_password"`
	Password  string       `json:"password,omitempty"`
	Files     []FileRecord `json:"files"`
}

// Manager owns the on-disk project tree. Every project holds exactly one
// of a knowledge blob or a chunk index after ingestion; rebuilds swap the
// index wholesale under a per-project write lock, so concurrent readers
// see either the old or the new index, never a partial one.
type Manager struct {
	root   string
	mu     sync.Mutex
	locks  map[string]*sync.RWMutex
	stores map[string]storage.IndexStore
	logger *slog.Logger
}

// NewManager creates a project manager rooted at the given directory,
// creating it if needed.
func NewManager(root string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating projects directory: %w", err)
	}
	return &Manager{
		root:   root,
		locks:  make(map[string]*sync.RWMutex),
		stores: make(map[string]storage.IndexStore),
		logger: logger.With("component", "project"),
	}, nil
}

// ValidateName rejects names that are empty, too long, or unsafe as a
// directory name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(name) >= maxNameLen {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidName, name, maxNameLen)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Create registers a new empty project.
func (m *Manager) Create(name, owner string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if owner == "" || len(owner) >= maxOwnerLen {
		return fmt.Errorf("%w: %q", ErrInvalidOwner, owner)
	}

	lock := m.lock(name)
	lock.Lock()
	defer lock.Unlock()

	dir := m.dir(name)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: %q", ErrProjectExists, name)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	meta := &Metadata{
		Name:      name,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.writeMetadata(name, meta); err != nil {
		os.RemoveAll(dir)
		return err
	}

	m.logger.Info("project created", "project", name, "owner", owner)
	return nil
}

// Delete removes a project and all its storage.
func (m *Manager) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	lock := m.lock(name)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(m.dir(name)); os.IsNotExist(err) {
		return fmt.Errorf("%w: %q", ErrProjectNotFound, name)
	}

	m.closeStore(name)
	if err := os.RemoveAll(m.dir(name)); err != nil {
		return err
	}

	m.logger.Info("project deleted", "project", name)
	return nil
}

// List returns the names of all projects, sorted by the filesystem.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(m.root, entry.Name(), metadataFile)); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Metadata loads a project's metadata.
func (m *Manager) Metadata(name string) (*Metadata, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(m.dir(name), metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, name)
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("reading metadata for %q: %w", name, err)
	}
	return &meta, nil
}

// RecordFiles stores the list of ingested files in a project's metadata.
func (m *Manager) RecordFiles(name string, files []FileRecord) error {
	meta, err := m.Metadata(name)
	if err != nil {
		return err
	}

	lock := m.lock(name)
	lock.Lock()
	defer lock.Unlock()

	meta.Files = files
	return m.writeMetadata(name, meta)
}

// SaveKnowledge stores content as the project's knowledge blob and drops
// any existing chunk index, keeping the exactly-one storage invariant.
func (m *Manager) SaveKnowledge(ctx context.Context, name, content string) error {
	if err := m.requireProject(name); err != nil {
		return err
	}

	lock := m.lock(name)
	lock.Lock()
	defer lock.Unlock()

	m.closeStore(name)
	if err := os.RemoveAll(filepath.Join(m.dir(name), indexDir)); err != nil {
		return err
	}

	tmp := filepath.Join(m.dir(name), knowledgeFile+".tmp")
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(m.dir(name), knowledgeFile))
}

// RebuildIndex replaces the project's chunk index wholesale. The new
// index is built in a scratch directory and swapped in under the write
// lock, so the old index stays readable until the swap.
func (m *Manager) RebuildIndex(ctx context.Context, name string, chunks []*core.IndexedChunk) error {
	if err := m.requireProject(name); err != nil {
		return err
	}

	scratch := filepath.Join(m.dir(name), rebuildDir)
	if err := os.RemoveAll(scratch); err != nil {
		return err
	}

	store, err := badger.NewIndexStore(scratch)
	if err != nil {
		return fmt.Errorf("building index for %q: %w", name, err)
	}
	if err := store.ReplaceChunks(ctx, chunks); err != nil {
		store.Close()
		os.RemoveAll(scratch)
		return fmt.Errorf("building index for %q: %w", name, err)
	}
	if err := store.Close(); err != nil {
		os.RemoveAll(scratch)
		return err
	}

	lock := m.lock(name)
	lock.Lock()
	defer lock.Unlock()

	m.closeStore(name)
	if err := os.RemoveAll(filepath.Join(m.dir(name), indexDir)); err != nil {
		return err
	}
	if err := os.Rename(scratch, filepath.Join(m.dir(name), indexDir)); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(m.dir(name), knowledgeFile)); err != nil && !os.IsNotExist(err) {
		return err
	}

	m.logger.Info("project index rebuilt", "project", name, "chunks", len(chunks))
	return nil
}

// Knowledge returns the project's knowledge blob, or ok=false when the
// project stores a chunk index instead.
func (m *Manager) Knowledge(name string) (string, bool, error) {
	if err := m.requireProject(name); err != nil {
		return "", false, err
	}

	lock := m.lock(name)
	lock.RLock()
	defer lock.RUnlock()

	data, err := os.ReadFile(filepath.Join(m.dir(name), knowledgeFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// StorageMode reports which storage a project holds.
func (m *Manager) StorageMode(name string) (core.StorageMode, error) {
	if err := m.requireProject(name); err != nil {
		return 0, err
	}

	lock := m.lock(name)
	lock.RLock()
	defer lock.RUnlock()

	if _, err := os.Stat(filepath.Join(m.dir(name), knowledgeFile)); err == nil {
		return core.StorageModeKnowledge, nil
	}
	if _, err := os.Stat(filepath.Join(m.dir(name), indexDir)); err == nil {
		return core.StorageModeVector, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNotIngested, name)
}

// Chunks loads the project's indexed chunks. A project without an index
// yields nil with no error, matching the retrieval engine's contract.
func (m *Manager) Chunks(ctx context.Context, name string) ([]*core.IndexedChunk, error) {
	if err := m.requireProject(name); err != nil {
		return nil, err
	}

	lock := m.lock(name)
	lock.RLock()
	defer lock.RUnlock()

	if _, err := os.Stat(filepath.Join(m.dir(name), indexDir)); os.IsNotExist(err) {
		return nil, nil
	}

	store, err := m.store(name)
	if err != nil {
		return nil, err
	}
	return store.AllChunks(ctx)
}

// SetPassword stores an opaque pre-encrypted credential in the project
// metadata. An empty string removes the protection flag.
func (m *Manager) SetPassword(name, encrypted string) error {
	meta, err := m.Metadata(name)
	if err != nil {
		return err
	}

	lock := m.lock(name)
	lock.Lock()
	defer lock.Unlock()

	meta.Password = encrypted
	meta.Protected = encrypted != ""
	return m.writeMetadata(name, meta)
}

// SavePrompt stores a custom grounded prompt for the project.
func (m *Manager) SavePrompt(name, prompt string) error {
	if err := m.requireProject(name); err != nil {
		return err
	}
	prompt = strings.TrimSpace(prompt)
	if len(prompt) < minPromptLen || len(prompt) >= maxPromptLen {
		return fmt.Errorf("%w: length %d outside [%d, %d)", ErrInvalidPrompt, len(prompt), minPromptLen, maxPromptLen)
	}

	lock := m.lock(name)
	lock.Lock()
	defer lock.Unlock()

	return os.WriteFile(filepath.Join(m.dir(name), promptFile), []byte(prompt), 0644)
}

// Prompt returns the project's custom prompt, ok=false when none is set.
func (m *Manager) Prompt(name string) (string, bool, error) {
	if err := m.requireProject(name); err != nil {
		return "", false, err
	}

	lock := m.lock(name)
	lock.RLock()
	defer lock.RUnlock()

	data, err := os.ReadFile(filepath.Join(m.dir(name), promptFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// Close releases every cached index store.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for name, store := range m.stores {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.stores, name)
	}
	return firstErr
}

func (m *Manager) dir(name string) string {
	return filepath.Join(m.root, name)
}

func (m *Manager) requireProject(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, err := os.Stat(m.dir(name)); os.IsNotExist(err) {
		return fmt.Errorf("%w: %q", ErrProjectNotFound, name)
	}
	return nil
}

// lock returns the project's RWMutex, creating it on first use.
func (m *Manager) lock(name string) *sync.RWMutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lock, ok := m.locks[name]; ok {
		return lock
	}
	lock := &sync.RWMutex{}
	m.locks[name] = lock
	return lock
}

// store returns the project's cached index store, opening it on first
// use. Callers must hold at least the project's read lock.
func (m *Manager) store(name string) (storage.IndexStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[name]; ok {
		return store, nil
	}
	store, err := badger.NewIndexStore(filepath.Join(m.dir(name), indexDir))
	if err != nil {
		return nil, err
	}
	m.stores[name] = store
	return store, nil
}

// closeStore drops the cached store handle before the index directory is
// replaced or removed. Callers must hold the project's write lock.
func (m *Manager) closeStore(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[name]; ok {
		if err := store.Close(); err != nil {
			m.logger.Warn("closing index store", "project", name, "err", err)
		}
		delete(m.stores, name)
	}
}

func (m *Manager) writeMetadata(name string, meta *Metadata) error {
	data, err := json.MarshalIndent(meta, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(m.dir(name), metadataFile), data, 0644)
}
