package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the on-disk layout of a YAMLFileMedium.
type yamlDocument struct {
	Entries map[string]string `yaml:"entries"`
}

// YAMLFileMedium stores every key in a single YAML document on disk.
// Writes go to a temporary file that is renamed over the document.
type YAMLFileMedium struct {
	mu   sync.Mutex
	path string
}

// NewYAMLFileMedium creates a medium backed by the file at path. The file and
// its directory are created on the first write.
func NewYAMLFileMedium(path string) *YAMLFileMedium {
	return &YAMLFileMedium{path: path}
}

func (m *YAMLFileMedium) Path() string {
	return m.path
}

func (m *YAMLFileMedium) readDocument() (yamlDocument, error) {
	doc := yamlDocument{Entries: make(map[string]string)}
	content, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("os.ReadFile(%s) > %w", m.path, err)
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return doc, fmt.Errorf("yaml.Unmarshal(%s) > %w", m.path, err)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]string)
	}
	return doc, nil
}

func (m *YAMLFileMedium) writeDocument(doc yamlDocument) error {
	content, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(m.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s) > %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s > %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s > %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), m.path); err != nil {
		return fmt.Errorf("os.Rename(%s) > %w", m.path, err)
	}
	return nil
}

func (m *YAMLFileMedium) Get(_ context.Context, key Key) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.readDocument()
	if err != nil {
		return "", false, err
	}
	value, ok := doc.Entries[string(key)]
	return value, ok, nil
}

func (m *YAMLFileMedium) Set(_ context.Context, key Key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.readDocument()
	if err != nil {
		return err
	}
	doc.Entries[string(key)] = value
	return m.writeDocument(doc)
}

func (m *YAMLFileMedium) Remove(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.readDocument()
	if err != nil {
		return err
	}
	if _, ok := doc.Entries[string(key)]; !ok {
		return nil
	}
	delete(doc.Entries, string(key))
	return m.writeDocument(doc)
}

var _ Medium = (*YAMLFileMedium)(nil)
