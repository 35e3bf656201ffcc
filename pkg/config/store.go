package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FieldsKey is the per-object-type setting that holds the field configuration.
const FieldsKey = "cms_fields"

// Source resolves the field configuration declared for an object type.
type Source interface {
	FieldConfig(objectType string) (Node, bool)
}

// Store keeps the field configuration of every object type loaded from
// configuration documents. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	types   map[string]Node
	origins map[string]string
}

var _ Source = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		types:   make(map[string]Node),
		origins: make(map[string]string),
	}
}

// LoadFS walks fsys and parses every JSON/YAML document. Each document is a
// mapping of object type name to its settings:
//
//	Page:
//	  cms_fields:
//	    Root.Main:
//	      fields: [Title, Content]
//
// Declaring the same object type in two files is an error. A nil fsys yields an
// empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := NewStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return store.load(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Load parses a single document into the store.
func (s *Store) Load(data []byte, source string) error {
	return s.load(data, source)
}

func (s *Store) load(data []byte, source string) error {
	doc, err := Parse(data, source)
	if err != nil {
		return err
	}
	if doc.IsNull() {
		return nil
	}
	if !doc.IsMapping() {
		return fmt.Errorf("config: file %s must contain a mapping of object types, got %s", source, doc.Kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range doc.Entries {
		name := strings.TrimSpace(entry.Key)
		if name == "" {
			return fmt.Errorf("config: file %s defines an empty object type", source)
		}
		if prev, exists := s.origins[name]; exists {
			return fmt.Errorf("config: duplicate object type %q (file %s, first declared in %s)", name, source, prev)
		}
		s.origins[name] = source
		fields, ok := entry.Value.Lookup(FieldsKey)
		if !ok {
			continue
		}
		s.types[name] = fields
	}
	return nil
}

// Set registers the field configuration for an object type, replacing any
// previous value.
func (s *Store) Set(objectType string, node Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types[objectType] = node.Clone()
	if _, ok := s.origins[objectType]; !ok {
		s.origins[objectType] = "<memory>"
	}
}

// FieldConfig returns a copy of the field configuration for objectType.
func (s *Store) FieldConfig(objectType string) (Node, bool) {
	if s == nil {
		return Node{}, false
	}
	s.mu.RLock()
	node, ok := s.types[objectType]
	s.mu.RUnlock()
	if !ok {
		return Node{}, false
	}
	return node.Clone(), true
}

// Types lists the object types that declare a field configuration.
func (s *Store) Types() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any field configuration.
func (s *Store) Empty() bool {
	if s == nil {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.types) == 0
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
