// Package testsupport holds fixture loaders and golden-file helpers shared by
// the package tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/goliatone/go-formscaffold/pkg/config"
	pkgopenapi "github.com/goliatone/go-formscaffold/pkg/openapi"
	"github.com/goliatone/go-formscaffold/pkg/record"
)

// Context returns the context tests pass to blocking calls.
func Context() context.Context {
	return context.Background()
}

// LoadDocument reads an OpenAPI fixture as a file-sourced Document.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()
	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath is LoadDocument for setup code without a *testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	data, err := readFixture(path)
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	return pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
}

// LoadCatalog reads a record fixture file.
func LoadCatalog(t *testing.T, path string, opts ...record.MemoryOption) *record.Catalog {
	t.Helper()
	data, err := readFixture(path)
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := record.LoadFixtures(data, opts...)
	if err != nil {
		t.Fatalf("load fixtures %s: %v", path, err)
	}
	return catalog
}

// LoadConfig reads a field configuration file into a store.
func LoadConfig(t *testing.T, path string) *config.Store {
	t.Helper()
	data, err := readFixture(path)
	if err != nil {
		t.Fatal(err)
	}
	store := config.NewStore()
	if err := store.Load(data, path); err != nil {
		t.Fatalf("load config %s: %v", path, err)
	}
	return store
}

func readFixture(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("testsupport: fixture path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read fixture: %w", err)
	}
	return data, nil
}
