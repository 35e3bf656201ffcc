package record

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrRecordNotFound is returned by Catalog.Record for unknown records.
var ErrRecordNotFound = errors.New("record: not found")

// Catalog holds models and the records loaded for them.
type Catalog struct {
	models  map[string]Model
	order   []string
	records []*MemoryRecord
	opts    []MemoryOption
}

// NewCatalog constructs an empty catalog. Options are applied to every
// record created through it.
func NewCatalog(opts ...MemoryOption) *Catalog {
	return &Catalog{models: make(map[string]Model), opts: opts}
}

// AddModel registers a model. Registering the same name twice is an error.
func (c *Catalog) AddModel(model Model) error {
	if model.Name == "" {
		return errors.New("record: model name is required")
	}
	if _, exists := c.models[model.Name]; exists {
		return fmt.Errorf("record: duplicate model %q", model.Name)
	}
	c.models[model.Name] = model
	c.order = append(c.order, model.Name)
	return nil
}

// Model returns a registered model.
func (c *Catalog) Model(name string) (Model, bool) {
	model, ok := c.models[name]
	return model, ok
}

// Types lists model names in registration order.
func (c *Catalog) Types() []string {
	return append([]string(nil), c.order...)
}

// New creates a record of objectType. The record is not added to the catalog.
func (c *Catalog) New(objectType, id string) (*MemoryRecord, error) {
	model, ok := c.models[objectType]
	if !ok {
		return nil, fmt.Errorf("record: unknown model %q", objectType)
	}
	return NewMemoryRecord(model, id, c.opts...), nil
}

// Add stores rec in the catalog.
func (c *Catalog) Add(rec *MemoryRecord) {
	if rec != nil {
		c.records = append(c.records, rec)
	}
}

// Record returns the stored record of objectType with id.
func (c *Catalog) Record(objectType, id string) (*MemoryRecord, error) {
	for _, rec := range c.records {
		if rec.ObjectType() == objectType && rec.ID == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q", ErrRecordNotFound, objectType, id)
}

// Records returns the stored records of objectType sorted by id.
func (c *Catalog) Records(objectType string) []*MemoryRecord {
	var out []*MemoryRecord
	for _, rec := range c.records {
		if rec.ObjectType() == objectType {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fixtureFile struct {
	Models  fixtureModels   `yaml:"models"`
	Records []fixtureRecord `yaml:"records"`
}

type fixtureModels []Model

// UnmarshalYAML keeps models in declaration order and names each one after
// its key.
func (m *fixtureModels) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("record: models must be a mapping, got %s", nodeKind(node))
	}
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		var model Model
		if err := node.Content[idx+1].Decode(&model); err != nil {
			return fmt.Errorf("record: model %s: %w", node.Content[idx].Value, err)
		}
		model.Name = node.Content[idx].Value
		*m = append(*m, model)
	}
	return nil
}

type fixtureRecord struct {
	Type      string              `yaml:"type"`
	ID        any                 `yaml:"id"`
	Values    map[string]any      `yaml:"values"`
	Relations map[string][]string `yaml:"relations"`
}

// LoadFixtures parses a YAML or JSON fixture document:
//
//	models:
//	  Page:
//	    db: {Title: Varchar(255)}
//	records:
//	  - type: Page
//	    id: 1
//	    values: {Title: Home}
func LoadFixtures(data []byte, opts ...MemoryOption) (*Catalog, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("record: parse fixtures: %w", err)
	}

	catalog := NewCatalog(opts...)
	for _, model := range file.Models {
		if err := catalog.AddModel(model); err != nil {
			return nil, err
		}
	}
	for idx, fixture := range file.Records {
		id := ""
		if fixture.ID != nil {
			id = fmt.Sprint(fixture.ID)
		}
		rec, err := catalog.New(fixture.Type, id)
		if err != nil {
			return nil, fmt.Errorf("record: fixture %d: %w", idx, err)
		}
		for name, value := range fixture.Values {
			rec.Set(name, value)
		}
		for name, ids := range fixture.Relations {
			rec.Link(name, ids...)
		}
		catalog.Add(rec)
	}
	return catalog, nil
}

// LoadFixturesFS reads and parses the fixture file at path.
func LoadFixturesFS(fsys fs.FS, path string, opts ...MemoryOption) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("record: fixtures filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("record: read fixtures %s: %w", path, err)
	}
	return LoadFixtures(data, opts...)
}
