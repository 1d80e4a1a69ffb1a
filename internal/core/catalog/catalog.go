// Package catalog holds the immutable set of products the bridge serves
package catalog

import (
	"encoding/json"
	"os"
	"slices"
	"strings"

	"stapibridge/internal/core/result"
	"stapibridge/internal/core/stapi"
	perr "stapibridge/internal/platform/errors"

	"github.com/swaggest/jsonschema-go"
	"go.yaml.in/yaml/v4"
)

// Definition is one product as configured
type Definition struct {
	ID          string           `yaml:"id"`
	Kind        string           `yaml:"kind"`
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	License     string           `yaml:"license"`
	Keywords    []string         `yaml:"keywords"`
	Providers   []stapi.Provider `yaml:"providers"`
}

// Schemas are the JSON schemas a product publishes
type Schemas struct {
	Constraints           json.RawMessage
	OrderParameters       json.RawMessage
	OpportunityProperties json.RawMessage
}

// Entry is a product definition with its rendered schemas
type Entry struct {
	Definition
	Schemas Schemas
}

// Product renders the entry as a STAPI product without links
func (e Entry) Product(conformsTo []string) stapi.Product {
	return stapi.Product{
		Type:        stapi.TypeProduct,
		ConformsTo:  slices.Clone(conformsTo),
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Keywords:    slices.Clone(e.Keywords),
		License:     e.License,
		Providers:   slices.Clone(e.Providers),
	}
}

// Catalog is built once at startup and shared read only
type Catalog struct {
	entries    []Entry
	byID       map[string]int
	conformsTo []string
}

// file is the YAML layout of a catalog file
type file struct {
	Products []Definition `yaml:"products"`
}

// kinds maps a schema family to the prototypes its schemas are reflected from
var kinds = map[string]struct{ constraints, orderParams, oppProps any }{
	KindMaxar: {MaxarConstraints{}, MaxarOrderParameters{}, MaxarOpportunityProperties{}},
}

// MaxarDefinition is the built in Maxar optical product
func MaxarDefinition() Definition {
	return Definition{
		ID:          "maxar",
		Kind:        KindMaxar,
		Title:       "Maxar Optical",
		Description: "Optical Imagary from the Maxar constellation",
		License:     "proprietary",
		Keywords:    []string{"eo", "optical", "WorldView", "Legion"},
		Providers: []stapi.Provider{
			{
				Name:        "EUSI",
				Description: "Provides Maxar Imagery",
				Roles:       []stapi.ProviderRole{stapi.RoleProcessor},
				URL:         "https://www.euspaceimaging.com",
			},
			{
				Name:        "Maxar",
				Description: "Provides Maxar Imagery",
				Roles:       []stapi.ProviderRole{stapi.RoleHost},
				URL:         "https://www.euspaceimaging.com",
			},
		},
	}
}

// Default returns a catalog holding only the built in Maxar product
func Default() *Catalog {
	c, err := New(MaxarDefinition())
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog; ids must be unique and every kind must be known
func New(defs ...Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, perr.InvalidArgf("catalog needs at least one product")
	}
	c := &Catalog{
		byID:       make(map[string]int, len(defs)),
		conformsTo: []string{stapi.ConformanceCore, stapi.ConformanceAsyncOpportunities},
	}
	for _, d := range defs {
		d.ID = strings.TrimSpace(d.ID)
		if d.ID == "" {
			return nil, perr.InvalidArgf("catalog product without id")
		}
		if d.Kind == "" {
			d.Kind = d.ID
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, perr.InvalidArgf("catalog product %q declared twice", d.ID)
		}
		proto, ok := kinds[d.Kind]
		if !ok {
			return nil, perr.InvalidArgf("catalog product %q has unknown kind %q", d.ID, d.Kind)
		}
		var sch Schemas
		var err error
		if sch.Constraints, err = reflectSchema(proto.constraints); err != nil {
			return nil, err
		}
		if sch.OrderParameters, err = reflectSchema(proto.orderParams); err != nil {
			return nil, err
		}
		if sch.OpportunityProperties, err = reflectSchema(proto.oppProps); err != nil {
			return nil, err
		}
		c.byID[d.ID] = len(c.entries)
		c.entries = append(c.entries, Entry{Definition: d, Schemas: sch})
	}
	return c, nil
}

// Load reads a YAML catalog file; an empty path yields Default
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read catalog %s", path)
	}
	return Parse(b)
}

// Parse builds a catalog from YAML bytes
func Parse(b []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse catalog")
	}
	return New(f.Products...)
}

// Entries returns every product in declaration order
func (c *Catalog) Entries() []Entry { return slices.Clone(c.entries) }

// Lookup finds a product by id
func (c *Catalog) Lookup(id string) result.Lookup[Entry] {
	i, ok := c.byID[id]
	if !ok {
		return result.Absent[Entry]()
	}
	return result.Found(c.entries[i])
}

// ConformsTo lists the conformance classes the bridge implements
func (c *Catalog) ConformsTo() []string { return slices.Clone(c.conformsTo) }

func reflectSchema(proto any) (json.RawMessage, error) {
	s, err := stapi.NewReflector().Reflect(proto, jsonschema.InlineRefs)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "reflect schema %T", proto)
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "marshal schema %T", proto)
	}
	return b, nil
}
