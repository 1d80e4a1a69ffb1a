package stapi

import (
	"github.com/paulmach/orb/geojson"
	"github.com/swaggest/jsonschema-go"
)

// JSONSchema exposes the interval as the string it travels as
func (DatetimeInterval) JSONSchema() (jsonschema.Schema, error) {
	var s jsonschema.Schema
	s.AddType(jsonschema.String)
	s.WithDescription("RFC 3339 interval written as start/end")
	s.WithExamples("2025-01-01T00:00:00Z/2025-01-08T00:00:00Z")
	return s, nil
}

// GeometrySchema stands in for geojson.Geometry when reflecting schemas
// The orb type nests itself through collections and never terminates inline
type GeometrySchema struct{}

// JSONSchema describes a GeoJSON geometry object without recursing into collections
func (GeometrySchema) JSONSchema() (jsonschema.Schema, error) {
	var typ jsonschema.Schema
	typ.AddType(jsonschema.String)
	typ.WithEnum("Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon", "GeometryCollection")

	var coords jsonschema.Schema
	coords.AddType(jsonschema.Array)

	var s jsonschema.Schema
	s.AddType(jsonschema.Object)
	s.WithDescription("GeoJSON geometry")
	s.WithRequired("type")
	s.WithPropertiesItem("type", typ.ToSchemaOrBool())
	s.WithPropertiesItem("coordinates", coords.ToSchemaOrBool())
	return s, nil
}

// NewReflector returns a schema reflector that knows the bridge's wire types
func NewReflector() *jsonschema.Reflector {
	r := &jsonschema.Reflector{}
	r.AddTypeMapping(geojson.Geometry{}, GeometrySchema{})
	return r
}
