package stapi

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggest/jsonschema-go"
)

func TestNewReflector_InlinesGeometryOnce(t *testing.T) {
	for _, proto := range []any{Order{}, OpportunityPayload{}, SearchRecord{}} {
		s, err := NewReflector().Reflect(proto, jsonschema.InlineRefs)
		if err != nil {
			t.Fatalf("reflect %T: %v", proto, err)
		}
		b, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %T: %v", proto, err)
		}
		if !strings.Contains(string(b), `"GeoJSON geometry"`) {
			t.Fatalf("%T schema lacks the geometry stand-in: %s", proto, b)
		}
		if strings.Contains(string(b), "geometries") {
			t.Fatalf("%T schema walked into geometry collections: %s", proto, b)
		}
	}
}

func TestDatetimeInterval_Schema(t *testing.T) {
	s, err := NewReflector().Reflect(OpportunityPayload{}, jsonschema.InlineRefs)
	if err != nil {
		t.Fatalf("reflect: %v", err)
	}
	dt, ok := s.Properties["datetime"]
	if !ok || dt.TypeObject == nil || dt.TypeObject.Type == nil || dt.TypeObject.Type.SimpleTypes == nil {
		t.Fatalf("datetime schema = %+v", dt)
	}
	if *dt.TypeObject.Type.SimpleTypes != jsonschema.String {
		t.Fatalf("datetime type = %v", *dt.TypeObject.Type.SimpleTypes)
	}
}
