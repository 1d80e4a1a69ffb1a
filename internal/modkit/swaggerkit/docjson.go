// Package swaggerkit builds the OpenAPI document for the mounted modules and serves it with Swagger UI
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"regexp"
	"sort"
	"strconv"

	"stapibridge/internal/core/stapi"
	pnet "stapibridge/internal/platform/net"

	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// securityScheme is the name bearer-protected operations reference
const securityScheme = "bearer"

// Operation documents one route
// Request and Response are sample values reflected into schemas; nil means no body
type Operation struct {
	Method      string
	Path        string
	Summary     string
	Tag         string
	Request     any
	Response    any
	Status      int
	ContentType string
	Query       []string
	Secured     bool
}

// Documented is implemented by modules that contribute operations
type Documented interface {
	Operations() []Operation
}

// SpecMutator lets callers tweak the generated document before it is served
type SpecMutator func(map[string]any)

// Info heads the document
type Info struct {
	Title       string
	Description string
	Version     string
	// Root is the mount root, used as the server url
	Root string
}

var pathParam = regexp.MustCompile(`\{([^}/]+)\}`)

// Build reflects ops into an OpenAPI 3.0 document and applies the error defaults and mutators
func Build(info Info, ops []Operation, mutators ...SpecMutator) ([]byte, error) {
	spec := &openapi3.Spec{
		Openapi: "3.0.3",
		Info: openapi3.Info{
			Title:       info.Title,
			Description: strPtr(info.Description),
			Version:     info.Version,
		},
	}

	secured := false
	for _, o := range ops {
		op, err := operation(o)
		if err != nil {
			return nil, err
		}
		if o.Secured {
			secured = true
			op.WithSecurity(map[string][]string{securityScheme: {}})
		}
		if err := spec.AddOperation(o.Method, o.Path, op); err != nil {
			return nil, err
		}
	}
	if secured {
		spec.ComponentsEns().SecuritySchemesEns().WithMapOfSecuritySchemeOrRefValuesItem(
			securityScheme,
			openapi3.SecuritySchemeOrRef{
				SecurityScheme: &openapi3.SecurityScheme{
					HTTPSecurityScheme: &openapi3.HTTPSecurityScheme{Scheme: "bearer"},
				},
			},
		)
	}

	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	ensureServers(doc, info.Root)
	if err := ensureErrorResponseDefinition(doc); err != nil {
		return nil, err
	}
	addDefaultError(doc)
	addDefaultBadRequest(doc)
	for _, m := range mutators {
		if m != nil {
			m(doc)
		}
	}
	return json.Marshal(doc)
}

func operation(o Operation) (openapi3.Operation, error) {
	op := openapi3.Operation{Summary: strPtr(o.Summary)}
	if o.Tag != "" {
		op.Tags = []string{o.Tag}
	}

	for _, m := range pathParam.FindAllStringSubmatch(o.Path, -1) {
		op.Parameters = append(op.Parameters, parameter(m[1], openapi3.ParameterInPath, true))
	}
	for _, q := range o.Query {
		op.Parameters = append(op.Parameters, parameter(q, openapi3.ParameterInQuery, false))
	}

	if o.Request != nil {
		s, err := schemaOf(o.Request)
		if err != nil {
			return op, err
		}
		op.RequestBody = &openapi3.RequestBodyOrRef{
			RequestBody: &openapi3.RequestBody{
				Required: boolPtr(true),
				Content:  map[string]openapi3.MediaType{"application/json": {Schema: s}},
			},
		}
	}

	status := o.Status
	if status == 0 {
		status = http.StatusOK
	}
	resp := &openapi3.Response{Description: http.StatusText(status)}
	if o.Response != nil {
		s, err := schemaOf(o.Response)
		if err != nil {
			return op, err
		}
		ct := o.ContentType
		if ct == "" {
			ct = "application/json"
		}
		resp.Content = map[string]openapi3.MediaType{ct: {Schema: s}}
	}
	op.Responses = openapi3.Responses{
		MapOfResponseOrRefValues: map[string]openapi3.ResponseOrRef{
			strconv.Itoa(status): {Response: resp},
		},
	}
	return op, nil
}

func parameter(name string, in openapi3.ParameterIn, required bool) openapi3.ParameterOrRef {
	typ := openapi3.SchemaTypeString
	p := &openapi3.Parameter{
		Name:   name,
		In:     in,
		Schema: &openapi3.SchemaOrRef{Schema: &openapi3.Schema{Type: &typ}},
	}
	if required {
		p.Required = boolPtr(true)
	}
	return openapi3.ParameterOrRef{Parameter: p}
}

func schemaOf(v any) (*openapi3.SchemaOrRef, error) {
	js, err := stapi.NewReflector().Reflect(v, jsonschema.InlineRefs)
	if err != nil {
		return nil, err
	}
	var s openapi3.SchemaOrRef
	s.FromJSONSchema(js.ToSchemaOrBool())
	return &s, nil
}

// ensureServers pins the version and points the server list at the mount root
func ensureServers(spec map[string]any, root string) {
	spec["openapi"] = "3.0.3"
	if root == "" {
		root = "/"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": root}}
	}
}

// ensureErrorResponseDefinition reflects the runtime error envelope into components
func ensureErrorResponseDefinition(spec map[string]any) error {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return nil
	}
	js, err := stapi.NewReflector().Reflect(pnet.Wire{}, jsonschema.InlineRefs)
	if err != nil {
		return err
	}
	b, err := json.Marshal(js)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	m["description"] = "Standard error response"
	schemas["ErrorResponse"] = m
	return nil
}

func errorResponse(description string, example map[string]any) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// eachOperation visits operations in a stable order
func eachOperation(spec map[string]any, fn func(op map[string]any)) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		node, ok := paths[k].(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			fn(responses)
		}
	}
}

// addDefaultError injects a 502 and 500 response where an operation has none
func addDefaultError(spec map[string]any) {
	internal := errorResponse("Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "internal error",
		"request_id":  "579f33bf50b1/abc-000001",
	})
	gateway := errorResponse("Bad Gateway", map[string]any{
		"status_code": 502,
		"status":      "Bad Gateway",
		"code":        11,
		"error":       "tara get_suborder failed (upstream status 500)",
		"request_id":  "579f33bf50b1/abc-000002",
	})
	eachOperation(spec, func(responses map[string]any) {
		if _, exists := responses["500"]; !exists {
			responses["500"] = internal
		}
		if _, exists := responses["502"]; !exists {
			responses["502"] = gateway
		}
	})
}

// addDefaultBadRequest injects a 400 matching the binder output
func addDefaultBadRequest(spec map[string]any) {
	br := errorResponse("Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        8,
		"error":       "limit must be at least 1",
		"field":       "limit",
		"request_id":  "579f33bf50b1/abc-000003",
	})
	eachOperation(spec, func(responses map[string]any) {
		if _, exists := responses["400"]; !exists {
			responses["400"] = br
		}
	})
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolPtr(b bool) *bool { return &b }
