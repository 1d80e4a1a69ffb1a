// Package stapi holds the STAPI wire model served by the bridge
package stapi

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"
)

// Conformance classes advertised by the bridge
const (
	ConformanceCore               = "https://stapi.example.com/v0.1.0/core"
	ConformanceOpportunities      = "https://stapi.example.com/v0.1.0/opportunities"
	ConformanceAsyncOpportunities = "https://stapi.example.com/v0.1.0/async-opportunities"
)

// Link is a typed hyperlink
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Type   string `json:"type,omitempty"`
	Method string `json:"method,omitempty"`
	Title  string `json:"title,omitempty"`
}

// OrderStatusCode is the STAPI order lifecycle vocabulary
type OrderStatusCode string

// Order status codes
const (
	OrderReceived     OrderStatusCode = "received"
	OrderAccepted     OrderStatusCode = "accepted"
	OrderRejected     OrderStatusCode = "rejected"
	OrderCompleted    OrderStatusCode = "completed"
	OrderCanceled     OrderStatusCode = "canceled"
	OrderScheduled    OrderStatusCode = "scheduled"
	OrderHeld         OrderStatusCode = "held"
	OrderProcessing   OrderStatusCode = "processing"
	OrderReserved     OrderStatusCode = "reserved"
	OrderTasked       OrderStatusCode = "tasked"
	OrderUserCanceled OrderStatusCode = "user_canceled"
)

// OrderStatus is one point in an order's history
type OrderStatus struct {
	Timestamp  time.Time       `json:"timestamp"`
	StatusCode OrderStatusCode `json:"status_code"`
	ReasonCode string          `json:"reason_code,omitempty"`
	ReasonText string          `json:"reason_text,omitempty"`
	Links      []Link          `json:"links"`
}

// OrderSearchParameters echoes what the order was searched with
type OrderSearchParameters struct {
	Datetime DatetimeInterval  `json:"datetime"`
	Geometry *geojson.Geometry `json:"geometry"`
	Filter   map[string]any    `json:"filter,omitempty"`
}

// OrderProperties are the feature properties of an Order
type OrderProperties struct {
	ProductID             string                `json:"product_id"`
	Created               string                `json:"created"`
	Status                OrderStatus           `json:"status"`
	SearchParameters      OrderSearchParameters `json:"search_parameters"`
	OpportunityProperties any                   `json:"opportunity_properties"`
	OrderParameters       any                   `json:"order_parameters"`
}

// Order is a GeoJSON Feature describing one order
type Order struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Geometry   *geojson.Geometry `json:"geometry"`
	Properties OrderProperties   `json:"properties"`
	Links      []Link            `json:"links"`
}

// OrderCollection is a page of orders
type OrderCollection struct {
	Type     string  `json:"type"`
	Features []Order `json:"features"`
	Links    []Link  `json:"links"`
}

// OrderStatuses is a page of order statuses
type OrderStatuses struct {
	Statuses []OrderStatus `json:"statuses"`
	Links    []Link        `json:"links"`
}

// OrderPayload is the body of a create order request
// OrderParameters stays raw until the product decodes it against its own schema
type OrderPayload struct {
	Datetime        DatetimeInterval  `json:"datetime"`
	Geometry        *geojson.Geometry `json:"geometry" validate:"required"`
	Filter          map[string]any    `json:"filter,omitempty"`
	OrderParameters json.RawMessage   `json:"order_parameters" validate:"required"`
}

// SearchStatusCode is the STAPI opportunity search vocabulary
type SearchStatusCode string

// Opportunity search status codes
const (
	SearchReceived   SearchStatusCode = "received"
	SearchInProgress SearchStatusCode = "in_progress"
	SearchFailed     SearchStatusCode = "failed"
	SearchCanceled   SearchStatusCode = "canceled"
	SearchCompleted  SearchStatusCode = "completed"
)

// SearchStatus is one point in a search record's history
type SearchStatus struct {
	Timestamp  time.Time        `json:"timestamp"`
	StatusCode SearchStatusCode `json:"status_code"`
	ReasonCode string           `json:"reason_code,omitempty"`
	ReasonText string           `json:"reason_text,omitempty"`
	Links      []Link           `json:"links"`
}

// OpportunityPayload is the body of an opportunity search
type OpportunityPayload struct {
	Datetime DatetimeInterval  `json:"datetime"`
	Geometry *geojson.Geometry `json:"geometry" validate:"required"`
	Filter   map[string]any    `json:"filter,omitempty"`
	Next     string            `json:"next,omitempty"`
	Limit    int               `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// SearchRecord tracks one asynchronous opportunity search
type SearchRecord struct {
	ID                 string             `json:"id"`
	ProductID          string             `json:"product_id"`
	OpportunityRequest OpportunityPayload `json:"opportunity_request"`
	Status             SearchStatus       `json:"status"`
	Links              []Link             `json:"links"`
}

// SearchRecords is a page of search records
type SearchRecords struct {
	SearchRecords []SearchRecord `json:"search_records"`
	Links         []Link         `json:"links"`
}

// SearchStatuses is the status history of one search record
type SearchStatuses struct {
	Statuses []SearchStatus `json:"statuses"`
	Links    []Link         `json:"links"`
}

// Opportunity is a GeoJSON Feature describing one candidate acquisition
type Opportunity struct {
	Type       string            `json:"type"`
	ID         string            `json:"id,omitempty"`
	Geometry   *geojson.Geometry `json:"geometry"`
	Properties any               `json:"properties"`
	Links      []Link            `json:"links"`
}

// OpportunityCollection is the result set of a search
type OpportunityCollection struct {
	Type     string        `json:"type"`
	ID       string        `json:"id,omitempty"`
	Features []Opportunity `json:"features"`
	Links    []Link        `json:"links"`
}

// ProviderRole describes what a provider does for a product
type ProviderRole string

// Provider roles
const (
	RoleLicensor  ProviderRole = "licensor"
	RoleProducer  ProviderRole = "producer"
	RoleProcessor ProviderRole = "processor"
	RoleHost      ProviderRole = "host"
)

// Provider is an organization behind a product
type Provider struct {
	Name        string         `json:"name"        yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description"`
	Roles       []ProviderRole `json:"roles"       yaml:"roles"`
	URL         string         `json:"url"         yaml:"url"`
}

// Product describes something that can be searched and ordered
type Product struct {
	Type        string     `json:"type"`
	ConformsTo  []string   `json:"conformsTo"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Keywords    []string   `json:"keywords"`
	License     string     `json:"license"`
	Providers   []Provider `json:"providers"`
	Links       []Link     `json:"links"`
}

// ProductCollection lists products
type ProductCollection struct {
	Type     string    `json:"type"`
	Products []Product `json:"products"`
	Links    []Link    `json:"links"`
}

// Conformance lists conformance classes
type Conformance struct {
	ConformsTo []string `json:"conformsTo"`
}

// Landing is the root document
type Landing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ConformsTo  []string `json:"conformsTo"`
	Links       []Link   `json:"links"`
}

// Feature and collection type names
const (
	TypeFeature           = "Feature"
	TypeFeatureCollection = "FeatureCollection"
	TypeProduct           = "Product"
	TypeProductCollection = "ProductCollection"
)
