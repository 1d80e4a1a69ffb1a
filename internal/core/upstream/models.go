// Package upstream holds the TARA ordering and feasibility wire schema
// validate tags describe the shape the bridge relies on; payloads that break them are schema errors
package upstream

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// Order types carried in suborder parameters
const (
	OrderTypeTasking = "taskingOrder"
	OrderTypeArchive = "archiveOrder"
)

// StatusHistory is one transition in a status history, oldest first
type StatusHistory struct {
	OldStatus      string    `json:"oldStatus"`
	NewStatus      string    `json:"newStatus"      validate:"required"`
	ChangeDateTime time.Time `json:"changeDateTime" validate:"required"`
}

// TaskingParameters are the acquisition constraints of a tasking suborder
type TaskingParameters struct {
	TaskingScheme    string   `json:"taskingScheme"`
	TaskingPriority  string   `json:"taskingPriority"`
	MaxCloudCover    int      `json:"maxCloudCover"`
	MinOffNadirAngle int      `json:"minOffNadirAngle"`
	MaxOffNadirAngle int      `json:"maxOffNadirAngle"`
	Sensors          []string `json:"sensors"`
}

// TimeWindow is a candidate or requested acquisition window
type TimeWindow struct {
	SuccessRate     *int       `json:"successRate,omitempty"`
	TaskingWindowID *uuid.UUID `json:"taskingWindowId,omitempty"`
	StartDateTime   time.Time  `json:"startDateTime" validate:"required"`
	EndDateTime     time.Time  `json:"endDateTime"   validate:"required"`
}

// EndUser identifies who the imagery is licensed to
type EndUser struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// Parameters describe what a suborder asks for
type Parameters struct {
	OrderType         string             `json:"orderType"  validate:"required"`
	AoiName           string             `json:"aoiName"`
	Aoi               *geojson.Geometry  `json:"aoi"        validate:"required"`
	EndUseCode        string             `json:"endUseCode"`
	EndUsers          []EndUser          `json:"endUsers"   validate:"dive"`
	TaskingParameters *TaskingParameters `json:"taskingParameters,omitempty"`
}

// Suborder is one tasking or archive fulfillment line
type Suborder struct {
	OrderID               uuid.UUID       `json:"orderId"               validate:"required"`
	SuborderID            uuid.UUID       `json:"suborderId"            validate:"required"`
	CreateTime            string          `json:"createTime"`
	Subreference          string          `json:"subreference"`
	Provider              string          `json:"provider"`
	SuborderStatus        string          `json:"suborderStatus"`
	SuborderStatusHistory []StatusHistory `json:"suborderStatusHistory" validate:"dive"`
	Parameters            *Parameters     `json:"parameters,omitempty"`
	TaskingWindows        []TimeWindow    `json:"taskingWindows,omitempty" validate:"dive"`
}

// IsArchive reports whether the suborder is fulfilled from the archive
func (s Suborder) IsArchive() bool {
	return s.Parameters != nil && s.Parameters.OrderType == OrderTypeArchive
}

// Order groups suborders under one customer reference
type Order struct {
	OrderID                uuid.UUID       `json:"orderId"            validate:"required"`
	OrderType              string          `json:"orderType"`
	CreateTime             *time.Time      `json:"createTime,omitempty"`
	CustomerReference      string          `json:"customerReference"`
	PurchaseOrderNo        string          `json:"purchaseOrderNo"`
	DeliverySitePathPrefix *string         `json:"deliverySitePathPrefix"`
	TimeQuoted             time.Time       `json:"timeQuoted"`
	DeliverySiteID         *string         `json:"deliverySiteId"`
	OrderStatus            string          `json:"orderStatus"`
	OrderStatusHistory     []StatusHistory `json:"orderStatusHistory" validate:"dive"`
	Suborders              []Suborder      `json:"suborders,omitempty" validate:"dive"`
	SuborderIDs            []uuid.UUID     `json:"suborderIds,omitempty"`
}

// FeasibilityRequest asks the provider when an area can be imaged
type FeasibilityRequest struct {
	Resolution      float64           `json:"resolution"`
	MaxCloudCover   int               `json:"maxCloudCover"`
	Sensors         []string          `json:"sensors"`
	IsStereo        bool              `json:"isStereo"`
	TaskingPriority string            `json:"taskingPriority"`
	TimeWindows     []TimeWindow      `json:"timeWindows"`
	AreaOfInterest  *geojson.Geometry `json:"areaOfInterest"`
}

// FeasibilitySyncResponse acknowledges a feasibility request
type FeasibilitySyncResponse struct {
	FeasibilityRequestID uuid.UUID `json:"feasibility_request_id" validate:"required"`
	Message              string    `json:"message"`
}

// FeasibilityAsyncResponse is the polled result of a feasibility request
// the provider omits the id from this body; the client fills it in
type FeasibilityAsyncResponse struct {
	FeasibilityRequestID uuid.UUID    `json:"feasibility_request_id" validate:"required"`
	TaskingWindows       []TimeWindow `json:"taskingWindows"         validate:"dive"`
	Status               string       `json:"status"                 validate:"required"`
}

// ProductionParameters control how delivered imagery is processed
type ProductionParameters struct {
	ProductLevel     string  `json:"productLevel"`
	BandCombination  string  `json:"bandCombination"`
	Resolution       float64 `json:"resolution"`
	BitDepth         int     `json:"bitDepth"`
	ResamplingKernel string  `json:"resamplingKernel"`
	DRA              bool    `json:"dra"`
	ACOMP            bool    `json:"acomp"`
	Projection       string  `json:"projection"`
	Priority         string  `json:"priority"`
	Format           string  `json:"format"`
	Tiling           string  `json:"tiling"`
	FullStrip        bool    `json:"fullStrip"`
	Stereo           bool    `json:"stereo"`
	FullOverlap      bool    `json:"fullOverlap"`
}

// DefaultProductionParameters returns the provider's documented defaults
func DefaultProductionParameters() ProductionParameters {
	return ProductionParameters{
		ProductLevel:     "OR2A",
		BandCombination:  "4BB",
		Resolution:       0.5,
		BitDepth:         16,
		ResamplingKernel: "CC",
		Projection:       "UTM_WGS84_Meter",
		Priority:         "Standard",
		Format:           "GeoTIFF",
		Tiling:           "16kx16k",
	}
}

// License defaults applied to every quoted suborder
const (
	LicenseTypeInternal   = "Internal"
	LicenseTermsPerpetual = "Perpetual"
)

// QuoteParameters describe one suborder in a quote request
type QuoteParameters struct {
	OrderType            string               `json:"orderType"`
	AoiName              string               `json:"aoiName"`
	Aoi                  *geojson.Geometry    `json:"aoi"`
	FeasibilityID        string               `json:"feasibilityId"`
	ProductionParameters ProductionParameters `json:"productionParameters"`
	LicenseType          string               `json:"licenseType"`
	LicenseTerms         string               `json:"licenseTerms"`
	EndUseCode           string               `json:"endUseCode"`
	EndUserIDs           []string             `json:"endUserIds"`
}

// QuoteSuborder is one line of a quote request
type QuoteSuborder struct {
	Subreference string          `json:"subreference"`
	Provider     string          `json:"provider"`
	Parameters   QuoteParameters `json:"parameters"`
}

// QuoteRequest prices an order before it is accepted
type QuoteRequest struct {
	CustomerReference string          `json:"customerReference"`
	PurchaseOrderNo   string          `json:"purchaseOrderNo"`
	Suborders         []QuoteSuborder `json:"suborders"`
}

// QuoteResponse carries the quoted order
type QuoteResponse struct {
	Status           int    `json:"status"`
	Message          string `json:"message"`
	OrderInformation Order  `json:"orderInformation" validate:"required"`
}

// OrderAcceptRequest accepts a quoted order
type OrderAcceptRequest struct {
	OrderID uuid.UUID `json:"orderId"`
}

// OrderAcceptResponse carries the accepted order with its suborders
type OrderAcceptResponse struct {
	Message          string `json:"message"`
	OrderInformation Order  `json:"orderInformation" validate:"required"`
}
