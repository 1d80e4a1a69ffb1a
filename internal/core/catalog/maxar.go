package catalog

import (
	"encoding/json"

	"stapibridge/internal/core/stapi"
	perr "stapibridge/internal/platform/errors"
	"stapibridge/internal/platform/net/http/bind"
)

// KindMaxar is the schema family for Maxar optical tasking
const KindMaxar = "maxar"

// MaxarSatellites are the vehicles an order may be collected with
var MaxarSatellites = []string{"WV01", "WV02", "WV03", "GE01"}

// MaxarConstraints are the queryable constraints of the Maxar product
type MaxarConstraints struct {
	OffNadirAngle int    `json:"offNadirAngle" title:"Off nadir angle" minimum:"0" maximum:"45"`
	Sensor        string `json:"sensor"        title:"Sensor" enum:"WV01,WV02,WV03,GE01,LG01,LG02"`
}

// MaxarOpportunityProperties describe one acquisition opportunity
type MaxarOpportunityProperties struct {
	Datetime         stapi.DatetimeInterval `json:"datetime"         required:"true"`
	ProductID        string                 `json:"product_id"       required:"true"`
	Sensors          []string               `json:"sensors"          required:"true" validate:"dive,oneof=WV01 WV02 WV03 GE01 LG01 LG02"`
	MaxCloudCover    int                    `json:"maxCloudCover"    required:"true" minimum:"5" maximum:"100" validate:"min=5,max=100"`
	IsStereo         bool                   `json:"isStereo"         default:"false"`
	MinOffNadirAngle int                    `json:"minOffNadirAngle" required:"true" minimum:"0" maximum:"45" validate:"min=0,max=45"`
	MaxOffNadirAngle int                    `json:"maxOffNadirAngle" required:"true" minimum:"0" maximum:"45" validate:"min=0,max=45"`
}

// MaxarOrderParameters are the order parameters of the Maxar product
type MaxarOrderParameters struct {
	CustomerReference    string   `json:"customerReference"    title:"Customer Reference" description:"Free text parameter containing the client reference to the tasking order" default:""`
	OpportunityRequestID string   `json:"opportunityRequestId" title:"Opportunity Request Id" description:"ID returned from an opportunity request. Must be included to place order." default:""`
	EndUserIDs           string   `json:"endUserIds"           title:"EUSI Enduser ID" description:"EUSI assigned UUID of the end user" required:"true" validate:"required"`
	EndUseCode           string   `json:"endUseCode"           title:"EUSI Enduse Code" description:"End use code describing usage of the imagery" required:"true" validate:"required"`
	ProductLevel         string   `json:"productLevel"         title:"Product Level" description:"Production level to apply to delivered product" default:"OR2A" enum:"OR2A,ORTHO,2A" validate:"oneof=OR2A ORTHO 2A"`
	BandCombination      string   `json:"bandCombination"      title:"Band combination" description:"Band combination to apply to delivered product" default:"PAN" enum:"PAN,4BB,4PS,8BB" validate:"oneof=PAN 4BB 4PS 8BB"`
	Resolution           string   `json:"resolution"           title:"Resolution" description:"Ground sample distance in metres of the delivered product" default:"0.50" enum:"0.50,0.40,0.30" validate:"oneof=0.50 0.40 0.30"`
	Stereo               bool     `json:"stereo"               title:"Stereo" description:"Collect this suborder as in-track stereo" default:"false"`
	Vehicle              []string `json:"vehicle"              title:"Selected Vehicles" description:"Vehicles allowed for imagery collection" validate:"dive,oneof=WV01 WV02 WV03 GE01"`
}

// WithDefaults fills every unset optional parameter
func (p MaxarOrderParameters) WithDefaults() MaxarOrderParameters {
	if p.ProductLevel == "" {
		p.ProductLevel = "OR2A"
	}
	if p.BandCombination == "" {
		p.BandCombination = "PAN"
	}
	if p.Resolution == "" {
		p.Resolution = "0.50"
	}
	if len(p.Vehicle) == 0 {
		p.Vehicle = append([]string(nil), MaxarSatellites...)
	}
	return p
}

// DecodeOrderParameters reads and validates raw order_parameters
func DecodeOrderParameters(raw json.RawMessage) (MaxarOrderParameters, error) {
	var p MaxarOrderParameters
	if len(raw) == 0 || string(raw) == "null" {
		return p, perr.WithField(perr.Validationf("order_parameters is required"), "order_parameters")
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, perr.WithField(perr.Wrapf(err, perr.ErrorCodeJSON, "order_parameters is malformed"), "order_parameters")
	}
	p = p.WithDefaults()
	if err := bind.Validate(p, perr.ErrorCodeValidation); err != nil {
		return p, prefixField(err, "order_parameters")
	}
	return p, nil
}

func prefixField(err error, prefix string) error {
	if e, ok := perr.As(err); ok && e.Field() != "" {
		return perr.WithField(err, prefix+"."+e.Field())
	}
	return perr.WithField(err, prefix)
}
