package mapping

import (
	"strings"
	"time"

	"stapibridge/internal/core/stapi"
)

// Env is what projections need besides the payload itself
type Env struct {
	// ProductID is stamped on every projected record
	ProductID string
	// UpstreamBase is the provider base URL links point at
	UpstreamBase string
	// Now stands in for timestamps the provider does not report
	Now time.Time
}

func (e Env) upstreamLink(rel string, segments ...string) stapi.Link {
	return stapi.Link{
		Href: strings.TrimRight(e.UpstreamBase, "/") + "/api/v1/" + strings.Join(segments, "/"),
		Rel:  rel,
		Type: "application/json",
	}
}
