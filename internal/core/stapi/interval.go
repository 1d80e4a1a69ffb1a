package stapi

import (
	"encoding/json"
	"strings"
	"time"

	perr "stapibridge/internal/platform/errors"
)

// DatetimeInterval is a closed time range that travels as "start/end" on the wire
type DatetimeInterval struct {
	Start time.Time
	End   time.Time
}

// Interval builds a DatetimeInterval from two instants
func Interval(start, end time.Time) DatetimeInterval {
	return DatetimeInterval{Start: start, End: end}
}

// IsZero reports whether neither bound is set
func (d DatetimeInterval) IsZero() bool { return d.Start.IsZero() && d.End.IsZero() }

// String renders the interval in RFC 3339 "start/end" form
func (d DatetimeInterval) String() string {
	return d.Start.Format(time.RFC3339Nano) + "/" + d.End.Format(time.RFC3339Nano)
}

// MarshalJSON implements json.Marshaler
func (d DatetimeInterval) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON accepts "start/end" or a two element array of timestamps
func (d *DatetimeInterval) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := ParseInterval(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	var pair []time.Time
	if err := json.Unmarshal(b, &pair); err != nil || len(pair) != 2 {
		return perr.Newf(perr.ErrorCodeJSON, "datetime must be a \"start/end\" interval")
	}
	return d.set(pair[0], pair[1])
}

// ParseInterval parses "start/end" where both bounds are RFC 3339 timestamps
func ParseInterval(s string) (DatetimeInterval, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return DatetimeInterval{}, perr.Newf(perr.ErrorCodeJSON, "datetime %q is not a start/end interval", s)
	}
	start, err := time.Parse(time.RFC3339Nano, left)
	if err != nil {
		return DatetimeInterval{}, perr.Wrapf(err, perr.ErrorCodeJSON, "datetime start %q", left)
	}
	end, err := time.Parse(time.RFC3339Nano, right)
	if err != nil {
		return DatetimeInterval{}, perr.Wrapf(err, perr.ErrorCodeJSON, "datetime end %q", right)
	}
	var out DatetimeInterval
	if err := out.set(start, end); err != nil {
		return DatetimeInterval{}, err
	}
	return out, nil
}

func (d *DatetimeInterval) set(start, end time.Time) error {
	if end.Before(start) {
		return perr.Newf(perr.ErrorCodeJSON, "datetime end precedes start")
	}
	d.Start, d.End = start, end
	return nil
}
