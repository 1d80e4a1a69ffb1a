package httpkit

import (
	"net/http"

	perrs "stapibridge/internal/platform/errors"

	"github.com/google/uuid"
)

// UUIDParam reads a path parameter that must be a UUID
// a malformed id is a validation error naming the parameter
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := Param(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, perrs.WithField(perrs.Validationf("%s %q is not a valid UUID", name, raw), name)
	}
	return id, nil
}
