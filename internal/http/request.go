package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/catalog-service/pkg/zerror"
)

var (
	errInvalidBody = zerror.NewBadRequest("INVALID_BODY", "Invalid request body")
	errInvalidID   = zerror.NewBadRequest("INVALID_ID", "Invalid id")
)

// decodeJSON decodes the request body into dst, rejecting unknown fields
// so malformed payloads fail before business validation.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errInvalidBody.WrapParent(err)
	}

	return nil
}

// uuidParam parses the named chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errInvalidID.WrapParent(err)
	}

	return id, nil
}
