package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// callerIdentity returns the identity stored by middleware.AuthRequired,
// answering 401 itself when it is absent.
func callerIdentity(w http.ResponseWriter, r *http.Request) (user.Identity, bool) {
	identity, ok := user.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrTokenMissing)
		return user.Identity{}, false
	}
	return identity, true
}

// pathID reads a UUID route parameter. A malformed id cannot name an
// existing row, so it is answered with notFound.
func pathID(w http.ResponseWriter, r *http.Request, name string, notFound error) (string, bool) {
	id := chi.URLParam(r, name)
	if !validator.IsValidUUID(id) {
		response.HandleError(w, notFound)
		return "", false
	}
	return id, true
}

// decodeJSON reads a request body into dst, rejecting fields dst does not
// declare.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
