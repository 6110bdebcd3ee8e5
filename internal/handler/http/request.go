package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cert-keeper/internal/service"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
)

// pathID parses the positive integer URL parameter "id".
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingBody, err)
	}
	return nil
}

// sessionFromRequest returns the session id stored by [Handler.checkLogin].
func sessionFromRequest(r *http.Request) (string, error) {
	id, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		return "", service.ErrUnauthenticated
	}
	return id, nil
}
