package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/askyourcrush/askyourcrush-server/internal/errors"
)

// handleError converts a service error into a huma status error carrying the
// domain code and status. Errors that surface as 5xx are logged.
func (s *Server) handleError(ctx context.Context, op string, err error) error {
	var domainErr *domainerrors.Error
	if !errors.As(err, &domainErr) || domainErr.HTTPStatus() >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx, "request failed",
			"op", op,
			"error", err,
		)
	}
	return huma.NewError(http.StatusInternalServerError, "internal server error", err)
}
