package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/domain"
)

func (s *Server) registerThemeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listThemes",
		Method:      http.MethodGet,
		Path:        "/api/v1/themes",
		Summary:     "List themes",
		Description: "Returns the available invite themes with their template messages",
		Tags:        []string{"Themes"},
	}, s.handleListThemes)
}

// ListThemesResponse contains the available themes.
type ListThemesResponse struct {
	Themes  []domain.ThemeInfo `json:"themes" doc:"Available themes in display order"`
	Default domain.Theme       `json:"default" doc:"Theme applied when none or an unknown one is requested"`
}

// ListThemesOutput wraps the themes response for Huma.
type ListThemesOutput struct {
	Body ListThemesResponse
}

func (s *Server) handleListThemes(_ context.Context, _ *struct{}) (*ListThemesOutput, error) {
	return &ListThemesOutput{
		Body: ListThemesResponse{
			Themes:  domain.Themes(),
			Default: domain.DefaultTheme,
		},
	}, nil
}
