package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rcabral/shortly/internal/middleware"
)

// RegisterRoutes registers the link and user routes. Operations that set
// middleware.RequiresAuth in their metadata are guarded by the bearer-token
// gate.
func RegisterRoutes(api huma.API, links *LinkHandler, users *UserHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-link",
		Method:        http.MethodPost,
		Path:          "/",
		Summary:       "Create short URL",
		Description:   "Shortens a URL. Shortening the same URL twice returns a conflict carrying the existing code.",
		Tags:          []string{"Links"},
		DefaultStatus: http.StatusCreated,
	}, links.CreateLink)

	huma.Register(api, huma.Operation{
		OperationID: "list-links",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "List short URLs",
		Tags:        []string{"Links"},
	}, links.ListLinks)

	huma.Register(api, huma.Operation{
		OperationID: "unsupported-delete",
		Method:      http.MethodDelete,
		Path:        "/",
		Summary:     "Unsupported delete",
		Description: "Deleting without a code is not supported.",
		Tags:        []string{"Links"},
	}, links.UnsupportedDelete)

	huma.Register(api, huma.Operation{
		OperationID: "list-codes",
		Method:      http.MethodGet,
		Path:        "/keys",
		Summary:     "List short codes",
		Tags:        []string{"Links"},
	}, links.ListCodes)

	huma.Register(api, huma.Operation{
		OperationID: "link-stats",
		Method:      http.MethodGet,
		Path:        "/stats/{id}",
		Summary:     "Visit statistics for a short URL",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			middleware.RequiresAuth: true,
		},
	}, links.LinkStats)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/{id}",
		Summary:     "Redirect to target URL",
		Tags:        []string{"Links"},
	}, links.Redirect)

	huma.Register(api, huma.Operation{
		OperationID: "update-link",
		Method:      http.MethodPut,
		Path:        "/{id}",
		Summary:     "Update target URL",
		Description: "Replaces the target of an existing short link. Requires authentication.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			middleware.RequiresAuth: true,
		},
	}, links.UpdateLink)

	huma.Register(api, huma.Operation{
		OperationID: "delete-link",
		Method:      http.MethodDelete,
		Path:        "/{id}",
		Summary:     "Delete short URL",
		Tags:        []string{"Links"},
	}, links.DeleteLink)

	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Register user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, users.RegisterUser)

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/users/login",
		Summary:     "Log in",
		Description: "Verifies credentials and returns a bearer token valid for 24 hours.",
		Tags:        []string{"Users"},
	}, users.Login)

	huma.Register(api, huma.Operation{
		OperationID:   "change-password",
		Method:        http.MethodPut,
		Path:          "/users",
		Summary:       "Change password",
		Description:   "Rotates the account password. Requires authentication and the current password.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusOK,
		Metadata: map[string]any{
			middleware.RequiresAuth: true,
		},
	}, users.ChangePassword)
}
