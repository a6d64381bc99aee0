package handlers

import "time"

// CreateLinkRequest is the body for shortening a URL. Fields are validated
// by hand so failures surface as 400s in the service's own error shape.
type CreateLinkRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"url,omitempty"`
	}
}

// CreateLinkResponse is returned when a new short link is allocated.
type CreateLinkResponse struct {
	Headers struct {
		Location string `doc:"The short URL location" header:"Location"`
	}
	Body struct {
		GeneratedURI string    `doc:"The generated short code"            example:"Ab3xYz9Q"                          json:"generated_uri"`
		ShortURL     string    `doc:"The externally visible short URL"    example:"http://localhost:8888/Ab3xYz9Q"    json:"short_url"`
		URL          string    `doc:"The target URL"                      example:"https://example.com/very/long/path" json:"url"`
		CreatedAt    time.Time `doc:"Creation timestamp"                  json:"created_at"`
	}
}

// RedirectRequest identifies the short link to follow.
type RedirectRequest struct {
	ID string `doc:"The short code" example:"Ab3xYz9Q" path:"id"`
}

// RedirectResponse redirects to the stored target URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The target URL" header:"Location"`
	}
}

// UpdateLinkRequest replaces the target of an existing short link.
type UpdateLinkRequest struct {
	ID   string `doc:"The short code" path:"id"`
	Body struct {
		URL string `doc:"The new target URL" json:"url,omitempty"`
	}
}

// MessageResponse carries a one-line confirmation.
type MessageResponse struct {
	Body struct {
		Message string `doc:"Confirmation message" json:"message"`
	}
}

// DeleteLinkRequest identifies the short link to remove.
type DeleteLinkRequest struct {
	ID string `doc:"The short code" path:"id"`
}

// LinkSummary is one entry of the listing.
type LinkSummary struct {
	GeneratedURI string    `doc:"The short code"                   json:"generated_uri"`
	ShortURL     string    `doc:"The externally visible short URL" json:"short_url"`
	URL          string    `doc:"The target URL"                   json:"url"`
	CreatedAt    time.Time `doc:"Creation timestamp"               json:"created_at"`
}

// ListLinksResponse lists all live links, newest first.
type ListLinksResponse struct {
	Body []LinkSummary
}

// ListCodesResponse lists the codes of all live links.
type ListCodesResponse struct {
	Body []string
}

// LinkStatsRequest identifies the short link to report on.
type LinkStatsRequest struct {
	ID string `doc:"The short code" path:"id"`
}

// LinkStatsResponse reports accumulated visit counts for one link.
type LinkStatsResponse struct {
	Body struct {
		GeneratedURI string `doc:"The short code"        json:"generated_uri"`
		Visits       int64  `doc:"Recorded redirections" json:"visits"`
	}
}

// RegisterUserRequest creates an account. Role defaults to regular when the
// field is absent.
type RegisterUserRequest struct {
	Body struct {
		Username string  `doc:"Account name, at least 5 alphanumerics/underscores" json:"username,omitempty"`
		Password string  `doc:"Password meeting the strength rules"                json:"password,omitempty"`
		Role     *string `doc:"Account role: admin or regular"                     json:"role,omitempty"`
	}
}

// RegisterUserResponse is an empty 201.
type RegisterUserResponse struct{}

// LoginRequest authenticates an account.
type LoginRequest struct {
	Body struct {
		Username string `doc:"Account name" json:"username,omitempty"`
		Password string `doc:"Password"     json:"password,omitempty"`
	}
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Body struct {
		AccessToken string `doc:"Signed bearer token, valid 24h" json:"access_token"`
	}
}

// ChangePasswordRequest rotates an account password. Requires a valid
// bearer token plus proof of the current password.
type ChangePasswordRequest struct {
	Body struct {
		Username    string `doc:"Account name"         json:"username,omitempty"`
		OldPassword string `doc:"Current password"     json:"old_password,omitempty"`
		NewPassword string `doc:"Replacement password" json:"new_password,omitempty"`
	}
}

// ChangePasswordResponse is an empty 200.
type ChangePasswordResponse struct{}
