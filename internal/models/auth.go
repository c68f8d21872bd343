package models

// EnterPasswordRequest is the request body for POST /api/enter_password/
type EnterPasswordRequest struct {
	Password string `json:"password"`
}

// EnterPasswordResponse reports whether the shared passphrase matched.
// A wrong passphrase is a 200 with is_authenticated=false, not an error.
type EnterPasswordResponse struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	Token           string `json:"token,omitempty"`
}

// AuthStatusResponse is returned by GET /api/auth_status/
type AuthStatusResponse struct {
	IsAuthenticated bool `json:"is_authenticated"`
}

// CSRFResponse carries the token in the body as well as the csrftoken
// cookie, so clients behind cookie-stripping proxies can still bootstrap
type CSRFResponse struct {
	CSRFToken string `json:"csrf_token"`
}
