package models

// HelixUnauthorized is the error envelope helix answers a 401 with.
type HelixUnauthorized struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// OAuthTokenInvalid is the id.twitch.tv reply for an expired or revoked token.
type OAuthTokenInvalid struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
