package responses

// AccessToken is the token-endpoint response. It is a value, not a managed
// resource: the caller decides whether and how long to reuse it.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}
