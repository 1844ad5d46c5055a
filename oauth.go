package discord

// oauth.go contains the structures for the current oauth2 authorization.

// AuthorizationInformation represents the current oauth authorization.
type AuthorizationInformation struct {
	Expires     Timestamp   `json:"expires"`
	Application Application `json:"application"`
	User        User        `json:"user"`
	Scopes      StringList  `json:"scopes"`
}
