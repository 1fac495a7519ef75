package service

import "time"

// TokenInspector reads claims from upstream access tokens without verifying them.
// The gateway never trusts these claims for authorization; they only inform the UI.
type TokenInspector interface {
	// ExpiresAt returns the token expiry when the token is a JWT carrying exp.
	ExpiresAt(token string) (time.Time, bool)
}
