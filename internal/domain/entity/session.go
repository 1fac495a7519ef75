package entity

// User is the minimal profile kept alongside the tokens of a session.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

// Session is the authenticated identity of one browser context.
// It is decoded from the session cookie on every request and never cached.
type Session struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// AnonymousSession returns the zero session used when no valid cookie is present.
func AnonymousSession() *Session {
	return &Session{}
}

// Authenticated reports whether the session carries an access token.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}
