package models

const DEMO_USER_EMAIL = "demo@sentimentapi.com"

// User is the client-side session record. Token is empty for demo users.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

func (u User) Authenticated() bool {
	return u.Token != ""
}
