package models

// Session is the identity attached to an authenticated client.
// A nil or zero session means the client is not logged in.
type Session struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
