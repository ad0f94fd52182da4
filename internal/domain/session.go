package domain

import "time"

type Admin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a Admin) CanUseDashboard() bool {
	return a.Role == "admin" || a.Role == "super_admin"
}

// Session lives in redis. Token is the upstream bearer token and never
// leaves the server.
type Session struct {
	ID        string    `json:"id"`
	Admin     Admin     `json:"admin"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
