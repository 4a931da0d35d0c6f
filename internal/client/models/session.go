package models

import "time"

// Session is the single active login on this client.
type Session struct {
	UserID  string    `json:"userId"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
	IP      string    `json:"ip"`
}

// ValidAt reports whether the session has not yet expired at now.
func (s *Session) ValidAt(now time.Time) bool {
	return s.Expires.After(now)
}
