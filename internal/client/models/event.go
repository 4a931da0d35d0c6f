package models

import "time"

type EventKind string

const (
	EventAccountCreated EventKind = "account_created"
	EventLoginSuccess   EventKind = "login_success"
	EventLoginFailed    EventKind = "login_failed"
	EventLogout         EventKind = "logout"
)

// SecurityEvent is an audit record. For failed logins Subject is the raw
// identifier that was typed, otherwise the user id.
type SecurityEvent struct {
	Event     EventKind `json:"event"`
	Subject   string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"userAgent"`
	IP        string    `json:"ip"`
}
