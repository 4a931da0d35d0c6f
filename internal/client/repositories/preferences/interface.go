// Package preferences persists client-wide settings that outlive a session.
package preferences

import "context"

const LanguageKey = "ks_premium_language"

type Repository interface {
	// Language returns "" when no choice has been stored.
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, code string) error
}
