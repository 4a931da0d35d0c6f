// Package securitylog keeps the bounded audit trail of authentication events.
// When full, the oldest event is dropped first.
package securitylog

import (
	"context"

	"github.com/dmitrijs2005/krishi/internal/client/models"
)

const (
	Key = "ks_security_log"

	DefaultLimit = 1000
)

type Repository interface {
	Append(ctx context.Context, e models.SecurityEvent) error
	// List returns events oldest first.
	List(ctx context.Context) ([]models.SecurityEvent, error)
}
