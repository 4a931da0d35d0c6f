// Package repomanager vends the typed repositories over a kv.Repository, so
// services can bind them either to the store or to one transaction.
package repomanager

import (
	"github.com/dmitrijs2005/krishi/internal/client/repositories/kv"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/securitylog"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/users"
)

type RepositoryManager interface {
	Users(r kv.Repository) users.Repository
	Sessions(r kv.Repository) sessions.Repository
	SecurityLog(r kv.Repository) securitylog.Repository
	Preferences(r kv.Repository) preferences.Repository
}

// KVRepositoryManager stores every record as JSON in the kv table.
type KVRepositoryManager struct {
	// SecurityLogLimit caps the audit trail; zero means securitylog.DefaultLimit.
	SecurityLogLimit int
}

func New() *KVRepositoryManager {
	return &KVRepositoryManager{}
}

func (m *KVRepositoryManager) Users(r kv.Repository) users.Repository {
	return users.NewKVRepository(r)
}

func (m *KVRepositoryManager) Sessions(r kv.Repository) sessions.Repository {
	return sessions.NewKVRepository(r)
}

func (m *KVRepositoryManager) SecurityLog(r kv.Repository) securitylog.Repository {
	return securitylog.NewKVRepository(r, m.SecurityLogLimit)
}

func (m *KVRepositoryManager) Preferences(r kv.Repository) preferences.Repository {
	return preferences.NewKVRepository(r)
}
