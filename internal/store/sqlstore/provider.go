package sqlstore

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/innerguide/guide-api/internal/store"
	"github.com/innerguide/guide-api/pkg/register"
	"github.com/innerguide/guide-api/pkg/sqlstore"
)

var provider = &Provider{
	stores: &Stores{},
}

func GetProvider() *Provider {
	return provider
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.JournalEntryStore
	store.MoodEntryStore
	store.SettingsStore
	store.UserPreferenceStore
	store.AIInsightStore
	store.LocalCopyStore
}

type RegisterKey struct{}

func MustSetup(cfg sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(cfg)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	if err := provider.Install(); err != nil {
		panic(fmt.Errorf("sqlstore install: %w", err))
	}

	return func() *Provider {
		return provider
	}
}

// Install creates the schema on first start, every statement is
// idempotent.
func (p *Provider) Install() error {
	for _, ddl := range createTableStatements {
		if _, err := p.GetMaster().Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) JournalEntryStore() store.JournalEntryStore {
	return p.stores.JournalEntryStore
}

func (p *Provider) MoodEntryStore() store.MoodEntryStore {
	return p.stores.MoodEntryStore
}

func (p *Provider) SettingsStore() store.SettingsStore {
	return p.stores.SettingsStore
}

func (p *Provider) UserPreferenceStore() store.UserPreferenceStore {
	return p.stores.UserPreferenceStore
}

func (p *Provider) AIInsightStore() store.AIInsightStore {
	return p.stores.AIInsightStore
}

func (p *Provider) LocalCopyStore() store.LocalCopyStore {
	return p.stores.LocalCopyStore
}
