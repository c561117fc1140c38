package store

import (
	"sync"

	"github.com/ekomkassa/hubctl/internal/model"
)

// Store defines the local database operations used by the app: durable
// settings, hub connection profiles, and the sandbox send history.
type Store interface {
	Ping() error
	Close() error

	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error

	// Profile operations
	SaveProfile(profile *model.Profile) error
	GetProfile(name string) (*model.Profile, error)
	GetActiveProfile() (*model.Profile, error)
	SetActiveProfile(name string) error
	ListProfiles() ([]model.Profile, error)
	DeleteProfile(name string) error
	ProfileExists(name string) (bool, error)

	// Sandbox send history
	AppendSendRecord(record *model.SendRecord) error
	ListSendRecords(limit int) ([]model.SendRecord, error)
}

var (
	once sync.Once
	db   Store
)

// GetDB returns the initialized database store.
func GetDB() Store {
	once.Do(lazyInit)

	return db
}

func lazyInit() {
	instance, err := initDB()
	if err != nil {
		panic(err)
	}

	_ = instance.Ping()
	db = instance
}
