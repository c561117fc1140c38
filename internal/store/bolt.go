//go:build bolt

package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/ekomkassa/hubctl/internal/params"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const (
	boltBucketSettings    = "settings"     // key: name -> raw value
	boltBucketProfiles    = "profiles"     // key: name -> Profile JSON
	boltBucketSendHistory = "send_history" // key: sequence -> SendRecord JSON
)

const (
	boltKeyConfig        = "config"
	boltKeyActiveProfile = "active_profile"
)

// Bolt implements the Store interface using bbolt.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a new Bolt database at the specified path.
// This is primarily exposed for testing purposes.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{boltBucketSettings, boltBucketProfiles, boltBucketSendHistory} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func initDB() (Store, error) {
	path := filepath.Join(params.AppdataDir, "hubctl.bolt")

	return NewBolt(path)
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketSettings)).Get([]byte(boltKeyConfig))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &cfg)
	})
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSettings)).Put([]byte(boltKeyConfig), data)
	})
}

func (b *Bolt) SaveProfile(profile *model.Profile) error {
	if profile == nil || profile.Name == "" {
		return errors.New("profile name is required")
	}

	now := time.Now()

	if profile.UID == "" {
		profile.UID = uuid.New().String()
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketProfiles))

		if existing := bucket.Get([]byte(profile.Name)); existing != nil {
			var prev model.Profile
			if err := json.Unmarshal(existing, &prev); err == nil {
				profile.CreatedAt = prev.CreatedAt
				profile.UID = prev.UID
			}
		}

		if profile.CreatedAt.IsZero() {
			profile.CreatedAt = now
		}

		profile.UpdatedAt = now

		data, err := json.Marshal(profile)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(profile.Name), data)
	})
}

func (b *Bolt) GetProfile(name string) (*model.Profile, error) {
	var profile *model.Profile

	err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketProfiles)).Get([]byte(name))
		if data == nil {
			return nil
		}

		profile = &model.Profile{}

		return json.Unmarshal(data, profile)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (b *Bolt) GetActiveProfile() (*model.Profile, error) {
	var name string

	if err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketSettings)).Get([]byte(boltKeyActiveProfile))
		name = string(data)

		return nil
	}); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, nil
	}

	return b.GetProfile(name)
}

func (b *Bolt) SetActiveProfile(name string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketProfiles)).Get([]byte(name)) == nil {
			return fmt.Errorf("profile %q does not exist", name)
		}

		return tx.Bucket([]byte(boltBucketSettings)).Put([]byte(boltKeyActiveProfile), []byte(name))
	})
}

func (b *Bolt) ListProfiles() ([]model.Profile, error) {
	var profiles []model.Profile

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketProfiles)).ForEach(func(_, v []byte) error {
			var p model.Profile
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}

			profiles = append(profiles, p)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (b *Bolt) DeleteProfile(name string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(boltBucketProfiles)).Delete([]byte(name)); err != nil {
			return err
		}

		settings := tx.Bucket([]byte(boltBucketSettings))
		if string(settings.Get([]byte(boltKeyActiveProfile))) == name {
			return settings.Put([]byte(boltKeyActiveProfile), []byte(""))
		}

		return nil
	})
}

func (b *Bolt) ProfileExists(name string) (bool, error) {
	profile, err := b.GetProfile(name)
	if err != nil {
		return false, err
	}

	return profile != nil, nil
}

func (b *Bolt) AppendSendRecord(record *model.SendRecord) error {
	if record == nil {
		return errors.New("record is required")
	}

	if record.SentAt.IsZero() {
		record.SentAt = time.Now()
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketSendHistory))

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		record.ID = int64(seq)

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		return bucket.Put(key, data)
	})
}

func (b *Bolt) ListSendRecords(limit int) ([]model.SendRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var records []model.SendRecord

	err := b.storage.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket([]byte(boltBucketSendHistory)).Cursor()

		// Newest first
		for k, v := cursor.Last(); k != nil && len(records) < limit; k, v = cursor.Prev() {
			var r model.SendRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			records = append(records, r)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
