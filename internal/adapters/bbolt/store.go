// Package bbolt implements the ports.Storage interface using bbolt (embedded B+ tree).
// Each profile gets its own top-level bucket. Within it, the "metwords"
// sub-bucket holds one key per word and the "settings" key holds the user
// settings as JSON. Writes are transactional: a crash mid-write cannot
// corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jladdjr/typey-type/internal/domain/progress"
	"github.com/jladdjr/typey-type/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketMetWords = []byte("metwords")
	keySettings    = []byte("settings")
)

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.Storage = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// MetWords returns a profile's history ordered by count, then first-met order.
func (s *Store) MetWords(profile string) ([]ports.MetWord, error) {
	var words []ports.MetWord
	err := s.db.View(func(tx *bolt.Tx) error {
		mb := metWordsBucket(tx, profile)
		if mb == nil {
			return nil
		}
		return mb.ForEach(func(k, v []byte) error {
			w, err := decodeMetWord(k, v)
			if err != nil {
				return err
			}
			words = append(words, w)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if words == nil {
		return []ports.MetWord{}, nil
	}
	progress.Sort(words)
	return words, nil
}

// SaveMetWords replaces the full met-word history for a profile.
func (s *Store) SaveMetWords(profile string, words []ports.MetWord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		pb, err := tx.CreateBucketIfNotExists([]byte(profile))
		if err != nil {
			return err
		}
		if err := pb.DeleteBucket(bucketMetWords); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		mb, err := pb.CreateBucket(bucketMetWords)
		if err != nil {
			return err
		}
		for _, w := range words {
			if w.Word == "" {
				continue
			}
			if err := mb.Put([]byte(w.Word), encodeMetWord(w)); err != nil {
				return fmt.Errorf("put %q: %w", w.Word, err)
			}
		}
		return nil
	})
}

// RecordTyped counts one typing of each word in a single transaction.
// New words take first-met sequence numbers after the profile's highest.
func (s *Store) RecordTyped(profile string, typed ...string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		pb, err := tx.CreateBucketIfNotExists([]byte(profile))
		if err != nil {
			return err
		}
		mb, err := pb.CreateBucketIfNotExists(bucketMetWords)
		if err != nil {
			return err
		}

		var existing []ports.MetWord
		if err := mb.ForEach(func(k, v []byte) error {
			w, err := decodeMetWord(k, v)
			if err != nil {
				return err
			}
			existing = append(existing, w)
			return nil
		}); err != nil {
			return err
		}

		tr := progress.NewFromWords(existing)
		tr.Record(typed...)
		for _, word := range typed {
			w, ok := tr.Get(word)
			if !ok {
				continue
			}
			if err := mb.Put([]byte(word), encodeMetWord(w)); err != nil {
				return fmt.Errorf("put %q: %w", word, err)
			}
		}
		return nil
	})
}

// LoadSettings retrieves the user settings for a profile.
// Returns nil, nil if none were saved (fresh profile).
func (s *Store) LoadSettings(profile string) (*ports.UserSettings, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		pb := tx.Bucket([]byte(profile))
		if pb == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := pb.Get(keySettings); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var settings ports.UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings persists the user settings for a profile.
func (s *Store) SaveSettings(profile string, settings *ports.UserSettings) error {
	if settings == nil {
		return fmt.Errorf("nil settings")
	}
	if !settings.SpacePlacement.Valid() {
		return fmt.Errorf("%w: space placement %q", ports.ErrInvalidSettings, settings.SpacePlacement)
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		pb, err := tx.CreateBucketIfNotExists([]byte(profile))
		if err != nil {
			return err
		}
		return pb.Put(keySettings, data)
	})
}

// DeleteProfile removes all data (met words + settings) for a profile.
// Idempotent: deleting a nonexistent profile is not an error.
func (s *Store) DeleteProfile(profile string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(profile)); errors.Is(err, bolt.ErrBucketNotFound) {
			return nil // idempotent
		} else {
			return err
		}
	})
}

// Profiles lists the profiles with stored data.
func (s *Store) Profiles() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})
	return names, err
}

func metWordsBucket(tx *bolt.Tx, profile string) *bolt.Bucket {
	pb := tx.Bucket([]byte(profile))
	if pb == nil {
		return nil
	}
	return pb.Bucket(bucketMetWords)
}
