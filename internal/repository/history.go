package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
)

const (
	dialogsBucket  = "dialogs"
	metadataBucket = "metadata"

	schemaVersionKey = "schema"
	schemaVersion    = "1"
)

// ErrRecordNotFound is returned when no dialog record has the requested ID.
var ErrRecordNotFound = errors.New("dialog record not found")

// Record is one shown dialog and what became of it.
type Record struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title,omitempty"`
	Body     string    `json:"body"`
	Icon     string    `json:"icon,omitempty"`
	Buttons  []string  `json:"buttons"`
	Shown    int       `json:"shown"`
	Pressed  string    `json:"pressed,omitempty"`
	ShownAt  time.Time `json:"shownAt"`
	ClosedAt time.Time `json:"closedAt,omitzero"`
}

// Overflow reports whether the dialog asked for more buttons than could be shown.
func (r *Record) Overflow() bool {
	return r.Shown < len(r.Buttons)
}

// Dismissed reports whether the dialog was closed without a button press.
func (r *Record) Dismissed() bool {
	return !r.ClosedAt.IsZero() && r.Pressed == ""
}

// BoltDBRepository stores the dialog history in BoltDB.
type BoltDBRepository struct {
	db *bolt.DB
}

// NewBoltDBRepository opens or creates the history database at dbPath.
func NewBoltDBRepository(dbPath string) (*BoltDBRepository, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(dialogsBucket)); err != nil {
			return fmt.Errorf("failed to create dialogs bucket: %w", err)
		}

		meta, err := tx.CreateBucketIfNotExists([]byte(metadataBucket))
		if err != nil {
			return fmt.Errorf("failed to create metadata bucket: %w", err)
		}

		if v := meta.Get([]byte(schemaVersionKey)); v != nil && !bytes.Equal(v, []byte(schemaVersion)) {
			return fmt.Errorf("unsupported history schema %q", v)
		}

		return meta.Put([]byte(schemaVersionKey), []byte(schemaVersion))
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &BoltDBRepository{
		db: db,
	}, nil
}

// Save inserts or replaces a record.
func (r *BoltDBRepository) Save(record *Record) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(dialogsBucket))
		if bucket == nil {
			return fmt.Errorf("bucket not found: %s", dialogsBucket)
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		err = bucket.Put([]byte(record.ID.String()), data)
		if err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})
}

// Update loads the record with id, applies fn and stores the result in one transaction.
func (r *BoltDBRepository) Update(id uuid.UUID, fn func(*Record)) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(dialogsBucket))
		if bucket == nil {
			return fmt.Errorf("bucket not found: %s", dialogsBucket)
		}

		data := bucket.Get([]byte(id.String()))
		if data == nil {
			return fmt.Errorf("%s: %w", id, ErrRecordNotFound)
		}

		var record Record
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		fn(&record)

		data, err := json.Marshal(&record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		return bucket.Put([]byte(id.String()), data)
	})
}

// Find retrieves a record by ID.
func (r *BoltDBRepository) Find(id uuid.UUID) (*Record, error) {
	var record *Record

	err := r.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(dialogsBucket))
		if bucket == nil {
			return fmt.Errorf("bucket not found: %s", dialogsBucket)
		}

		data := bucket.Get([]byte(id.String()))
		if data == nil {
			return fmt.Errorf("%s: %w", id, ErrRecordNotFound)
		}

		return json.Unmarshal(data, &record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// FindAll returns up to limit records, newest first. A limit <= 0 returns every record.
func (r *BoltDBRepository) FindAll(limit int) ([]*Record, error) {
	var records []*Record

	err := r.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(dialogsBucket))
		if bucket == nil {
			return fmt.Errorf("bucket not found: %s", dialogsBucket)
		}

		return bucket.ForEach(func(k, v []byte) error {
			var record Record
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			records = append(records, &record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ShownAt.After(records[j].ShownAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

// Delete removes a record.
func (r *BoltDBRepository) Delete(id uuid.UUID) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(dialogsBucket))
		if bucket == nil {
			return fmt.Errorf("bucket not found: %s", dialogsBucket)
		}

		return bucket.Delete([]byte(id.String()))
	})
}

// Close closes the database.
func (r *BoltDBRepository) Close() error {
	return r.db.Close()
}
