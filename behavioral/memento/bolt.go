package memento

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketSnapshots = "snapshots"

// BoltHistory persists snapshots in a bbolt database, keyed by a monotonic
// sequence so the last key is always the newest snapshot.
type BoltHistory struct {
	db *bolt.DB
}

// OpenBoltHistory opens (or creates) the database at path.
func OpenBoltHistory(path string) (*BoltHistory, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSnapshots))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history bucket: %w", err)
	}

	return &BoltHistory{db: db}, nil
}

func (h *BoltHistory) Push(ctx context.Context, s Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.Encode()
	if err != nil {
		return err
	}

	return h.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshots))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, data)
	})
}

func (h *BoltHistory) Pop(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	err := h.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshots))
		k, v := b.Cursor().Last()
		if k == nil {
			return ErrNoHistory
		}

		decoded, err := DecodeSnapshot(v)
		if err != nil {
			return err
		}
		snap = decoded
		return b.Delete(k)
	})
	return snap, err
}

func (h *BoltHistory) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int
	err := h.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketSnapshots)).Stats().KeyN
		return nil
	})
	return n, err
}

func (h *BoltHistory) Close() error {
	return h.db.Close()
}
