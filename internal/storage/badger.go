// ABOUTME: Embedded key/value movement store backed by badger.
// ABOUTME: Emulates the SQLite id and unique-name constraints in one transaction.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/lift/internal/models"
)

const (
	movementIDPrefix   = "movement:id:"
	movementNamePrefix = "movement:name:"
	lastIDKey          = "meta:last_id"
)

// BadgerStore keeps movements in a badger database directory.
type BadgerStore struct {
	db  *badger.DB
	dir string
}

// Compile-time check that BadgerStore implements Repository.
var _ Repository = (*BadgerStore)(nil)

// OpenBadger opens or creates a badger store rooted at dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &BadgerStore{db: db, dir: dir}, nil
}

// Close closes the badger database.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// idKey zero-pads ids so lexical key order matches numeric order.
func idKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", movementIDPrefix, id))
}

func nameKey(name string) []byte {
	return []byte(movementNamePrefix + name)
}

// CreateMovement stores a movement, assigning the next id when m.ID is zero.
func (s *BadgerStore) CreateMovement(ctx context.Context, m *models.Movement) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("create movement %q: %w", m.Name, err)
	}

	var assigned int64
	err := s.db.Update(func(txn *badger.Txn) error {
		lastID, err := readInt(txn, []byte(lastIDKey))
		if err != nil {
			return err
		}

		id := m.ID
		if id == 0 {
			id = lastID + 1
		} else if _, err := txn.Get(idKey(id)); err == nil {
			return fmt.Errorf("%w: %d", ErrDuplicateID, id)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if _, err := txn.Get(nameKey(m.Name)); err == nil {
			return fmt.Errorf("%w: %s", ErrDuplicateName, m.Name)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		record := *m
		record.ID = id
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal movement: %w", err)
		}
		if err := txn.Set(idKey(id), data); err != nil {
			return err
		}
		if err := txn.Set(nameKey(m.Name), []byte(strconv.FormatInt(id, 10))); err != nil {
			return err
		}
		if id > lastID {
			if err := txn.Set([]byte(lastIDKey), []byte(strconv.FormatInt(id, 10))); err != nil {
				return err
			}
		}
		assigned = id
		return nil
	})
	if err != nil {
		return fmt.Errorf("create movement %q: %w", m.Name, err)
	}

	m.ID = assigned
	return nil
}

// GetMovement retrieves a movement by its exact name.
func (s *BadgerStore) GetMovement(ctx context.Context, name string) (*models.Movement, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get movement %q: %w", name, err)
	}

	var m models.Movement
	err := s.db.View(func(txn *badger.Txn) error {
		id, err := readInt(txn, nameKey(name))
		if err != nil {
			return err
		}
		if id == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		item, err := txn.Get(idKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &m)
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get movement %q: %w", name, err)
	}
	return &m, nil
}

// ListMovements returns every movement in id order.
func (s *BadgerStore) ListMovements(ctx context.Context) ([]*models.Movement, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}

	movements := []*models.Movement{}
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(movementIDPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m models.Movement
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			movements = append(movements, &m)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

// DeleteMovement removes the movement with exactly this name, if any.
func (s *BadgerStore) DeleteMovement(ctx context.Context, name string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("delete movement %q: %w", name, err)
	}

	var affected int64
	err := s.db.Update(func(txn *badger.Txn) error {
		id, err := readInt(txn, nameKey(name))
		if err != nil || id == 0 {
			return err
		}
		if err := txn.Delete(idKey(id)); err != nil {
			return err
		}
		if err := txn.Delete(nameKey(name)); err != nil {
			return err
		}
		affected = 1
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete movement %q: %w", name, err)
	}
	return affected, nil
}

// readInt reads a decimal value stored at key. A missing key reads as zero.
func readInt(txn *badger.Txn, key []byte) (int64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var n int64
	err = item.Value(func(val []byte) error {
		parsed, parseErr := strconv.ParseInt(string(val), 10, 64)
		n = parsed
		return parseErr
	})
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}
	return n, nil
}
