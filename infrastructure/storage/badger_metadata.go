package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"room-sync/contract"
	"room-sync/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var _ contract.IMetadataStore = (*BadgerMetadataStore)(nil)

const (
	connectionPrefix = "conn:"
	capturePrefix    = "capture:"
)

// BadgerMetadataStore is the embedded alternative to the SQLite store.
// Connection events are keyed conn:{session}:{timestamp}:{uuid} so that a
// prefix scan returns one session's history in time order.
type BadgerMetadataStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerMetadataStore(db *badger.DB, log *slog.Logger) *BadgerMetadataStore {
	return &BadgerMetadataStore{db: db, log: log}
}

func connectionKey(evt domain.ConnectionEvent) []byte {
	return []byte(fmt.Sprintf("%s%d:%020d:%s", connectionPrefix, evt.SessionID, evt.Timestamp, uuid.NewString()))
}

func captureKey(captureID string) []byte {
	return []byte(capturePrefix + captureID)
}

func (s *BadgerMetadataStore) LogConnectionEvent(_ context.Context, evt domain.ConnectionEvent) error {
	data, err := marshal(evt)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(connectionKey(evt), data)
	})
}

func (s *BadgerMetadataStore) StartCapture(_ context.Context, capture domain.Capture) error {
	data, err := marshal(capture)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(captureKey(capture.CaptureID), data)
	})
}

func (s *BadgerMetadataStore) EndCapture(_ context.Context, captureID string, end int64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(captureKey(captureID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("end capture %s: no such capture", captureID)
		}
		if err != nil {
			return err
		}
		var capture domain.Capture
		if err := item.Value(func(val []byte) error {
			return unmarshal(val, &capture)
		}); err != nil {
			return err
		}
		capture.End = end
		data, err := marshal(capture)
		if err != nil {
			return err
		}
		return txn.Set(captureKey(captureID), data)
	})
}

func (s *BadgerMetadataStore) ListCaptures(_ context.Context) ([]domain.Capture, error) {
	var captures []domain.Capture
	err := s.scan([]byte(capturePrefix), func(val []byte) error {
		var capture domain.Capture
		if err := unmarshal(val, &capture); err != nil {
			return err
		}
		captures = append(captures, capture)
		return nil
	})
	return captures, err
}

// ListConnectionEvents returns the events of one session, or of every
// session when sessionID is zero.
func (s *BadgerMetadataStore) ListConnectionEvents(_ context.Context, sessionID domain.SessionID) ([]domain.ConnectionEvent, error) {
	prefix := connectionPrefix
	if sessionID != 0 {
		prefix = fmt.Sprintf("%s%d:", connectionPrefix, sessionID)
	}
	var events []domain.ConnectionEvent
	err := s.scan([]byte(prefix), func(val []byte) error {
		var evt domain.ConnectionEvent
		if err := unmarshal(val, &evt); err != nil {
			return err
		}
		events = append(events, evt)
		return nil
	})
	return events, err
}

func (s *BadgerMetadataStore) scan(prefix []byte, fn func(val []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}
