package storage

import (
	"context"
	"fmt"
	"log/slog"
	"room-sync/contract"
	"room-sync/domain"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var _ contract.IMetadataStore = (*SQLiteMetadataStore)(nil)

const metadataSchema = `
CREATE TABLE IF NOT EXISTS connections (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp  INTEGER NOT NULL,
	session_id INTEGER NOT NULL,
	client_id  INTEGER NOT NULL,
	event      TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS connections_by_session ON connections (session_id, timestamp);
CREATE TABLE IF NOT EXISTS captures (
	capture_id TEXT    PRIMARY KEY,
	session_id INTEGER NOT NULL,
	start      INTEGER NOT NULL,
	"end"      INTEGER
);
`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA temp_store=MEMORY",
}

// SQLiteMetadataStore keeps the connections and captures tables in a
// SQLite file. Use ":memory:" with a pool size of 1 in tests.
type SQLiteMetadataStore struct {
	pool *sqlitex.Pool
	log  *slog.Logger
}

func NewSQLiteMetadataStore(path string, poolSize int, log *slog.Logger) (*SQLiteMetadataStore, error) {
	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    poolSize,
		PrepareConn: prepareConn,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	log.Info("SQLite metadata store opened", "path", path, "pool_size", poolSize)
	return &SQLiteMetadataStore{pool: pool, log: log}, nil
}

func prepareConn(conn *sqlite.Conn) error {
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if err := sqlitex.ExecuteScript(conn, metadataSchema, nil); err != nil {
		return fmt.Errorf("metadata schema: %w", err)
	}
	return nil
}

func (s *SQLiteMetadataStore) Close() error {
	return s.pool.Close()
}

func (s *SQLiteMetadataStore) LogConnectionEvent(ctx context.Context, evt domain.ConnectionEvent) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("take sqlite conn: %w", err)
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`INSERT INTO connections (timestamp, session_id, client_id, event) VALUES (?, ?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{evt.Timestamp, int64(evt.SessionID), int64(evt.ClientID), evt.Event}})
	if err != nil {
		return fmt.Errorf("insert connection event: %w", err)
	}
	return nil
}

func (s *SQLiteMetadataStore) StartCapture(ctx context.Context, capture domain.Capture) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("take sqlite conn: %w", err)
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`INSERT INTO captures (capture_id, session_id, start) VALUES (?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{capture.CaptureID, int64(capture.SessionID), capture.Start}})
	if err != nil {
		return fmt.Errorf("insert capture %s: %w", capture.CaptureID, err)
	}
	return nil
}

func (s *SQLiteMetadataStore) EndCapture(ctx context.Context, captureID string, end int64) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("take sqlite conn: %w", err)
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn, `UPDATE captures SET "end" = ? WHERE capture_id = ?`,
		&sqlitex.ExecOptions{Args: []any{end, captureID}})
	if err != nil {
		return fmt.Errorf("update capture %s: %w", captureID, err)
	}
	if conn.Changes() == 0 {
		return fmt.Errorf("update capture %s: no such capture", captureID)
	}
	return nil
}

func (s *SQLiteMetadataStore) ListCaptures(ctx context.Context) ([]domain.Capture, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("take sqlite conn: %w", err)
	}
	defer s.pool.Put(conn)

	var captures []domain.Capture
	err = sqlitex.Execute(conn, `SELECT capture_id, session_id, start, "end" FROM captures ORDER BY start, capture_id`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			capture := domain.Capture{
				CaptureID: stmt.ColumnText(0),
				SessionID: domain.SessionID(stmt.ColumnInt64(1)),
				Start:     stmt.ColumnInt64(2),
			}
			if !stmt.ColumnIsNull(3) {
				capture.End = stmt.ColumnInt64(3)
			}
			captures = append(captures, capture)
			return nil
		}})
	if err != nil {
		return nil, fmt.Errorf("list captures: %w", err)
	}
	return captures, nil
}

// ListConnectionEvents returns the events of one session, or of every
// session when sessionID is zero, oldest first.
func (s *SQLiteMetadataStore) ListConnectionEvents(ctx context.Context, sessionID domain.SessionID) ([]domain.ConnectionEvent, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("take sqlite conn: %w", err)
	}
	defer s.pool.Put(conn)

	query := `SELECT timestamp, session_id, client_id, event FROM connections ORDER BY timestamp, id`
	var args []any
	if sessionID != 0 {
		query = `SELECT timestamp, session_id, client_id, event FROM connections WHERE session_id = ? ORDER BY timestamp, id`
		args = []any{int64(sessionID)}
	}

	var events []domain.ConnectionEvent
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			events = append(events, domain.ConnectionEvent{
				Timestamp: stmt.ColumnInt64(0),
				SessionID: domain.SessionID(stmt.ColumnInt64(1)),
				ClientID:  domain.ClientID(stmt.ColumnInt64(2)),
				Event:     stmt.ColumnText(3),
			})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list connection events: %w", err)
	}
	return events, nil
}
