package storage

import (
	"cmp"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"room-sync/contract"
	"room-sync/domain"
	"slices"
	"strconv"
)

const captureFile = "data"

var _ contract.ICaptureRepository = (*CaptureRepository)(nil)

// CaptureRepository stores recordings as JSON arrays under
// {root}/{session}/{start}/data.
type CaptureRepository struct {
	root string
	log  *slog.Logger
}

func NewCaptureRepository(root string, log *slog.Logger) *CaptureRepository {
	return &CaptureRepository{root: root, log: log}
}

func (r *CaptureRepository) dir(sessionID domain.SessionID, start int64) string {
	return filepath.Join(r.root, sessionID.String(), strconv.FormatInt(start, 10))
}

// Path returns the location of the data file of a capture.
func (r *CaptureRepository) Path(sessionID domain.SessionID, start int64) string {
	return filepath.Join(r.dir(sessionID, start), captureFile)
}

// Create prepares the directory of a capture when recording starts.
func (r *CaptureRepository) Create(sessionID domain.SessionID, start int64) error {
	dir := r.dir(sessionID, start)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create capture directory %s: %w", dir, err)
	}
	r.log.Debug("Created capture directory", "path", dir)
	return nil
}

// Save writes the records of a finished recording. The file is written
// next to its final name first, then renamed.
func (r *CaptureRepository) Save(sessionID domain.SessionID, start int64, records []domain.RecordedMessage) error {
	if records == nil {
		records = []domain.RecordedMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode capture %s: %w", domain.NewCaptureID(sessionID, start), err)
	}
	if err := r.Create(sessionID, start); err != nil {
		return err
	}
	path := r.Path(sessionID, start)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write capture %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename capture %s: %w", path, err)
	}
	r.log.Info("Wrote capture", "path", path, "records", len(records))
	return nil
}

func (r *CaptureRepository) Load(sessionID domain.SessionID, start int64) ([]domain.RecordedMessage, error) {
	path := r.Path(sessionID, start)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture %s: %w", path, err)
	}
	var records []domain.RecordedMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode capture %s: %w", path, err)
	}
	return records, nil
}

// List walks the capture root and returns every capture that has a data
// file, ordered by session then start.
func (r *CaptureRepository) List() ([]domain.Capture, error) {
	sessions, err := os.ReadDir(r.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list captures in %s: %w", r.root, err)
	}
	var captures []domain.Capture
	for _, sessionDir := range sessions {
		sessionID, err := strconv.ParseInt(sessionDir.Name(), 10, 64)
		if !sessionDir.IsDir() || err != nil {
			continue
		}
		starts, err := os.ReadDir(filepath.Join(r.root, sessionDir.Name()))
		if err != nil {
			r.log.Warn("Skipping unreadable capture directory", "session_id", sessionID, "error", err)
			continue
		}
		for _, startDir := range starts {
			start, err := strconv.ParseInt(startDir.Name(), 10, 64)
			if !startDir.IsDir() || err != nil {
				continue
			}
			if _, err := os.Stat(r.Path(domain.SessionID(sessionID), start)); err != nil {
				continue
			}
			captures = append(captures, domain.Capture{
				CaptureID: domain.NewCaptureID(domain.SessionID(sessionID), start),
				SessionID: domain.SessionID(sessionID),
				Start:     start,
			})
		}
	}
	slices.SortFunc(captures, func(a, b domain.Capture) int {
		return cmp.Or(cmp.Compare(a.SessionID, b.SessionID), cmp.Compare(a.Start, b.Start))
	})
	return captures, nil
}
