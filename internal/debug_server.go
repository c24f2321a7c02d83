package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"room-sync/domain"
	"strconv"
)

type StatsProvider func() any
type CaptureLister func(ctx context.Context) ([]domain.Capture, error)
type EventLister func(ctx context.Context, sessionID domain.SessionID) ([]domain.ConnectionEvent, error)

// DebugInspector exposes engine gauges and recording history as JSON.
// Listers may be nil when no store backs them.
type DebugInspector struct {
	Stats    StatsProvider
	Captures CaptureLister
	Events   EventLister
}

// Register mounts the inspector under prefix on mux.
func (d DebugInspector) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Stats())
	})
	mux.HandleFunc("GET "+prefix+"/captures", func(w http.ResponseWriter, r *http.Request) {
		if d.Captures == nil {
			http.Error(w, "no capture store", http.StatusNotFound)
			return
		}
		captures, err := d.Captures(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, captures)
	})
	mux.HandleFunc("GET "+prefix+"/connections", func(w http.ResponseWriter, r *http.Request) {
		if d.Events == nil {
			http.Error(w, "no metadata store", http.StatusNotFound)
			return
		}
		sessionID, err := strconv.ParseInt(r.URL.Query().Get("session"), 10, 64)
		if err != nil && r.URL.Query().Has("session") {
			http.Error(w, "bad session", http.StatusBadRequest)
			return
		}
		events, err := d.Events(r.Context(), domain.SessionID(sessionID))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, events)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
