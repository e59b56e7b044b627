package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const checkTimeout = 3 * time.Second

const (
	statusOK      = "ok"
	statusPending = "pending"
	statusDown    = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaReader reports the applied migration version and the newest one
// shipped with the binary.
type schemaReader interface {
	SchemaVersion(ctx context.Context) (applied, latest int64, err error)
}

// HealthHandler serves the liveness and readiness checks. An instance is ready only when the
// database answers and every embedded migration has been applied.
type HealthHandler struct {
	db      dbPinger
	schema  schemaReader
	version string
	clock   clockwork.Clock
}

func NewHealthHandler(db dbPinger, schema schemaReader, version string, clock clockwork.Clock) *HealthHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthHandler{db: db, schema: schema, version: version, clock: clock}
}

// HealthResponse is the body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Schema     *SchemaStatus         `json:"schema,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// SchemaStatus compares the database schema with the embedded migrations.
type SchemaStatus struct {
	Applied int64 `json:"applied"`
	Latest  int64 `json:"latest"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.clock.Now()})
}

// Ready answers 503 while the database is unreachable or migrations are
// pending, so traffic is held back during a rolling schema upgrade.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: h.clock.Now()})
		return
	}

	comp, schema := h.checkSchema(ctx)
	writeJSON(w, statusCode(comp.Status), HealthResponse{
		Status:    comp.Status,
		Schema:    schema,
		Timestamp: h.clock.Now(),
	})
}

// Health reports every component with the database round-trip time.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     statusOK,
		Version:    h.version,
		Components: make(map[string]CompStatus, 2),
	}

	start := h.clock.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = statusDown
		resp.Components["database"] = CompStatus{Status: statusDown}
		resp.Components["schema"] = CompStatus{Status: statusDown}
	} else {
		resp.Components["database"] = CompStatus{Status: statusOK, Latency: h.clock.Since(start).String()}

		comp, schema := h.checkSchema(ctx)
		resp.Components["schema"] = comp
		resp.Schema = schema
		resp.Status = comp.Status
	}

	resp.Timestamp = h.clock.Now()
	writeJSON(w, statusCode(resp.Status), resp)
}

func (h *HealthHandler) checkSchema(ctx context.Context) (CompStatus, *SchemaStatus) {
	applied, latest, err := h.schema.SchemaVersion(ctx)
	if err != nil {
		return CompStatus{Status: statusDown}, nil
	}
	st := &SchemaStatus{Applied: applied, Latest: latest}
	if applied < latest {
		return CompStatus{Status: statusPending}, st
	}
	return CompStatus{Status: statusOK}, st
}

func statusCode(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
