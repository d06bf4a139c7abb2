// Package httpapi exposes the solver as a small HTTP service: a POST /solve
// endpoint that accepts a layout document and returns solved symbol values
// plus diagnostics, the rendering-collaborator interface made remotely
// addressable, and a GET /ready liveness check.
//
// Grounded on grafana-tempo's cmd/tempo-federated-querier/handler package:
// a Handler struct holding dependencies, one exported *Handler method per
// route returning a plain http.HandlerFunc, wired into a gorilla/mux Router
// by the caller.
package httpapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"

	"github.com/santileortiz/layoutsolver/internal/format"
	"github.com/santileortiz/layoutsolver/internal/layout"
	"github.com/santileortiz/layoutsolver/internal/solver"
)

// Handler serves the solve endpoint. It holds only a logger: each request
// builds its own *solver.System, since the engine is strictly
// single-threaded and a System must never be shared across goroutines.
type Handler struct {
	logger log.Logger
}

// New creates a Handler. A nil logger is replaced with a no-op one.
func New(logger log.Logger) *Handler {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Handler{logger: logger}
}

// Register wires the handler's routes into r, the way
// cmd/tempo-federated-querier/handler.Handler.RegisterRoutes does.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/solve", h.SolveHandler).Methods(http.MethodPost)
	r.HandleFunc("/ready", h.ReadyHandler).Methods(http.MethodGet)
}

// ReadyHandler reports liveness.
func (h *Handler) ReadyHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// SolveHandler decodes a layout document from the request body (YAML or
// JSON, selected by Content-Type), compiles and solves it, and writes back
// a JSON body of solved symbols and diagnostic lines.
func (h *Handler) SolveHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var doc *format.Document
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		doc, err = format.DecodeYAML(body)
	} else {
		doc, err = format.DecodeJSON(body)
	}
	if err != nil {
		level.Warn(h.logger).Log("msg", "solve request: decode failed", "err", err)
		http.Error(w, "invalid layout document: "+err.Error(), http.StatusBadRequest)
		return
	}

	sys := solver.New(solver.WithLogger(h.logger))
	comp := layout.NewCompiler(sys)

	if _, err := format.Apply(doc, comp); err != nil {
		level.Warn(h.logger).Log("msg", "solve request: apply failed", "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	success, report := sys.Solve()

	symbols := format.BuildSolved(sys.Table)
	respBody, err := buildResponse(success, report.Lines(), symbols)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !success {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	_, _ = w.Write(respBody)
}
