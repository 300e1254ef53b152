// Package httpfacade exposes a tiny, read-only HTTP view over a
// Store, standing in for the "embedding application" collaborator the
// spec assumes without implementing (no OPC UA wire codec or session
// layer — that is an explicit Non-goal). It lets an operator or a
// test script browse the address space with curl instead of writing
// Go against pkg/addrspace directly.
package httpfacade

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/uaspace/uaspace/pkg/addrspace"
	"github.com/uaspace/uaspace/pkg/ua"
)

// Server wraps an http.Server bound to read-only endpoints over a
// Store. It never mutates the address space — there is no POST route.
type Server struct {
	store *addrspace.Store
	http  *http.Server
}

// New builds a Server over store, listening at addr when Start is
// called.
func New(store *addrspace.Store, addr string) *Server {
	s := &Server{store: store}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/nodes/", s.handleNode)
	mux.HandleFunc("/stats", s.handleStats)
	s.http = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Start begins serving in a background goroutine. Callers use Stop to
// shut it down gracefully.
func (s *Server) Start() error {
	ln, err := newListener(s.http.Addr)
	if err != nil {
		return err
	}
	go s.http.Serve(ln)
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"nodeCount": s.store.Count()})
}

// handleNode serves GET /nodes/ns=<n>;i=<n> (or ;s=<string>), returning
// the node's attributes and reference edges as JSON. It never exposes
// DataSource/Lifecycle/AttachedMethod closures — those have no JSON
// representation (see pkg/ua/node.go's json:"-" tags) and are omitted
// silently rather than erroring.
func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/nodes/")
	id, err := parseNodeID(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	node, ok := s.store.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "node not found"})
		return
	}
	writeJSON(w, http.StatusOK, node)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// parseNodeID parses the "ns=<n>;i=<n>" / "ns=<n>;s=<string>" notation
// used throughout the OPC UA ecosystem for human-readable node ids.
func parseNodeID(raw string) (ua.NodeID, error) {
	var ns uint16
	var rest string
	parts := strings.SplitN(raw, ";", 2)
	if len(parts) == 2 && strings.HasPrefix(parts[0], "ns=") {
		n, err := strconv.Atoi(strings.TrimPrefix(parts[0], "ns="))
		if err != nil {
			return ua.NodeID{}, errInvalidNodeID
		}
		ns = uint16(n)
		rest = parts[1]
	} else {
		rest = raw
	}
	switch {
	case strings.HasPrefix(rest, "i="):
		n, err := strconv.ParseUint(strings.TrimPrefix(rest, "i="), 10, 32)
		if err != nil {
			return ua.NodeID{}, errInvalidNodeID
		}
		return ua.NewNumericNodeID(ns, uint32(n)), nil
	case strings.HasPrefix(rest, "s="):
		return ua.NewStringNodeID(ns, strings.TrimPrefix(rest, "s=")), nil
	default:
		return ua.NodeID{}, errInvalidNodeID
	}
}
