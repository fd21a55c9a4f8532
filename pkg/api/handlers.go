package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/marcusj6/JumpSearchTree/pkg/bench"
	"github.com/marcusj6/JumpSearchTree/pkg/bptree"
	"github.com/marcusj6/JumpSearchTree/pkg/dictionary"
)

// Server holds the API server state.
type Server struct {
	registry TreeRegistry
	config   ServerConfig
	metrics  *bench.Metrics
}

// NewServer creates a new API server.
func NewServer(registry TreeRegistry, config ServerConfig, metrics *bench.Metrics) *Server {
	return &Server{
		registry: registry,
		config:   config,
		metrics:  metrics,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// treeOrDefault returns the named tree, creating it with the server's
// default (k, b) if it does not already exist.
func (s *Server) treeOrDefault(name string) dictionary.Dictionary {
	return s.registry.GetOrCreate(name, s.config.DefaultK, s.config.DefaultB)
}

// handlePutKey upserts a (key, value) pair into the named tree.
func (s *Server) handlePutKey(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")
	key, err := strconv.ParseInt(chi.URLParam(r, "key"), 10, 32)
	if err != nil {
		sendError(w, "key must be an integer", http.StatusBadRequest)
		return
	}

	var body KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid request body, expected {\"value\": <int32>}", http.StatusBadRequest)
		return
	}

	tree := s.treeOrDefault(name)
	unlock := s.registry.Lock(name)
	tree.InsertKey(int32(key), body.Value)
	rebuilt := tree.LastOpRebuilt()
	unlock()

	if s.metrics != nil {
		s.metrics.RecordOp(name, "insert", true, time.Since(start))
		s.metrics.UpdateTreeStats(name, tree.TreeHeight(), tree.Size(), tree.AverageNodeSize())
		if rebuilt {
			s.metrics.RecordRebuild(name)
		}
	}

	sendSuccess(w, map[string]interface{}{"rebuilt": rebuilt})
}

// handleGetKey looks up a key in the named tree.
func (s *Server) handleGetKey(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")
	key, err := strconv.ParseInt(chi.URLParam(r, "key"), 10, 32)
	if err != nil {
		sendError(w, "key must be an integer", http.StatusBadRequest)
		return
	}

	tree, exists := s.registry.Get(name)
	if !exists {
		sendError(w, fmt.Sprintf("tree %q not found", name), http.StatusNotFound)
		return
	}

	value := tree.Search(int32(key))
	found := value != bptree.NotFound

	if s.metrics != nil {
		s.metrics.RecordOp(name, "search", found, time.Since(start))
	}

	if !found {
		sendError(w, "key not found", http.StatusNotFound)
		return
	}
	sendSuccess(w, map[string]int32{"value": value})
}

// handleDeleteKey removes a key from the named tree, if present.
func (s *Server) handleDeleteKey(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")
	key, err := strconv.ParseInt(chi.URLParam(r, "key"), 10, 32)
	if err != nil {
		sendError(w, "key must be an integer", http.StatusBadRequest)
		return
	}

	tree, exists := s.registry.Get(name)
	if !exists {
		sendError(w, fmt.Sprintf("tree %q not found", name), http.StatusNotFound)
		return
	}

	unlock := s.registry.Lock(name)
	tree.DeleteKey(int32(key))
	rebuilt := tree.LastOpRebuilt()
	unlock()

	if s.metrics != nil {
		s.metrics.RecordOp(name, "delete", true, time.Since(start))
		s.metrics.UpdateTreeStats(name, tree.TreeHeight(), tree.Size(), tree.AverageNodeSize())
		if rebuilt {
			s.metrics.RecordRebuild(name)
		}
	}

	sendSuccess(w, map[string]interface{}{"rebuilt": rebuilt})
}

// handleHeight reports the named tree's current height.
func (s *Server) handleHeight(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tree, exists := s.registry.Get(name)
	if !exists {
		sendError(w, fmt.Sprintf("tree %q not found", name), http.StatusNotFound)
		return
	}
	sendSuccess(w, map[string]int{"height": tree.TreeHeight()})
}

// handlePrint writes the debug dump described by spec.md §6 as a JSON
// string field, so any JSON client can read it.
func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tree, exists := s.registry.Get(name)
	if !exists {
		sendError(w, fmt.Sprintf("tree %q not found", name), http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	tree.Print(&buf)
	sendSuccess(w, map[string]string{"dump": buf.String()})
}

// handleConstruct bulk-loads the named tree from a posted workload of
// {"key": ..., "value": ...} records, replacing its prior contents via an
// offline rebuild.
func (s *Server) handleConstruct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")

	var body struct {
		Records []bptree.Record `json:"records"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid request body, expected {\"records\": [{\"key\":..,\"value\":..}]}", http.StatusBadRequest)
		return
	}

	tree := s.treeOrDefault(name)
	unlock := s.registry.Lock(name)
	tree.Construct(body.Records)
	unlock()

	if s.metrics != nil {
		s.metrics.RecordOp(name, "construct", true, time.Since(start))
		s.metrics.UpdateTreeStats(name, tree.TreeHeight(), tree.Size(), tree.AverageNodeSize())
	}

	sendSuccess(w, map[string]int{"size": tree.Size(), "height": tree.TreeHeight()})
}

// handleListTrees lists every tree name currently registered.
func (s *Server) handleListTrees(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string][]string{"trees": s.registry.Names()})
}
