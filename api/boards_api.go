package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

type RespHealth struct {
	Status string `json:"status"`
	Boards int    `json:"boards"`
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RespHealth{Status: "ok", Boards: s.BoardManager.Count()})
}

// HandleRandomBoard generates and registers a board.
// Query: size (default 10), seed (default: current time),
// fleet (standard|demo, default standard).
func (s *Server) HandleRandomBoard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	size := 0
	if raw := query.Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("size must be an integer: %w", err))
			return
		}
		size = parsed
	}

	seed := time.Now().UnixNano()
	if raw := query.Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("seed must be an integer: %w", err))
			return
		}
		seed = parsed
	}

	lengths, err := fleetFromName(query.Get("fleet"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	size, lengths = normalizeSetup(size, lengths)
	if err := validateSetup(size, lengths); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	rp := NewRequestProcessor(s.BoardManager, s.Analytics)
	managed, err := s.BoardManager.CreateBoard(size, lengths, seed)
	if err != nil {
		if errors.Is(err, cerr.ErrNoFit) {
			rp.recordPlacementFailure()
			writeJSONError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	rp.recordBoardGenerated()

	writeJSON(w, http.StatusCreated, mc.RespSetupComplete{BoardId: managed.Id(), Board: managed.Snapshot()})
}

func (s *Server) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	managed, err := s.BoardManager.GetBoard(mux.Vars(r)["id"])
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err)
		return
	}

	writeJSON(w, http.StatusOK, mc.RespSetupComplete{BoardId: managed.Id(), Board: managed.Snapshot()})
}

func (s *Server) HandleRenderBoard(w http.ResponseWriter, r *http.Request) {
	managed, err := s.BoardManager.GetBoard(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(managed.Render()))
}
