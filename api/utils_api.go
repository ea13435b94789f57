package api

import (
	"encoding/json"
	"log"
	"net/http"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

const (
	maxBoardSize int = 50
	maxFleetSize int = 20

	FleetStandard = "standard"
	FleetDemo     = "demo"
)

// Zero values mean defaults: a 10x10 board and the standard fleet.
func normalizeSetup(size int, lengths []int) (int, []int) {
	if size == 0 {
		size = mb.DefaultBoardSize
	}
	if len(lengths) == 0 {
		lengths = mb.StandardFleet
	}
	return size, lengths
}

func validateSetup(size int, lengths []int) error {
	if size <= 0 {
		return cerr.ErrBoardSize(size)
	}
	if size > maxBoardSize {
		return cerr.ErrBoardTooLarge(size, maxBoardSize)
	}
	if len(lengths) > maxFleetSize {
		return cerr.ErrFleetTooLarge(len(lengths), maxFleetSize)
	}
	for _, length := range lengths {
		if length < 0 {
			return cerr.ErrInvalidLength(length)
		}
	}
	return nil
}

func fleetFromName(name string) ([]int, error) {
	switch name {
	case "", FleetStandard:
		return mb.StandardFleet, nil
	case FleetDemo:
		return mb.DemoFleet, nil
	default:
		return nil, cerr.ErrInvalidFleet(name)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to encode json response:", err)
	}
}

type RespHTTPErr struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, RespHTTPErr{Error: err.Error()})
}
