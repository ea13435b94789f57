package connection

import (
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespPlacement struct {
	Step  int              `json:"step"`
	Piece mb.PieceSnapshot `json:"piece"`
	Rows  []string         `json:"rows"`
}

type RespSetupComplete struct {
	BoardId string           `json:"board_id"`
	Board   mb.BoardSnapshot `json:"board"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
