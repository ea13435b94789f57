package connection

const (
	CodeSessionID uint8 = iota

	// Client asks for a random board; server answers with one
	// CodePlacement per piece and then CodeSetupComplete
	CodeGenerateBoard
	CodePlacement
	CodeSetupComplete
	CodePieceDoesNotFit

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
	CodeInvalidPayload
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
