package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON-RPC 2.0 protocol error codes.
const (
	ErrParseCode      = -32700
	ErrInvalidReq     = -32600
	ErrMethodNotFound = -32601
	ErrInvalidParams  = -32602
	ErrInternal       = -32603
)

// Malformed JSON and a well-formed but invalid envelope answer with
// different protocol codes, so ParseRequest tags them with distinct
// sentinels.
var (
	ErrParse          = errors.New("parse error")
	ErrInvalidRequest = errors.New("invalid request")
)

// Request is one JSON-RPC 2.0 call envelope. Params stay raw; the engine
// handler decodes them per method.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

// Response is the reply envelope. Exactly one of Result and Error is set.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
	ID      any    `json:"id,omitempty"`
}

// Error carries a protocol code plus an optional structured payload; the
// engine's coded errors ride in Data so callers can branch on them.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ParseRequest decodes one call envelope. A body that is not valid JSON is
// ErrParse; JSON that is not a JSON-RPC 2.0 call is ErrInvalidRequest.
func ParseRequest(body io.Reader) (Request, error) {
	var req Request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		return Request{}, ErrInvalidRequest
	}
	return req, nil
}

// WriteResult writes a success envelope for the given request id.
func WriteResult(w http.ResponseWriter, id any, result any) {
	writeJSON(w, Response{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	})
}

// WriteError writes an error envelope. Protocol-level failures pass a nil
// data payload; engine errors pass their coded form.
func WriteError(w http.ResponseWriter, id any, code int, message string, data any) {
	writeJSON(w, Response{
		JSONRPC: "2.0",
		Error: &Error{
			Code:    code,
			Message: message,
			Data:    data,
		},
		ID: id,
	})
}

// writeJSON always answers 200: JSON-RPC carries its own error channel, so
// HTTP status stays out of the protocol.
func writeJSON(w http.ResponseWriter, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(payload)
}
