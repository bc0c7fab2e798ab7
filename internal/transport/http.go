package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/invmate/stocktake/internal/api"
)

// EngineHandler handles engine method dispatch.
type EngineHandler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// Server wires HTTP handlers.
type Server struct {
	handler EngineHandler
}

// NewServer creates an HTTP router exposing the engine over JSON-RPC.
func NewServer(handler EngineHandler) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{handler: handler}

	r.Post("/rpc", srv.handleRPC)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		code := ErrInvalidReq
		if errors.Is(err, ErrParse) {
			code = ErrParseCode
		}
		WriteError(w, nil, code, err.Error(), nil)
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		var apiErr *api.APIError
		switch {
		case errors.As(err, &apiErr):
			WriteError(w, req.ID, ErrInternal, apiErr.Message, apiErr)
		case errors.Is(err, api.ErrUnknownMethod):
			WriteError(w, req.ID, ErrMethodNotFound, err.Error(), nil)
		case errors.Is(err, api.ErrInvalidParams):
			WriteError(w, req.ID, ErrInvalidParams, err.Error(), nil)
		default:
			WriteError(w, req.ID, ErrInternal, err.Error(), nil)
		}
		return
	}

	WriteResult(w, req.ID, result)
}
