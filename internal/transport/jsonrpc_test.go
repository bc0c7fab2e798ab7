package transport_test

import (
	"strings"
	"testing"

	"github.com/invmate/stocktake/internal/transport"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := transport.ParseRequest(strings.NewReader(
		`{"jsonrpc":"2.0","method":"scan_code","params":{"code":"W1"},"id":3}`))
	require.NoError(t, err)
	require.Equal(t, "scan_code", req.Method)
	require.JSONEq(t, `{"code":"W1"}`, string(req.Params))
	require.EqualValues(t, 3, req.ID)
}

func TestParseRequest_MalformedJSON(t *testing.T) {
	_, err := transport.ParseRequest(strings.NewReader(`{`))
	require.ErrorIs(t, err, transport.ErrParse)
}

func TestParseRequest_InvalidEnvelope(t *testing.T) {
	_, err := transport.ParseRequest(strings.NewReader(`{"method":"scan_code"}`))
	require.ErrorIs(t, err, transport.ErrInvalidRequest)

	_, err = transport.ParseRequest(strings.NewReader(`{"jsonrpc":"2.0"}`))
	require.ErrorIs(t, err, transport.ErrInvalidRequest)
}
