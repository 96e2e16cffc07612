package upstream

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestCheckResponseSuccessRange(t *testing.T) {
	for _, status := range []int{200, 201, 204, 299} {
		resp := newResponse(status, `{"error":"should be ignored"}`)
		require.NoError(t, CheckResponse(resp), "status %d", status)
	}
}

func TestCheckResponseFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "structured error body",
			status:  http.StatusBadRequest,
			body:    `{"error":"X"}`,
			message: "X",
		},
		{
			name:    "raw text body",
			status:  http.StatusInternalServerError,
			body:    "boom",
			message: "boom",
		},
		{
			name:    "empty body",
			status:  http.StatusBadGateway,
			body:    "",
			message: FallbackErrorMessage,
		},
		{
			name:    "whitespace body",
			status:  http.StatusBadGateway,
			body:    "  \n ",
			message: FallbackErrorMessage,
		},
		{
			name:    "json without error field",
			status:  http.StatusConflict,
			body:    `{"detail":"other shape"}`,
			message: FallbackErrorMessage,
		},
		{
			name:    "json with non-string error field",
			status:  http.StatusConflict,
			body:    `{"error":42}`,
			message: FallbackErrorMessage,
		},
		{
			name:    "html error page",
			status:  http.StatusNotFound,
			body:    "<html>not here</html>",
			message: "<html>not here</html>",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckResponse(newResponse(tc.status, tc.body))
			require.Error(t, err)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			require.Equal(t, tc.status, apiErr.Status)
			require.Equal(t, tc.message, apiErr.Message)
			require.False(t, apiErr.Transport())
		})
	}
}

func TestTransportErrorHasNoStatus(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := NewTransportError(cause)

	require.True(t, err.Transport())
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "upstream call failed")
}
