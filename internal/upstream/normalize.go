package upstream

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// FallbackErrorMessage is used when a failed response carries no
// readable message at all.
const FallbackErrorMessage = "the API returned an error but no message could be read"

type errorBodyKind int

const (
	errorBodyEmpty errorBodyKind = iota
	errorBodyStructured
	errorBodyRawText
)

// errorBody is the classified content of a failed response.
type errorBody struct {
	kind    errorBodyKind
	message string
}

// classifyErrorBody inspects a failed response body. A JSON object with
// a top-level string "error" field is structured; any other non-empty
// non-JSON body is raw text; everything else (empty body, or JSON
// without a usable "error" field) is empty.
func classifyErrorBody(raw []byte) errorBody {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return errorBody{kind: errorBodyEmpty}
	}
	if !json.Valid(trimmed) {
		return errorBody{kind: errorBodyRawText, message: string(raw)}
	}
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Error != "" {
		return errorBody{kind: errorBodyStructured, message: envelope.Error}
	}
	return errorBody{kind: errorBodyEmpty}
}

// CheckResponse classifies a completed upstream response. Statuses in
// the success range pass through untouched; anything else consumes the
// body exactly once and returns an APIError with the best message the
// body yields. No retries happen here.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	message := FallbackErrorMessage
	if body := classifyErrorBody(raw); body.kind != errorBodyEmpty {
		message = body.message
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}
