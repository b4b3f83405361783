package notify

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// maxInputBytes caps stdin reads. Hook payloads are small JSON objects;
// 1 MB is generous headroom that prevents unbounded allocation.
const maxInputBytes = 1 << 20

// Request is the hook payload Claude Code writes to stdin when it wants to
// alert the user. Session and transcript fields are opaque pass-through
// strings; no semantic validation is applied to them.
type Request struct {
	SessionID      string
	TranscriptPath string
	Message        string

	// Title is nil when the payload carries no title; the dispatcher then
	// falls back to DefaultTitle.
	Title *string
}

// rawRequest is the wire shape. Pointer fields distinguish absent fields
// from present-but-empty ones: validator's required rule on a pointer
// checks presence, so an empty message is accepted while a missing one is
// rejected. Unknown fields are ignored.
type rawRequest struct {
	SessionID      *string `json:"session_id" validate:"required"`
	TranscriptPath *string `json:"transcript_path" validate:"required"`
	Message        *string `json:"message" validate:"required"`
	Title          *string `json:"title"`
}

var validate = validator.New()

// ParseRequest reads one JSON hook payload from r. Read failures wrap
// ErrInputRead; malformed JSON and schema violations wrap ErrInputParse.
func ParseRequest(r io.Reader) (*Request, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	if len(data) > maxInputBytes {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrInputParse, maxInputBytes)
	}

	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputParse, err)
	}
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputParse, err)
	}

	return &Request{
		SessionID:      *raw.SessionID,
		TranscriptPath: *raw.TranscriptPath,
		Message:        *raw.Message,
		Title:          raw.Title,
	}, nil
}
