// Package source loads survey records from either a local CSV dataset or a
// remote analytics endpoint. Loading is a one-shot operation: a failure is
// surfaced to the caller as terminal, never retried here.
package source

import (
	"context"
	"time"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// Result is a loaded dataset plus provenance.
type Result struct {
	Records   []survey.Record
	Summary   *survey.Summary // nil unless the endpoint variant returns one
	Origin    string          // file path or endpoint URL
	FetchedAt time.Time
}

// Source is anything that can produce the session's record set.
type Source interface {
	Load(ctx context.Context) (*Result, error)
}
