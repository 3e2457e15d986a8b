package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// Endpoint fetches records from the remote analytics API. Two deployment
// variants exist: one returns {records, summary}, the other {salary_trends}.
// Both are accepted from the same response shape.
type Endpoint struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

// NewEndpoint returns an endpoint source with a bounded request timeout.
func NewEndpoint(url string, logger *zap.Logger) *Endpoint {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Endpoint{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
		Logger: logger,
	}
}

type endpointPayload struct {
	Records      []survey.Record `json:"records"`
	SalaryTrends []survey.Record `json:"salary_trends"`
	Summary      *survey.Summary `json:"summary"`
}

// Load performs the one-shot fetch. There is no retry policy: a network or
// decode failure is the terminal "could not load data" state for the session.
func (e *Endpoint) Load(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch records: endpoint returned %s", resp.Status)
	}

	var payload endpointPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := payload.Records
	if len(records) == 0 {
		records = payload.SalaryTrends
	}

	e.Logger.Info("fetched records from endpoint",
		zap.String("url", e.URL),
		zap.Int("records", len(records)),
		zap.Bool("has_summary", payload.Summary != nil))

	return &Result{
		Records:   records,
		Summary:   payload.Summary,
		Origin:    e.URL,
		FetchedAt: time.Now(),
	}, nil
}
