package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spec-kit/hr-triage-service/internal/config"
	"github.com/spec-kit/hr-triage-service/internal/domain"
)

// Request is the submission payload sent to the classification engine. The
// description is validated upstream (10-500 runes); the client does not
// re-validate.
type Request struct {
	Description  string `json:"description"`
	Department   string `json:"department"`
	EmployeeName string `json:"employee_name"`
}

// Result is the engine's verdict for one submission. RedactedDescription is
// the display-only string with PII markers substituted; detection and
// redaction both happen inside the engine, never here.
type Result struct {
	Category            domain.Category    `json:"category"`
	Urgency             domain.Urgency     `json:"urgency"`
	Confidence          int                `json:"confidence"`
	Sensitive           bool               `json:"sensitive"`
	PIIDetected         []string           `json:"pii_detected"`
	RedactedDescription string             `json:"redacted_description"`
	Resolution          *domain.Resolution `json:"resolution,omitempty"`
}

// TransportError signals that the engine could not be reached or answered
// outside 2xx. Callers must treat the ticket as not submitted: no partial
// state is persisted and the form stays intact for an immediate retry.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classifier transport failure: %v", e.Err)
	}
	return fmt.Sprintf("classifier returned status %d", e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is a classifier transport failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Classifier abstracts the external classification/resolution engine.
type Classifier interface {
	Classify(ctx context.Context, req Request) (*Result, error)
}

// Client calls the engine's REST API. No retries are performed here; retry
// policy belongs to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client bound by the configured timeout.
func NewClient(cfg config.ClassifierConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// Classify submits one request and decodes the structured result.
func (c *Client) Classify(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode classify request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, &TransportError{Status: resp.StatusCode}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decode classify response: %w", err)}
	}
	return &result, nil
}
