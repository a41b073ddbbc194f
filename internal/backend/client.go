package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"
)

// DefaultSearchPath is the platform API route for relationship searches.
const DefaultSearchPath = "/relationships/search"

// entryTypeError is the platform's war-room entry type for errors.
const entryTypeError = 4

const maxResponseBytes = 32 << 20

// HTTPDoer is the part of *http.Client the REST backend needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	SearchPath string
	APIKey     string
	APIKeyID   string
	Timeout    time.Duration
	// Legacy sends flat comma-joined arguments and reads an entry list
	// back, as platform versions before the filter payload expect.
	Legacy     bool
	HTTPClient HTTPDoer
	Logger     *zap.SugaredLogger
}

// Client runs searchRelationships against the platform REST API.
type Client struct {
	endpoint string
	apiKey   string
	apiKeyID string
	legacy   bool
	http     HTTPDoer
	logger   *zap.SugaredLogger
}

// NewClient validates opts and returns a REST backend.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("backend: base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("backend: parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend: unsupported URL scheme %q", base.Scheme)
	}

	path := opts.SearchPath
	if path == "" {
		path = DefaultSearchPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	doer := opts.HTTPClient
	if doer == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Client{
		endpoint: base.String() + path,
		apiKey:   opts.APIKey,
		apiKeyID: opts.APIKeyID,
		legacy:   opts.Legacy,
		http:     doer,
		logger:   logger,
	}, nil
}

// SearchRelationships posts filter to the platform and returns its data list.
func (c *Client) SearchRelationships(ctx context.Context, filter models.Filter) ([]models.Relationship, error) {
	var payload any = struct {
		Filter models.Filter `json:"filter"`
	}{filter}
	if c.legacy {
		payload = legacyArgs(filter)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}

	reqID := RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	if c.apiKeyID != "" {
		req.Header.Set("x-xdr-auth-id", c.apiKeyID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &CommandError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &CommandError{Message: fmt.Sprintf("read response: %v", err), Err: err}
	}
	c.logger.Debugw("searchRelationships response",
		"request_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(data),
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &CommandError{Message: errorMessage(resp.StatusCode, data)}
	}

	if c.legacy {
		return decodeEntries(data)
	}
	var result struct {
		Data []models.Relationship `json:"data"`
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &CommandError{Message: fmt.Sprintf("decode response: %v", err), Err: err}
	}
	return result.Data, nil
}

func legacyArgs(f models.Filter) map[string]any {
	return map[string]any{
		"entities":          strings.Join(f.Entities, ","),
		"entityTypes":       strings.Join(f.EntityTypes, ","),
		"relationshipNames": strings.Join(f.RelationshipNames, ","),
		"size":              f.Size,
		"query":             f.Query,
	}
}

type entry struct {
	Type     int             `json:"Type"`
	Contents json.RawMessage `json:"Contents"`
}

func decodeEntries(data []byte) ([]models.Relationship, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &CommandError{Message: fmt.Sprintf("decode response: %v", err), Err: err}
	}
	if len(entries) == 0 {
		return nil, &CommandError{Message: "empty response"}
	}

	first := entries[0]
	if first.Type == entryTypeError {
		return nil, &CommandError{Message: rawText(first.Contents)}
	}

	var contents struct {
		Data []models.Relationship `json:"data"`
	}
	if len(first.Contents) == 0 || string(first.Contents) == "null" {
		return nil, nil
	}
	if err := json.Unmarshal(first.Contents, &contents); err != nil {
		return nil, &CommandError{Message: fmt.Sprintf("decode entry contents: %v", err), Err: err}
	}
	return contents.Data, nil
}

// errorMessage pulls a readable message out of an error response body.
func errorMessage(status int, body []byte) string {
	var fields map[string]any
	if json.Unmarshal(body, &fields) == nil {
		for _, key := range []string{"error", "detail", "message"} {
			if s, ok := fields[key].(string); ok && s != "" {
				return s
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}

func rawText(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

type requestIDKey struct{}

// WithRequestID attaches the invocation's request ID to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID carried by ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
