// Package supabase invokes Supabase Edge Functions over HTTP.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FunctionsClient calls functions under {baseURL}/functions/v1.
type FunctionsClient struct {
	baseURL string
	key     string
	http    *http.Client
}

// NewFunctionsClient builds a client authenticated with the project's anon or service key.
// A nil httpClient gets a 10 second timeout.
func NewFunctionsClient(baseURL, key string, httpClient *http.Client) *FunctionsClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &FunctionsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		http:    httpClient,
	}
}

// FunctionError is returned when a function answers with a non-2xx status.
type FunctionError struct {
	Function   string
	StatusCode int
	Body       string
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("supabase function %s returned %d: %s", e.Function, e.StatusCode, e.Body)
}

// Invoke POSTs body as JSON to the named function.
func (c *FunctionsClient) Invoke(ctx context.Context, name string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode function payload: %w", err)
	}

	url := fmt.Sprintf("%s/functions/v1/%s", c.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build function request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("apikey", c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &FunctionError{Function: name, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
