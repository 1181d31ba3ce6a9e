package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
)

// HTTPSource reads the full body of a GET request. The response status is
// not checked; a non-image error page fails later in Decode.
type HTTPSource struct {
	client *http.Client
}

// NewHTTPSource creates a source using client, or a client with platform
// defaults when client is nil
func NewHTTPSource(client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPSource{client: client}
}

// Fetch returns the response body for rawURL
func (s *HTTPSource) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Fetch %s returned status %d, decoding body anyway", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
