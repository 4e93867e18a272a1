package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.figma.com/v1"

// Client represents a Figma API client with configured HTTP settings for
// reliable communication with the Figma API. It includes retry logic and
// transport settings tuned for very large design files.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a new Figma API client with the provided personal access
// token. The client is configured with connection pooling, disabled HTTP/2
// (for large file stability), and a 10-minute timeout for very large files.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		DisableKeepAlives:   false,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     defaultAPIBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
}

// SetBaseURL overrides the API endpoint, primarily for tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimSuffix(base, "/")
}

// getJSON performs an authenticated GET with up to three attempts,
// backing off between retries on network errors, 429, and 5xx responses.
// The response body is returned verbatim.
func (c *Client) getJSON(endpoint string) ([]byte, error) {
	var lastErr error
	const maxRetries = 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("X-Figma-Token", c.accessToken)
		// Disable HTTP/2 to avoid stream errors with large files
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d failed to execute request: %w", attempt, err)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		if readErr != nil {
			lastErr = fmt.Errorf("attempt %d failed to read response body: %w", attempt, readErr)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		return body, nil
	}

	return nil, lastErr
}

// GetFile retrieves complete file data from the Figma API including document
// structure, styles, and metadata.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	body, err := c.getJSON(fmt.Sprintf("%s/files/%s", c.baseURL, fileKey))
	if err != nil {
		return nil, err
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &fileResp, nil
}

// GetFileNodes retrieves specific nodes from a Figma file by id.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	body, err := c.GetFileNodesRaw(fileKey, nodeIDs)
	if err != nil {
		return nil, err
	}

	var nodesResp NodesResponse
	if err := json.Unmarshal(body, &nodesResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &nodesResp, nil
}

// GetFileNodesRaw retrieves specific nodes and returns the raw response
// payload, suitable for ExtractNodes.
func (c *Client) GetFileNodesRaw(fileKey string, nodeIDs []string) ([]byte, error) {
	if len(nodeIDs) == 0 {
		return nil, fmt.Errorf("no node IDs provided")
	}
	endpoint := fmt.Sprintf("%s/files/%s/nodes?ids=%s",
		c.baseURL, fileKey, url.QueryEscape(strings.Join(nodeIDs, ",")))
	return c.getJSON(endpoint)
}

// GetLocalVariables retrieves the local design variables of a file, keyed by
// variable id. Only COLOR variables are of interest downstream.
func (c *Client) GetLocalVariables(fileKey string) (map[string]Variable, error) {
	body, err := c.getJSON(fmt.Sprintf("%s/files/%s/variables/local", c.baseURL, fileKey))
	if err != nil {
		return nil, err
	}

	var varsResp VariablesResponse
	if err := json.Unmarshal(body, &varsResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return varsResp.Meta.Variables, nil
}
