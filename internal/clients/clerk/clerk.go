package clerk

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

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 10 * time.Second
	// maximum response body size kept for error messages
	maxErrorBodySize = 1024
)

// Client for the Clerk Backend API.
type Client struct {
	apiURL     string
	secretKey  string
	logger     zerolog.Logger
	httpClient *http.Client
}

// New creates a new Client.
func New(apiURL, secretKey string, logger zerolog.Logger) (*Client, error) {
	parsedURL, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse clerk API URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("clerk API URL must be absolute: %q", apiURL)
	}
	if secretKey == "" {
		return nil, errors.New("clerk secret key is required")
	}
	return &Client{
		apiURL:     strings.TrimSuffix(parsedURL.String(), "/"),
		secretKey:  secretKey,
		logger:     logger,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// UpdateUserMetadata merges publicMetadata into the public metadata of the user.
func (c *Client) UpdateUserMetadata(ctx context.Context, userID string, publicMetadata map[string]any) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	body, err := json.Marshal(updateMetadataRequest{PublicMetadata: publicMetadata})
	if err != nil {
		return fmt.Errorf("failed to marshal metadata request: %w", err)
	}

	endpoint := c.apiURL + "/users/" + url.PathEscape(userID) + "/metadata"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create metadata request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send metadata request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return richerrors.Error{
			Code:        http.StatusInternalServerError,
			ExternalMsg: "Failed to update user metadata",
			Err:         fmt.Errorf("clerk returned status code %d: %s", resp.StatusCode, apiErrorMessage(respBody)),
		}
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Debug().Str("userId", userID).Msg("updated user public metadata")
	return nil
}

func apiErrorMessage(body []byte) string {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || len(apiErr.Errors) == 0 {
		return string(body)
	}
	msgs := make([]string, 0, len(apiErr.Errors))
	for _, e := range apiErr.Errors {
		msg := e.LongMessage
		if msg == "" {
			msg = e.Message
		}
		msgs = append(msgs, e.Code+": "+msg)
	}
	return strings.Join(msgs, "; ")
}
