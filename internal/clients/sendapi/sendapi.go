package sendapi

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
)

const (
	// SendFailureCode is the code returned when the Send API call failed
	SendFailureCode = -1

	// Default timeout for Send API requests
	defaultSendTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// Recipient addresses a Messenger user by page-scoped id.
type Recipient struct {
	ID string `json:"id"`
}

// Message is the reply content sent back to the user.
type Message struct {
	Text string `json:"text"`
}

// Request is the body of a Send API call.
type Request struct {
	Recipient Recipient `json:"recipient"`
	Message   Message   `json:"message"`
}

// Client posts replies to the Messenger Send API.
type Client struct {
	endpoint        string
	pageAccessToken string
	client          *http.Client
}

// New creates a Send API client for the given Graph API base URL.
func New(graphAPIURL, pageAccessToken string, client *http.Client) (*Client, error) {
	base, err := url.Parse(graphAPIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph API URL: %w", err)
	}
	if client == nil {
		client = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	return &Client{
		endpoint:        strings.TrimSuffix(base.String(), "/") + "/me/messages",
		pageAccessToken: pageAccessToken,
		client:          client,
	}, nil
}

// Send posts msg to the recipient. It makes a single attempt.
func (c *Client) Send(ctx context.Context, recipientID string, msg Message) error {
	body, err := json.Marshal(Request{
		Recipient: Recipient{ID: recipientID},
		Message:   msg,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return richerrors.Error{
				Code: SendFailureCode,
				Err:  fmt.Errorf("invalid URL: %w", err),
			}
		}
		return fmt.Errorf("failed to create send request: %w", err)
	}
	query := req.URL.Query()
	query.Set("access_token", c.pageAccessToken)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to POST to send API: %w", redactToken(err, c.pageAccessToken)),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("send API returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	return nil
}

// redactToken keeps the page token out of logged transport errors, which embed the request URL.
func redactToken(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "REDACTED"))
}
