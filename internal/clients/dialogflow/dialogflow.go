package dialogflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// QueryFailureCode is the code returned when intent detection failed
	QueryFailureCode = -1

	// Default timeout for query requests
	defaultQueryTimeout = 30 * time.Second
	// maxSessionIDLength is the longest session id Dialogflow accepts.
	maxSessionIDLength = 36
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// Client for the Dialogflow query API.
type Client struct {
	queryURL          string
	clientAccessToken string
	lang              string
	httpClient        *http.Client
}

// New creates a new Client.
func New(apiURL, protocolVersion, clientAccessToken, lang string, httpClient *http.Client) (*Client, error) {
	parsedURL, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dialogflow API URL: %w", err)
	}
	parsedURL = parsedURL.JoinPath("query")
	query := parsedURL.Query()
	query.Set("v", protocolVersion)
	parsedURL.RawQuery = query.Encode()

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultQueryTimeout,
		}
	}
	return &Client{
		queryURL:          parsedURL.String(),
		clientAccessToken: clientAccessToken,
		lang:              lang,
		httpClient:        httpClient,
	}, nil
}

// DetectIntent submits text within the session and returns the fulfillment speech.
func (c *Client) DetectIntent(ctx context.Context, sessionID, text string) (string, error) {
	body, err := json.Marshal(QueryRequest{
		Query:     text,
		Lang:      c.lang,
		SessionID: truncateSessionID(sessionID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal query request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.clientAccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", richerrors.Error{
			Code: QueryFailureCode,
			Err:  fmt.Errorf("failed to POST to dialogflow: %w", err),
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return "", richerrors.Error{
			Code: QueryFailureCode,
			Err:  fmt.Errorf("dialogflow returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var queryResp QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&queryResp); err != nil {
		return "", fmt.Errorf("failed to decode query response: %w", err)
	}
	if queryResp.Status.Code >= 300 {
		return "", richerrors.Error{
			Code: QueryFailureCode,
			Err: fmt.Errorf("dialogflow query failed with %d %s: %s",
				queryResp.Status.Code, queryResp.Status.ErrorType, queryResp.Status.ErrorDetails),
		}
	}

	return queryResp.Result.Fulfillment.Speech, nil
}

func truncateSessionID(sessionID string) string {
	sessionID = strings.TrimSpace(sessionID)
	if len(sessionID) > maxSessionIDLength {
		return sessionID[:maxSessionIDLength]
	}
	return sessionID
}
