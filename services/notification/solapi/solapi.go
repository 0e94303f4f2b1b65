// Package solapi is a minimal client for the Solapi message API,
// covering the single send call this server needs.
package solapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.solapi.com"

// Client sends text messages through Solapi.
type Client struct {
	apiKey     string
	apiSecret  string
	from       string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client; with empty credentials it reports
// unconfigured and sends are rejected.
func NewClient(apiKey, apiSecret, from string) *Client {
	return &Client{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		from:      from,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

type sendRequest struct {
	Message message `json:"message"`
}

type message struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
}

type sendResponse struct {
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// Send delivers one text message. Length-based SMS/LMS selection is
// handled server-side by Solapi.
func (c *Client) Send(ctx context.Context, to, text string) error {
	if !c.Configured() {
		return fmt.Errorf("solapi client not configured")
	}

	body, err := json.Marshal(sendRequest{Message: message{
		To:   to,
		From: c.from,
		Text: text,
	}})
	if err != nil {
		return fmt.Errorf("solapi marshal failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages/v4/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("solapi request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	auth, err := c.authorization()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("solapi send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var sr sendResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &sr) == nil && sr.StatusMessage != "" {
			return fmt.Errorf("solapi send rejected (%d): %s", resp.StatusCode, sr.StatusMessage)
		}
		return fmt.Errorf("solapi send rejected with status %d", resp.StatusCode)
	}
	return nil
}

// authorization builds the HMAC-SHA256 header Solapi requires:
// signature = hmac(secret, date + salt).
func (c *Client) authorization() (string, error) {
	date := time.Now().UTC().Format(time.RFC3339)
	salt, err := randomSalt()
	if err != nil {
		return "", fmt.Errorf("solapi salt generation failed: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(date + salt))
	signature := hex.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s",
		c.apiKey, date, salt, signature), nil
}

func randomSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
