package parse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	sent "github.com/revelaction/newsmunger/sentence"
)

// Client calls a parse service over HTTP. The service receives
// {"text": "..."} and answers with a doc in the library JSON format.
type Client struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

var _ Parser = (*Client)(nil)

type ClientOption func(*Client)

func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.client = c
	}
}

func WithLogger(l zerolog.Logger) ClientOption {
	return func(cl *Client) {
		cl.logger = l
	}
}

func NewClient(url string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type request struct {
	Text string `json:"text"`
}

func (c *Client) Parse(ctx context.Context, text string) ([]sent.Sentence, error) {
	body, err := json.Marshal(request{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parse request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("parse service status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var doc sent.Doc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	c.logger.Debug().
		Int("sentences", len(doc.Sentences)).
		Dur("took", time.Since(start)).
		Msg("parsed")

	return doc.Sentences, nil
}
