package jobs

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	searchPath  = "/search"
	contentType = "application/json"
	// Max value for results per request.
	perPage = "20"
)

// Client talks to a remote job-search API. It implements Source.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

type itemResponse struct {
	Items []any `json:"items"`
	Found int   `json:"found"`
}

func NewClient(ctx context.Context, logger *zap.Logger, apiURL, token string) *Client {
	return &Client{
		ctx:    ctx,
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: "spigell/career-compass",
	}
}

// Search queries the remote API for postings matching the query. Up to three
// keyword hints are appended to the request.
func (c *Client) Search(_ context.Context, query, location string, keywords []string) (*Jobs, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("per_page", perPage)
	if location != "" {
		q.Set("location", location)
	}
	for i, kw := range keywords {
		if i == 3 {
			break
		}
		q.Add("keyword", kw)
	}

	items, err := c.getItems(fmt.Sprintf("%s%s", c.APIURL, searchPath), q)
	if err != nil {
		return nil, err
	}

	var records []*Record
	cfg := &mapstructure.DecoderConfig{
		Result:  &records,
		TagName: "mapstructure",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode job items: %w", err)
	}

	return &Jobs{Items: records}, nil
}

func (c *Client) getItems(apiURL string, q url.Values) ([]any, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", contentType)
	req.URL.RawQuery = q.Encode()

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		body = gz
	}

	var response itemResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, err
	}

	c.logger.Debug("got response from job source", zap.Int("found", response.Found))

	return response.Items, nil
}
