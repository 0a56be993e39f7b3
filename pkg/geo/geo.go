package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultEndpoint = "http://ip-api.com/json"

// Client resolves a coarse city/country location from the caller's
// public IP. Lookups are best effort, callers must treat failures as
// "no location".
type Client struct {
	http     *resty.Client
	endpoint string
}

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type lookupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &Client{
		http:     resty.New().SetTimeout(timeout),
		endpoint: endpoint,
	}
}

func (c *Client) Lookup(ctx context.Context) (*Location, error) {
	var res lookupResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&res).
		Get(c.endpoint)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("geo lookup status %d", resp.StatusCode())
	}
	if res.Status != "" && res.Status != "success" {
		return nil, fmt.Errorf("geo lookup failed: %s", res.Message)
	}
	if res.City == "" && res.Country == "" {
		return nil, fmt.Errorf("geo lookup returned no location")
	}

	return &Location{
		City:    res.City,
		Country: res.Country,
	}, nil
}
