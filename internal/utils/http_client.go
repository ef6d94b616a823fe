// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://localhost:3000"))
//	resp, err := client.R().Get("/version")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty client.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(url)
	}
}

// WithTimeout limits the duration of a single request.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if d > 0 {
			c.SetTimeout(d)
		}
	}
}

// WithRetries enables retrying failed requests count times.
func WithRetries(count int, wait time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(count).SetRetryWaitTime(wait)
	}
}

// NewHTTPClient returns a new independent HTTPClient with its own
// connection pool and state, configured by opts in order.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}

	return &HTTPClient{Client: c}
}
