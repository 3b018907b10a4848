// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound calls such as the mail relay.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client targeting baseURL. A positive timeout is
// applied to every request; retries are attempted on transport errors and
// 5xx answers.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://mail.internal", 5*time.Second, 2)
//	resp, err := client.R().SetBody(msg).Post("/v1/messages")
func NewHTTPClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if retries > 0 {
		client.SetRetryCount(retries).
			SetRetryWaitTime(100 * time.Millisecond).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= 500
			})
	}

	return &HTTPClient{Client: client}
}
