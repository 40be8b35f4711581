// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ols

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/net/http/httpproxy"
)

// Transport fetches a resource by URL and decodes its JSON body into v.
//
// Implementations must be safe for concurrent use. Non-2xx responses are
// reported as *RequestError, a successful response without a body as
// ErrEmptyResponse and everything else as *TransportError.
type Transport interface {
	Get(ctx context.Context, url string, v interface{}) error
}

// HTTPTransport is the default Transport, backed by net/http.
type HTTPTransport struct {
	cli *http.Client
}

// NewHTTPTransport creates a transport honoring the timeout and proxy
// settings of cfg.
func NewHTTPTransport(cfg *Config) *HTTPTransport {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	proxy := proxyConfig(cfg).ProxyFunc()
	tr.Proxy = func(r *http.Request) (*url.URL, error) {
		return proxy(r.URL)
	}
	cli := &http.Client{Transport: tr}
	if cfg.Timeout > 0 {
		cli.Timeout = cfg.Timeout
	}
	return &HTTPTransport{cli: cli}
}

func proxyConfig(cfg *Config) *httpproxy.Config {
	if cfg.HTTPProxy == "" && cfg.HTTPSProxy == "" && cfg.NoProxy == "" {
		return httpproxy.FromEnvironment()
	}
	return &httpproxy.Config{
		HTTPProxy:  cfg.HTTPProxy,
		HTTPSProxy: cfg.HTTPSProxy,
		NoProxy:    cfg.NoProxy,
	}
}

// SetHTTPClient replaces the underlying HTTP client.
func (t *HTTPTransport) SetHTTPClient(cli *http.Client) {
	t.cli = cli
}

func (t *HTTPTransport) Get(ctx context.Context, u string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := t.cli.Do(req)
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RequestError{URL: u, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyResponse
	}
	if err = json.Unmarshal(data, v); err != nil {
		return &TransportError{URL: u, Err: err}
	}
	return nil
}
