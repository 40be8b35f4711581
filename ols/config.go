// Copyright 2014 The Cayley Authors. All rights reserved.
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
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultProtocol = "https"
	DefaultHost     = "www.ebi.ac.uk/ols4"

	DefaultOntologyPageSize = 100
	DefaultTermPageSize     = 100
	DefaultSearchPageSize   = 100
)

// Config defines how a Client reaches the lookup service.
type Config struct {
	Protocol string
	Host     string
	// Timeout bounds a single HTTP request. Negative means no timeout.
	Timeout time.Duration

	OntologyPageSize int
	TermPageSize     int
	SearchPageSize   int

	// QueryFields and FieldList are sent with every search request.
	QueryFields []Field
	FieldList   []Field

	// Proxy settings. Empty values fall back to the environment.
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

type config struct {
	Protocol         string   `json:"protocol"`
	Host             string   `json:"host"`
	Timeout          duration `json:"timeout"`
	OntologyPageSize int      `json:"ontology_page_size"`
	TermPageSize     int      `json:"term_page_size"`
	SearchPageSize   int      `json:"search_page_size"`
	QueryFields      []Field  `json:"query_fields"`
	FieldList        []Field  `json:"field_list"`
	HTTPProxy        string   `json:"http_proxy"`
	HTTPSProxy       string   `json:"https_proxy"`
	NoProxy          string   `json:"no_proxy"`
}

// DefaultConfig returns the configuration for the public EBI instance.
func DefaultConfig() *Config {
	return &Config{
		Protocol:         DefaultProtocol,
		Host:             DefaultHost,
		Timeout:          30 * time.Second,
		OntologyPageSize: DefaultOntologyPageSize,
		TermPageSize:     DefaultTermPageSize,
		SearchPageSize:   DefaultSearchPageSize,
		QueryFields:      DefaultQueryFields(),
		FieldList:        DefaultFieldList(),
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Protocol == "" {
		c.Protocol = def.Protocol
	}
	if c.Host == "" {
		c.Host = def.Host
	}
	c.Host = strings.TrimSuffix(c.Host, "/")
	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	if c.OntologyPageSize <= 0 {
		c.OntologyPageSize = def.OntologyPageSize
	}
	if c.TermPageSize <= 0 {
		c.TermPageSize = def.TermPageSize
	}
	if c.SearchPageSize <= 0 {
		c.SearchPageSize = def.SearchPageSize
	}
	if len(c.QueryFields) == 0 {
		c.QueryFields = def.QueryFields
	}
	if len(c.FieldList) == 0 {
		c.FieldList = def.FieldList
	}
	return c
}

// BaseURL returns protocol://host without a trailing slash.
func (c *Config) BaseURL() string {
	return c.Protocol + "://" + strings.TrimSuffix(c.Host, "/")
}

func (c *Config) UnmarshalJSON(data []byte) error {
	var t config
	err := json.Unmarshal(data, &t)
	if err != nil {
		return err
	}
	*c = Config{
		Protocol:         t.Protocol,
		Host:             t.Host,
		Timeout:          time.Duration(t.Timeout),
		OntologyPageSize: t.OntologyPageSize,
		TermPageSize:     t.TermPageSize,
		SearchPageSize:   t.SearchPageSize,
		QueryFields:      t.QueryFields,
		FieldList:        t.FieldList,
		HTTPProxy:        t.HTTPProxy,
		HTTPSProxy:       t.HTTPSProxy,
		NoProxy:          t.NoProxy,
	}
	return nil
}

func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(config{
		Protocol:         c.Protocol,
		Host:             c.Host,
		Timeout:          duration(c.Timeout),
		OntologyPageSize: c.OntologyPageSize,
		TermPageSize:     c.TermPageSize,
		SearchPageSize:   c.SearchPageSize,
		QueryFields:      c.QueryFields,
		FieldList:        c.FieldList,
		HTTPProxy:        c.HTTPProxy,
		HTTPSProxy:       c.HTTPSProxy,
		NoProxy:          c.NoProxy,
	})
}

// LoadConfig reads a JSON configuration file. An empty name yields DefaultConfig.
// Fields missing from the file keep their default values.
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open config file %q: %v", file, err)
	}
	defer f.Close()

	var loaded Config
	dec := json.NewDecoder(f)
	if err = dec.Decode(&loaded); err != nil {
		return nil, fmt.Errorf("could not parse config file %q: %v", file, err)
	}
	merged := loaded.withDefaults()
	return &merged, nil
}

// duration is a time.Duration that satisfies the
// json.UnMarshaler and json.Marshaler interfaces.
type duration time.Duration

// UnmarshalJSON unmarshals a duration according to the following scheme:
//   - If the element is absent the duration is zero.
//   - If the element is parsable as a time.Duration, the parsed value is kept.
//   - If the element is parsable as a number, that number of seconds is kept.
func (d *duration) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		*d = 0
		return nil
	}
	text := string(data)
	if s, err := strconv.Unquote(text); err == nil {
		text = s
	}
	t, err := time.ParseDuration(text)
	if err == nil {
		*d = duration(t)
		return nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		*d = duration(time.Duration(i) * time.Second)
		return nil
	}
	// This hack is to get around strconv.ParseFloat
	// not handling e-notation for integers.
	f, err := strconv.ParseFloat(text, 64)
	*d = duration(time.Duration(f * float64(time.Second)))
	return err
}

func (d duration) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Duration(d).String())), nil
}
