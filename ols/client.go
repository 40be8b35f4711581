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

// Package ols is a client for the Ontology Lookup Service REST API.
//
// It resolves terms by OBO id, short form or IRI, aggregates paginated
// collections, expands the term hierarchy a bounded number of hops and runs
// full-text searches. Requests are issued sequentially by the calling
// goroutine; a Client is safe for concurrent use.
package ols

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cayleygraph/ols/clog"
	"github.com/cayleygraph/ols/term"
)

// Resource kinds, used as metric labels.
const (
	kindOntology = "ontology"
	kindTerm     = "term"
	kindSearch   = "search"
	kindHop      = "hop"
)

// Client talks to one lookup service instance.
type Client struct {
	cfg Config
	tr  Transport
}

// New creates a client using an HTTPTransport. Zero fields of cfg take
// their default values; a nil cfg means DefaultConfig.
func New(cfg *Config) *Client {
	c := newConfig(cfg)
	return &Client{cfg: c, tr: NewHTTPTransport(&c)}
}

// NewWithTransport creates a client sending its requests through tr.
func NewWithTransport(cfg *Config, tr Transport) *Client {
	return &Client{cfg: newConfig(cfg), tr: tr}
}

func newConfig(cfg *Config) Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return cfg.withDefaults()
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config { return c.cfg }

func (c *Client) get(ctx context.Context, kind, u string, v interface{}) error {
	clog.Debugf("GET %s", u)
	start := time.Now()
	mRequests.WithLabelValues(kind).Inc()
	err := c.tr.Get(ctx, u, v)
	mRequestSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, ErrEmptyResponse) {
		mRequestErrors.WithLabelValues(kind).Inc()
	}
	return err
}

// EscapeIRI turns an IRI into a single path segment the service accepts:
// separators are percent-encoded twice, so that ':' becomes %253A and '/'
// becomes %252F.
func EscapeIRI(iri string) string {
	return iriEscaper.Replace(iri)
}

var iriEscaper = strings.NewReplacer(
	"%", "%2525",
	":", "%253A",
	"/", "%252F",
	"#", "%2523",
	"?", "%253F",
)

func (c *Client) ontologyBase(ontology string) string {
	return c.cfg.BaseURL() + "/api/ontologies/" + url.PathEscape(ontology)
}

func (c *Client) ontologiesURL(page int) string {
	return fmt.Sprintf("%s/api/ontologies?page=%d&size=%d", c.cfg.BaseURL(), page, c.cfg.OntologyPageSize)
}

func (c *Client) termsByOBOURL(ontology, code string) string {
	return c.ontologyBase(ontology) + "/terms?obo_id=" + url.QueryEscape(code)
}

func (c *Client) termsByShortFormURL(ontology, code string) string {
	return c.ontologyBase(ontology) + "/terms?short_term=" + url.QueryEscape(code)
}

func (c *Client) termsByIRIQueryURL(ontology, iri string) string {
	return c.ontologyBase(ontology) + "/terms?iri=" + url.QueryEscape(iri)
}

func (c *Client) termByIRIURL(ontology, iri string) string {
	return c.ontologyBase(strings.ToLower(ontology)) + "/terms/" + EscapeIRI(iri)
}

func (c *Client) rootsURL(ontology string, page int) string {
	return fmt.Sprintf("%s/terms/roots/?page=%d&size=%d", c.ontologyBase(ontology), page, c.cfg.TermPageSize)
}

func (c *Client) termsURL(ontology string, page int) string {
	return fmt.Sprintf("%s/terms/?page=%d&size=%d", c.ontologyBase(ontology), page, c.cfg.TermPageSize)
}

// termPage fetches one page of a term collection addressed by u.
func (c *Client) termPage(ctx context.Context, u string) (*Page[term.Term], error) {
	var env termCollection
	if err := c.get(ctx, kindTerm, u, &env); errors.Is(err, ErrEmptyResponse) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	mPagesFetched.Inc()
	return &Page[term.Term]{Elements: env.Embedded.Terms, Total: env.Page.TotalElements}, nil
}

// linkedTermPage fetches a hop collection page. The href is used verbatim,
// it comes from the service already encoded.
func (c *Client) linkedTermPage(ctx context.Context, href string) (*LinkedPage[term.Term], error) {
	var env termCollection
	if err := c.get(ctx, kindHop, href, &env); errors.Is(err, ErrEmptyResponse) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	mPagesFetched.Inc()
	next, _ := env.Links.Get(term.RelNext)
	return &LinkedPage[term.Term]{Elements: env.Embedded.Terms, Next: next}, nil
}

// Ontologies returns every ontology loaded in the service.
func (c *Client) Ontologies(ctx context.Context) ([]term.Ontology, error) {
	return FetchAll(ctx, func(ctx context.Context, n int) (*Page[term.Ontology], error) {
		var env ontologyCollection
		if err := c.get(ctx, kindOntology, c.ontologiesURL(n), &env); errors.Is(err, ErrEmptyResponse) {
			return nil, nil
		} else if err != nil {
			return nil, err
		}
		mPagesFetched.Inc()
		return &Page[term.Ontology]{Elements: env.Embedded.Ontologies, Total: env.Page.TotalElements}, nil
	})
}

// Ontology returns the ontology with the given short name (e.g. "efo").
func (c *Client) Ontology(ctx context.Context, id string) (*term.Ontology, error) {
	var o term.Ontology
	if err := c.get(ctx, kindOntology, c.ontologyBase(id), &o); isMissing(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &o, nil
}

// OntologyByConfigID scans all ontologies for one whose configured id
// (usually its IRI) equals id.
func (c *Client) OntologyByConfigID(ctx context.Context, id string) (*term.Ontology, error) {
	all, err := c.Ontologies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Config.ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// AllTerms returns every term of an ontology.
func (c *Client) AllTerms(ctx context.Context, ontology string) ([]term.Term, error) {
	return FetchAll(ctx, func(ctx context.Context, n int) (*Page[term.Term], error) {
		return c.termPage(ctx, c.termsURL(ontology, n))
	})
}

// RootTerms returns the root terms of an ontology.
func (c *Client) RootTerms(ctx context.Context, ontology string) ([]term.Term, error) {
	return FetchAll(ctx, func(ctx context.Context, n int) (*Page[term.Term], error) {
		return c.termPage(ctx, c.rootsURL(ontology, n))
	})
}
