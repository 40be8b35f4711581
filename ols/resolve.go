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
	"context"
	"errors"
	"net/http"

	"github.com/cayleygraph/ols/term"
)

// Term resolves an identifier within an ontology.
//
// OBO and short-form identifiers are looked up in the ontology's term
// collection and must match exactly one term. IRIs are fetched directly.
// ErrNotFound is returned when no single term matches; transport failures
// are returned as they are.
func (c *Client) Term(ctx context.Context, id term.Identifier, ontology string) (*term.Term, error) {
	if id.IsZero() {
		return nil, ErrNotFound
	}
	switch id.Notation {
	case term.OBO:
		return c.TermByOBOID(ctx, id.Value, ontology)
	case term.ShortForm:
		return c.TermByShortForm(ctx, id.Value, ontology)
	case term.IRI:
		return c.TermByIRI(ctx, id.Value, ontology)
	}
	return nil, ErrInvalidNotation
}

// TermByOBOID returns the single term with the given OBO id.
func (c *Client) TermByOBOID(ctx context.Context, code, ontology string) (*term.Term, error) {
	return c.single(ctx, c.termsByOBOURL(ontology, code))
}

// TermByShortForm returns the single term with the given short form.
func (c *Client) TermByShortForm(ctx context.Context, code, ontology string) (*term.Term, error) {
	return c.single(ctx, c.termsByShortFormURL(ontology, code))
}

// TermByIRI fetches the term resource addressed by its IRI. Any non-2xx
// response or an empty body is reported as ErrNotFound.
func (c *Client) TermByIRI(ctx context.Context, iri, ontology string) (*term.Term, error) {
	var t term.Term
	if err := c.get(ctx, kindTerm, c.termByIRIURL(ontology, iri), &t); isMissing(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if t.GlobalID().IsZero() {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (c *Client) single(ctx context.Context, u string) (*term.Term, error) {
	var env termCollection
	err := c.get(ctx, kindTerm, u, &env)
	var re *RequestError
	switch {
	case errors.Is(err, ErrEmptyResponse):
		return nil, ErrNotFound
	case errors.As(err, &re) && re.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}
	if len(env.Embedded.Terms) != 1 {
		return nil, ErrNotFound
	}
	t := env.Embedded.Terms[0]
	if t.GlobalID().IsZero() {
		return nil, ErrNotFound
	}
	return &t, nil
}
