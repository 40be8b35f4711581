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
	"strconv"

	"github.com/cayleygraph/ols/term"
)

// lookup resolves id, turning ErrNotFound into a nil term.
func (c *Client) lookup(ctx context.Context, id term.Identifier, ontology string) (*term.Term, error) {
	t, err := c.Term(ctx, id, ontology)
	if IsNotFound(err) {
		return nil, nil
	}
	return t, err
}

// Descriptions returns the non-empty descriptions of a term.
func (c *Client) Descriptions(ctx context.Context, id term.Identifier, ontology string) ([]string, error) {
	t, err := c.lookup(ctx, id, ontology)
	if t == nil || err != nil {
		return nil, err
	}
	var out []string
	for _, d := range t.Description {
		if d != "" {
			out = append(out, d)
		}
	}
	return out, nil
}

// FirstDescription returns the first description of a term, if any.
func (c *Client) FirstDescription(ctx context.Context, id term.Identifier, ontology string) (string, error) {
	t, err := c.lookup(ctx, id, ontology)
	if t == nil || err != nil {
		return "", err
	}
	return t.Description.First(), nil
}

// Annotations returns the annotation values of a term keyed by property name.
func (c *Client) Annotations(ctx context.Context, id term.Identifier, ontology string) (map[string]term.Strings, error) {
	t, err := c.lookup(ctx, id, ontology)
	if t == nil || err != nil {
		return nil, err
	}
	return t.Annotation, nil
}

// Comment returns the first "comment" annotation of a term.
func (c *Client) Comment(ctx context.Context, id term.Identifier, ontology string) (string, error) {
	t, err := c.lookup(ctx, id, ontology)
	if t == nil || err != nil {
		return "", err
	}
	return t.Annotation["comment"].First(), nil
}

// Xrefs returns the OBO cross references of a term, database to
// description, together with the xrefs of its definition citations.
func (c *Client) Xrefs(ctx context.Context, id term.Identifier, ontology string) (map[string]string, error) {
	t, err := c.lookup(ctx, id, ontology)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string)
	if t == nil {
		return m, nil
	}
	for _, x := range t.XRefs {
		if x.Database != "" {
			m[x.Database] = x.Description
		}
	}
	for k, v := range t.CitationXRefs() {
		m[k] = v
	}
	return m, nil
}

// OBOSynonyms maps the OBO synonyms of a term to their types.
func (c *Client) OBOSynonyms(ctx context.Context, id term.Identifier, ontology string) (map[string]string, error) {
	t, err := c.lookup(ctx, id, ontology)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return map[string]string{}, nil
	}
	return t.SynonymTypes(), nil
}

// Synonyms returns the distinct synonyms of a term in order of appearance.
func (c *Client) Synonyms(ctx context.Context, id term.Identifier, ontology string) ([]string, error) {
	t, err := c.lookup(ctx, id, ontology)
	if t == nil || err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(t.Synonyms))
	var out []string
	for _, s := range t.Synonyms {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}

// Metadata is the descriptive summary of a term.
type Metadata struct {
	Synonyms   map[string]string `json:"synonym,omitempty"`
	Definition string            `json:"definition,omitempty"`
	Comment    string            `json:"comment,omitempty"`
}

// IsZero reports whether no metadata was found.
func (m Metadata) IsZero() bool {
	return len(m.Synonyms) == 0 && m.Definition == "" && m.Comment == ""
}

// Metadata collects the OBO synonyms, the first definition and the comment
// of a term with a single lookup.
func (c *Client) Metadata(ctx context.Context, id term.Identifier, ontology string) (Metadata, error) {
	t, err := c.lookup(ctx, id, ontology)
	if t == nil || err != nil {
		return Metadata{}, err
	}
	m := Metadata{
		Definition: t.Description.First(),
		Comment:    t.Annotation["comment"].First(),
	}
	if syn := t.SynonymTypes(); len(syn) > 0 {
		m.Synonyms = syn
	}
	return m, nil
}

// RetrieveTerm queries an ontology's term collection by IRI. Unlike
// TermByIRI, the result is of the obsolete kind when the service flags it.
// If several labelled terms come back, the last one wins.
func (c *Client) RetrieveTerm(ctx context.Context, iri, ontology string) (*term.Term, error) {
	var env termCollection
	if err := c.get(ctx, kindTerm, c.termsByIRIQueryURL(ontology, iri), &env); isMissing(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	var found *term.Term
	for i := range env.Embedded.Terms {
		if env.Embedded.Terms[i].Label != "" {
			found = &env.Embedded.Terms[i]
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// IsObsolete reports whether the term identified by id is obsolete.
// Unknown terms are reported as not obsolete.
func (c *Client) IsObsolete(ctx context.Context, id term.Identifier, ontology string) (bool, error) {
	t, err := c.lookup(ctx, id, ontology)
	if t == nil || err != nil {
		return false, err
	}
	if t.IsObsolete() {
		return true, nil
	}
	ont := t.OntologyName
	if ont == "" {
		ont = ontology
	}
	r, err := c.RetrieveTerm(ctx, t.IRI, ont)
	if IsNotFound(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return r.IsObsolete(), nil
}

// TermsByAnnotationRange returns the terms of an ontology carrying an xref
// of the given type whose numeric value lies in [from, to].
func (c *Client) TermsByAnnotationRange(ctx context.Context, ontology, annotationType string, from, to float64) ([]term.Term, error) {
	all, err := c.AllTerms(ctx, ontology)
	if err != nil {
		return nil, err
	}
	var out []term.Term
	for i := range all {
		t := &all[i]
		if !t.ContainsXRef(annotationType) {
			continue
		}
		v, err := strconv.ParseFloat(t.XRefValue(annotationType), 64)
		if err != nil {
			continue
		}
		if v >= from && v <= to {
			out = append(out, *t)
		}
	}
	return out, nil
}
