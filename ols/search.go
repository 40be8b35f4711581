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
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/cayleygraph/ols/term"
)

// Field names a search document field, either to match the query text
// against (queryFields) or to return (fieldList).
type Field string

const (
	FieldIRI                Field = "iri"
	FieldLabel              Field = "label"
	FieldSynonym            Field = "synonym"
	FieldDescription        Field = "description"
	FieldShortForm          Field = "short_form"
	FieldOBOID              Field = "obo_id"
	FieldAnnotations        Field = "annotations"
	FieldLogicalDescription Field = "logical_description"
	FieldOntologyName       Field = "ontology_name"
	FieldOntologyPrefix     Field = "ontology_prefix"
	FieldType               Field = "type"
	FieldScore              Field = "score"
	FieldOntologyIRI        Field = "ontology_iri"
	FieldDefiningOntology   Field = "is_defining_ontology"
)

// Fields accepted in queryFields, in the order the service expects them.
var queryFieldOrder = []Field{
	FieldLabel, FieldSynonym, FieldDescription, FieldShortForm,
	FieldOBOID, FieldAnnotations, FieldLogicalDescription, FieldIRI,
}

// Fields accepted in fieldList, in the order the service expects them.
var fieldListOrder = []Field{
	FieldIRI, FieldLabel, FieldShortForm, FieldOBOID, FieldOntologyName,
	FieldOntologyPrefix, FieldDescription, FieldType, FieldSynonym,
	FieldScore, FieldOntologyIRI, FieldDefiningOntology,
}

// DefaultQueryFields matches the query text against labels and synonyms.
func DefaultQueryFields() []Field {
	return []Field{FieldLabel, FieldSynonym}
}

// DefaultFieldList returns everything needed to build a Term from a hit.
func DefaultFieldList() []Field {
	return []Field{
		FieldIRI, FieldLabel, FieldShortForm, FieldOBOID, FieldOntologyName,
		FieldOntologyPrefix, FieldDescription, FieldType, FieldScore,
		FieldOntologyIRI, FieldDefiningOntology,
	}
}

// joinFields keeps the fields of set that appear in order, in that order,
// each at most once.
func joinFields(order, set []Field) string {
	want := make(map[Field]bool, len(set))
	for _, f := range set {
		want[f] = true
	}
	parts := make([]string, 0, len(set))
	for _, f := range order {
		if want[f] {
			parts = append(parts, string(f))
		}
	}
	return strings.Join(parts, ",")
}

// QueryFieldsParam renders fields as the queryFields request parameter.
// Unknown fields are dropped.
func QueryFieldsParam(fields []Field) string {
	return "queryFields=" + joinFields(queryFieldOrder, fields)
}

// FieldListParam renders fields as the fieldList request parameter.
// Unknown fields are dropped.
func FieldListParam(fields []Field) string {
	return "fieldList=" + joinFields(fieldListOrder, fields)
}

// SearchQuery describes a full-text search.
type SearchQuery struct {
	Text string
	// Ontology restricts hits to one ontology when set.
	Ontology string
	// Exact requires the whole field to equal Text instead of containing it.
	Exact bool
	// ChildrenOf restricts hits to descendants of these term IRIs.
	ChildrenOf []string
	// Obsoletes includes obsolete terms, which are excluded by default.
	Obsoletes bool
	// Reverse sorts the results by term identifier, descending.
	Reverse bool

	// QueryFields and FieldList override the client configuration.
	QueryFields []Field
	FieldList   []Field
}

// searchURL builds the request for the rows starting at offset start.
func (c *Client) searchURL(q *SearchQuery, start int) string {
	qf, fl := q.QueryFields, q.FieldList
	if len(qf) == 0 {
		qf = c.cfg.QueryFields
	}
	if len(fl) == 0 {
		fl = c.cfg.FieldList
	}
	rows := c.cfg.SearchPageSize
	var b strings.Builder
	b.WriteString(c.cfg.BaseURL())
	b.WriteString("/api/search?q=")
	b.WriteString(url.QueryEscape(q.Text))
	b.WriteString("&")
	b.WriteString(QueryFieldsParam(qf))
	b.WriteString("&rows=")
	b.WriteString(strconv.Itoa(rows))
	b.WriteString("&start=")
	b.WriteString(strconv.Itoa(start))
	b.WriteString("&")
	b.WriteString(FieldListParam(fl))
	if q.Ontology != "" {
		b.WriteString("&ontology=")
		b.WriteString(url.QueryEscape(q.Ontology))
	}
	if q.Exact {
		b.WriteString("&exact=true")
	}
	if len(q.ChildrenOf) > 0 {
		b.WriteString("&childrenOf=")
		b.WriteString(url.QueryEscape(strings.Join(q.ChildrenOf, ",")))
	}
	if q.Obsoletes {
		b.WriteString("&obsoletes=true")
	}
	return b.String()
}

func (c *Client) searchPage(ctx context.Context, q *SearchQuery, start int) (*Page[term.SearchResult], error) {
	var env searchResponse
	if err := c.get(ctx, kindSearch, c.searchURL(q, start), &env); errors.Is(err, ErrEmptyResponse) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	mPagesFetched.Inc()
	return &Page[term.SearchResult]{Elements: env.Response.Docs, Total: env.Response.NumFound}, nil
}

// Search runs a full-text search and returns every hit as a term, fetching
// all result pages. Hits without a label are dropped. An empty query text
// returns no terms without contacting the service.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]term.Term, error) {
	if q.Text == "" {
		return nil, nil
	}
	// The service may return fewer rows than requested. Later pages are
	// offset by the size of the first one, as FetchAll counts pages with it.
	step := c.cfg.SearchPageSize
	hits, err := FetchAll(ctx, func(ctx context.Context, n int) (*Page[term.SearchResult], error) {
		p, err := c.searchPage(ctx, &q, n*step)
		if n == 0 && p != nil && len(p.Elements) > 0 {
			step = len(p.Elements)
		}
		return p, err
	})
	if err != nil {
		return nil, err
	}
	out := make([]term.Term, 0, len(hits))
	for i := range hits {
		if !hits[i].HasName() {
			mSearchDropped.Inc()
			continue
		}
		out = append(out, hits[i].Term())
	}
	if q.Reverse {
		sort.Sort(sort.Reverse(term.ByID(out)))
	}
	return out, nil
}

// TermsByName returns terms whose label or synonyms contain name.
func (c *Client) TermsByName(ctx context.Context, name, ontology string, reverse bool) ([]term.Term, error) {
	return c.Search(ctx, SearchQuery{Text: name, Ontology: ontology, Reverse: reverse})
}

// TermsByNameFromParent is TermsByName restricted to descendants of the
// given parent IRIs.
func (c *Client) TermsByNameFromParent(ctx context.Context, name, ontology string, reverse bool, parents ...string) ([]term.Term, error) {
	return c.Search(ctx, SearchQuery{Text: name, Ontology: ontology, Reverse: reverse, ChildrenOf: parents})
}

// ExactTermsByName returns terms whose label or a synonym equals name.
func (c *Client) ExactTermsByName(ctx context.Context, name, ontology string) ([]term.Term, error) {
	return c.Search(ctx, SearchQuery{Text: name, Ontology: ontology, Exact: true})
}

// ExactTermsByNameFromParent is ExactTermsByName restricted to descendants
// of the given parent IRIs.
func (c *Client) ExactTermsByNameFromParent(ctx context.Context, name, ontology string, parents ...string) ([]term.Term, error) {
	return c.Search(ctx, SearchQuery{Text: name, Ontology: ontology, Exact: true, ChildrenOf: parents})
}

// ExactTermsByNameWithObsolete is ExactTermsByName including obsolete terms.
func (c *Client) ExactTermsByNameWithObsolete(ctx context.Context, name, ontology string) ([]term.Term, error) {
	return c.Search(ctx, SearchQuery{Text: name, Ontology: ontology, Exact: true, Obsoletes: true})
}

// ExactTermByName returns the first exact match for name, or ErrNotFound.
func (c *Client) ExactTermByName(ctx context.Context, name, ontology string) (*term.Term, error) {
	terms, err := c.ExactTermsByName(ctx, name, ontology)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, ErrNotFound
	}
	return &terms[0], nil
}

// ExactTermsByIRI searches every ontology for terms with the given IRI.
func (c *Client) ExactTermsByIRI(ctx context.Context, iri string) ([]term.Term, error) {
	return c.Search(ctx, SearchQuery{Text: iri, Exact: true, QueryFields: []Field{FieldIRI}})
}

// ExactTermsByIRIWithObsolete is ExactTermsByIRI including obsolete terms.
func (c *Client) ExactTermsByIRIWithObsolete(ctx context.Context, iri string) ([]term.Term, error) {
	return c.Search(ctx, SearchQuery{Text: iri, Exact: true, Obsoletes: true, QueryFields: []Field{FieldIRI}})
}

// SearchByID matches id against term identifiers. Without an ontology any
// identifier containing id matches; within an ontology the match is exact.
func (c *Client) SearchByID(ctx context.Context, id, ontology string) ([]term.Term, error) {
	if id == "" {
		return nil, nil
	}
	q := SearchQuery{
		Text:        "*" + id + "*",
		QueryFields: []Field{FieldShortForm, FieldOBOID, FieldIRI},
	}
	if ontology != "" {
		q.Text, q.Ontology, q.Exact = id, ontology, true
	}
	return c.Search(ctx, q)
}
