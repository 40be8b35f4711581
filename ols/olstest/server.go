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

// Package olstest provides an in-memory lookup service for tests.
//
// The server speaks the subset of the REST API used by package ols: ontology
// and term collections with page envelopes, term lookup by OBO id, short
// form and IRI, hierarchy links paginated through "next" links, and the
// search endpoint.
package olstest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/julienschmidt/httprouter"

	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

const contentTypeJSON = "application/json"

// Server is a fake lookup service listening on a loopback address.
type Server struct {
	srv      *httptest.Server
	requests int64

	mu         sync.Mutex
	ontologies []term.Ontology
	terms      map[string][]term.Term
	children   map[string][]string
	parents    map[string][]string
	hits       []term.SearchResult
	hopSize    int
	maxRows    int
	fail       func(r *http.Request) int
	lastSearch url.Values
}

// NewServer starts a server. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		terms:    make(map[string][]term.Term),
		children: make(map[string][]string),
		parents:  make(map[string][]string),
	}
	r := httprouter.New()
	r.GET("/api/search", s.serveSearch)
	r.GET("/api/ontologies", s.serveOntologies)
	r.GET("/api/ontologies/:onto", s.serveOntology)
	r.GET("/api/ontologies/:onto/terms", s.serveTermQuery)
	r.GET("/api/ontologies/:onto/terms/*rest", s.serveTerms)
	s.srv = httptest.NewServer(s.wrap(r))
	return s
}

func (s *Server) wrap(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.requests, 1)
		s.mu.Lock()
		fail := s.fail
		s.mu.Unlock()
		if fail != nil {
			if code := fail(r); code != 0 {
				w.WriteHeader(code)
				return
			}
		}
		h.ServeHTTP(w, r)
	})
}

// Close shuts the server down.
func (s *Server) Close() { s.srv.Close() }

// URL returns the base URL of the server.
func (s *Server) URL() string { return s.srv.URL }

// Config returns a client configuration pointing at the server.
func (s *Server) Config() *ols.Config {
	u, _ := url.Parse(s.srv.URL)
	cfg := ols.DefaultConfig()
	cfg.Protocol = u.Scheme
	cfg.Host = u.Host
	return cfg
}

// Client returns a client talking to the server.
func (s *Server) Client() *ols.Client { return ols.New(s.Config()) }

// Requests returns the number of requests served so far.
func (s *Server) Requests() int { return int(atomic.LoadInt64(&s.requests)) }

// FailWhen installs a hook consulted before each request. A non-zero return
// value is sent as the response status without a body.
func (s *Server) FailWhen(fn func(r *http.Request) int) {
	s.mu.Lock()
	s.fail = fn
	s.mu.Unlock()
}

// SetHopPageSize splits hierarchy collections into pages of n terms linked
// by "next". Zero serves each collection as a single page.
func (s *Server) SetHopPageSize(n int) {
	s.mu.Lock()
	s.hopSize = n
	s.mu.Unlock()
}

// SetMaxRows caps the number of rows a search page returns, whatever the
// client asks for. Zero means no cap.
func (s *Server) SetMaxRows(n int) {
	s.mu.Lock()
	s.maxRows = n
	s.mu.Unlock()
}

// LastSearch returns the query parameters of the last search request.
func (s *Server) LastSearch() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSearch
}

// AddOntology registers an ontology. Its id is the lower-cased short name.
func (s *Server) AddOntology(o term.Ontology) {
	o.ID = strings.ToLower(o.ID)
	s.mu.Lock()
	s.ontologies = append(s.ontologies, o)
	s.mu.Unlock()
}

// AddTerm adds a term to an ontology, registering the ontology if needed.
func (s *Server) AddTerm(ontology string, t term.Term) {
	ontology = strings.ToLower(ontology)
	if t.OntologyName == "" {
		t.OntologyName = ontology
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ontology(ontology) == nil {
		s.ontologies = append(s.ontologies, term.Ontology{ID: ontology, Status: "LOADED"})
	}
	s.terms[ontology] = append(s.terms[ontology], t)
}

// Link makes child a direct child of parent. Both are term IRIs.
func (s *Server) Link(ontology, parent, child string) {
	ontology = strings.ToLower(ontology)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.children[edgeKey(ontology, parent)] = append(s.children[edgeKey(ontology, parent)], child)
	s.parents[edgeKey(ontology, child)] = append(s.parents[edgeKey(ontology, child)], parent)
}

// AddSearchHit adds a raw hit returned by every search it is not filtered
// out of by ontology.
func (s *Server) AddSearchHit(h term.SearchResult) {
	s.mu.Lock()
	s.hits = append(s.hits, h)
	s.mu.Unlock()
}

func edgeKey(ontology, iri string) string { return ontology + " " + iri }

func (s *Server) ontology(id string) *term.Ontology {
	for i := range s.ontologies {
		if s.ontologies[i].ID == id {
			return &s.ontologies[i]
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	_ = json.NewEncoder(w).Encode(v)
}

func pageParams(r *http.Request, def int) (page, size int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	size, _ = strconv.Atoi(q.Get("size"))
	if size <= 0 {
		size = def
	}
	return page, size
}

func window(n, page, size int) (lo, hi int) {
	lo = page * size
	if lo > n {
		lo = n
	}
	hi = lo + size
	if hi > n {
		hi = n
	}
	return lo, hi
}

type pageMeta struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

func meta(n, page, size int) pageMeta {
	return pageMeta{Size: size, TotalElements: n, TotalPages: (n + size - 1) / size, Number: page}
}

type link struct {
	Href string `json:"href"`
}

type termEnvelope struct {
	Embedded *struct {
		Terms []term.Term `json:"terms"`
	} `json:"_embedded,omitempty"`
	Links map[string]link `json:"_links,omitempty"`
	Page  *pageMeta       `json:"page,omitempty"`
}

func (s *Server) termEnvelope(r *http.Request, ontology string, terms []term.Term) termEnvelope {
	var env termEnvelope
	if len(terms) == 0 {
		return env
	}
	env.Embedded = &struct {
		Terms []term.Term `json:"terms"`
	}{}
	for _, t := range terms {
		env.Embedded.Terms = append(env.Embedded.Terms, s.withLinks(r, ontology, t))
	}
	return env
}

func encodeIRI(iri string) string {
	return url.QueryEscape(url.QueryEscape(iri))
}

func (s *Server) termHref(r *http.Request, ontology, iri string) string {
	return "http://" + r.Host + "/api/ontologies/" + ontology + "/terms/" + encodeIRI(iri)
}

// withLinks must be called with s.mu held.
func (s *Server) withLinks(r *http.Request, ontology string, t term.Term) term.Term {
	self := s.termHref(r, ontology, t.IRI)
	t.Links = term.Links{term.RelSelf: {Href: self}}
	if len(s.children[edgeKey(ontology, t.IRI)]) > 0 {
		t.Links[term.RelHierarchicalChildren] = term.Link{Href: self + "/" + term.RelHierarchicalChildren}
		t.HasChildren = true
	}
	if len(s.parents[edgeKey(ontology, t.IRI)]) > 0 {
		t.Links[term.RelHierarchicalParents] = term.Link{Href: self + "/" + term.RelHierarchicalParents}
	} else {
		t.Root = true
	}
	return t
}

func (s *Server) find(ontology string, match func(t *term.Term) bool) []term.Term {
	var out []term.Term
	for i := range s.terms[ontology] {
		if match(&s.terms[ontology][i]) {
			out = append(out, s.terms[ontology][i])
		}
	}
	return out
}

func (s *Server) serveOntologies(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page, size := pageParams(r, 20)
	lo, hi := window(len(s.ontologies), page, size)
	var env struct {
		Embedded *struct {
			Ontologies []term.Ontology `json:"ontologies"`
		} `json:"_embedded,omitempty"`
		Page pageMeta `json:"page"`
	}
	if lo < hi {
		env.Embedded = &struct {
			Ontologies []term.Ontology `json:"ontologies"`
		}{Ontologies: s.ontologies[lo:hi]}
	}
	env.Page = meta(len(s.ontologies), page, size)
	writeJSON(w, env)
}

func (s *Server) serveOntology(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.ontology(strings.ToLower(ps.ByName("onto")))
	if o == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, o)
}

// serveTermQuery answers /terms with an obo_id, short_term or iri filter,
// or with a plain page of terms when no filter is given.
func (s *Server) serveTermQuery(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ontology := strings.ToLower(ps.ByName("onto"))
	if s.ontology(ontology) == nil {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	var match func(t *term.Term) bool
	switch {
	case q.Has("obo_id"):
		v := q.Get("obo_id")
		match = func(t *term.Term) bool { return t.OBOID == v }
	case q.Has("short_term"):
		v := q.Get("short_term")
		match = func(t *term.Term) bool { return t.ShortForm == v }
	case q.Has("iri"):
		v := q.Get("iri")
		match = func(t *term.Term) bool { return t.IRI == v }
	default:
		s.servePage(w, r, ontology, s.terms[ontology])
		return
	}
	writeJSON(w, s.termEnvelope(r, ontology, s.find(ontology, match)))
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, ontology string, all []term.Term) {
	page, size := pageParams(r, 20)
	lo, hi := window(len(all), page, size)
	env := s.termEnvelope(r, ontology, all[lo:hi])
	m := meta(len(all), page, size)
	env.Page = &m
	writeJSON(w, env)
}

// serveTerms dispatches everything below /terms/: the plain listing, the
// roots listing, a single term addressed by its encoded IRI and its
// hierarchy collections.
func (s *Server) serveTerms(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ontology := strings.ToLower(ps.ByName("onto"))
	if s.ontology(ontology) == nil {
		http.NotFound(w, r)
		return
	}
	rest := strings.Trim(ps.ByName("rest"), "/")
	if rest == "" {
		s.servePage(w, r, ontology, s.terms[ontology])
		return
	}
	if rest == "roots" {
		roots := s.find(ontology, func(t *term.Term) bool {
			return len(s.parents[edgeKey(ontology, t.IRI)]) == 0
		})
		s.servePage(w, r, ontology, roots)
		return
	}
	parts := strings.Split(rest, "/")
	iri, err := url.PathUnescape(parts[0])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	found := s.find(ontology, func(t *term.Term) bool { return t.IRI == iri })
	if len(found) == 0 {
		http.NotFound(w, r)
		return
	}
	switch {
	case len(parts) == 1:
		writeJSON(w, s.withLinks(r, ontology, found[0]))
	case len(parts) == 2:
		s.serveHop(w, r, ontology, iri, parts[1])
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) serveHop(w http.ResponseWriter, r *http.Request, ontology, iri, rel string) {
	var iris []string
	switch rel {
	case term.RelHierarchicalChildren, term.RelChildren:
		iris = s.children[edgeKey(ontology, iri)]
	case term.RelHierarchicalParents, term.RelParents:
		iris = s.parents[edgeKey(ontology, iri)]
	default:
		http.NotFound(w, r)
		return
	}
	var all []term.Term
	for _, v := range iris {
		all = append(all, s.find(ontology, func(t *term.Term) bool { return t.IRI == v })...)
	}
	size := s.hopSize
	if size <= 0 {
		size = len(all) + 1
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	lo, hi := window(len(all), page, size)
	env := s.termEnvelope(r, ontology, all[lo:hi])
	if hi < len(all) {
		next := s.termHref(r, ontology, iri) + "/" + rel + "?page=" + strconv.Itoa(page+1)
		env.Links = map[string]link{term.RelNext: {Href: next}}
	}
	writeJSON(w, env)
}

func (s *Server) descendant(ontology, iri string, ancestors []string) bool {
	want := make(map[string]bool, len(ancestors))
	for _, a := range ancestors {
		want[a] = true
	}
	seen := map[string]bool{iri: true}
	queue := append([]string(nil), s.parents[edgeKey(ontology, iri)]...)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if want[p] {
			return true
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		queue = append(queue, s.parents[edgeKey(ontology, p)]...)
	}
	return false
}

func textMatch(v, text string, exact bool) bool {
	if v == "" {
		return false
	}
	if exact {
		return strings.EqualFold(v, text)
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(strings.Trim(text, "*")))
}

func fieldsMatch(t *term.Term, fields []string, text string, exact bool) bool {
	for _, f := range fields {
		var vals []string
		switch ols.Field(f) {
		case ols.FieldLabel:
			vals = []string{t.Label}
		case ols.FieldSynonym:
			vals = t.Synonyms
		case ols.FieldDescription:
			vals = t.Description
		case ols.FieldShortForm:
			vals = []string{t.ShortForm}
		case ols.FieldOBOID:
			vals = []string{t.OBOID}
		case ols.FieldIRI:
			vals = []string{t.IRI}
		}
		for _, v := range vals {
			if textMatch(v, text, exact) {
				return true
			}
		}
	}
	return false
}

func hit(t *term.Term) term.SearchResult {
	h := term.SearchResult{
		ID:               t.OntologyName + ":" + t.IRI,
		IRI:              t.IRI,
		Label:            t.Label,
		Description:      t.Description,
		Type:             "class",
		OntologyName:     t.OntologyName,
		OntologyPrefix:   t.OntologyPrefix,
		OntologyIRI:      t.OntologyIRI,
		DefiningOntology: t.DefiningOntology,
		Obsolete:         t.IsObsolete(),
		ReplacedBy:       t.ReplacedBy,
	}
	if t.ShortForm != "" {
		h.ShortForm = term.Strings{t.ShortForm}
	}
	if t.OBOID != "" {
		h.OBOID = term.Strings{t.OBOID}
	}
	return h
}

func (s *Server) serveSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := r.URL.Query()
	s.lastSearch = q
	text := q.Get("q")
	exact := q.Get("exact") == "true" || q.Get("exact") == "on"
	obsoletes := q.Get("obsoletes") == "true"
	ontology := strings.ToLower(q.Get("ontology"))
	fields := []string{string(ols.FieldLabel), string(ols.FieldSynonym)}
	if v := q.Get("queryFields"); v != "" {
		fields = strings.Split(v, ",")
	}
	var childrenOf []string
	if v := q.Get("childrenOf"); v != "" {
		childrenOf = strings.Split(v, ",")
	}

	var docs []term.SearchResult
	for _, o := range s.ontologies {
		if ontology != "" && o.ID != ontology {
			continue
		}
		for i := range s.terms[o.ID] {
			t := &s.terms[o.ID][i]
			if t.IsObsolete() && !obsoletes {
				continue
			}
			if len(childrenOf) > 0 && !s.descendant(o.ID, t.IRI, childrenOf) {
				continue
			}
			if fieldsMatch(t, fields, text, exact) {
				docs = append(docs, hit(t))
			}
		}
	}
	for _, h := range s.hits {
		if ontology == "" || strings.EqualFold(h.OntologyName, ontology) {
			docs = append(docs, h)
		}
	}

	rows, _ := strconv.Atoi(q.Get("rows"))
	if rows <= 0 {
		rows = 10
	}
	if s.maxRows > 0 && rows > s.maxRows {
		rows = s.maxRows
	}
	start, _ := strconv.Atoi(q.Get("start"))
	lo, hi := start, start+rows
	if lo > len(docs) {
		lo = len(docs)
	}
	if hi > len(docs) {
		hi = len(docs)
	}
	var env struct {
		Response struct {
			NumFound int                 `json:"numFound"`
			Start    int                 `json:"start"`
			Docs     []term.SearchResult `json:"docs"`
		} `json:"response"`
	}
	env.Response.NumFound = len(docs)
	env.Response.Start = start
	env.Response.Docs = docs[lo:hi]
	writeJSON(w, env)
}
