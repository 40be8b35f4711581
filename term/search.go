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

package term

import "encoding/json"

// SearchResult is one hit of the full-text search endpoint. It is a flatter
// projection of a term; identifier fields may hold several candidates of which
// only the first is authoritative.
type SearchResult struct {
	ID               string             `json:"id,omitempty"`
	IRI              string             `json:"iri,omitempty"`
	ShortForm        Strings            `json:"short_form,omitempty"`
	OBOID            Strings            `json:"obo_id,omitempty"`
	Label            string             `json:"label,omitempty"`
	Description      Strings            `json:"description,omitempty"`
	Type             string             `json:"type,omitempty"`
	OntologyName     string             `json:"ontology_name,omitempty"`
	OntologyPrefix   string             `json:"ontology_prefix,omitempty"`
	OntologyIRI      string             `json:"ontology_iri,omitempty"`
	Score            json.Number        `json:"score,omitempty"`
	DefiningOntology bool               `json:"is_defining_ontology,omitempty"`
	Obsolete         bool               `json:"is_obsolete,omitempty"`
	ReplacedBy       string             `json:"term_replaced_by,omitempty"`
	Annotation       map[string]Strings `json:"annotation,omitempty"`
	Citations        []Citation         `json:"obo_definition_citation,omitempty"`
}

// HasName reports whether the hit carries a display label. Hits without one
// are incomplete records and are dropped by callers.
func (r *SearchResult) HasName() bool { return r.Label != "" }

// Term converts the hit into a Term of the obsolete kind when the hit is
// flagged as obsolete, and of the normal kind otherwise.
func (r *SearchResult) Term() Term {
	t := Term{
		IRI:              r.IRI,
		ShortForm:        r.ShortForm.First(),
		OBOID:            r.OBOID.First(),
		Label:            r.Label,
		Description:      r.Description,
		Annotation:       r.Annotation,
		OntologyName:     r.OntologyName,
		OntologyPrefix:   r.OntologyPrefix,
		OntologyIRI:      r.OntologyIRI,
		DefiningOntology: r.DefiningOntology,
		Score:            r.Score,
		Citations:        r.Citations,
	}
	if r.Obsolete {
		t.Kind = Obsolete
		t.ReplacedBy = r.ReplacedBy
	}
	return t
}
