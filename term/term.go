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

import (
	"encoding/json"
	"strings"
)

// Kind tells a current term apart from an obsolete one.
type Kind int

const (
	Normal Kind = iota
	Obsolete
)

func (k Kind) String() string {
	if k == Obsolete {
		return "obsolete"
	}
	return "normal"
}

// Link relations used on terms and term collections.
const (
	RelSelf                 = "self"
	RelNext                 = "next"
	RelParents              = "parents"
	RelChildren             = "children"
	RelHierarchicalParents  = "hierarchicalParents"
	RelHierarchicalChildren = "hierarchicalChildren"
)

// Link is a hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// Links maps a relation name to its reference.
type Links map[string]Link

// Get returns the href for rel, if present and non-empty.
func (l Links) Get(rel string) (string, bool) {
	v, ok := l[rel]
	if !ok || v.Href == "" {
		return "", false
	}
	return v.Href, true
}

// first returns the first relation in rels that is present.
func (l Links) first(rels ...string) (string, bool) {
	for _, rel := range rels {
		if h, ok := l.Get(rel); ok {
			return h, true
		}
	}
	return "", false
}

// Term is a single ontology class. Both current and obsolete terms share this
// type; Kind distinguishes them and ReplacedBy is only meaningful for the latter.
//
// Terms are values: they are decoded fresh for every response and never
// modified afterwards.
type Term struct {
	Kind       Kind   `json:"-"`
	ReplacedBy string `json:"term_replaced_by,omitempty"`

	IRI       string `json:"iri,omitempty"`
	ShortForm string `json:"short_form,omitempty"`
	OBOID     string `json:"obo_id,omitempty"`

	Label       string             `json:"label,omitempty"`
	Description Strings            `json:"description,omitempty"`
	Synonyms    Strings            `json:"synonyms,omitempty"`
	Annotation  map[string]Strings `json:"annotation,omitempty"`

	OntologyName     string      `json:"ontology_name,omitempty"`
	OntologyPrefix   string      `json:"ontology_prefix,omitempty"`
	OntologyIRI      string      `json:"ontology_iri,omitempty"`
	DefiningOntology bool        `json:"is_defining_ontology,omitempty"`
	HasChildren      bool        `json:"has_children,omitempty"`
	Root             bool        `json:"is_root,omitempty"`
	Score            json.Number `json:"score,omitempty"`

	XRefs       []XRef     `json:"obo_xref,omitempty"`
	OBOSynonyms []Synonym  `json:"obo_synonym,omitempty"`
	Citations   []Citation `json:"obo_definition_citation,omitempty"`

	Links Links `json:"_links,omitempty"`
}

type termAlias Term

type termJSON struct {
	*termAlias
	Obsolete bool `json:"is_obsolete"`
}

func (t *Term) UnmarshalJSON(data []byte) error {
	aux := termJSON{termAlias: (*termAlias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Kind = Normal
	if aux.Obsolete {
		t.Kind = Obsolete
	}
	return nil
}

func (t Term) MarshalJSON() ([]byte, error) {
	a := termAlias(t)
	return json.Marshal(termJSON{termAlias: &a, Obsolete: t.Kind == Obsolete})
}

// IsObsolete reports whether the term is of the obsolete kind.
func (t *Term) IsObsolete() bool { return t.Kind == Obsolete }

// OBOIdentifier returns the OBO identifier of the term, possibly zero.
func (t *Term) OBOIdentifier() Identifier { return NewOBO(t.OBOID) }

// ShortFormIdentifier returns the short-form identifier of the term, possibly zero.
func (t *Term) ShortFormIdentifier() Identifier { return NewShortForm(t.ShortForm) }

// IRIIdentifier returns the IRI identifier of the term, possibly zero.
func (t *Term) IRIIdentifier() Identifier { return NewIRI(t.IRI) }

// GlobalID returns the most specific identifier the term carries,
// preferring OBO over short form over IRI.
func (t *Term) GlobalID() Identifier {
	switch {
	case t.OBOID != "":
		return t.OBOIdentifier()
	case t.ShortForm != "":
		return t.ShortFormIdentifier()
	}
	return t.IRIIdentifier()
}

// Has reports whether the term carries the given identifier.
func (t *Term) Has(id Identifier) bool {
	switch id.Notation {
	case OBO:
		return t.OBOID == id.Value
	case ShortForm:
		return t.ShortForm == id.Value
	case IRI:
		return t.IRI == id.Value
	}
	return false
}

// ChildrenLink returns the href of the term's children collection.
func (t *Term) ChildrenLink() (string, bool) {
	return t.Links.first(RelHierarchicalChildren, RelChildren)
}

// ParentsLink returns the href of the term's parents collection.
func (t *Term) ParentsLink() (string, bool) {
	return t.Links.first(RelHierarchicalParents, RelParents)
}

// ContainsXRef reports whether any xref id contains typ, ignoring case.
func (t *Term) ContainsXRef(typ string) bool {
	_, ok := t.xref(typ)
	return ok
}

// XRefValue returns the database of the first xref whose id contains typ.
// Numeric annotations are stored this way by some ontologies (e.g. PSI-MOD).
func (t *Term) XRefValue(typ string) string {
	x, _ := t.xref(typ)
	return x.Database
}

func (t *Term) xref(typ string) (XRef, bool) {
	typ = strings.ToUpper(typ)
	for _, x := range t.XRefs {
		if x.ID != "" && strings.Contains(strings.ToUpper(x.ID), typ) {
			return x, true
		}
	}
	return XRef{}, false
}

// SynonymTypes maps each OBO synonym name to its type.
func (t *Term) SynonymTypes() map[string]string {
	m := make(map[string]string, len(t.OBOSynonyms))
	for _, s := range t.OBOSynonyms {
		if s.Name != "" {
			m[s.Name] = s.Type
		}
	}
	return m
}

// CitationXRefs returns xrefs of the definition citations keyed by
// "xref_definition_<id>". Values are "<database>:<id>" when the database is known.
func (t *Term) CitationXRefs() map[string]string {
	m := make(map[string]string)
	for _, c := range t.Citations {
		for _, x := range c.XRefs {
			if x.ID == "" {
				continue
			}
			v := x.ID
			if x.Database != "" {
				v = x.Database + ":" + x.ID
			}
			m["xref_definition_"+x.ID] = v
		}
	}
	return m
}
