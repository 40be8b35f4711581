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

// Package term defines ontology terms, identifiers and ontologies as
// returned by the Ontology Lookup Service.
package term

import (
	"fmt"
	"strings"
)

// Notation is the syntax an identifier is written in.
type Notation int

const (
	// OBO is the PREFIX:NNNNNNN form, e.g. GO:0008150.
	OBO Notation = iota
	// ShortForm is the underscore-joined OWL form, e.g. GO_0008150.
	ShortForm
	// IRI is the full resource identifier of the term.
	IRI
)

func (n Notation) String() string {
	switch n {
	case OBO:
		return "obo"
	case ShortForm:
		return "short_form"
	case IRI:
		return "iri"
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

// ParseNotation accepts the names returned by Notation.String and a few
// common aliases ("owl", "short").
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "obo", "":
		return OBO, nil
	case "short_form", "short", "owl":
		return ShortForm, nil
	case "iri", "uri":
		return IRI, nil
	}
	return 0, fmt.Errorf("unknown identifier notation: %q", s)
}

// Identifier is a term identifier in a given notation.
// It is a comparable value; two identifiers are equal if both fields are.
type Identifier struct {
	Value    string
	Notation Notation
}

// NewOBO returns an OBO-style identifier.
func NewOBO(v string) Identifier { return Identifier{Value: v, Notation: OBO} }

// NewShortForm returns a short-form identifier.
func NewShortForm(v string) Identifier { return Identifier{Value: v, Notation: ShortForm} }

// NewIRI returns an IRI identifier.
func NewIRI(v string) Identifier { return Identifier{Value: v, Notation: IRI} }

// IsZero reports whether the identifier carries no value.
func (id Identifier) IsZero() bool { return id.Value == "" }

func (id Identifier) String() string {
	if id.Notation == IRI {
		return "<" + id.Value + ">"
	}
	return id.Value
}

// Guess picks a notation for a bare identifier: anything with a scheme is an
// IRI, an underscore without a colon is a short form, everything else is OBO.
func Guess(s string) Identifier {
	switch {
	case strings.Contains(s, "://"):
		return NewIRI(s)
	case strings.Contains(s, "_") && !strings.Contains(s, ":"):
		return NewShortForm(s)
	}
	return NewOBO(s)
}
