package term

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNotation(t *testing.T) {
	for _, c := range []struct {
		in  string
		exp Notation
	}{
		{"obo", OBO},
		{"", OBO},
		{"OWL", ShortForm},
		{"short_form", ShortForm},
		{"iri", IRI},
	} {
		n, err := ParseNotation(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.exp, n, c.in)
	}
	_, err := ParseNotation("curie")
	require.Error(t, err)
}

func TestGuess(t *testing.T) {
	require.Equal(t, NewOBO("GO:0008150"), Guess("GO:0008150"))
	require.Equal(t, NewShortForm("GO_0008150"), Guess("GO_0008150"))
	require.Equal(t, NewIRI("http://purl.obolibrary.org/obo/GO_0008150"), Guess("http://purl.obolibrary.org/obo/GO_0008150"))
}

func TestIdentifierEquality(t *testing.T) {
	require.Equal(t, NewOBO("MS:1001767"), Identifier{Value: "MS:1001767", Notation: OBO})
	require.NotEqual(t, NewOBO("MS_1001767"), NewShortForm("MS_1001767"))
}

const termJSONText = `{
	"iri": "http://purl.obolibrary.org/obo/MI_0018",
	"label": "two hybrid",
	"description": "The classical two-hybrid system.",
	"synonyms": ["2h", "2-hybrid"],
	"annotation": {"comment": ["first", "second"], "id": "MI:0018"},
	"ontology_name": "mi",
	"is_obsolete": false,
	"short_form": "MI_0018",
	"obo_id": "MI:0018",
	"obo_xref": [{"database": "PMID", "id": "10967325"}],
	"obo_synonym": [{"name": "2h", "scope": "hasExactSynonym", "type": "PSI-MI-short"}],
	"obo_definition_citation": [{"definition": "x", "oboXrefs": [{"database": "PMID", "id": "7"}, {"id": "8"}]}],
	"_links": {
		"parents": {"href": "http://host/parents"},
		"hierarchicalParents": {"href": "http://host/hparents"},
		"children": {"href": "http://host/children"}
	}
}`

func TestTermDecode(t *testing.T) {
	var tm Term
	require.NoError(t, json.Unmarshal([]byte(termJSONText), &tm))
	require.Equal(t, Normal, tm.Kind)
	require.Equal(t, Strings{"The classical two-hybrid system."}, tm.Description)
	require.Equal(t, Strings{"first", "second"}, tm.Annotation["comment"])
	require.Equal(t, Strings{"MI:0018"}, tm.Annotation["id"])
	require.Equal(t, NewOBO("MI:0018"), tm.GlobalID())

	h, ok := tm.ParentsLink()
	require.True(t, ok)
	require.Equal(t, "http://host/hparents", h)
	h, ok = tm.ChildrenLink()
	require.True(t, ok)
	require.Equal(t, "http://host/children", h)

	require.True(t, tm.ContainsXRef("1096"))
	require.False(t, tm.ContainsXRef("pmid"))
	require.Equal(t, "PMID", tm.XRefValue("1096"))
	require.Equal(t, map[string]string{"2h": "PSI-MI-short"}, tm.SynonymTypes())
	require.Equal(t, map[string]string{
		"xref_definition_7": "PMID:7",
		"xref_definition_8": "8",
	}, tm.CitationXRefs())
}

func TestTermObsoleteRoundTrip(t *testing.T) {
	var tm Term
	require.NoError(t, json.Unmarshal([]byte(`{"iri":"x","is_obsolete":true,"term_replaced_by":"y"}`), &tm))
	require.True(t, tm.IsObsolete())
	require.Equal(t, "y", tm.ReplacedBy)

	data, err := json.Marshal(tm)
	require.NoError(t, err)
	var back Term
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, tm, back)
}

func TestGlobalIDPrecedence(t *testing.T) {
	tm := Term{IRI: "http://x/A_1", ShortForm: "A_1"}
	require.Equal(t, NewShortForm("A_1"), tm.GlobalID())
	tm.ShortForm = ""
	require.Equal(t, NewIRI("http://x/A_1"), tm.GlobalID())
}

func TestCompare(t *testing.T) {
	for _, c := range []struct {
		name string
		a, b Term
		exp  int
	}{
		{"obo", Term{OBOID: "A:1", ShortForm: "Z_9"}, Term{OBOID: "A:2", ShortForm: "A_0"}, -1},
		{"short form when obo missing", Term{ShortForm: "B_1"}, Term{OBOID: "A:1", ShortForm: "A_1"}, 1},
		{"iri last", Term{IRI: "http://a"}, Term{IRI: "http://b"}, -1},
		{"nothing shared", Term{OBOID: "A:1"}, Term{IRI: "http://b"}, 0},
		{"equal", Term{OBOID: "A:1"}, Term{OBOID: "A:1"}, 0},
	} {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.exp, Compare(&c.a, &c.b))
			require.Equal(t, -c.exp, Compare(&c.b, &c.a))
		})
	}
}

func TestSortByID(t *testing.T) {
	terms := []Term{{OBOID: "X:3"}, {OBOID: "X:1"}, {OBOID: "X:2"}}
	sort.Sort(ByID(terms))
	require.Equal(t, []Term{{OBOID: "X:1"}, {OBOID: "X:2"}, {OBOID: "X:3"}}, terms)
}

func TestSearchResultTerm(t *testing.T) {
	var r SearchResult
	require.NoError(t, json.Unmarshal([]byte(`{
		"iri": "http://www.ebi.ac.uk/efo/EFO_0000001",
		"label": "experimental factor",
		"short_form": ["EFO_0000001", "efo_0000001"],
		"obo_id": "EFO:0000001",
		"ontology_name": "efo",
		"score": 12.5,
		"is_obsolete": true,
		"term_replaced_by": "EFO:0000002"
	}`), &r))
	require.True(t, r.HasName())

	tm := r.Term()
	require.Equal(t, Obsolete, tm.Kind)
	require.Equal(t, "EFO_0000001", tm.ShortForm)
	require.Equal(t, "EFO:0000001", tm.OBOID)
	require.Equal(t, "EFO:0000002", tm.ReplacedBy)
	require.Equal(t, "12.5", tm.Score.String())

	r.Obsolete = false
	tm = r.Term()
	require.Equal(t, Normal, tm.Kind)
	require.Empty(t, tm.ReplacedBy)
}

func TestStringsDecode(t *testing.T) {
	var s Strings
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	require.Nil(t, s)
	require.Equal(t, "", s.First())
	require.Error(t, json.Unmarshal([]byte(`12`), &s))
}
