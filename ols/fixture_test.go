package ols_test

import (
	"testing"

	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/ols/olstest"
	"github.com/cayleygraph/ols/term"
)

func efoTerm(n, label string) term.Term {
	return term.Term{
		IRI:       "http://www.ebi.ac.uk/efo/EFO_" + n,
		ShortForm: "EFO_" + n,
		OBOID:     "EFO:" + n,
		Label:     label,
	}
}

func efoIRI(n string) string { return "http://www.ebi.ac.uk/efo/EFO_" + n }

// makeTree serves this hierarchy in ontology efo:
//
//	A
//	├── B
//	│   ├── D
//	│   │   └── G
//	│   └── E
//	└── C
//	    └── F
func makeTree(t testing.TB) (*olstest.Server, *ols.Client) {
	srv := olstest.NewServer()
	t.Cleanup(srv.Close)
	for _, n := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		srv.AddTerm("efo", efoTerm(n, "term "+n))
	}
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"B", "E"}, {"C", "F"}, {"D", "G"},
	} {
		srv.Link("efo", efoIRI(e[0]), efoIRI(e[1]))
	}
	return srv, srv.Client()
}

func labels(terms []term.Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.Label)
	}
	return out
}
