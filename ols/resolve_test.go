package ols_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

func TestTermResolve(t *testing.T) {
	srv, cli := makeTree(t)
	dup := efoTerm("X", "duplicate one")
	srv.AddTerm("efo", dup)
	dup.Label = "duplicate two"
	dup.IRI = efoIRI("X2")
	srv.AddTerm("efo", dup)
	ctx := context.Background()

	for _, c := range []struct {
		name  string
		id    term.Identifier
		label string
		err   error
	}{
		{name: "obo", id: term.NewOBO("EFO:B"), label: "term B"},
		{name: "short form", id: term.NewShortForm("EFO_C"), label: "term C"},
		{name: "iri", id: term.NewIRI(efoIRI("D")), label: "term D"},
		{name: "missing obo", id: term.NewOBO("EFO:Z"), err: ols.ErrNotFound},
		{name: "missing short form", id: term.NewShortForm("EFO_Z"), err: ols.ErrNotFound},
		{name: "missing iri", id: term.NewIRI(efoIRI("Z")), err: ols.ErrNotFound},
		{name: "ambiguous obo", id: term.NewOBO("EFO:X"), err: ols.ErrNotFound},
		{name: "ambiguous short form", id: term.NewShortForm("EFO_X"), err: ols.ErrNotFound},
		{name: "zero", id: term.Identifier{}, err: ols.ErrNotFound},
		{name: "bad notation", id: term.Identifier{Value: "x", Notation: term.Notation(42)}, err: ols.ErrInvalidNotation},
	} {
		t.Run(c.name, func(t *testing.T) {
			got, err := cli.Term(ctx, c.id, "efo")
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.label, got.Label)
			require.True(t, got.Has(c.id))
		})
	}
}

func TestTermResolveUnknownOntology(t *testing.T) {
	_, cli := makeTree(t)
	_, err := cli.TermByOBOID(context.Background(), "EFO:A", "nope")
	require.ErrorIs(t, err, ols.ErrNotFound)
}

func TestTermByIRIUpperCaseOntology(t *testing.T) {
	_, cli := makeTree(t)
	got, err := cli.TermByIRI(context.Background(), efoIRI("A"), "EFO")
	require.NoError(t, err)
	require.Equal(t, "term A", got.Label)
	href, ok := got.ChildrenLink()
	require.True(t, ok)
	require.True(t, strings.HasSuffix(href, "/hierarchicalChildren"))
}

func TestTermResolveServerError(t *testing.T) {
	srv, cli := makeTree(t)
	srv.FailWhen(func(*http.Request) int { return http.StatusInternalServerError })
	ctx := context.Background()

	_, err := cli.TermByOBOID(ctx, "EFO:A", "efo")
	var re *ols.RequestError
	require.ErrorAs(t, err, &re)
	require.Equal(t, http.StatusInternalServerError, re.StatusCode)

	// Direct IRI fetches report any failed status as a missing term.
	_, err = cli.TermByIRI(ctx, efoIRI("A"), "efo")
	require.ErrorIs(t, err, ols.ErrNotFound)
}
