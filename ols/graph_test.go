package ols_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

func TestExpandDistance(t *testing.T) {
	_, cli := makeTree(t)
	ctx := context.Background()
	a, err := cli.Term(ctx, term.NewOBO("EFO:A"), "efo")
	require.NoError(t, err)

	for _, c := range []struct {
		distance int
		expect   []string
	}{
		{0, []string{}},
		{1, []string{"term B", "term C"}},
		{2, []string{"term B", "term C", "term D", "term E", "term F"}},
		// Each member's subtree is expanded before its next sibling.
		{3, []string{"term B", "term C", "term D", "term E", "term G", "term F"}},
		{10, []string{"term B", "term C", "term D", "term E", "term G", "term F"}},
	} {
		got, err := cli.Expand(ctx, a, ols.Children, c.distance)
		require.NoError(t, err)
		require.Equal(t, c.expect, labels(got), "distance %d", c.distance)
	}
}

func TestExpandZeroMakesNoRequest(t *testing.T) {
	srv, cli := makeTree(t)
	ctx := context.Background()
	a, err := cli.Term(ctx, term.NewOBO("EFO:A"), "efo")
	require.NoError(t, err)
	before := srv.Requests()
	for _, dir := range []ols.Direction{ols.Children, ols.Parents} {
		got, err := cli.Expand(ctx, a, dir, 0)
		require.NoError(t, err)
		require.Empty(t, got)
	}
	require.Equal(t, before, srv.Requests())
}

func TestExpandNegative(t *testing.T) {
	_, cli := makeTree(t)
	_, err := cli.Expand(context.Background(), &term.Term{}, ols.Children, -1)
	require.ErrorIs(t, err, ols.ErrNegativeDistance)
	_, err = cli.Children(context.Background(), term.NewOBO("EFO:A"), "efo", -1)
	require.ErrorIs(t, err, ols.ErrNegativeDistance)
}

func TestExpandNoLink(t *testing.T) {
	srv, cli := makeTree(t)
	before := srv.Requests()
	got, err := cli.Expand(context.Background(), &term.Term{Label: "orphan"}, ols.Children, 3)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, before, srv.Requests())
}

func TestParents(t *testing.T) {
	_, cli := makeTree(t)
	got, err := cli.Parents(context.Background(), term.NewShortForm("EFO_G"), "efo", 5)
	require.NoError(t, err)
	require.Equal(t, []string{"term D", "term B", "term A"}, labels(got))

	got, err = cli.Parents(context.Background(), term.NewOBO("EFO:G"), "efo", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"term D"}, labels(got))
}

func TestChildrenUnknownTerm(t *testing.T) {
	_, cli := makeTree(t)
	got, err := cli.Children(context.Background(), term.NewOBO("EFO:nope"), "efo", 2)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestChildrenPaged(t *testing.T) {
	srv, cli := makeTree(t)
	srv.SetHopPageSize(1)
	got, err := cli.Children(context.Background(), term.NewIRI(efoIRI("A")), "efo", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"term B", "term C", "term D", "term E", "term F"}, labels(got))
}

func TestExpandDuplicates(t *testing.T) {
	srv, cli := makeTree(t)
	srv.Link("efo", efoIRI("C"), efoIRI("E"))
	got, err := cli.Children(context.Background(), term.NewOBO("EFO:A"), "efo", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"term B", "term C", "term D", "term E", "term F", "term E"}, labels(got))
}

func TestEdges(t *testing.T) {
	_, cli := makeTree(t)
	ctx := context.Background()
	a, err := cli.Term(ctx, term.NewOBO("EFO:A"), "efo")
	require.NoError(t, err)
	edges, err := cli.Edges(ctx, a, ols.Children, 2)
	require.NoError(t, err)
	var got [][2]string
	for _, e := range edges {
		got = append(got, [2]string{e.From.Label, e.To.Label})
	}
	require.Equal(t, [][2]string{
		{"term A", "term B"}, {"term A", "term C"},
		{"term B", "term D"}, {"term B", "term E"},
		{"term C", "term F"},
	}, got)
}

func TestParseDirection(t *testing.T) {
	for _, d := range []ols.Direction{ols.Children, ols.Parents} {
		got, err := ols.ParseDirection(d.String())
		require.NoError(t, err)
		require.Equal(t, d, got)
	}
	_, err := ols.ParseDirection("siblings")
	require.Error(t, err)
}
