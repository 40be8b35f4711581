package ols_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/ols/olstest"
	"github.com/cayleygraph/ols/term"
)

func modTerm(n, label, mass string) term.Term {
	return term.Term{
		IRI:       "http://purl.obolibrary.org/obo/MOD_" + n,
		ShortForm: "MOD_" + n,
		OBOID:     "MOD:" + n,
		Label:     label,
		XRefs:     []term.XRef{{Database: mass, ID: "DiffMono"}, {Database: "C", ID: "Formula"}},
	}
}

func makeMod(t testing.TB) (*olstest.Server, *ols.Client) {
	srv := olstest.NewServer()
	t.Cleanup(srv.Close)
	ox := modTerm("00046", "O-phospho-L-serine", "79.966331")
	ox.Description = term.Strings{"", "A protein modification that effectively converts an L-serine residue to O-phospho-L-serine.", "second"}
	ox.Synonyms = term.Strings{"PhosphoSer", "Phospho", "PhosphoSer"}
	ox.Annotation = map[string]term.Strings{"comment": {"Not to be confused with MOD:00047."}, "has_exact_synonym": {"PhosphoSer"}}
	ox.OBOSynonyms = []term.Synonym{{Name: "PhosphoSer", Type: "PSI-MOD-label"}, {Name: "Phospho", Type: "PSI-MS-label"}}
	ox.Citations = []term.Citation{{
		Definition: "A protein modification...",
		XRefs:      []term.XRef{{Database: "PubMed", ID: "12345"}, {ID: "RESID:AA0037"}},
	}}
	srv.AddTerm("mod", ox)
	srv.AddTerm("mod", modTerm("00696", "phosphorylated residue", "79.966331"))
	srv.AddTerm("mod", modTerm("00034", "L-cystine (cross-link)", "-2.015650"))
	srv.AddTerm("mod", modTerm("00425", "monohydroxylated residue", "15.994915"))
	gone := modTerm("00001", "alkylated residue", "0")
	gone.Kind = term.Obsolete
	srv.AddTerm("mod", gone)
	return srv, srv.Client()
}

func TestTermMetadata(t *testing.T) {
	_, cli := makeMod(t)
	ctx := context.Background()
	id := term.NewOBO("MOD:00046")

	desc, err := cli.Descriptions(ctx, id, "mod")
	require.NoError(t, err)
	require.Len(t, desc, 2)

	first, err := cli.FirstDescription(ctx, id, "mod")
	require.NoError(t, err)
	require.Equal(t, "", first)

	comment, err := cli.Comment(ctx, id, "mod")
	require.NoError(t, err)
	require.Equal(t, "Not to be confused with MOD:00047.", comment)

	ann, err := cli.Annotations(ctx, id, "mod")
	require.NoError(t, err)
	require.Equal(t, term.Strings{"PhosphoSer"}, ann["has_exact_synonym"])

	syn, err := cli.Synonyms(ctx, id, "mod")
	require.NoError(t, err)
	require.Equal(t, []string{"PhosphoSer", "Phospho"}, syn)

	obo, err := cli.OBOSynonyms(ctx, id, "mod")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"PhosphoSer": "PSI-MOD-label", "Phospho": "PSI-MS-label"}, obo)

	xrefs, err := cli.Xrefs(ctx, id, "mod")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"79.966331":                    "",
		"C":                            "",
		"xref_definition_12345":        "PubMed:12345",
		"xref_definition_RESID:AA0037": "RESID:AA0037",
	}, xrefs)

	md, err := cli.Metadata(ctx, id, "mod")
	require.NoError(t, err)
	require.Equal(t, "Not to be confused with MOD:00047.", md.Comment)
	require.Len(t, md.Synonyms, 2)
	require.False(t, md.IsZero())
}

func TestTermMetadataUnknown(t *testing.T) {
	_, cli := makeMod(t)
	ctx := context.Background()
	id := term.NewOBO("MOD:99999")

	desc, err := cli.Descriptions(ctx, id, "mod")
	require.NoError(t, err)
	require.Empty(t, desc)

	xrefs, err := cli.Xrefs(ctx, id, "mod")
	require.NoError(t, err)
	require.Empty(t, xrefs)

	md, err := cli.Metadata(ctx, id, "mod")
	require.NoError(t, err)
	require.True(t, md.IsZero())

	obsolete, err := cli.IsObsolete(ctx, id, "mod")
	require.NoError(t, err)
	require.False(t, obsolete)
}

func TestRetrieveTerm(t *testing.T) {
	_, cli := makeMod(t)
	ctx := context.Background()

	got, err := cli.RetrieveTerm(ctx, "http://purl.obolibrary.org/obo/MOD_00001", "mod")
	require.NoError(t, err)
	require.True(t, got.IsObsolete())

	got, err = cli.RetrieveTerm(ctx, "http://purl.obolibrary.org/obo/MOD_00046", "mod")
	require.NoError(t, err)
	require.False(t, got.IsObsolete())

	_, err = cli.RetrieveTerm(ctx, "http://purl.obolibrary.org/obo/MOD_99999", "mod")
	require.ErrorIs(t, err, ols.ErrNotFound)
}

func TestIsObsolete(t *testing.T) {
	_, cli := makeMod(t)
	ctx := context.Background()

	ok, err := cli.IsObsolete(ctx, term.NewOBO("MOD:00001"), "mod")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cli.IsObsolete(ctx, term.NewShortForm("MOD_00046"), "mod")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTermsByAnnotationRange(t *testing.T) {
	_, cli := makeMod(t)
	got, err := cli.TermsByAnnotationRange(context.Background(), "mod", "diffmono", 15, 80)
	require.NoError(t, err)
	require.Equal(t, []string{"O-phospho-L-serine", "phosphorylated residue", "monohydroxylated residue"}, labels(got))
}
