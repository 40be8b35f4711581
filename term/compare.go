package term

import "strings"

// Compare orders terms by OBO id, then short form, then IRI. A field is only
// used when both terms carry it; otherwise the next field is tried. Terms that
// share no field compare equal.
func Compare(a, b *Term) int {
	switch {
	case a.OBOID != "" && b.OBOID != "":
		return strings.Compare(a.OBOID, b.OBOID)
	case a.ShortForm != "" && b.ShortForm != "":
		return strings.Compare(a.ShortForm, b.ShortForm)
	case a.IRI != "" && b.IRI != "":
		return strings.Compare(a.IRI, b.IRI)
	}
	return 0
}

// ByID sorts terms with Compare.
type ByID []Term

func (s ByID) Len() int           { return len(s) }
func (s ByID) Less(i, j int) bool { return Compare(&s[i], &s[j]) < 0 }
func (s ByID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
