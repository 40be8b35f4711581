package term

// XRef is a database cross reference attached to a term.
type XRef struct {
	Database    string `json:"database,omitempty"`
	ID          string `json:"id,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Synonym is an OBO synonym with its scope and type.
type Synonym struct {
	Name  string `json:"name"`
	Scope string `json:"scope,omitempty"`
	Type  string `json:"type,omitempty"`
	XRefs []XRef `json:"xrefs,omitempty"`
}

// Citation is a definition citation with its supporting xrefs.
type Citation struct {
	Definition string `json:"definition,omitempty"`
	XRefs      []XRef `json:"oboXrefs,omitempty"`
}
