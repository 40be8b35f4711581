package term

// Ontology describes one ontology loaded in the lookup service.
type Ontology struct {
	ID                  string         `json:"ontologyId"`
	Status              string         `json:"status,omitempty"`
	Message             string         `json:"message,omitempty"`
	Version             string         `json:"version,omitempty"`
	Loaded              string         `json:"loaded,omitempty"`
	Updated             string         `json:"updated,omitempty"`
	NumberOfTerms       int            `json:"numberOfTerms,omitempty"`
	NumberOfProperties  int            `json:"numberOfProperties,omitempty"`
	NumberOfIndividuals int            `json:"numberOfIndividuals,omitempty"`
	Config              OntologyConfig `json:"config"`
	Links               Links          `json:"_links,omitempty"`
}

// OntologyConfig is the configuration block of an ontology.
type OntologyConfig struct {
	ID              string   `json:"id,omitempty"`
	VersionIRI      string   `json:"versionIri,omitempty"`
	Namespace       string   `json:"namespace,omitempty"`
	PreferredPrefix string   `json:"preferredPrefix,omitempty"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	Homepage        string   `json:"homepage,omitempty"`
	Version         string   `json:"version,omitempty"`
	FileLocation    string   `json:"fileLocation,omitempty"`
	BaseURIs        []string `json:"baseUris,omitempty"`
}
