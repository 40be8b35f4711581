package term

import (
	"encoding/json"
	"fmt"
)

// Strings is a list of strings that also decodes from a single JSON string.
// The remote service is not consistent about which of the two it returns for
// descriptions, synonyms, annotation values and search hit identifiers.
type Strings []string

func (s *Strings) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Strings{v}
		return nil
	case '[':
		var v []string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = v
		return nil
	}
	return fmt.Errorf("term: cannot decode %s as string list", data)
}

// First returns the first element or an empty string.
func (s Strings) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
