package library

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the .json library format.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}

	s := r.Reflect(&[]Video{})
	s.Title = "vidcat library"
	s.Description = "Videos loaded once at startup, read-only afterwards"

	return json.MarshalIndent(s, "", "  ")
}
