// Package doctor verifies inventory snapshot files.
//
// Load deliberately accepts snapshot values verbatim, so a hand-edited or
// corrupted file can carry negative quantities into the store. Doctor checks
// a snapshot against the shape the writer guarantees — a JSON object mapping
// non-empty names to non-negative integers — without changing load semantics.
package doctor

import (
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

const snapshotSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"propertyNames": {"minLength": 1},
	"additionalProperties": {"type": "integer", "minimum": 0}
}`

// CheckFile reads the snapshot at path and returns one finding per schema
// violation. An empty result means the file is well formed. A file that
// cannot be read or is not valid JSON at all is an error, not a finding.
func CheckFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Check(data)
}

// Check validates raw snapshot bytes against the snapshot schema.
func Check(data []byte) ([]string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(snapshotSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("snapshot is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	findings := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		findings = append(findings, desc.String())
	}
	return findings, nil
}
