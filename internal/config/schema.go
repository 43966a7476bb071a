package config

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchemaJSON bounds the shape of a user-supplied config file: the
// DetectionThresholds section's numeric fields must be nonnegative integers
// (or, for clusterThreshold, a fraction), and exclude.dirs must be strings.
const configSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "DetectionThresholds": {
      "type": "object",
      "properties": {
        "maxclasslines":       { "type": "integer", "minimum": 0 },
        "maxmethods":          { "type": "integer", "minimum": 0 },
        "maxclasscomplexity":  { "type": "integer", "minimum": 0 },
        "maxmethodlines":      { "type": "integer", "minimum": 0 },
        "maxmethodcomplexity": { "type": "integer", "minimum": 0 },
        "maxmethodparameters": { "type": "integer", "minimum": 0 },
        "maxclassesperfile":   { "type": "integer", "minimum": 0 },
        "maxfilelines":        { "type": "integer", "minimum": 0 },
        "minclustersize":      { "type": "integer", "minimum": 2 },
        "clusterthreshold":    { "type": "number", "minimum": 0, "maximum": 1 }
      },
      "additionalProperties": true
    },
    "exclude": {
      "type": "object",
      "properties": {
        "dirs": { "type": "array", "items": { "type": "string" } }
      },
      "additionalProperties": true
    }
  },
  "additionalProperties": true
}`

const configSchemaResource = "godscan-config.json"

// ValidateSchema checks a koanf-decoded config map against the bundled JSON
// Schema before it is merged into Default(). Unknown top-level keys are
// permitted (additionalProperties: true); only recognized keys are
// type-checked.
func ValidateSchema(raw map[string]any) error {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(configSchemaJSON))
	if err != nil {
		return err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(configSchemaResource, doc); err != nil {
		return err
	}
	schema, err := compiler.Compile(configSchemaResource)
	if err != nil {
		return err
	}
	return schema.Validate(raw)
}
