package tracker

import (
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaURL identifies the embedded data file schema.
const SchemaURL = "https://github.com/nibzard/project-tracker/data.schema.json"

// SchemaJSON is the JSON Schema every non-empty data file must satisfy.
const SchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/nibzard/project-tracker/data.schema.json",
  "title": "project-tracker data file",
  "type": "array",
  "items": { "$ref": "#/$defs/project" },
  "$defs": {
    "project": {
      "type": "object",
      "required": ["name", "tasks"],
      "properties": {
        "name": { "type": "string" },
        "tasks": {
          "type": "array",
          "items": { "$ref": "#/$defs/task" }
        }
      }
    },
    "task": {
      "type": "object",
      "required": ["id", "description", "completed"],
      "properties": {
        "id": { "type": "integer", "minimum": 1, "maximum": 4294967295 },
        "description": { "type": "string" },
        "completed": { "type": "boolean" }
      }
    }
  }
}
`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(SchemaURL, strings.NewReader(SchemaJSON)); err != nil {
		panic("tracker: invalid embedded schema: " + err.Error())
	}
	return compiler.MustCompile(SchemaURL)
}
