package parse

import (
	_ "embed"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed record_schema.json
var recordSchemaJSON string

var recordSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record_schema.json", strings.NewReader(recordSchemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("record_schema.json")
}

// validateRecordShape checks a decoded JSON document against the resume
// record schema. The model is only instructed in prose to follow the
// shape, so drift has to be caught structurally here.
func validateRecordShape(doc any) error {
	return recordSchema.Validate(doc)
}
