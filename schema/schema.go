package schema

import (
	"github.com/invopop/jsonschema"

	"github.com/kbukum/problem"
)

// Problem reflects the JSON Schema of the problem document. The schema is
// self-contained (no $ref indirection) so it can be embedded verbatim in
// OpenAPI documents or LLM structured-output requests.
func Problem() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(problem.Problem{})
}
