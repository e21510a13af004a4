package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// submitURLSchema is the upstream component whose generated schema trips up
// strict MCP clients. Two properties get rewritten:
//
//   - date_range: a fixed-length tuple becomes a plain two-string array
//   - webhook: an anyOf union of uri-string and null becomes a nullable
//     uri-formatted string
//
// Titles and descriptions from the original schema are preserved.
const submitURLSchema = "SubmitUrlRequest"

// PatchDocument rewrites the SubmitUrlRequest schema in place. It is
// idempotent: running it on an already patched document changes nothing,
// and documents without the target schema are left untouched.
func PatchDocument(doc *openapi3.T) {
	if doc == nil || doc.Components == nil {
		return
	}
	ref, ok := doc.Components.Schemas[submitURLSchema]
	if !ok || ref == nil || ref.Value == nil {
		return
	}

	schema := ref.Value
	if prop, ok := schema.Properties["date_range"]; ok && prop != nil && prop.Value != nil {
		prop.Value = patchDateRange(prop.Value)
		schema.Properties["date_range"] = prop
	}
	if prop, ok := schema.Properties["webhook"]; ok && prop != nil && prop.Value != nil {
		prop.Value = patchWebhook(prop.Value)
		schema.Properties["webhook"] = prop
	}
}

// patchDateRange replaces a tuple-typed date_range with an array of exactly
// two strings.
func patchDateRange(old *openapi3.Schema) *openapi3.Schema {
	two := uint64(2)
	return &openapi3.Schema{
		Title:       old.Title,
		Description: old.Description,
		Type:        &openapi3.Types{"array"},
		Items: &openapi3.SchemaRef{
			Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
		},
		MinItems: 2,
		MaxItems: &two,
	}
}

// patchWebhook collapses the anyOf[string|null] union into a nullable
// uri-formatted string.
func patchWebhook(old *openapi3.Schema) *openapi3.Schema {
	title := old.Title
	description := old.Description
	// Pull title/description off the union branch when the wrapper has none.
	for _, branch := range old.AnyOf {
		if branch == nil || branch.Value == nil {
			continue
		}
		if title == "" {
			title = branch.Value.Title
		}
		if description == "" {
			description = branch.Value.Description
		}
	}

	return &openapi3.Schema{
		Title:       title,
		Description: description,
		Type:        &openapi3.Types{"string"},
		Format:      "uri",
		Nullable:    true,
	}
}
