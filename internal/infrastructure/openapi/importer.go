package openapi

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog/log"

	domain "github.com/newscatcher/catchall-mcp/internal/domain/catchall"
	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

// ImportTemplates loads the CatchAll OpenAPI document from a URL or local
// file, applies the schema patches, and derives one tool template per
// operation. Templates come back sorted by name so registration order is
// stable.
func ImportTemplates(ctx context.Context, location string) ([]domain.ToolTemplate, error) {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}

	var (
		doc *openapi3.T
		err error
	)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		var u *url.URL
		u, err = url.Parse(location)
		if err == nil {
			doc, err = loader.LoadFromURI(u)
		}
	} else {
		doc, err = loader.LoadFromFile(location)
	}
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.ErrorTypeConfig,
			fmt.Sprintf("loading OpenAPI document from %s", location), err)
	}

	PatchDocument(doc)
	templates := DeriveTemplates(doc)
	log.Info().Int("count", len(templates)).Str("source", location).Msg("imported tool templates from OpenAPI document")
	return templates, nil
}

// DeriveTemplates walks every operation in the document and builds its tool
// template. Operations without an operationId get a name derived from the
// method and path.
func DeriveTemplates(doc *openapi3.T) []domain.ToolTemplate {
	var templates []domain.ToolTemplate
	if doc == nil || doc.Paths == nil {
		return templates
	}

	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for key := range paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			templates = append(templates, operationTemplate(method, path, op))
		}
	}

	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates
}

func operationTemplate(method, path string, op *openapi3.Operation) domain.ToolTemplate {
	tmpl := domain.ToolTemplate{
		Name:        operationName(method, path, op),
		Description: operationDescription(op),
		Method:      method,
		Path:        path,
	}

	for _, ref := range op.Parameters {
		if ref == nil || ref.Value == nil {
			continue
		}
		param := ref.Value
		spec := domain.ArgSpec{
			Name:        param.Name,
			Type:        schemaArgType(param.Schema),
			Description: param.Description,
			Required:    param.Required,
		}
		switch param.In {
		case openapi3.ParameterInPath:
			spec.Required = true
			tmpl.Args = append(tmpl.Args, spec)
		case openapi3.ParameterInQuery:
			tmpl.QueryArgs = append(tmpl.QueryArgs, param.Name)
			tmpl.Args = append(tmpl.Args, spec)
		}
	}

	if body := requestBodySchema(op); body != nil {
		required := make(map[string]bool, len(body.Required))
		for _, name := range body.Required {
			required[name] = true
		}

		names := make([]string, 0, len(body.Properties))
		for name := range body.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			tmpl.BodyArgs = append(tmpl.BodyArgs, name)
			tmpl.Args = append(tmpl.Args, domain.ArgSpec{
				Name:        name,
				Type:        schemaArgType(body.Properties[name]),
				Description: propertyDescription(body.Properties[name]),
				Required:    required[name],
			})
		}
	}

	return tmpl
}

func operationName(method, path string, op *openapi3.Operation) string {
	if op.OperationID != "" {
		return op.OperationID
	}
	slug := strings.NewReplacer("/", "_", "{", "", "}", "").Replace(strings.Trim(path, "/"))
	return strings.ToLower(method) + "_" + slug
}

func operationDescription(op *openapi3.Operation) string {
	if op.Description != "" {
		return op.Description
	}
	return op.Summary
}

func requestBodySchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

func propertyDescription(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Value == nil {
		return ""
	}
	return ref.Value.Description
}

func schemaArgType(ref *openapi3.SchemaRef) domain.ArgType {
	if ref == nil || ref.Value == nil || ref.Value.Type == nil {
		return domain.ArgString
	}
	if ref.Value.Type.Is("integer") {
		return domain.ArgInteger
	}
	return domain.ArgString
}
