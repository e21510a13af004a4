package catchall

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

// UpstreamRequest is one fully built request against the CatchAll API.
// Operation carries the tool name for metrics labelling.
type UpstreamRequest struct {
	Operation string
	Method    string
	Path      string
	Body      map[string]any
	Query     url.Values
}

// BuildRequest constructs the upstream request for a template from the raw
// tool arguments. Construction is deterministic: path segments are filled
// from path arguments, body and query maps only contain arguments that were
// supplied or carry a default.
func BuildRequest(tmpl ToolTemplate, args map[string]any) (UpstreamRequest, error) {
	if err := validateArgs(tmpl, args); err != nil {
		return UpstreamRequest{}, err
	}

	req := UpstreamRequest{
		Operation: tmpl.Name,
		Method:    tmpl.Method,
		Path:      tmpl.Path,
	}

	for _, spec := range tmpl.Args {
		val, ok := argValue(spec, args)

		placeholder := "{" + spec.Name + "}"
		if strings.Contains(req.Path, placeholder) {
			req.Path = strings.ReplaceAll(req.Path, placeholder, url.PathEscape(formatArg(spec, val)))
			continue
		}

		if !ok {
			continue
		}
		if contains(tmpl.BodyArgs, spec.Name) {
			if req.Body == nil {
				req.Body = make(map[string]any)
			}
			req.Body[spec.Name] = coerceArg(spec, val)
		}
		if contains(tmpl.QueryArgs, spec.Name) {
			if req.Query == nil {
				req.Query = url.Values{}
			}
			req.Query.Set(spec.Name, formatArg(spec, val))
		}
	}

	return req, nil
}

func validateArgs(tmpl ToolTemplate, args map[string]any) error {
	for _, spec := range tmpl.Args {
		if !spec.Required {
			continue
		}
		if _, ok := argValue(spec, args); !ok {
			return platformerrors.New(platformerrors.ErrorTypeValidation,
				fmt.Sprintf("%s: missing required argument %q", tmpl.Name, spec.Name))
		}
	}

	if len(tmpl.RequireOneOf) > 0 {
		supplied := false
		for _, name := range tmpl.RequireOneOf {
			if val, ok := args[name]; ok && !isEmpty(val) {
				supplied = true
				break
			}
		}
		if !supplied {
			return platformerrors.New(platformerrors.ErrorTypeValidation,
				fmt.Sprintf("%s: at least one of %s must be supplied", tmpl.Name, strings.Join(tmpl.RequireOneOf, ", ")))
		}
	}

	return nil
}

// argValue resolves an argument from the call arguments or the template
// default. The bool reports whether any value was found.
func argValue(spec ArgSpec, args map[string]any) (any, bool) {
	if val, ok := args[spec.Name]; ok && !isEmpty(val) {
		return val, true
	}
	if spec.Default != nil {
		return spec.Default, true
	}
	return nil, false
}

// coerceArg normalizes JSON-decoded values to the declared argument type;
// integers arrive from the wire as float64.
func coerceArg(spec ArgSpec, val any) any {
	if spec.Type == ArgInteger {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		}
	}
	return val
}

func formatArg(spec ArgSpec, val any) string {
	switch v := coerceArg(spec, val).(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isEmpty(val any) bool {
	if val == nil {
		return true
	}
	if s, ok := val.(string); ok {
		return s == ""
	}
	return false
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
