package catchall

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

// Normalize turns a raw upstream response into either a decoded JSON value
// or a classified API error. Bodies are decompressed and text-decoded first;
// a successful response that is not JSON is wrapped as {"raw": text}.
func Normalize(status int, body []byte) (any, error) {
	text := decodeText(decompress(body))

	if status >= 400 {
		return nil, platformerrors.NewAPI(status, extractErrorMessage(status, text))
	}

	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		return payload, nil
	}
	return map[string]any{"raw": text}, nil
}

// extractErrorMessage digs the most specific human-readable message out of
// an error body. Lookup order follows the upstream's conventions: detail,
// then error, then message, then the body text itself.
func extractErrorMessage(status int, text string) string {
	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		if msg, ok := fieldMessage(payload, "detail"); ok {
			return msg
		}
		if msg, ok := fieldMessage(payload, "error"); ok {
			return msg
		}
		if msg, ok := fieldMessage(payload, "message"); ok {
			return msg
		}
	}

	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return trimmed
	}
	return fmt.Sprintf("HTTP %d", status)
}

// fieldMessage extracts field as a message. Strings pass through; a nested
// map tries its own "detail" first; anything else is dumped as JSON so
// structured validation errors stay legible.
func fieldMessage(payload map[string]any, field string) (string, bool) {
	val, ok := payload[field]
	if !ok || val == nil {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case map[string]any:
		if inner, ok := v["detail"].(string); ok {
			return inner, true
		}
	}

	if dumped, err := json.Marshal(val); err == nil {
		return string(dumped), true
	}
	return fmt.Sprintf("%v", val), true
}
