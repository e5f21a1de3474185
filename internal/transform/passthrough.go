package transform

import (
	"encoding/json"

	"PMTerminal/pkg/jsonx"

	"github.com/tidwall/gjson"
)

// PassThrough returns the upstream document unchanged apart from unwrapping
// a top-level "data" member. When "data" is unwrapped its siblings (such as
// "message" or "id") are dropped. An empty document yields nil.
func PassThrough(doc gjson.Result) json.RawMessage {
	body := jsonx.Unwrap(doc)
	if !body.Exists() || body.Raw == "" {
		return nil
	}
	return json.RawMessage(body.Raw)
}
