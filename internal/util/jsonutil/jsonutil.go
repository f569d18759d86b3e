// Package jsonutil decodes JSON that arrives from a language model.
// Model output is routinely wrapped in markdown fences or carries
// double-escaped unicode sequences, so plain json.Unmarshal is not enough.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var fenceRE = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// StripFences returns the content of the first fenced block if the text is
// fence-wrapped, otherwise the trimmed input unchanged.
func StripFences(raw string) string {
	if m := fenceRE.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// UnmarshalLoose decodes with best effort:
// 1) strip markdown fences if present
// 2) normalize double-escaped unicode when the payload carries \\u sequences
// 3) plain unmarshal as the fallback
// Double-escaped payloads are valid JSON on their own, so the normalization
// check has to run before the plain decode would accept the escaped strings.
func UnmarshalLoose(raw []byte, v any) error {
	stripped := []byte(StripFences(string(raw)))
	if bytes.Contains(stripped, []byte(`\\u`)) {
		if norm, err := normalizeUnicode(stripped); err == nil {
			if err := json.Unmarshal(norm, v); err == nil {
				return nil
			}
		}
	}
	if err := json.Unmarshal(raw, v); err == nil {
		return nil
	}
	if err := json.Unmarshal(stripped, v); err == nil {
		return nil
	}
	norm, err := normalizeUnicode(stripped)
	if err != nil {
		return err
	}
	return json.Unmarshal(norm, v)
}

// MarshalNoEscape encodes v without escaping <, >, & into < etc.
// Generated markup embedded in prompts must survive round-tripping intact.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalNoEscapeIndent is MarshalNoEscape with indentation.
func MarshalNoEscapeIndent(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// normalizeUnicode reparses JSON whose string values carry double-escaped
// sequences like "\\u003e", unescaping them recursively.
func normalizeUnicode(raw []byte) ([]byte, error) {
	var anyVal any
	if err := json.Unmarshal(raw, &anyVal); err != nil {
		// The whole payload may itself be a quoted JSON string.
		var s string
		if err2 := json.Unmarshal(raw, &s); err2 != nil {
			return nil, errors.New("jsonutil: cannot parse JSON payload")
		}
		if err := json.Unmarshal([]byte(s), &anyVal); err != nil {
			return nil, errors.New("jsonutil: cannot parse JSON payload")
		}
	}
	return MarshalNoEscape(deepUnescape(anyVal))
}

func deepUnescape(v any) any {
	switch x := v.(type) {
	case string:
		if s, err := unescapeString(x); err == nil {
			return s
		}
		return x
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = deepUnescape(x[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, vv := range x {
			out[k] = deepUnescape(vv)
		}
		return out
	default:
		return v
	}
}

// unescapeString runs one more round of JSON string decoding so that a value
// like `<` (already decoded once) becomes `<`. Backslashes stay as-is:
// doubling them would turn the escape sequences back into literals. Quotes
// are the only character that must be protected to keep the re-wrap valid.
func unescapeString(s string) (string, error) {
	esc := strings.ReplaceAll(s, `"`, `\"`)
	var out string
	if err := json.Unmarshal([]byte(`"`+esc+`"`), &out); err != nil {
		return "", err
	}
	return out, nil
}
