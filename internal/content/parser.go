package content

import (
	"encoding/json"
	"strings"

	"github.com/Pleasurecruise/cdk/internal/config"
)

// Parse splits free-form pasted text into normalized distribution content items.
//
// Input formats are sniffed in priority order:
//
//  1. A JSON array (trimmed input wrapped in "[" and "]"): object and array
//     elements are re-serialized to their canonical JSON string, scalar
//     elements become their plain string representation. A malformed array
//     falls through silently to the next format.
//  2. One item per line.
//  3. A single line of comma-separated items; the full-width comma "，" is
//     accepted alongside ",".
//
// Every returned item is non-empty and at most ContentItemMaxLength runes
// long, in the order it was encountered. Parse never fails: unusable input
// simply yields an empty result.
func Parse(raw string) []string {
	return parseWithLimit(raw, config.ContentItemMaxLength)
}

func parseWithLimit(raw string, limit int) []string {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		if items, ok := parseJSONArray(trimmed, limit); ok {
			return items
		}
	}

	lines := strings.Split(trimmed, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			entries = append(entries, line)
		}
	}

	// A single non-empty line is treated as comma-separated paste.
	if len(entries) == 1 {
		normalized := strings.ReplaceAll(trimmed, "，", ",")
		parts := strings.Split(normalized, ",")
		entries = entries[:0]
		for _, part := range parts {
			if strings.TrimSpace(part) != "" {
				entries = append(entries, part)
			}
		}
	}

	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		item := truncate(strings.TrimSpace(entry), limit)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// parseJSONArray decodes trimmed input as a JSON array and normalizes each
// element to a string. The second return value reports whether the input was
// a well-formed array; false means the caller should try another format.
func parseJSONArray(trimmed string, limit int) ([]string, bool) {
	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.UseNumber()

	var elements []any
	if err := decoder.Decode(&elements); err != nil {
		return nil, false
	}
	if decoder.More() {
		// Trailing data after the array, e.g. "[1][2]".
		return nil, false
	}

	items := make([]string, 0, len(elements))
	for _, element := range elements {
		item := stringifyElement(element)
		if strings.TrimSpace(item) == "" {
			continue
		}
		items = append(items, truncate(item, limit))
	}
	return items, true
}

// stringifyElement converts a decoded JSON array element to its item string.
// Objects and nested arrays keep their JSON form; scalars are rendered bare,
// so true becomes "true" and null becomes "null".
func stringifyElement(element any) string {
	switch v := element.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
