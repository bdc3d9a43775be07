// Package multivalue splits and joins lists of values passed on the command
// line in one of several layouts.
package multivalue

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Allowed lists the supported formats. "json" cannot be combined with the others.
var Allowed = []string{"comma", "newline", "space", "json"}

// Check validates a format combination.
func Check(formats []string) error {
	for _, format := range formats {
		if !slices.Contains(Allowed, format) {
			return fmt.Errorf("invalid multi format: %s, allowed formats are: %v", format, Allowed)
		}
	}
	if slices.Contains(formats, "json") && len(formats) > 1 {
		return fmt.Errorf("multi format 'json' cannot be combined with other formats")
	}
	return nil
}

func splitAndTrim(s string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	parts := strings.FieldsFunc(s, isSep) // 自动丢弃空片段
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Parse expands raw values according to formats. With no format the raw
// values are returned as is.
func Parse(formats []string, rawValues []string) ([]string, error) {
	if rawValues == nil {
		return nil, nil
	}
	if len(rawValues) == 0 {
		return []string{}, nil
	}
	if len(formats) == 0 {
		return rawValues, nil
	}
	if err := Check(formats); err != nil {
		return nil, err
	}
	if slices.Contains(formats, "json") {
		var result []string
		for _, raw := range rawValues {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			// 尝试解析为 JSON 数组
			var arr []string
			if err := json.Unmarshal([]byte(raw), &arr); err == nil {
				result = append(result, arr...)
				continue
			}
			// 尝试解析为单个 JSON 字符串（"value"）
			var s string
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				return nil, fmt.Errorf("invalid json multi value: %s, %w", raw, err)
			}
			result = append(result, s)
		}
		return result, nil
	}

	sepsBuilder := strings.Builder{}
	for _, format := range formats {
		switch format {
		case "comma":
			sepsBuilder.WriteString(",")
		case "newline":
			sepsBuilder.WriteString("\r\n")
		case "space":
			sepsBuilder.WriteString(" \t")
		}
	}
	seps := sepsBuilder.String()
	var result []string
	for _, raw := range rawValues {
		result = append(result, splitAndTrim(raw, seps)...)
	}
	return result, nil
}

// Format joins values in the first applicable format. With no format the
// values are joined with commas.
func Format(formats []string, values []string) (string, error) {
	if err := Check(formats); err != nil {
		return "", err
	}
	isJSON := slices.Contains(formats, "json")
	if len(values) == 0 {
		if isJSON {
			return "[]", nil
		}
		return "", nil
	}
	if len(formats) == 0 {
		return strings.Join(values, ","), nil
	}
	if isJSON {
		data, err := json.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to marshal multi values to json: %w", err)
		}
		return string(data), nil
	}
	var sep string
	switch {
	case slices.Contains(formats, "comma"):
		sep = ","
	case slices.Contains(formats, "newline"):
		sep = "\n"
	default:
		sep = " "
	}
	return strings.Join(values, sep), nil
}
