package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Value type names seeded into every store.
const (
	ValueTypeString = "string"
	ValueTypeInt    = "int"
	ValueTypeBool   = "bool"
	ValueTypeFloat  = "float"
	ValueTypeJSON   = "json"
	ValueTypeCSV    = "csv"
)

// SeededValueTypes lists the value type names present in a fresh store.
var SeededValueTypes = []string{
	ValueTypeString,
	ValueTypeInt,
	ValueTypeBool,
	ValueTypeFloat,
	ValueTypeJSON,
	ValueTypeCSV,
}

// ValueType describes how a stored value's text is interpreted.
type ValueType struct {
	ID   int64  // Engine-assigned surrogate key.
	Name string // Unique type name (one of the ValueType constants).
}

// DecodeValue interprets raw according to the named value type and returns
// the decoded Go value. String values pass through unchanged.
func DecodeValue(typeName, raw string) (any, error) {
	switch typeName {
	case ValueTypeString:
		return raw, nil
	case ValueTypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decoding int value %q: %w", raw, err)
		}
		return n, nil
	case ValueTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding bool value %q: %w", raw, err)
		}
		return b, nil
	case ValueTypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("decoding float value %q: %w", raw, err)
		}
		return f, nil
	case ValueTypeJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("decoding json value: %w", err)
		}
		return v, nil
	case ValueTypeCSV:
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%q: %w", typeName, ErrUnknownValueType)
	}
}
