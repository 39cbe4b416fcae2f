package record

import "fmt"

// TypeName describes the type of a value for use in diagnostics
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64:
		return "double"
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "integer"
	}
	if _, ok := Of(v); ok {
		return "array"
	}
	return fmt.Sprintf("%T", v)
}
