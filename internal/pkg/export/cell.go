package export

import (
	"fmt"
	"strconv"
)

// CellString renders a scalar cell value as text. Nil values (and nil
// pointers) become the empty string so missing check-out times and the
// like never print as "<nil>".
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(v)
	}
}

// cellValue unwraps pointer cells so the XLSX writer receives plain
// scalars; numbers stay numeric, nil stays nil.
func cellValue(v any) any {
	if p, ok := v.(*string); ok {
		if p == nil {
			return nil
		}
		return *p
	}
	return v
}
