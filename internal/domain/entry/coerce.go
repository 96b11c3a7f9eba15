// Package entry holds the time-value coercion rules shared by the two
// result entry paths. The paths are intentionally asymmetric: batch
// entry silently zeroes unparseable values so downstream skip logic
// drops the row, while the history editor treats the same failure as a
// hard per-row error.
package entry

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode tags which entry path is coercing a value.
type Mode int

const (
	// ModeBatch is the batch time-entry grid: coercion failures become
	// 0.0 and the row is skipped, never reported individually.
	ModeBatch Mode = iota
	// ModeHistoryEdit is the per-swimmer history editor: coercion
	// failures are hard errors for that row.
	ModeHistoryEdit
)

// CoerceTime normalizes a raw submitted time value to seconds. The grid
// input layer sometimes wraps a value in a single-element list; the
// first element is taken. Under ModeBatch any failure yields (0, nil);
// under ModeHistoryEdit it yields an error.
func CoerceTime(raw any, mode Mode) (float64, error) {
	val, err := coerce(unwrap(raw))
	if err != nil {
		if mode == ModeBatch {
			return 0, nil
		}
		return 0, err
	}
	return val, nil
}

func unwrap(raw any) any {
	switch v := raw.(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		return v[0]
	case []float64:
		if len(v) == 0 {
			return nil
		}
		return v[0]
	case []string:
		if len(v) == 0 {
			return nil
		}
		return v[0]
	}
	return raw
}

func coerce(raw any) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, fmt.Errorf("time value is missing")
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("time value is empty")
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("time value %q is not numeric", v)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("time value has unsupported type %T", raw)
}
