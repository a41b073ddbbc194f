package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when an invocation argument cannot be parsed.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgToList turns a comma separated string, a JSON array string or a slice
// into a list of trimmed, non-empty strings. Empty input gives nil.
func ArgToList(v any) []string {
	var items []string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			var decoded []any
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				return ArgToList(decoded)
			}
		}
		items = strings.Split(s, ",")
	case []string:
		items = val
	case []any:
		for _, item := range val {
			if item == nil {
				continue
			}
			items = append(items, fmt.Sprint(item))
		}
	default:
		items = []string{fmt.Sprint(val)}
	}

	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ArgToBoolean accepts a bool or one of true/yes/false/no in any case.
func ArgToBoolean(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "yes":
			return true, nil
		case "false", "no":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %v is not a boolean", ErrInvalidArgument, v)
}

// ArgToInt accepts a number or a numeric string; nil and "" give def.
func ArgToInt(v any, def int) (int, error) {
	switch val := v.(type) {
	case nil:
		return def, nil
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidArgument, val)
		}
		return int(val), nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidArgument, val)
		}
		return int(n), nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return def, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, val)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidArgument, v)
}
