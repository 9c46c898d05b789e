package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Year is a creation year that may appear as either a JSON/TOML string or a
// number. It keeps the source representation so that serialization
// round-trips are lossless: 1889 stays a number, "c. 1503" stays a string.
//
// The zero Year means "no year given" and serializes to null (JSON) via the
// omitzero struct tag on [Artwork].
type Year struct {
	raw     string
	numeric bool
}

// YearFromInt returns a numeric Year.
func YearFromInt(n int) Year {
	return Year{raw: strconv.Itoa(n), numeric: true}
}

// YearFromString returns a textual Year ("c. 1503", "1503-1506", ...).
func YearFromString(s string) Year {
	return Year{raw: s}
}

// String returns the year as display text.
func (y Year) String() string { return y.raw }

// IsZero reports whether no year was given.
func (y Year) IsZero() bool { return y.raw == "" }

// IsNumeric reports whether the source carried a bare number.
func (y Year) IsNumeric() bool { return y.numeric }

// MarshalJSON emits the year in its original representation.
func (y Year) MarshalJSON() ([]byte, error) {
	if y.raw == "" {
		return []byte("null"), nil
	}
	if y.numeric {
		return []byte(y.raw), nil
	}
	return json.Marshal(y.raw)
}

// UnmarshalJSON accepts a number, a string, or null.
func (y *Year) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*y = Year{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*y = Year{raw: str}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("year must be a string or number: %w", err)
	}
	*y = Year{raw: n.String(), numeric: true}
	return nil
}

// UnmarshalTOML accepts an integer or a string TOML value.
func (y *Year) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		*y = Year{raw: strconv.FormatInt(t, 10), numeric: true}
		return nil
	case string:
		*y = Year{raw: t}
		return nil
	default:
		return fmt.Errorf("year must be a string or integer, got %T", v)
	}
}
