package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexUint64 is an id that can be unmarshaled from a JSON number or a JSON string.
// Empty strings and null decode to zero, meaning "no id".
type FlexUint64 uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexUint64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		val, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("FlexUint64: invalid id %q: %w", s, err)
		}
		*f = FlexUint64(val)
		return nil
	}

	return fmt.Errorf("FlexUint64: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexUint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(f))
}

// Uint64 converts FlexUint64 back to uint64.
func (f FlexUint64) Uint64() uint64 {
	return uint64(f)
}

// Ptr returns nil for the zero id and a pointer to the value otherwise.
func (f FlexUint64) Ptr() *uint64 {
	if f == 0 {
		return nil
	}
	v := uint64(f)
	return &v
}

// Uint64s converts a list of flexible ids.
func Uint64s(list []FlexUint64) []uint64 {
	out := make([]uint64, 0, len(list))
	for _, v := range list {
		if v != 0 {
			out = append(out, uint64(v))
		}
	}
	return out
}
