package validation

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Int is a whole-number form field. In JSON it accepts a number or a numeric
// string ("30"), since browser forms post numbers as text. An empty string or
// null leaves it at zero, which the required rule treats as missing.
type Int int

// UnmarshalJSON implements json.Unmarshaler
func (n *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
		if text == "" {
			*n = 0
			return nil
		}
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("%s is not a whole number", text)
	}
	*n = Int(v)
	return nil
}
