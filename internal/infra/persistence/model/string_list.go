package model

import (
	"database/sql/driver"

	"lifelink/internal/errors"

	jsoniter "github.com/json-iterator/go"
)

// StringList stores a slice of strings as a JSON array in a text column.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal([]string(l))
	if err != nil {
		return nil, errors.Wrap(err, "marshal string list")
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}

		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.Errorf("unsupported type %T for StringList", src)
	}

	if len(raw) == 0 {
		*l = StringList{}

		return nil
	}

	var out []string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &out); err != nil {
		return errors.Wrap(err, "unmarshal string list")
	}
	if out == nil {
		out = []string{}
	}
	*l = out

	return nil
}
