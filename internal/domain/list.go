package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

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
		return fmt.Errorf("string list: unsupported type %T", src)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	*l = out
	return nil
}

func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// add appends s when non-empty; max <= 0 means no cap.
func (l *StringList) add(s string, max int) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if max > 0 && len(*l) >= max {
		return false
	}
	*l = append(*l, s)
	return true
}

func (l *StringList) removeAt(i int) bool {
	if i < 0 || i >= len(*l) {
		return false
	}
	*l = append((*l)[:i:i], (*l)[i+1:]...)
	return true
}
