package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSpecValue is returned when a specification value is not a
// string, number or boolean.
var ErrInvalidSpecValue = errors.New("specification values must be string, number or boolean")

type SpecKind uint8

const (
	SpecString SpecKind = iota + 1
	SpecNumber
	SpecBool
)

// SpecValue is a single product specification value: a string, a number or a
// boolean. The zero value is an empty string.
type SpecValue struct {
	kind SpecKind
	str  string
	num  float64
	flag bool
}

func StringSpec(s string) SpecValue  { return SpecValue{kind: SpecString, str: s} }
func NumberSpec(n float64) SpecValue { return SpecValue{kind: SpecNumber, num: n} }
func BoolSpec(b bool) SpecValue      { return SpecValue{kind: SpecBool, flag: b} }

func (v SpecValue) Kind() SpecKind {
	if v.kind == 0 {
		return SpecString
	}
	return v.kind
}

func (v SpecValue) Str() (string, bool)     { return v.str, v.Kind() == SpecString }
func (v SpecValue) Number() (float64, bool) { return v.num, v.kind == SpecNumber }
func (v SpecValue) Bool() (bool, bool)      { return v.flag, v.kind == SpecBool }

func (v SpecValue) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case SpecNumber:
		return json.Marshal(v.num)
	case SpecBool:
		return json.Marshal(v.flag)
	default:
		return json.Marshal(v.str)
	}
}

func (v *SpecValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ErrInvalidSpecValue
	}
	switch c := b[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = StringSpec(s)
	case c == 't' || c == 'f':
		var f bool
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		*v = BoolSpec(f)
	case c == '-' || (c >= '0' && c <= '9'):
		var n float64
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*v = NumberSpec(n)
	default:
		return ErrInvalidSpecValue
	}
	return nil
}

// Spec is one key/value pair of a product's specifications.
type Spec struct {
	Key   string
	Value SpecValue
}

// Specifications is an ordered string-keyed map of spec values. It encodes
// as a JSON object and keeps the key order it was decoded or built with.
type Specifications []Spec

func (s Specifications) Get(key string) (SpecValue, bool) {
	for _, sp := range s {
		if sp.Key == key {
			return sp.Value, true
		}
	}
	return SpecValue{}, false
}

// Set replaces the value of an existing key in place or appends a new pair.
func (s Specifications) Set(key string, v SpecValue) Specifications {
	for i := range s {
		if s[i].Key == key {
			s[i].Value = v
			return s
		}
	}
	return append(s, Spec{Key: key, Value: v})
}

func (s Specifications) Clone() Specifications {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

func (s Specifications) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sp := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(sp.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		val, err := sp.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Specifications) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		*s = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("specifications: expected object, got %v", tok)
	}
	out := Specifications{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("specifications: expected key, got %v", tok)
		}
		var v SpecValue
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("specifications[%s]: %w", key, err)
		}
		out = out.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}
