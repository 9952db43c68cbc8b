package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Lenient scalars for fields the model fills from free-form placeholders
// such as "0-100" or "true|false". Any JSON scalar is accepted; values that
// cannot be read as the target type decode to its zero value. Objects and
// arrays are still rejected.

// FlexInt accepts numbers (rounded), numeric strings and null.
type FlexInt int

// FlexFloat accepts numbers, numeric strings (an optional trailing % is
// ignored) and null.
type FlexFloat float64

// FlexBool accepts booleans, numbers (non-zero is true) and strings such as
// "true", "sí" or "correcto". Any other string, e.g. "parcial", is false.
type FlexBool bool

var truthyWords = map[string]bool{
	"true":      true,
	"1":         true,
	"yes":       true,
	"si":        true,
	"sí":        true,
	"verdadero": true,
	"correcto":  true,
	"correcta":  true,
}

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	f, err := decodeNumeric(data)
	if err != nil {
		return err
	}
	*i = FlexInt(math.Round(f))
	return nil
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	v, err := decodeNumeric(data)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case bool:
		*b = FlexBool(v)
	case json.Number:
		f, _ := v.Float64()
		*b = f != 0
	case string:
		*b = FlexBool(truthyWords[strings.ToLower(strings.TrimSpace(v))])
	default:
		*b = false
	}
	return nil
}

func decodeNumeric(data []byte) (float64, error) {
	v, err := decodeScalar(data)
	if err != nil {
		return 0, err
	}
	switch v := v.(type) {
	case json.Number:
		return v.Float64()
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(v), "%")
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, nil
		}
	}
	return 0, nil
}

// decodeScalar returns a json.Number, string, bool or nil.
func decodeScalar(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch v.(type) {
	case nil, bool, string, json.Number:
		return v, nil
	default:
		return nil, fmt.Errorf("expected a JSON scalar, got %s", bytes.TrimSpace(data))
	}
}
