package rational

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Rational) UnmarshalText(text []byte) error {
	r, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// MarshalJSON writes integers as JSON numbers and fractions as "num/den"
// strings.
func (x Rational) MarshalJSON() ([]byte, error) {
	if x.IsInt() {
		return strconv.AppendInt(nil, x.num, 10), nil
	}
	return json.Marshal(x.String())
}

// UnmarshalJSON accepts a JSON number or any string Parse accepts.
func (x *Rational) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}
	return x.UnmarshalText([]byte(text))
}

func (x Rational) MarshalYAML() (interface{}, error) {
	if x.IsInt() {
		return x.num, nil
	}
	return x.String(), nil
}

func (x *Rational) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml line %d: expected a scalar rational", ErrInvalidArgument, value.Line)
	}
	return x.UnmarshalText([]byte(value.Value))
}
