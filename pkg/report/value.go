// Package report aggregates statistics over a sample and renders them as
// tables, plain text, JSON or YAML.
package report

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/Sumatoshi-tech/staz/pkg/stats"
)

// Value is one named statistic: either a number or the code it failed with.
type Value struct {
	Name  string
	Value float64
	Code  stats.Code
	err   error
}

func newValue(name string, v float64, err error) Value {
	return Value{Name: name, Value: v, Code: stats.CodeOf(err), err: err}
}

// OK reports whether the statistic was computed.
func (v Value) OK() bool {
	return v.Code == stats.CodeOK
}

// Err returns the failure that produced the value, nil when OK.
func (v Value) Err() error {
	return v.err
}

// valueDoc is the encoded form of a Value. Non-finite numbers have no JSON
// representation, so they travel as text with a null value.
type valueDoc struct {
	Name    string   `json:"name"              yaml:"name"`
	Value   *float64 `json:"value"             yaml:"value"`
	Text    string   `json:"text,omitempty"    yaml:"text,omitempty"`
	Error   string   `json:"error,omitempty"   yaml:"error,omitempty"`
	Message string   `json:"message,omitempty" yaml:"message,omitempty"`
}

func (v Value) doc() valueDoc {
	d := valueDoc{Name: v.Name}

	switch {
	case !v.OK():
		d.Error = v.Code.String()
		d.Message = v.Code.Message()
	case math.IsNaN(v.Value) || math.IsInf(v.Value, 0):
		d.Text = strconv.FormatFloat(v.Value, 'g', -1, 64)
	default:
		x := v.Value
		d.Value = &x
	}

	return d
}

// MarshalJSON implements [json.Marshaler].
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.doc())
}

// MarshalYAML implements the yaml.v3 Marshaler interface.
func (v Value) MarshalYAML() (any, error) {
	return v.doc(), nil
}
