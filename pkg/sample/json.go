package sample

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed sample.schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// decodeJSON accepts either a bare array of numbers or {"x": [...], "y": [...]}.
func decodeJSON(data []byte) (Dataset, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return Dataset{}, fmt.Errorf("decode json: %w", err)
	}

	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			problems = append(problems, verr.String())
		}

		return Dataset{}, fmt.Errorf("%w: %s", ErrSchema, strings.Join(problems, "; "))
	}

	var values []float64

	if json.Unmarshal(data, &values) == nil {
		return Dataset{X: values}, nil
	}

	var ds Dataset

	err = json.Unmarshal(data, &ds)
	if err != nil {
		return Dataset{}, fmt.Errorf("decode json: %w", err)
	}

	return ds, nil
}
