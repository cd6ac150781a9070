// Package schema embeds the contract v1 JSON Schemas and compiles them into
// validators. Input documents are validated here before normalization;
// outputs can be validated by anything that wants a contract check.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed input.v1.schema.json
var inputSchemaJSON string

//go:embed output.v1.schema.json
var outputSchemaJSON string

//go:embed error.v1.schema.json
var errorSchemaJSON string

// Validator wraps one compiled contract schema.
type Validator struct {
	name     string
	compiled *jsonschema.Schema
}

func compile(name, src string) (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020

	url := "https://acewholesale.example/schemas/" + name
	if err := c.AddResource(url, strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Validator{name: name, compiled: compiled}, nil
}

// Input compiles the input.v1 validator.
func Input() (*Validator, error) {
	return compile("input.v1.schema.json", inputSchemaJSON)
}

// Output compiles the output.v1 validator.
func Output() (*Validator, error) {
	return compile("output.v1.schema.json", outputSchemaJSON)
}

// Error compiles the error.v1 validator.
func Error() (*Validator, error) {
	return compile("error.v1.schema.json", errorSchemaJSON)
}

// ValidateBytes decodes raw JSON and validates it. Numbers are decoded as
// json.Number so large or high-precision literals survive the round trip.
func (v *Validator) ValidateBytes(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%s: decode: %w", v.name, err)
	}
	return v.ValidateValue(doc)
}

// ValidateValue validates an already-decoded document.
func (v *Validator) ValidateValue(doc any) error {
	if err := v.compiled.Validate(doc); err != nil {
		return fmt.Errorf("%s: %w", v.name, err)
	}
	return nil
}
