package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/acewholesale/ace/internal/engine"
	"github.com/acewholesale/ace/internal/quote"
	"github.com/acewholesale/ace/internal/refdata"
	"github.com/acewholesale/ace/internal/schema"
)

// computeQuote runs the full pipeline for one input file: schema validation,
// normalization, reference and ruleset loading, then the engine.
func computeQuote(inputPath, referencePath, rulesetPath string) (*quote.Input, *quote.Output, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

	validator, err := schema.Input()
	if err != nil {
		return nil, nil, fmt.Errorf("load input schema: %w", err)
	}
	if err := validator.ValidateBytes(data); err != nil {
		return nil, nil, fmt.Errorf("validate input: %w", err)
	}

	in, err := quote.ParseInput(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parse input: %w", err)
	}

	set, err := refdata.Load(referencePath)
	if err != nil {
		return nil, nil, err
	}

	rs, err := engine.LoadRuleSet(rulesetPath)
	if err != nil {
		return nil, nil, err
	}
	rules, err := rs.Build(engine.DefaultCapabilities())
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("pipeline ready",
		"reference_version", set.Version, "rules", len(rules), "lines", len(in.Lines))

	out, err := engine.NewRunner(rules, set, engine.WithLogger(slog.Default())).Run(in)
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

// structuralErrorDoc renders a structural error as the error.v1 contract
// document. Returns false for errors that are not structural.
func structuralErrorDoc(err error) ([]byte, bool) {
	var se *engine.StructuralError
	if !errors.As(err, &se) {
		return nil, false
	}

	doc := map[string]any{
		"code":            string(se.Code),
		"message":         se.Message,
		"contractVersion": quote.ContractVersion,
	}
	if se.LineID != "" {
		doc["lineId"] = se.LineID
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, false
	}
	return append(data, '\n'), true
}

// marshalOutput renders an output document for the CLI: pretty printed with
// a trailing newline. Field order is the struct's contract order; the golden
// fixture writer is the one that sorts keys.
func marshalOutput(out *quote.Output) ([]byte, error) {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}
	return append(data, '\n'), nil
}
