// Package contract freezes the v1 output contract: a golden master fixture
// plus the tests that hold every computed quote to it.
package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/acewholesale/ace/internal/quote"
)

// RenderGolden renders an output document in golden-fixture form: pretty
// printed, keys sorted, trailing newline. The struct is round-tripped
// through a map so key order comes from the sort, not from field order.
func RenderGolden(out *quote.Output) ([]byte, error) {
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}

	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render output: %w", err)
	}
	return append(pretty, '\n'), nil
}

// WriteGolden renders and writes the golden fixture, creating parent
// directories as needed.
func WriteGolden(path string, out *quote.Output) error {
	data, err := RenderGolden(out)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write golden fixture: %w", err)
	}
	return nil
}
