package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/acewholesale/ace/internal/canonical"
	"github.com/acewholesale/ace/internal/quote"
)

// ErrNotFound is returned when no audit row exists for a quote id.
var ErrNotFound = errors.New("quote not found")

// Record is one audit row: the canonical input a quote was computed from and
// the exact output document it produced.
type Record struct {
	QuoteID         string
	RunToken        string
	ContractVersion string
	InputCanonical  string
	OutputJSON      string
	CreatedAt       string
}

// BuildRecord assembles the audit record for a computed quote. The input is
// stored in canonical form so the row proves what the id was derived from.
func BuildRecord(in *quote.Input, out *quote.Output, runToken string) (Record, error) {
	inputJSON, err := canonical.Marshal(in.RawPayload())
	if err != nil {
		return Record{}, fmt.Errorf("canonicalize input: %w", err)
	}
	outputJSON, err := json.Marshal(out)
	if err != nil {
		return Record{}, fmt.Errorf("marshal output: %w", err)
	}
	return Record{
		QuoteID:         out.QuoteID,
		RunToken:        runToken,
		ContractVersion: out.ContractVersion,
		InputCanonical:  string(inputJSON),
		OutputJSON:      string(outputJSON),
	}, nil
}

// SaveQuote inserts an audit record. Uses ON CONFLICT(quote_id) DO NOTHING
// for idempotency: the id is content-addressed, so a duplicate means the
// identical input was already recorded. Returns whether a row was inserted.
func (s *Store) SaveQuote(ctx context.Context, rec Record) (inserted bool, err error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes
		(quote_id, run_token, contract_version, input_canonical, output_json)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(quote_id) DO NOTHING
	`,
		rec.QuoteID,
		rec.RunToken,
		rec.ContractVersion,
		rec.InputCanonical,
		rec.OutputJSON,
	)
	if err != nil {
		return false, fmt.Errorf("save quote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("save quote: rows affected: %w", err)
	}
	return n > 0, nil
}

// GetQuote fetches the audit record for a quote id.
func (s *Store) GetQuote(ctx context.Context, quoteID string) (Record, error) {
	var rec Record
	err := s.db.QueryRowContext(ctx, `
		SELECT quote_id, run_token, contract_version, input_canonical, output_json, created_at
		FROM quotes
		WHERE quote_id = ?
	`, quoteID).Scan(
		&rec.QuoteID,
		&rec.RunToken,
		&rec.ContractVersion,
		&rec.InputCanonical,
		&rec.OutputJSON,
		&rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("quote %s: %w", quoteID, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get quote: %w", err)
	}
	return rec, nil
}

// ListRecent returns up to limit audit records, newest first. Ties on
// timestamp break on quote id so the order is stable.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT quote_id, run_token, contract_version, input_canonical, output_json, created_at
		FROM quotes
		ORDER BY created_at DESC, quote_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.QuoteID,
			&rec.RunToken,
			&rec.ContractVersion,
			&rec.InputCanonical,
			&rec.OutputJSON,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return recs, nil
}
