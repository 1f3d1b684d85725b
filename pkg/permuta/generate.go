package permuta

import (
	"context"
	"fmt"

	"github.com/ukaji3/permuta-go/pkg/permuta/engine"
	"github.com/ukaji3/permuta-go/pkg/permuta/models"
	"github.com/ukaji3/permuta-go/pkg/permuta/parser"
	"github.com/xuri/excelize/v2"
)

// ErrMissingAxisTable indicates the workbook contains no "ID" sheet.
var ErrMissingAxisTable = engine.ErrMissingAxisTable

// Generate reads a workbook file and materializes every combination as
// a flat record. It is a convenience wrapper over ReadTables, Classify,
// and Stream for callers that do not need lazy production.
func Generate(path string, opts Options) ([]*models.Record, error) {
	tables, err := ReadTables(path)
	if err != nil {
		return nil, err
	}
	return GenerateFromTables(tables, opts)
}

// GenerateFromTables materializes every combination from already-parsed
// named tables. A zero-length result is a valid outcome, not an error:
// any axis without values makes the product empty.
func GenerateFromTables(tables []models.Table, opts Options) ([]*models.Record, error) {
	spec, err := engine.Classify(tables)
	if err != nil {
		return nil, err
	}
	var records []*models.Record
	for c := range spec.Combinations(opts.Separator) {
		records = append(records, spec.Merge(c, opts.Precedence))
	}
	return records, nil
}

// Stream produces one record at a time through fn instead of
// materializing the full result set, for callers bounding memory on
// large products. Cancellation is checked between combinations, never
// mid-combination. A non-nil error from fn stops the stream and is
// returned as-is.
func Stream(ctx context.Context, spec *engine.ProductSpec, opts Options, fn func(*models.Record) error) error {
	for c := range spec.Combinations(opts.Separator) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(spec.Merge(c, opts.Precedence)); err != nil {
			return err
		}
	}
	return nil
}

// ReadTables reads every sheet of a workbook file into named tables in
// sheet order.
func ReadTables(path string) ([]models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return parser.ReadWorkbook(f)
}
