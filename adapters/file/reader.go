package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"godice/domain/analysis"
	"godice/domain/core"
	"godice/internal"
)

// DataReader loads one numeric column out of CSV and XLSX tables.
// Implements ports.DatasetReaderPort.
type DataReader struct {
	logger *internal.Logger
}

// NewDataReader creates a new data reader that handles both CSV and Excel files
func NewDataReader(logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{logger: logger}
}

// ReadColumn extracts the named column from the file at path, dropping
// cells that are empty or not parseable as floats. The header row is
// required; a missing column is core.ErrColumnMissing and a column with
// no surviving values is core.ErrEmptySample.
func (r *DataReader) ReadColumn(ctx context.Context, path string, column core.ColumnKey) (analysis.Sample, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return analysis.Sample{}, fmt.Errorf("input file not found: %s", path)
	}

	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = r.readCSVRows(path)
	case ".xlsx":
		rows, err = r.readExcelRows(ctx, path)
	default:
		return analysis.Sample{}, core.NewUnsupportedFileError(path)
	}
	if err != nil {
		return analysis.Sample{}, err
	}

	if len(rows) < 1 {
		return analysis.Sample{}, fmt.Errorf("input file has no header row: %s", path)
	}

	return r.extractColumn(rows, path, column)
}

// readCSVRows reads all CSV records as raw strings
func (r *DataReader) readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated, cells matched by index
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	r.logger.Debug("CSV file read (%d rows): %s", len(rows), path)
	return rows, nil
}

// readExcelRows reads Sheet1 of an XLSX workbook as raw strings
func (r *DataReader) readExcelRows(ctx context.Context, path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}

	r.logger.Debug("Excel Sheet1 read (%d rows): %s", len(rows), path)
	return rows, nil
}

// extractColumn pulls the target column out of raw rows
func (r *DataReader) extractColumn(rows [][]string, path string, column core.ColumnKey) (analysis.Sample, error) {
	header := rows[0]
	colIdx := -1
	for i, h := range header {
		if strings.TrimSpace(h) == column.String() {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return analysis.Sample{}, core.NewColumnMissingError(column.String())
	}

	values := make([]float64, 0, len(rows)-1)
	dropped := 0
	for _, row := range rows[1:] {
		if colIdx >= len(row) {
			dropped++
			continue
		}
		cell := strings.TrimSpace(row[colIdx])
		if cell == "" {
			dropped++
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			dropped++
			continue
		}
		values = append(values, v)
	}

	if dropped > 0 {
		r.logger.Info("dropped %d missing or non-numeric cells from column %q", dropped, column)
	}
	if len(values) == 0 {
		return analysis.Sample{}, core.NewEmptySampleError(column.String())
	}

	return analysis.Sample{
		Column:  column,
		Values:  values,
		Source:  path,
		Dropped: dropped,
	}, nil
}
