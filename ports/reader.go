package ports

import (
	"context"

	"godice/domain/analysis"
	"godice/domain/core"
)

// DatasetReaderPort loads one numeric column out of a delimited or
// spreadsheet table. Missing and unparseable cells are dropped, not errors;
// a missing column or an empty result is.
type DatasetReaderPort interface {
	// ReadColumn extracts the named column from the file at path.
	ReadColumn(ctx context.Context, path string, column core.ColumnKey) (analysis.Sample, error)
}
