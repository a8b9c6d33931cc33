package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"boletim-audit/internal/domain"
)

// FileTableRepository implements the TableRepository interface for CSV and
// XLSX files. It reads tables verbatim: header plus untyped string records.
// All tolerance for garbled cells lives in the normalizers, not here; the
// only hard errors are unreadable files.
type FileTableRepository struct{}

// NewFileTableRepository creates a new repository instance.
func NewFileTableRepository() *FileTableRepository {
	return &FileTableRepository{}
}

// GetMeasurementTables reads one raw table per measurement file, keyed by
// the file's base name.
func (r *FileTableRepository) GetMeasurementTables(ctx context.Context, paths []string) (map[string]domain.RawTable, error) {
	tables := make(map[string]domain.RawTable, len(paths))
	for _, path := range paths {
		table, err := readTable(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read measurement file %s: %w", path, err)
		}
		tables[filepath.Base(path)] = table
	}
	return tables, nil
}

// GetContractTable reads the contract price table. An empty path returns the
// built-in fallback reference table.
func (r *FileTableRepository) GetContractTable(ctx context.Context, path string) (domain.RawTable, error) {
	if path == "" {
		return builtinContractTable, nil
	}
	table, err := readTable(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to read contract file %s: %w", path, err)
	}
	return table, nil
}

// GetSupportTable reads the optional supporting-evidence table.
func (r *FileTableRepository) GetSupportTable(ctx context.Context, path string) (domain.RawTable, error) {
	table, err := readTable(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to read support file %s: %w", path, err)
	}
	return table, nil
}

func readTable(path string) (domain.RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".xls":
		return domain.RawTable{}, errors.New("legacy .xls files are not supported, convert to .xlsx or .csv")
	default:
		return readCSV(path)
	}
}

func readCSV(path string) (domain.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.RawTable{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Extraction output has no guaranteed column count per record.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return domain.RawTable{}, nil
	}
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to read header: %w", err)
	}

	table := domain.RawTable{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.RawTable{}, fmt.Errorf("error reading record: %w", err)
		}
		table.Records = append(table.Records, record)
	}
	return table, nil
}

func readXLSX(path string) (domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.RawTable{}, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return domain.RawTable{}, nil
	}
	return domain.RawTable{Header: rows[0], Records: rows[1:]}, nil
}
