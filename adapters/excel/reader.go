// Package excel reads observation matrices from Excel and CSV files.
// The expected shape is a header row followed by two columns: the measured
// value and the group label. Shape and type problems surface here, before
// the computation pipeline ever sees the data.
package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gokruskal/domain/kruskal"
	"gokruskal/internal/errors"
)

// DataReader handles reading Excel and CSV observation files.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
}

// NewDataReader creates a reader for filePath; the file type is inferred
// from the extension. Excel files are read from sheet (Sheet1 by default).
func NewDataReader(filePath, sheet string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: sheet}
}

// ReadSamples reads the file into the (value, label) pair sequence.
func (r *DataReader) ReadSamples() ([]kruskal.Sample, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.IOError(fmt.Sprintf("input file not found: %s", r.filePath), err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	default:
		return r.readExcel()
	}
}

func (r *DataReader) readExcel() ([]kruskal.Sample, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.IOError("failed to open Excel file", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("failed to read sheet %q", r.sheet), err)
	}

	return parseRows(rows)
}

func (r *DataReader) readCSV() ([]kruskal.Sample, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IOError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // column count is validated per row below
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.IOError("failed to read CSV file", err)
	}

	return parseRows(rows)
}

// parseRows converts raw rows (header first) into samples. Label validity is
// the engine's concern; this layer only enforces shape and numeric type.
func parseRows(rows [][]string) ([]kruskal.Sample, error) {
	if len(rows) < 2 {
		return nil, errors.InvalidInput("input must have a header row and at least one data row")
	}

	samples := make([]kruskal.Sample, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 2 {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d: expected 2 columns (value, group), got %d", i+2, len(row)))
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d: value %q is not numeric", i+2, row[0]))
		}
		group, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d: group %q is not numeric", i+2, row[1]))
		}

		samples = append(samples, kruskal.Sample{Value: value, Group: group})
	}

	return samples, nil
}
