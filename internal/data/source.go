// Package data loads tracker readings from CSV and JSON files.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"fittracker/internal/training"
)

// LoadFile loads readings from a .csv or .json file.
// Relative paths are resolved against configDir. selectPath is a JSONPath
// locating the readings array inside a JSON document; empty means the root.
func LoadFile(path, selectPath, configDir string) ([]training.Reading, error) {
	if !filepath.IsAbs(path) && configDir != "" {
		path = filepath.Join(configDir, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var readings []training.Reading
	var err error

	switch ext {
	case ".csv":
		readings, err = loadCSV(path)
	case ".json":
		readings, err = loadJSON(path, selectPath)
	default:
		return nil, fmt.Errorf("unsupported file format %q (use .csv or .json)", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	if len(readings) == 0 {
		return nil, fmt.Errorf("data file %s has no readings", path)
	}

	return readings, nil
}

// loadCSV loads one reading per line: type code first, then the numbers.
// An optional header line starting with "type" is skipped.
func loadCSV(path string) ([]training.Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV reads readings in the CSV layout used by LoadFile.
func ParseCSV(r io.Reader) ([]training.Reading, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	first := 1
	if len(records) > 0 && strings.EqualFold(strings.TrimSpace(records[0][0]), "type") {
		records = records[1:]
		first = 2
	}

	readings := make([]training.Reading, 0, len(records))
	var errs []error

	for i, record := range records {
		reading := training.Reading{
			Type: strings.TrimSpace(record[0]),
			Data: make([]float64, 0, len(record)-1),
		}
		for _, field := range record[1:] {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("record %d: invalid number %q", i+first, field))
				continue
			}
			reading.Data = append(reading.Data, v)
		}
		readings = append(readings, reading)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return readings, nil
}

// loadJSON loads an array of {"type": ..., "data": [...]} objects.
func loadJSON(path, selectPath string) ([]training.Reading, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseJSON(body, selectPath)
}

// ParseJSON extracts readings from a JSON document.
// Returns all row errors joined.
func ParseJSON(body []byte, selectPath string) ([]training.Reading, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON")
	}

	root := gjson.ParseBytes(body)
	if p := convertJSONPath(selectPath); p != "" {
		root = root.Get(p)
		if !root.Exists() {
			return nil, fmt.Errorf("path %q not found", selectPath)
		}
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("readings must be an array of objects")
	}

	var readings []training.Reading
	var errs []error

	root.ForEach(func(key, value gjson.Result) bool {
		reading, err := parseReading(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %d: %w", key.Int(), err))
			return true
		}
		readings = append(readings, reading)
		return true
	})

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return readings, nil
}

func parseReading(v gjson.Result) (training.Reading, error) {
	if !v.IsObject() {
		return training.Reading{}, fmt.Errorf("expected object, got %s", v.Type)
	}

	code := v.Get("type")
	if code.Type != gjson.String {
		return training.Reading{}, fmt.Errorf("missing string field \"type\"")
	}

	raw := v.Get("data")
	if !raw.IsArray() {
		return training.Reading{}, fmt.Errorf("missing array field \"data\"")
	}

	reading := training.Reading{Type: code.String()}
	for _, n := range raw.Array() {
		if n.Type != gjson.Number {
			return training.Reading{}, fmt.Errorf("non-numeric value %s in \"data\"", n.Raw)
		}
		reading.Data = append(reading.Data, n.Float())
	}
	return reading, nil
}
