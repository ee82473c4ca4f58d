// Package importer turns an uploaded spreadsheet into product rows. Rows are
// inserted one at a time with no enclosing transaction: earlier successes
// survive later failures, and the summary reports both.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andratama/topupstore-golang/internal/models"
	"github.com/andratama/topupstore-golang/internal/store"
	"github.com/xuri/excelize/v2"
)

// Result is the aggregate the import endpoint returns in a 200 body. Per-row
// failures never become request errors.
type Result struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// ImportFile reads the first sheet of an xlsx file and creates one product
// per data row. Header names match case-insensitively ("Name" and "name"
// both work). Expected columns: name, price, category, description, box.
func ImportFile(path string, products store.ProductStore, categories store.CategoryStore) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Result{Errors: []string{}}, nil
	}

	columns := headerIndex(rows[0])
	result := &Result{Errors: []string{}}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header row

		name := cell(row, columns, "name")
		priceRaw := cell(row, columns, "price")

		if name == "" || priceRaw == "" {
			missing := "name"
			if name != "" {
				missing = "price"
			}
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d (%s): missing required field: %s", rowNum, rawRow(row), missing))
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(priceRaw), 64)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d (%s): invalid price %q", rowNum, rawRow(row), priceRaw))
			continue
		}

		category, err := resolveCategory(categories, cell(row, columns, "category"))
		if err != nil {
			return nil, err
		}
		if category == nil {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d (%s): no category available", rowNum, rawRow(row)))
			continue
		}

		product := &models.Product{
			CategoryID:  category.ID,
			Name:        name,
			Price:       price,
			Box:         cell(row, columns, "box"),
			ImageURL:    "",
			Description: cell(row, columns, "description"),
			IsActive:    true,
		}
		if err := products.Create(product); err != nil {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d (%s): %v", rowNum, rawRow(row), err))
			continue
		}
		result.Success++
	}

	return result, nil
}

// resolveCategory matches the row's category text by name, ignoring case.
// When nothing matches it falls back to the lowest-id category, so reruns
// are deterministic; nil only when the table is empty.
func resolveCategory(categories store.CategoryStore, name string) (*models.Category, error) {
	if name != "" {
		category, err := categories.GetByName(name)
		if err != nil {
			return nil, err
		}
		if category != nil {
			return category, nil
		}
	}
	return categories.First()
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return columns
}

// cell returns a trimmed cell value, tolerating absent columns and rows
// shorter than the header (excelize drops trailing empty cells).
func cell(row []string, columns map[string]int, key string) string {
	idx, ok := columns[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rawRow(row []string) string {
	return strings.Join(row, " | ")
}
