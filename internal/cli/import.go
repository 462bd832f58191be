package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/xuri/excelize/v2"

	"quiz-topics/internal/topic"
)

type ImportReport struct {
	Rows    int
	Created int
	Skipped int
}

// Import reads the first sheet of an xlsx workbook. The header row names the
// form fields (by field name or label, case-insensitive); unknown columns are
// ignored. Invalid rows are reported and skipped, a storage failure stops the
// import with the rows stored so far kept.
func Import(ctx context.Context, r io.Reader, out io.Writer, svc Creator) (ImportReport, error) {
	var report ImportReport

	book, err := excelize.OpenReader(r)
	if err != nil {
		return report, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = book.Close() }()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return report, errors.New("workbook has no sheets")
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return report, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return report, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	columns := headerColumns(rows[0])
	if len(columns) == 0 {
		return report, fmt.Errorf("sheet %q: header row names no known fields", sheets[0])
	}

	for idx, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rowNum := idx + 2
		if isBlank(row) {
			continue
		}
		report.Rows++

		values := url.Values{}
		for col, name := range columns {
			if col < len(row) {
				values.Set(name, row[col])
			}
		}

		result := topic.Validate(values)
		if !result.Valid() {
			report.Skipped++
			fmt.Fprintf(out, "row %d skipped: %s\n", rowNum, formatErrors(result.Errors))
			continue
		}

		created, err := svc.Create(ctx, result.Submission)
		if err != nil {
			return report, fmt.Errorf("row %d: %w", rowNum, err)
		}
		report.Created++
		fmt.Fprintf(out, "row %d saved as topic #%d\n", rowNum, created.ID)
	}

	fmt.Fprintf(out, "imported %d of %d rows, %d skipped\n", report.Created, report.Rows, report.Skipped)
	return report, nil
}

func headerColumns(header []string) map[int]string {
	byKey := make(map[string]string, len(topic.Fields)*2)
	for _, field := range topic.Fields {
		byKey[strings.ToLower(field.Name)] = field.Name
		byKey[strings.ToLower(field.Label)] = field.Name
	}

	columns := make(map[int]string)
	for col, cell := range header {
		if name, ok := byKey[strings.ToLower(strings.TrimSpace(cell))]; ok {
			columns[col] = name
		}
	}
	return columns
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
