package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser handles CSV files. Rows render as markdown tables in batches so
// a large sheet does not collapse into one oversized block.
type CSVParser struct{}

const csvBatchSize = 50

func (p *CSVParser) Parse(r io.Reader, filename string) (*Node, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	root := &Node{Title: docTitle(filename)}
	if len(records) == 0 {
		return root, nil
	}

	// First row is headers.
	headers := records[0]
	rows := records[1:]

	for i := 0; i < len(rows); i += csvBatchSize {
		end := i + csvBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		root.Children = append(root.Children, &Node{
			Title: fmt.Sprintf("Rows %d-%d", i+2, end+1), // 1-indexed, skip header
			Text:  markdownTable(headers, rows[i:end]),
		})
	}
	return root, nil
}

func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder

	writeRow := func(cells []string) {
		b.WriteString("|")
		for j := range headers {
			cell := ""
			if j < len(cells) {
				cell = strings.ReplaceAll(cells[j], "|", "\\|")
			}
			b.WriteString(" " + cell + " |")
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}
