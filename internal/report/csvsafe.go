// Package report renders evaluation output for export.
package report

// EscapeCell protects against CSV formula injection by prefixing cells that
// a spreadsheet could interpret as formulas.
func EscapeCell(value string) string {
	if value == "" {
		return value
	}

	switch value[0] {
	case '=', '+', '-', '@', '|', '%', '\t', '\r', '\n':
		return "'" + value
	}
	return value
}

// EscapeRow escapes every cell in a row.
func EscapeRow(row []string) []string {
	escaped := make([]string, len(row))
	for i, cell := range row {
		escaped[i] = EscapeCell(cell)
	}
	return escaped
}
