package six

// Rows zips an FQS response's colNames and rowData arrays into one map per
// row. Rows shorter than the column list keep only the columns they cover.
func Rows(data map[string]any) []map[string]any {
	colsRaw, _ := data["colNames"].([]any)
	rowsRaw, _ := data["rowData"].([]any)

	cols := make([]string, 0, len(colsRaw))
	for _, c := range colsRaw {
		if s, ok := c.(string); ok {
			cols = append(cols, s)
		}
	}

	out := make([]map[string]any, 0, len(rowsRaw))
	for _, r := range rowsRaw {
		cells, ok := r.([]any)
		if !ok {
			continue
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			if i >= len(cells) {
				break
			}
			row[col] = cells[i]
		}
		out = append(out, row)
	}
	return out
}
