package sq3

import (
	"github.com/nao1215/sq3/domain/model"
)

// inferColumnType infers the column type from the values observed in one column.
// SQLite is dynamically typed, so a column may mix storage classes.
// Priority: TEXT > BLOB > REAL > INTEGER; NULLs are ignored.
func inferColumnType(values []any) model.ColumnType {
	hasInteger := false
	hasReal := false
	hasBlob := false
	hasText := false

	for _, value := range values {
		switch value.(type) {
		case nil:
			continue
		case int64:
			hasInteger = true
		case float64:
			hasReal = true
		case []byte:
			hasBlob = true
		default:
			hasText = true
		}
		if hasText {
			break // If any value is text, the whole column is text
		}
	}

	// Determine the most appropriate type
	if hasText {
		return model.ColumnTypeText
	}
	if hasBlob {
		if hasInteger || hasReal {
			return model.ColumnTypeText
		}
		return model.ColumnTypeBlob
	}
	if hasReal {
		return model.ColumnTypeReal
	}
	if hasInteger {
		return model.ColumnTypeInteger
	}

	// Default to TEXT if no values were found
	return model.ColumnTypeText
}

// inferColumnsInfo infers column information from header and buffered rows
func inferColumnsInfo(h header, rows [][]any) []model.ColumnInfo {
	columnCount := len(h)
	if columnCount == 0 {
		return nil
	}

	columns := make([]model.ColumnInfo, columnCount)
	for i, name := range h {
		columns[i] = model.ColumnInfo{
			Name: name,
			Type: model.ColumnTypeText,
		}
	}

	if len(rows) == 0 {
		return columns
	}

	values := make([]any, 0, len(rows))
	for i := range columnCount {
		values = values[:0]
		for _, row := range rows {
			if i < len(row) {
				values = append(values, row[i])
			}
		}
		columns[i].Type = inferColumnType(values)
	}

	return columns
}
