package sq3

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"

	"github.com/nao1215/sq3/domain/model"
)

// xlsxSheet is the sheet query results are written to
const xlsxSheet = "Sheet1"

// writeResultFile writes cur to the file at path, truncating it. The file
// format and compression follow the file name (see model.OutputOptionsForPath).
// Any failure, including a failure to open the file, is a *FileAccessError.
func writeResultFile(path string, cur Cursor) (int, error) {
	options := model.OutputOptionsForPath(path)
	errCtx := NewErrorContext("write results", path).WithDetails(options.Format.String())

	w, err := createOutputFile(path, options.Compression)
	if err != nil {
		return 0, &FileAccessError{Path: path, Err: errCtx.Error(err)}
	}

	var count int
	switch options.Format {
	case OutputFormatXLSX:
		count, err = writeXLSX(w, cur)
	case OutputFormatParquet:
		count, err = writeParquet(w, cur)
	default:
		count, err = writeDelimited(w, cur)
	}

	if closeErr := w.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return count, &FileAccessError{Path: path, Err: errCtx.Error(err)}
	}
	return count, nil
}

// writeXLSX writes cur as a single-sheet workbook: column names in the first
// row, one row per result row below.
func writeXLSX(w io.Writer, cur Cursor) (int, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close() // Ignore close error
	}()

	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet writer: %w", err)
	}

	columns := cur.Columns()
	headerRow := make([]any, len(columns))
	for i, name := range columns {
		headerRow[i] = name
	}
	if err := sw.SetRow("A1", headerRow); err != nil {
		return 0, err
	}

	count := 0
	for cur.Next() {
		values, err := cur.Values()
		if err != nil {
			return count, err
		}
		cell, err := excelize.CoordinatesToCellName(1, count+2)
		if err != nil {
			return count, err
		}
		if err := sw.SetRow(cell, xlsxRow(values)); err != nil {
			return count, err
		}
		count++
	}
	if err := cur.Err(); err != nil {
		return count, err
	}

	if err := sw.Flush(); err != nil {
		return count, err
	}
	if err := f.Write(w); err != nil {
		return count, err
	}
	return count, nil
}

// xlsxRow converts engine values to cell values. Numbers stay numeric and
// NULL leaves the cell empty.
func xlsxRow(values []any) []any {
	row := make([]any, len(values))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			row[i] = nil
		case int64, float64:
			row[i] = val
		default:
			row[i] = formatValue(v, "")
		}
	}
	return row
}

// writerOnly hides any Close method of the wrapped writer, so the Parquet
// writer does not close the file before the compressor is flushed.
type writerOnly struct {
	io.Writer
}

// writeParquet writes cur as a Parquet file. Parquet needs the schema up
// front, so the whole result set is buffered and column types are inferred
// from the observed values.
func writeParquet(w io.Writer, cur Cursor) (int, error) {
	h := header(cur.Columns())

	var rows [][]any
	for cur.Next() {
		values, err := cur.Values()
		if err != nil {
			return len(rows), err
		}
		rows = append(rows, values)
	}
	if err := cur.Err(); err != nil {
		return len(rows), err
	}

	columns := inferColumnsInfo(h, rows)
	fields := make([]arrow.Field, len(columns))
	for i, column := range columns {
		fields[i] = arrow.Field{Name: column.Name, Type: arrowType(column.Type), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer builder.Release()

	for _, row := range rows {
		for i := range columns {
			var v any
			if i < len(row) {
				v = row[i]
			}
			appendArrowValue(builder.Field(i), v)
		}
	}

	rec := builder.NewRecord()
	defer rec.Release()

	pw, err := pqarrow.NewFileWriter(schema, writerOnly{w}, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
	if err != nil {
		return 0, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	if err := pw.Write(rec); err != nil {
		_ = pw.Close()
		return 0, fmt.Errorf("failed to write parquet record: %w", err)
	}
	if err := pw.Close(); err != nil {
		return 0, fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return len(rows), nil
}

// arrowType maps an inferred column type to its Arrow type
func arrowType(ct model.ColumnType) arrow.DataType {
	switch ct {
	case model.ColumnTypeInteger:
		return arrow.PrimitiveTypes.Int64
	case model.ColumnTypeReal:
		return arrow.PrimitiveTypes.Float64
	case model.ColumnTypeBlob:
		return arrow.BinaryTypes.Binary
	default:
		return arrow.BinaryTypes.String
	}
}

// appendArrowValue appends v to the column builder chosen by arrowType
func appendArrowValue(b array.Builder, v any) {
	if v == nil {
		b.AppendNull()
		return
	}

	switch fb := b.(type) {
	case *array.Int64Builder:
		if n, ok := v.(int64); ok {
			fb.Append(n)
			return
		}
	case *array.Float64Builder:
		switch n := v.(type) {
		case float64:
			fb.Append(n)
			return
		case int64:
			fb.Append(float64(n))
			return
		}
	case *array.BinaryBuilder:
		if data, ok := v.([]byte); ok {
			fb.Append(data)
			return
		}
	case *array.StringBuilder:
		fb.Append(formatValue(v, ""))
		return
	}
	b.AppendNull()
}
