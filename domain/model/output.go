package model

import (
	"path/filepath"
	"strings"
)

// OutputFormat represents the output file format
type OutputFormat int

const (
	// OutputFormatTSV represents tab-delimited text output (the default)
	OutputFormatTSV OutputFormat = iota
	// OutputFormatXLSX represents Excel XLSX output format
	OutputFormatXLSX
	// OutputFormatParquet represents Parquet output format
	OutputFormatParquet
)

// String returns the string representation of OutputFormat
func (f OutputFormat) String() string {
	switch f {
	case OutputFormatTSV:
		return "tsv"
	case OutputFormatXLSX:
		return "xlsx"
	case OutputFormatParquet:
		return "parquet"
	default:
		return "tsv"
	}
}

// Extension returns the file extension for the format
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatTSV:
		return ".tsv"
	case OutputFormatXLSX:
		return ".xlsx"
	case OutputFormatParquet:
		return ".parquet"
	default:
		return ".tsv"
	}
}

// CompressionType represents the compression type
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// String returns the string representation of CompressionType
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGZ:
		return "gz"
	case CompressionBZ2:
		return "bz2"
	case CompressionXZ:
		return "xz"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// Extension returns the file extension for the compression type
func (c CompressionType) Extension() string {
	switch c {
	case CompressionNone:
		return ""
	case CompressionGZ:
		return ".gz"
	case CompressionBZ2:
		return ".bz2"
	case CompressionXZ:
		return ".xz"
	case CompressionZSTD:
		return ".zst"
	default:
		return ""
	}
}

// OutputOptions describes how a result set is written to an output file.
type OutputOptions struct {
	// Format specifies the output file format
	Format OutputFormat
	// Compression specifies the compression type
	Compression CompressionType
}

// compressionExtensions lists every compression suffix recognised on output paths.
var compressionExtensions = []CompressionType{
	CompressionGZ,
	CompressionBZ2,
	CompressionXZ,
	CompressionZSTD,
}

// OutputOptionsForPath derives the output options from a file name.
// The compression suffix is looked at first, then the extension that remains.
// Unknown extensions fall back to tab-delimited text.
//
//	"report.tsv"        -> TSV, none
//	"report.xlsx"       -> XLSX, none
//	"report.parquet.zst"-> Parquet, zstd
//	"report.txt.gz"     -> TSV, gzip
func OutputOptionsForPath(path string) OutputOptions {
	options := OutputOptions{Format: OutputFormatTSV, Compression: CompressionNone}
	lower := strings.ToLower(path)

	for _, c := range compressionExtensions {
		if strings.HasSuffix(lower, c.Extension()) {
			options.Compression = c
			lower = strings.TrimSuffix(lower, c.Extension())
			break
		}
	}

	switch filepath.Ext(lower) {
	case OutputFormatXLSX.Extension():
		options.Format = OutputFormatXLSX
	case OutputFormatParquet.Extension():
		options.Format = OutputFormatParquet
	default:
		options.Format = OutputFormatTSV
	}
	return options
}
