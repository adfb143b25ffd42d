package sq3

import "github.com/nao1215/sq3/domain/model"

// Version is the shell version reported by -v and the banner
const Version = "0.1"

// Type aliases for render and output options from model package
type (
	// RenderMode selects how query results are shown on the terminal
	RenderMode = model.RenderMode
	// OutputOptions represents options for writing results to a file
	OutputOptions = model.OutputOptions
	// OutputFormat represents the output file format
	OutputFormat = model.OutputFormat
	// CompressionType represents the compression type
	CompressionType = model.CompressionType
)

// Re-export constants for easier use
const (
	// RenderModeTabular renders an aligned table with optional paging
	RenderModeTabular = model.RenderModeTabular
	// RenderModeTabDelimited renders tab separated lines
	RenderModeTabDelimited = model.RenderModeTabDelimited

	// OutputFormatTSV represents tab-delimited output format
	OutputFormatTSV = model.OutputFormatTSV
	// OutputFormatXLSX represents Excel XLSX output format
	OutputFormatXLSX = model.OutputFormatXLSX
	// OutputFormatParquet represents Parquet output format
	OutputFormatParquet = model.OutputFormatParquet

	// CompressionNone represents no compression
	CompressionNone = model.CompressionNone
	// CompressionGZ represents gzip compression
	CompressionGZ = model.CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2 = model.CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ = model.CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD = model.CompressionZSTD
)

// ParseRenderMode parses a mode name as accepted by .mode
var ParseRenderMode = model.ParseRenderMode

// OutputOptionsForPath derives the output file format and compression from a file name
var OutputOptionsForPath = model.OutputOptionsForPath
