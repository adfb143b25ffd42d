package sq3

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// outputFile is a result file opened for writing. Writes go through the
// compressor chosen by the file name, if any.
type outputFile struct {
	io.Writer
	file       *os.File
	compressor io.Closer
}

// compressor wraps w so that what is written to it is compressed as
// compression asks. The returned closer is nil when nothing needs flushing.
// bzip2 is recognised on output names but cannot be written.
func compressor(w io.Writer, compression CompressionType) (io.Writer, io.Closer, error) {
	switch compression {
	case CompressionNone:
		return w, nil, nil
	case CompressionGZ:
		gz := gzip.NewWriter(w)
		return gz, gz, nil
	case CompressionXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xw, xw, nil
	case CompressionZSTD:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zw, zw, nil
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, compression)
	}
}

// createOutputFile creates (truncating) the file at path. An unsupported
// compression is rejected before the file is touched.
func createOutputFile(path string, compression CompressionType) (*outputFile, error) {
	if compression == CompressionBZ2 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, compression)
	}

	file, err := os.Create(path) //nolint:gosec // output path is chosen by the operator with .out
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	w, c, err := compressor(file, compression)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &outputFile{Writer: w, file: file, compressor: c}, nil
}

// Close flushes the compressor, then syncs and closes the file.
// The first error wins.
func (o *outputFile) Close() error {
	var errs []error
	if o.compressor != nil {
		errs = append(errs, o.compressor.Close())
	}
	errs = append(errs, o.file.Sync(), o.file.Close())
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

var _ io.WriteCloser = (*outputFile)(nil)
