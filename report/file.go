// SPDX-License-Identifier: MIT
// Package: partbench/report
//
// file.go - report destination handling.
//
// Naming:
//   • file input:      <dir>/<base(source)>.results<ext>
//   • generated input: <dir>/random.results.p<parts>.n<nodes><ext>
//   • ext is ".txt" or ".json"; ".zst" is appended when compressed.
//
// Every failure wraps ErrReportWrite. Save writes the whole document or
// returns an error; callers abort on error.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// OutputPath derives the report file path.
func OutputPath(dir, source string, nParts, nNodes int, f Format, compressed bool) string {
	var name string
	if source != "" {
		name = filepath.Base(source) + ".results"
	} else {
		name = fmt.Sprintf("random.results.p%d.n%d", nParts, nNodes)
	}
	name += f.ext()
	if compressed {
		name += ".zst"
	}

	return filepath.Join(dir, name)
}

// zstdFile closes the encoder before the file it writes to.
type zstdFile struct {
	*zstd.Encoder
	f *os.File
}

func (z *zstdFile) Close() error {
	encErr := z.Encoder.Close()
	fileErr := z.f.Close()
	if encErr != nil {
		return encErr
	}

	return fileErr
}

// CreateFile creates path (and its directory) for writing, optionally
// through a zstd encoder.
func CreateFile(path string, compressed bool) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %q: %v: %w", dir, err, ErrReportWrite)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %q: %v: %w", path, err, ErrReportWrite)
	}
	if !compressed {
		return f, nil
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("zstd %q: %v: %w", path, err, ErrReportWrite)
	}

	return &zstdFile{Encoder: enc, f: f}, nil
}

// OpenFile opens a report for reading, decompressing when compressed.
func OpenFile(path string, compressed bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !compressed {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &zstdReader{Decoder: dec, f: f}, nil
}

type zstdReader struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdReader) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

// Save writes doc to path in format f.
func Save(path string, doc Document, f Format, compressed bool) error {
	w, err := CreateFile(path, compressed)
	if err != nil {
		return err
	}

	if f == FormatJSON {
		err = WriteJSON(w, doc)
	} else {
		err = WriteText(w, doc)
	}
	closeErr := w.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write %q: %v: %w", path, err, ErrReportWrite)
	}

	return nil
}
