// Package fileio opens structure files for reading, so that every reader in
// this repository gets the same treatment of compressed and plain files.
//
// Files ending in ".gz" are streamed through a gzip decompressor. Other files
// are memory mapped read-only. In both cases, Close releases everything that
// Open acquired.
package fileio

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path"

	"github.com/edsrzf/mmap-go"
)

// Open opens the file at fp for reading.
func Open(fp string) (io.ReadCloser, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if path.Ext(fp) == ".gz" {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &gzipFile{f: f, zr: zr}, nil
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Empty files cannot be mapped.
	if info.Size() == 0 {
		return f, nil
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &mappedFile{f: f, mm: mm, Reader: bytes.NewReader(mm)}, nil
}

// gzipFile closes the decompressor, then the underlying file.
type gzipFile struct {
	f  *os.File
	zr *gzip.Reader
}

func (g *gzipFile) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipFile) Close() error {
	return errors.Join(g.zr.Close(), g.f.Close())
}

// mappedFile reads from a read-only memory map. The map must not be touched
// after Close.
type mappedFile struct {
	*bytes.Reader
	f  *os.File
	mm mmap.MMap
}

func (m *mappedFile) Close() error {
	return errors.Join(m.mm.Unmap(), m.f.Close())
}
