package internal

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
)

var gzipMagic = []byte{0x1f, 0x8b}
var bzip2Magic = []byte{0x42, 0x5a, 0x68}
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
var xzMagic = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}

// ZOpen opens a possibly compressed source file for reading. Compression is
// detected from the file's magic bytes, not from its name.
//
// The second return value is the file name with any compression extension
// removed, use that one for language guessing. The third one says whether the
// contents were compressed; compressed files cannot be rewritten in place.
func ZOpen(filename string) (io.ReadCloser, string, bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", false, err
	}

	// Read the first 6 bytes to determine the compression type
	firstBytes := make([]byte, 6)
	_, err = file.Read(firstBytes)
	if err != nil {
		if err == io.EOF {
			// File was empty
			return file, filename, false, nil
		}
		return nil, "", false, fmt.Errorf("failed to read file: %w", err)
	}

	// Reset file reader to start of file
	_, err = file.Seek(0, 0)
	if err != nil {
		return nil, "", false, fmt.Errorf("failed to seek to start of file: %w", err)
	}

	switch {
	case bytes.HasPrefix(firstBytes, gzipMagic):
		log.Debug("Input file is gzip compressed")
		reader, err := gzip.NewReader(file)
		if err != nil {
			return nil, "", false, err
		}
		return reader, strings.TrimSuffix(filename, ".gz"), true, nil

	case bytes.HasPrefix(firstBytes, bzip2Magic):
		log.Debug("Input file is bzip2 compressed")
		return struct {
			io.Reader
			io.Closer
		}{bzip2.NewReader(file), file}, strings.TrimSuffix(filename, ".bz2"), true, nil

	case bytes.HasPrefix(firstBytes, zstdMagic):
		log.Debug("Input file is zstd compressed")
		decoder, err := zstd.NewReader(file)
		if err != nil {
			return nil, "", false, err
		}
		newName := strings.TrimSuffix(filename, ".zst")
		newName = strings.TrimSuffix(newName, ".zstd")
		return decoder.IOReadCloser(), newName, true, nil

	case bytes.HasPrefix(firstBytes, xzMagic):
		log.Debug("Input file is xz compressed")
		xzReader, err := xz.NewReader(file)
		if err != nil {
			return nil, "", false, err
		}
		return struct {
			io.Reader
			io.Closer
		}{xzReader, file}, strings.TrimSuffix(filename, ".xz"), true, nil
	}

	return file, filename, false, nil
}
