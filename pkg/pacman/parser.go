// pkg/pacman/parser.go
package pacman

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression magics for sync databases. repo-add picks the compressor from
// the host configuration, so all three occur in the wild.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicXz   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ParseSyncDatabase parses a pacman sync database (.db file, a compressed
// tar archive of per-package desc files)
func ParseSyncDatabase(r io.Reader, repoName string) ([]*PackageInfo, error) {
	decompressed, err := decompress(r)
	if err != nil {
		return nil, err
	}

	tarReader := tar.NewReader(decompressed)
	var packages []*PackageInfo

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar entry: %w", err)
		}

		// Only the "desc" file inside each package-version/ directory matters
		if strings.HasSuffix(header.Name, "/desc") {
			pkg, err := parseDescFile(tarReader)
			if err != nil {
				continue
			}
			pkg.Repository = repoName
			packages = append(packages, pkg)
		}
	}

	return packages, nil
}

// decompress sniffs the compression format and returns a plain tar stream
func decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(6)
	if err != nil {
		return nil, fmt.Errorf("reading database header: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, magicGzip):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return gz, nil
	case bytes.HasPrefix(head, magicXz):
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		return xzr, nil
	case bytes.HasPrefix(head, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		// repo-add also supports uncompressed databases
		return br, nil
	}
}

// parseDescFile parses the text content of a 'desc' file
func parseDescFile(r io.Reader) (*PackageInfo, error) {
	scanner := bufio.NewScanner(r)
	pkg := &PackageInfo{}
	var currentHeader string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "%") && strings.HasSuffix(line, "%") {
			currentHeader = line
			continue
		}

		switch currentHeader {
		case "%NAME%":
			pkg.Name = line
		case "%VERSION%":
			pkg.Version = line
		case "%BASE%":
			pkg.Base = line
		case "%DESC%":
			pkg.Description = line
		case "%URL%":
			pkg.URL = line
		case "%ARCH%":
			pkg.Architecture = line
		case "%FILENAME%":
			pkg.Filename = line
		case "%DEPENDS%":
			pkg.Depends = append(pkg.Depends, line)
		case "%PROVIDES%":
			pkg.Provides = append(pkg.Provides, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pkg, nil
}

// cleanDepName removes version constraints (e.g. "glibc>=2.35" -> "glibc")
func cleanDepName(dep string) string {
	if idx := strings.IndexAny(dep, "><="); idx != -1 {
		return dep[:idx]
	}
	return dep
}
