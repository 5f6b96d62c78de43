package parser

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const compressedLog = "run 10\nStep v_ntot\n0 1\n10 3\nLoop time of 0.1\n"

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"log.lammps", CompressionNone},
		{"log.lammps.gz", CompressionGzip},
		{"LOG.GZ", CompressionGzip},
		{"log.lammps.zst", CompressionZstd},
		{"run.log.zstd", CompressionZstd},
		{"archive.tgz", CompressionNone},
	}

	for _, tt := range tests {
		if got := DetectCompression(tt.path); got != tt.want {
			t.Errorf("DetectCompression(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseFile_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(compressedLog)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	assertCompressedDoc(t, writeBytes(t, "log.lammps.gz", buf.Bytes()))
}

func TestParseFile_Zstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write([]byte(compressedLog)); err != nil {
		t.Fatalf("zstd write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}

	assertCompressedDoc(t, writeBytes(t, "log.lammps.zst", buf.Bytes()))
}

func TestParseFile_CorruptGzip(t *testing.T) {
	path := writeBytes(t, "log.lammps.gz", []byte(compressedLog))

	_, err := ParseFile(context.Background(), path)
	if err == nil {
		t.Fatal("ParseFile() expected error for a plain file named .gz")
	}
	if !strings.Contains(err.Error(), "gzip") {
		t.Errorf("error should mention gzip: %v", err)
	}
}

func writeBytes(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func assertCompressedDoc(t *testing.T, path string) {
	t.Helper()
	doc, err := ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if doc.Source != path {
		t.Errorf("Source = %q, want %q", doc.Source, path)
	}
	if len(doc.Runs) != 1 || len(doc.Runs[0].Rows) != 2 {
		t.Fatalf("runs = %+v, want one run with two rows", doc.Runs)
	}
	ys, err := doc.Runs[0].Column("v_ntot")
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if ys[1] != 3 {
		t.Errorf("v_ntot[1] = %v, want 3", ys[1])
	}
}
