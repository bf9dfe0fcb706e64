package cli

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestScanTokens(t *testing.T) {
	in := "deadbeef\n\n# a comment\n  c0a80101  \n\t\nff\n"

	var got []string
	err := scanTokens(strings.NewReader(in), func(tok string) bool {
		got = append(got, tok)
		return true
	})
	if err != nil {
		t.Fatalf("scanTokens: %v", err)
	}

	want := []string{"deadbeef", "c0a80101", "ff"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestScanTokens_Stop(t *testing.T) {
	var got []string
	err := scanTokens(strings.NewReader("aa\nbb\ncc\n"), func(tok string) bool {
		got = append(got, tok)
		return false
	})
	if err != nil {
		t.Fatalf("scanTokens: %v", err)
	}
	if len(got) != 1 || got[0] != "aa" {
		t.Errorf("tokens = %v, want just aa", got)
	}
}

func TestOpenInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	if err := os.WriteFile(path, []byte("ff00\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	in, err := openInput(Config{InputPath: path})
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "ff00\n" {
		t.Errorf("read %q, want %q", data, "ff00\n")
	}
}

func TestOpenInput_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("deadbeef\nc0a80101\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	in, err := openInput(Config{InputPath: path})
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "deadbeef\nc0a80101\n" {
		t.Errorf("read %q, want the uncompressed content", data)
	}
}

func TestOpenInput_MissingFile(t *testing.T) {
	_, err := openInput(Config{InputPath: filepath.Join(t.TempDir(), "absent")})
	if err == nil {
		t.Error("openInput: want error for a missing file")
	}
}

func TestOpenInput_BadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.gz")
	if err := os.WriteFile(path, []byte("not gzip at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := openInput(Config{InputPath: path}); err == nil {
		t.Error("openInput: want error for a corrupt gzip file")
	}
}
