package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/guilt/gsm/pkg/lifecycle"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in         string
		path       string
		start, end int64
		wantErr    bool
	}{
		{"a.bin", "a.bin", 0, -1, false},
		{"a.bin#10", "a.bin", 0, 10, false},
		{"a.bin#5-", "a.bin", 5, -1, false},
		{"a.bin#5-9", "a.bin", 5, 9, false},
		{"a.bin#9-5", "", 0, 0, true},
		{"a.bin#x-5", "", 0, 0, true},
		{"a.bin#0", "", 0, 0, true},
		{"a.bin#1-2-3", "", 0, 0, true},
		{"#1-2", "", 0, 0, true},
	}
	for _, tt := range tests {
		rs, err := ParseFilePath(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilePath(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if rs.FilePath != tt.path || rs.Start != tt.start || rs.End != tt.end {
			t.Errorf("ParseFilePath(%q) = %+v", tt.in, rs)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in         string
		start, end int64
		wantErr    bool
	}{
		{"a.bin#50%", 0, 5000, false},
		{"a.bin#10%-50%", 1000, 5000, false},
		{"a.bin#12.5%-100%", 1250, 10000, false},
		{"a.bin#0%", 0, 0, true},
		{"a.bin#50%-10%", 0, 0, true},
		{"a.bin#10%-150%", 0, 0, true},
		{"a.bin#x%", 0, 0, true},
		{"a.bin#1%-2%-3%", 0, 0, true},
	}
	for _, tt := range tests {
		rs, err := ParseFilePath(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilePath(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if !rs.IsPercent || rs.Start != tt.start || rs.End != tt.end {
			t.Errorf("ParseFilePath(%q) = %+v", tt.in, rs)
		}
	}

	rs, _ := ParseFilePath("a.bin#12.5%-100%")
	if rs.String() != "a.bin#12.5%-100%" {
		t.Errorf("String() = %q", rs.String())
	}
	start, end, err := rs.ToBytes(800)
	if err != nil || start != 100 || end != 800 {
		t.Errorf("ToBytes(800) = %d, %d, %v", start, end, err)
	}
}

func TestString(t *testing.T) {
	for _, s := range []string{"a.bin", "a.bin#5-", "a.bin#5-9"} {
		rs, err := ParseFilePath(s)
		if err != nil {
			t.Fatal(err)
		}
		if rs.String() != s {
			t.Errorf("String() = %q, want %q", rs.String(), s)
		}
	}
	rs, _ := ParseFilePath("a.bin#10")
	if rs.String() != "a.bin#0-10" {
		t.Errorf("String() = %q", rs.String())
	}
}

func TestReadRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	content := []byte("0123456789abcdef")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input string
		want  []byte
	}{
		{path, content},
		{path + "#4", content[:4]},
		{path + "#4-", content[4:]},
		{path + "#2-6", content[2:6]},
		{path + "#25%-75%", content[4:12]},
		{path + "#50%", content[:8]},
		{path + "#0%-100%", content},
	}
	for _, tt := range tests {
		rs, err := ParseFilePath(tt.input)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ReadRange(rs, lifecycle.MakeDefaultLifecycle)
		if err != nil {
			t.Fatalf("ReadRange(%s): %v", tt.input, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("ReadRange(%s) = %q, want %q", tt.input, got, tt.want)
		}
	}

	rs, _ := ParseFilePath(path + "#10-100")
	if _, err := ReadRange(rs, lifecycle.MakeDefaultLifecycle); err == nil {
		t.Fatal("expected error for range past end of file")
	}
	if _, err := ReadRange(RangeSpec{FilePath: filepath.Join(dir, "missing"), End: -1}, lifecycle.MakeDefaultLifecycle); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadRangeEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRange(RangeSpec{FilePath: path, End: -1}, lifecycle.MakeDefaultLifecycle)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d bytes from empty file", len(got))
	}
}
