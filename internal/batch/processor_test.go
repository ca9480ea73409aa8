package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []WordEntry
		wantErr     string
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "words with cases",
			fileContent: `gera = Vardininkas
žodį = accusative
gera = UNKNOWN`,
			want: []WordEntry{
				{Word: "gera", Case: "Vardininkas"},
				{Word: "žodį", Case: "accusative"},
				{Word: "gera", Case: "UNKNOWN"},
			},
		},
		{
			name: "mixed format",
			fileContent: `gera
žodį = Galininkas
namas`,
			want: []WordEntry{
				{Word: "gera"},
				{Word: "žodį", Case: "Galininkas"},
				{Word: "namas"},
			},
		},
		{
			name: "comments, blank lines and CRLF",
			fileContent: "# nouns\r\n\r\n  gera  \r\nžodį =   Galininkas  \r\n",
			want: []WordEntry{
				{Word: "gera"},
				{Word: "žodį", Case: "Galininkas"},
			},
		},
		{
			name:        "empty case keeps default",
			fileContent: "gera =",
			want:        []WordEntry{{Word: "gera"}},
		},
		{
			name:        "missing word",
			fileContent: "gera\n= Galininkas",
			wantErr:     "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "words.txt")
			if err := os.WriteFile(path, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			got, err := ReadBatchFile(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ReadBatchFile() error = %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_Missing(t *testing.T) {
	_, err := ReadBatchFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
