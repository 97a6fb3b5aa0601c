package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a cat, masterpiece", OneLine("a cat,\r\nmasterpiece"))
	assert.Equal(t, "a b c", OneLine("  a \t b\n\nc  "))
	assert.Equal(t, "", OneLine("\r\n"))
}

func TestWriteTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.txt")

	err := WriteTXT(path, []Result{
		{Filename: "a.png", Prompt: "a cat,\nmasterpiece"},
		{Filename: "b.png", Prompt: "a dog"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a cat, masterpiece\na dog\n", string(data))
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.csv")

	err := WriteCSV(path, []Result{
		{Filename: "a.png", Prompt: "a cat, \"quoted\", masterpiece"},
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"filename", "prompt"}, rows[0])
	assert.Equal(t, []string{"a.png", `a cat, "quoted", masterpiece`}, rows[1])
}

func TestWritePicksFormatFromSuffix(t *testing.T) {
	dir := t.TempDir()
	results := []Result{{Filename: "a.png", Prompt: "a cat"}}

	csvPath := filepath.Join(dir, "out.CSV")
	require.NoError(t, Write(csvPath, results))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "filename,prompt")

	txtPath := filepath.Join(dir, "out.txt")
	require.NoError(t, Write(txtPath, results))
	data, err = os.ReadFile(txtPath)
	require.NoError(t, err)
	assert.Equal(t, "a cat\n", string(data))
}
