// Package export writes extracted prompts to their output formats.
package export

import (
	"encoding/csv"
	"os"
	"strings"
)

// Result is one successfully extracted prompt.
type Result struct {
	Filename string
	Prompt   string
}

// OneLine collapses line breaks and runs of whitespace so a prompt fits
// on a single output line.
func OneLine(prompt string) string {
	return strings.Join(strings.Fields(prompt), " ")
}

// WriteTXT writes one prompt per line. Filenames are not included; the
// TXT format exists to feed prompt lists into other tools.
func WriteTXT(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, r := range results {
		if _, err := f.WriteString(OneLine(r.Prompt) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes filename,prompt rows under a header.
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"filename", "prompt"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Filename, r.Prompt}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Write picks the format from the path suffix: .csv gets the CSV writer,
// anything else the TXT writer.
func Write(path string, results []Result) error {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return WriteCSV(path, results)
	}
	return WriteTXT(path, results)
}
