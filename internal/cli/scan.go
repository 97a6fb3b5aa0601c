// Package cli provides the Cobra command definitions for promptextract.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/EnragedAntelope/PromptExtract/client"
	"github.com/EnragedAntelope/PromptExtract/extract"
	"github.com/EnragedAntelope/PromptExtract/internal/export"
)

// ScanOptions contains the options for the scan command.
type ScanOptions struct {
	Out  string
	CSV  bool
	Jobs int
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [folder]",
		Short: "Extract prompts from the PNG files in a folder",
		Long: `Scan a folder for PNG files generated by ComfyUI, recover the final
positive prompt from each image's embedded workflow, and write the
collected prompts to a text or CSV file.

Files whose prompt cannot be recovered are reported on the console with
the stage that came up empty and are left out of the output.

Examples:
  promptextract scan                          # scan the current folder
  promptextract scan ~/comfy/output           # scan a specific folder
  promptextract scan --csv                    # write prompts.csv with filenames
  promptextract scan -o mine.txt -j 4         # custom output, 4 workers`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := "."
			if len(args) == 1 {
				folder = args[0]
			}
			return runScan(opts, folder)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output path (default prompts.txt, or prompts.csv with --csv)")
	cmd.Flags().BoolVar(&opts.CSV, "csv", false, "write CSV with a filename column")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 1, "number of files to process in parallel")

	return cmd
}

func runScan(opts *ScanOptions, folder string) error {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			files = append(files, e.Name())
		}
	}

	type indexed struct {
		index  int
		result export.Result
	}

	bar := progressbar.Default(int64(len(files)), "scanning")

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	// Each file is an independent extraction; the only shared state is
	// the result list.
	var (
		mu      sync.Mutex
		results []indexed
		wg      sync.WaitGroup
		sem     = make(chan struct{}, jobs)
	)
	for i, name := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, name string) {
			defer wg.Done()
			defer func() { <-sem }()

			prompt, reason := extractFromPNG(filepath.Join(folder, name))
			bar.Add(1)
			if reason != extract.ReasonNone {
				fmt.Printf("[skip] %s: %s\n", name, reason)
				return
			}
			mu.Lock()
			results = append(results, indexed{i, export.Result{Filename: name, Prompt: prompt}})
			mu.Unlock()
		}(i, name)
	}
	wg.Wait()

	sort.Slice(results, func(a, b int) bool {
		return results[a].index < results[b].index
	})
	out := make([]export.Result, len(results))
	for i, r := range results {
		out[i] = r.result
	}

	outPath := opts.Out
	if outPath == "" {
		if opts.CSV {
			outPath = "prompts.csv"
		} else {
			outPath = "prompts.txt"
		}
	}

	if opts.CSV {
		err = export.WriteCSV(outPath, out)
	} else {
		err = export.Write(outPath, out)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d prompts -> %s\n", len(out), outPath)
	return nil
}

// extractFromPNG runs one PNG through the extractor. Every failure comes
// back as a reason; nothing here aborts the batch.
func extractFromPNG(path string) (string, extract.Reason) {
	workflow, ok, err := client.WorkflowFromPNGFile(path)
	if err != nil {
		return "", extract.WrapError(err)
	}
	if !ok {
		return "", extract.ReasonNoWorkflow
	}
	return extract.FromWorkflowJSON([]byte(workflow))
}
