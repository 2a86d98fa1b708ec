package resumesrv

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cvlens/cvlens/parsing/resume"
	"github.com/cvlens/cvlens/pkg/errx"
	"github.com/cvlens/cvlens/pkg/logx"
)

// ProgressFunc reports batch progress to a side channel (CLI output, web
// status). It is optional and kept out of the aggregation logic so the
// batch loop stays independently testable.
type ProgressFunc func(index, total int, filename string)

// BatchOptions configure a directory run.
type BatchOptions struct {
	// Formats are the file extensions (with leading dot) to pick up.
	Formats []string

	// Pacing is the fixed delay between files, a rate-limiting courtesy
	// to the remote API. It is not applied after the last file.
	Pacing time.Duration

	// OutputPath, when non-empty, receives the full result as a JSON
	// array with 2-space indentation once the run completes.
	OutputPath string

	Progress ProgressFunc
}

var defaultFormats = []string{".txt", ".pdf", ".docx"}

// ProcessDirectory parses every supported file in dir, strictly
// sequentially and in lexical filename order. A failure to extract or
// parse one file is recorded in its entry and never aborts the batch;
// only setup failures (unreadable directory, unwritable output) return
// an error.
func (s *Service) ProcessDirectory(ctx context.Context, dir string, opts BatchOptions) (resume.BatchResult, error) {
	if len(opts.Formats) == 0 {
		opts.Formats = defaultFormats
	}

	files, err := listSupportedFiles(dir, opts.Formats)
	if err != nil {
		return nil, err
	}

	result := make(resume.BatchResult, 0, len(files))
	for i, name := range files {
		if opts.Progress != nil {
			opts.Progress(i, len(files), name)
		}

		record, err := s.ParseFile(ctx, filepath.Join(dir, name))
		if err != nil {
			logx.Warnf("batch: %s failed: %v", name, err)
			result = append(result, resume.BatchEntry{
				Filename: name,
				Success:  false,
				Error:    err.Error(),
			})
		} else {
			result = append(result, resume.BatchEntry{
				Filename: name,
				Success:  true,
				Data:     record,
			})
		}

		if opts.Pacing > 0 && i < len(files)-1 {
			select {
			case <-time.After(opts.Pacing):
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}
	}

	if opts.OutputPath != "" {
		if err := writeBatchResult(opts.OutputPath, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func listSupportedFiles(dir string, formats []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errx.Wrap(err, "failed to read batch directory", errx.TypeInternal).
			WithDetail("dir", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, f := range formats {
			if ext == f {
				files = append(files, entry.Name())
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func writeBatchResult(path string, result resume.BatchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errx.Wrap(err, "failed to encode batch result", errx.TypeInternal)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errx.Wrap(err, "failed to write batch result", errx.TypeInternal).
			WithDetail("path", path)
	}
	return nil
}
