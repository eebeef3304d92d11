package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension  = errors.New("file must have .md or .markdown extension")
	ErrInvalidOutputName = errors.New("directory output must be a file name")
	ErrOutputConflict    = errors.New("output already written by another file")
)

// defaultDirOutput is written beside each markdown file in directory mode.
const defaultDirOutput = "index.html"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
//
// For a file, output is the HTML path (default: the input with .html).
// For a directory, output is a file name written beside every markdown
// file found below it (default index.html).
func discoverFiles(inputPath, output string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath, err := resolveFileOutput(inputPath, output)
		if err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	name := dirOutputName(output)
	if filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutputName, output)
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: filepath.Join(filepath.Dir(path), name),
		})
		return nil
	})

	return files, err
}

// resolveFileOutput determines the output path for a single input file.
func resolveFileOutput(inputPath, output string) (string, error) {
	if output == "" {
		return fileutil.HTMLPath(inputPath)
	}
	if fileutil.DirExists(output) {
		htmlPath, err := fileutil.HTMLPath(filepath.Base(inputPath))
		if err != nil {
			return "", err
		}
		return filepath.Join(output, htmlPath), nil
	}
	if filepath.Ext(output) == "" {
		return output + ".html", nil
	}
	return output, nil
}

// dirOutputName returns the per-directory output file name, as given.
func dirOutputName(output string) string {
	if output == "" {
		return defaultDirOutput
	}
	return output
}

// splitConflicts keeps the first file for each output path; later files
// targeting the same path fail instead of overwriting it.
func splitConflicts(files []FileToConvert) ([]FileToConvert, []ConversionResult) {
	owners := make(map[string]string, len(files))
	kept := files[:0:0]
	var conflicts []ConversionResult

	for _, f := range files {
		if owner, ok := owners[f.OutputPath]; ok {
			conflicts = append(conflicts, ConversionResult{
				InputPath:  f.InputPath,
				OutputPath: f.OutputPath,
				Err:        fmt.Errorf("%w: %s (from %s)", ErrOutputConflict, f.OutputPath, owner),
			})
			continue
		}
		owners[f.OutputPath] = f.InputPath
		kept = append(kept, f)
	}

	return kept, conflicts
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
