// Package converter locates and invokes pandoc for the two conversion
// stages of the pipeline: DOCX to GitHub-flavored Markdown on upload, and
// Markdown to LaTeX on preview and generation. The Markdown-to-LaTeX stage
// never fails; when pandoc is missing or exits nonzero it degrades to a
// minimal line-based translator.
package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Environment variables that override pandoc discovery, checked in order.
var envOverrides = []string{"PANDOC", "PANDOC_PATH"}

// ErrUnavailable means pandoc could not be located anywhere. The upload
// step cannot proceed without it.
var ErrUnavailable = errors.New("pandoc is required to convert DOCX documents; please install pandoc")

// RunError carries pandoc's diagnostic output from a nonzero exit.
type RunError struct {
	Output string
	err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("pandoc failed: %s", e.Output)
}

func (e *RunError) Unwrap() error {
	return e.err
}

// Converter is the external-tool capability the service layer depends on.
// Tests substitute a fake; Pandoc is the production implementation.
type Converter interface {
	// Locate returns the path to the converter binary, or false when it
	// cannot be found. Absence is a normal outcome, not an error.
	Locate() (string, bool)

	// DocxToMarkdown converts the document at docxPath to GitHub-flavored
	// Markdown, extracting embedded media into mediaDir.
	DocxToMarkdown(docxPath, mediaDir string) (string, error)

	// MarkdownToLatex converts Markdown to LaTeX. Total: degrades to the
	// fallback typesetter rather than failing.
	MarkdownToLatex(markdown string) string
}

// Pandoc invokes the pandoc binary. Discovery order: explicit environment
// overrides, PATH, then well-known per-platform install locations.
type Pandoc struct {
	runner    runner
	lookupEnv func(string) string
	goos      string
}

func NewPandoc() *Pandoc {
	return &Pandoc{
		runner:    osRunner{},
		lookupEnv: os.Getenv,
		goos:      runtime.GOOS,
	}
}

func (p *Pandoc) Locate() (string, bool) {
	for _, key := range envOverrides {
		if v := p.lookupEnv(key); v != "" && p.runner.FileExists(v) {
			return v, true
		}
	}

	if path, err := p.runner.LookPath("pandoc"); err == nil {
		return path, true
	}

	for _, candidate := range p.candidates() {
		if candidate != "" && p.runner.FileExists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// candidates lists well-known install locations for the current platform.
func (p *Pandoc) candidates() []string {
	if p.goos == "windows" {
		var paths []string
		paths = append(paths, `C:\Program Files\Pandoc\pandoc.exe`)
		if local := p.lookupEnv("LOCALAPPDATA"); local != "" {
			paths = append(paths, filepath.Join(local, "Pandoc", "pandoc.exe"))
		}
		if profile := p.lookupEnv("USERPROFILE"); profile != "" {
			paths = append(paths, filepath.Join(profile, "AppData", "Local", "Pandoc", "pandoc.exe"))
		}
		return paths
	}
	return []string{
		"/usr/local/bin/pandoc",
		"/usr/bin/pandoc",
		"/opt/homebrew/bin/pandoc",
	}
}

func (p *Pandoc) DocxToMarkdown(docxPath, mediaDir string) (string, error) {
	bin, ok := p.Locate()
	if !ok {
		return "", ErrUnavailable
	}

	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return "", fmt.Errorf("creating media directory: %w", err)
	}

	out, stderr, err := p.runner.Run(bin, []string{docxPath, "-t", "gfm", "--extract-media", mediaDir}, nil)
	if err != nil {
		return "", &RunError{Output: strings.TrimSpace(string(stderr)), err: err}
	}

	return string(out), nil
}

func (p *Pandoc) MarkdownToLatex(markdown string) string {
	bin, ok := p.Locate()
	if !ok {
		return FallbackLatex(markdown)
	}

	out, _, err := p.runner.Run(bin, []string{"-f", "gfm", "-t", "latex"}, strings.NewReader(markdown))
	if err != nil {
		return FallbackLatex(markdown)
	}

	return string(out)
}
