// Package workspace manages the per-job filesystem namespace: the upload
// and output directories keyed by job id, the figure copy into the bundle,
// and the downloadable zip archive.
package workspace

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	bodyFile    = "body.md"
	paperFile   = "paper.tex"
	bibFile     = "refs.bib"
	mediaSubdir = "media"
	figsSubdir  = "figures"
	archiveFile = "ieee_output.zip"
)

// figureExtensions is the allow-list of media files copied into figures/.
var figureExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
	".eps":  true,
}

// Workspace resolves job-scoped paths beneath fixed upload and output
// roots. Distinct jobs never share a directory.
type Workspace struct {
	uploadRoot string
	outputRoot string
}

func New(uploadRoot, outputRoot string) *Workspace {
	return &Workspace{uploadRoot: uploadRoot, outputRoot: outputRoot}
}

func (w *Workspace) UploadDir(id string) string  { return filepath.Join(w.uploadRoot, id) }
func (w *Workspace) OutputDir(id string) string  { return filepath.Join(w.outputRoot, id) }
func (w *Workspace) MediaDir(id string) string   { return filepath.Join(w.OutputDir(id), mediaSubdir) }
func (w *Workspace) FiguresDir(id string) string { return filepath.Join(w.OutputDir(id), figsSubdir) }
func (w *Workspace) BodyPath(id string) string   { return filepath.Join(w.OutputDir(id), bodyFile) }
func (w *Workspace) PaperPath(id string) string  { return filepath.Join(w.OutputDir(id), paperFile) }
func (w *Workspace) BibPath(id string) string    { return filepath.Join(w.OutputDir(id), bibFile) }
func (w *Workspace) ArchivePath(id string) string {
	return filepath.Join(w.OutputDir(id), archiveFile)
}

// Init creates the upload and output directories for a job.
func (w *Workspace) Init(id string) error {
	for _, dir := range []string{w.UploadDir(id), w.OutputDir(id)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating job directory %s: %w", dir, err)
		}
	}
	return nil
}

// Cleanup removes all storage for a job. Used when an upload fails partway
// so no orphaned job id stays reachable.
func (w *Workspace) Cleanup(id string) {
	os.RemoveAll(w.UploadDir(id))
	os.RemoveAll(w.OutputDir(id))
}

// OutputExists reports whether the job's output storage is still present.
func (w *Workspace) OutputExists(id string) bool {
	info, err := os.Stat(w.OutputDir(id))
	return err == nil && info.IsDir()
}

// CopyFigures copies allow-listed media files into the job's figures
// directory, flattening subdirectories by base name. A missing media
// directory is fine; pandoc only creates it when the document has media.
func (w *Workspace) CopyFigures(id string) (int, error) {
	mediaDir := w.MediaDir(id)
	if _, err := os.Stat(mediaDir); err != nil {
		return 0, nil
	}

	figsDir := w.FiguresDir(id)
	if err := os.MkdirAll(figsDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating figures directory: %w", err)
	}

	copied := 0
	err := filepath.WalkDir(mediaDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !figureExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if err := copyFile(path, filepath.Join(figsDir, filepath.Base(path))); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copying figures: %w", err)
	}
	return copied, nil
}

// Archive zips the job's output directory and returns the archive path.
// The archive file itself is excluded so regeneration never nests an old
// archive inside a new one.
func (w *Workspace) Archive(id string) (string, error) {
	outDir := w.OutputDir(id)
	archivePath := w.ArchivePath(id)

	f, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	err = filepath.WalkDir(outDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path == archivePath {
			return err
		}
		rel, err := filepath.Rel(outDir, path)
		if err != nil {
			return err
		}
		entry, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(entry, src)
		return err
	})
	if err != nil {
		zw.Close()
		return "", fmt.Errorf("archiving output: %w", err)
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalizing archive: %w", err)
	}
	return archivePath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
