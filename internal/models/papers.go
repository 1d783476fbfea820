package models

import (
	"time"
)

// ConversionJob is the persisted record of one upload-through-download
// session. Paths are absolute; the body markdown is immutable once written.
type ConversionJob struct {
	ID          string     `json:"id" db:"id"`
	Filename    string     `json:"filename" db:"filename"`
	BodyPath    string     `json:"body_path" db:"body_path"`
	MediaDir    string     `json:"media_dir" db:"media_dir"`
	ArchivePath *string    `json:"archive_path,omitempty" db:"archive_path"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	GeneratedAt *time.Time `json:"generated_at,omitempty" db:"generated_at"`
}

// MetadataGuess holds the extractor's best-effort proposal for the paper
// metadata. Every field may be empty; the user corrects them before the
// final render.
type MetadataGuess struct {
	Title      string   `json:"title"`
	Abstract   string   `json:"abstract"`
	Keywords   []string `json:"keywords"`
	AuthorsRaw string   `json:"authors_raw"`
}

// AuthorRecord is one editable author row. The parser fills Name,
// Affiliation, and Email when it can; Organization and CityCountry are
// left for the user.
type AuthorRecord struct {
	Name         string `json:"name"`
	Affiliation  string `json:"affiliation"`
	Organization string `json:"organization"`
	CityCountry  string `json:"city_country"`
	Email        string `json:"email"`
}

// RenderContext carries the user-confirmed metadata plus the sanitized
// LaTeX body into the manuscript template. Built fresh on every generate.
type RenderContext struct {
	Title       string
	Authors     []AuthorRecord
	Abstract    string
	Keywords    []string
	Body        string
	BibFileBase string
}

type UploadRequest struct {
	File     []byte
	Filename string
}

type UploadResponse struct {
	JobID       string         `json:"job_id"`
	Filename    string         `json:"filename"`
	Title       string         `json:"title"`
	Abstract    string         `json:"abstract"`
	Keywords    []string       `json:"keywords"`
	Authors     []AuthorRecord `json:"authors"`
	BodyPreview string         `json:"body_preview"`
	CreatedAt   time.Time      `json:"created_at"`
	Message     string         `json:"message"`
}

type GenerateRequest struct {
	Title    string         `json:"title"`
	Abstract string         `json:"abstract"`
	Keywords string         `json:"keywords"`
	Authors  []AuthorRecord `json:"authors"`
}

type GenerateResponse struct {
	JobID       string    `json:"job_id"`
	DownloadURL string    `json:"download_url"`
	GeneratedAt time.Time `json:"generated_at"`
	Message     string    `json:"message"`
}

type DiagResponse struct {
	PandocPath string `json:"pandoc_path"`
	Found      bool   `json:"found"`
}
