package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Alexgr8080/papercoverterieee/internal/converter"
	"github.com/Alexgr8080/papercoverterieee/internal/extractor"
	"github.com/Alexgr8080/papercoverterieee/internal/latex"
	"github.com/Alexgr8080/papercoverterieee/internal/models"
	"github.com/Alexgr8080/papercoverterieee/internal/repository"
	"github.com/Alexgr8080/papercoverterieee/internal/storage"
	"github.com/Alexgr8080/papercoverterieee/internal/utils"
	"github.com/Alexgr8080/papercoverterieee/internal/workspace"
)

const (
	// bodyPreviewLimit bounds the LaTeX preview returned after upload.
	bodyPreviewLimit = 2000
	// bibFileBase is the bibliography file name without extension.
	bibFileBase = "refs"

	sessionExpiredMessage = "Session expired. Please re-upload your file."
)

var formKeywordSplitRe = regexp.MustCompile(`[;,]`)

type PaperService interface {
	Upload(ctx context.Context, req *models.UploadRequest) (*models.UploadResponse, error)
	Generate(ctx context.Context, id string, req *models.GenerateRequest) (*models.GenerateResponse, error)
	// Archive returns the path of the job's downloadable zip, building it
	// on demand when missing.
	Archive(ctx context.Context, id string) (string, error)
	Diagnostics() *models.DiagResponse
}

type paperService struct {
	repo   repository.Repository
	conv   converter.Converter
	ws     *workspace.Workspace
	store  storage.ArchiveStore // nil when archive publishing is disabled
	logger *utils.Logger
}

func NewService(repo repository.Repository, conv converter.Converter, ws *workspace.Workspace, store storage.ArchiveStore, logger *utils.Logger) PaperService {
	return &paperService{
		repo:   repo,
		conv:   conv,
		ws:     ws,
		store:  store,
		logger: logger,
	}
}

// Upload converts the document to Markdown, stores it as the job's
// immutable body, and returns metadata guesses for human review. Any
// conversion failure removes all partial storage for the attempt.
func (s *paperService) Upload(ctx context.Context, req *models.UploadRequest) (*models.UploadResponse, error) {
	if !strings.EqualFold(filepath.Ext(req.Filename), ".docx") {
		return nil, utils.NewBadRequestError("Please upload a .docx file.")
	}

	jobID := utils.GenerateID()

	if err := s.ws.Init(jobID); err != nil {
		s.logger.Error("Failed to create job directories", "error", err, "job_id", jobID)
		return nil, utils.NewInternalError("Failed to store document")
	}

	filename := utils.SanitizeFilename(req.Filename)
	docxPath := filepath.Join(s.ws.UploadDir(jobID), filename)
	if err := os.WriteFile(docxPath, req.File, 0o644); err != nil {
		s.ws.Cleanup(jobID)
		s.logger.Error("Failed to save upload", "error", err, "job_id", jobID)
		return nil, utils.NewInternalError("Failed to store document")
	}

	markdown, err := s.conv.DocxToMarkdown(docxPath, s.ws.MediaDir(jobID))
	if err != nil {
		s.ws.Cleanup(jobID)
		return nil, s.conversionError(err, jobID, filename)
	}
	markdown = extractor.NormalizeMarkdown([]byte(markdown))

	if err := os.WriteFile(s.ws.BodyPath(jobID), []byte(markdown), 0o644); err != nil {
		s.ws.Cleanup(jobID)
		s.logger.Error("Failed to store converted body", "error", err, "job_id", jobID)
		return nil, utils.NewInternalError("Failed to store converted document")
	}

	now := time.Now()
	job := &models.ConversionJob{
		ID:        jobID,
		Filename:  filename,
		BodyPath:  s.ws.BodyPath(jobID),
		MediaDir:  s.ws.MediaDir(jobID),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		s.ws.Cleanup(jobID)
		s.logger.Error("Failed to save job record", "error", err, "job_id", jobID)
		return nil, utils.NewInternalError("Failed to save job record")
	}

	guess := extractor.GuessMetadata(markdown)
	authors := extractor.ParseAuthors(guess.AuthorsRaw)
	preview := s.latexBody(markdown)
	if len(preview) > bodyPreviewLimit {
		preview = preview[:bodyPreviewLimit]
	}

	s.logger.Info("Document uploaded and converted",
		"job_id", jobID,
		"filename", filename,
		"markdown_length", len(markdown),
		"guessed_title", guess.Title,
		"guessed_keywords", len(guess.Keywords),
		"guessed_authors", len(authors))

	return &models.UploadResponse{
		JobID:       jobID,
		Filename:    filename,
		Title:       guess.Title,
		Abstract:    guess.Abstract,
		Keywords:    guess.Keywords,
		Authors:     authors,
		BodyPreview: preview,
		CreatedAt:   now,
		Message:     "Review the guessed metadata, then POST the corrected fields to /generate.",
	}, nil
}

// Generate renders the final manuscript from user-confirmed metadata and
// the stored body, writes the bibliography stub, copies figures, and
// builds the downloadable archive. Re-deriving everything from the
// immutable body makes generation repeatable: the same form input produces
// byte-identical output.
func (s *paperService) Generate(ctx context.Context, id string, req *models.GenerateRequest) (*models.GenerateResponse, error) {
	if _, err := s.requireJob(ctx, id); err != nil {
		return nil, err
	}

	body, err := os.ReadFile(s.ws.BodyPath(id))
	if err != nil {
		return nil, utils.NewGoneError(sessionExpiredMessage)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Untitled"
	}

	authors := req.Authors
	if len(authors) == 0 {
		authors = []models.AuthorRecord{{}}
	}

	renderCtx := models.RenderContext{
		Title:       title,
		Authors:     authors,
		Abstract:    strings.TrimSpace(req.Abstract),
		Keywords:    splitFormKeywords(req.Keywords),
		Body:        s.latexBody(string(body)),
		BibFileBase: bibFileBase,
	}

	paper, err := latex.Render(renderCtx)
	if err != nil {
		s.logger.Error("Failed to render manuscript", "error", err, "job_id", id)
		return nil, utils.NewInternalError("Failed to render manuscript")
	}

	if err := os.WriteFile(s.ws.PaperPath(id), []byte(paper), 0o644); err != nil {
		s.logger.Error("Failed to write manuscript", "error", err, "job_id", id)
		return nil, utils.NewInternalError("Failed to write manuscript")
	}
	if err := os.WriteFile(s.ws.BibPath(id), []byte("% Add your BibTeX entries here\n"), 0o644); err != nil {
		s.logger.Error("Failed to write bibliography stub", "error", err, "job_id", id)
		return nil, utils.NewInternalError("Failed to write bibliography stub")
	}

	copied, err := s.ws.CopyFigures(id)
	if err != nil {
		s.logger.Error("Failed to copy figures", "error", err, "job_id", id)
		return nil, utils.NewInternalError("Failed to copy figures")
	}

	archivePath, err := s.ws.Archive(id)
	if err != nil {
		s.logger.Error("Failed to build archive", "error", err, "job_id", id)
		return nil, utils.NewInternalError("Failed to build archive")
	}

	now := time.Now()
	if err := s.repo.MarkGenerated(ctx, id, archivePath); err != nil {
		s.logger.Error("Failed to update job record", "error", err, "job_id", id)
		return nil, utils.NewInternalError("Failed to update job record")
	}

	s.publishArchive(ctx, id, archivePath)

	s.logger.Info("Manuscript generated",
		"job_id", id,
		"figures", copied,
		"archive", archivePath)

	return &models.GenerateResponse{
		JobID:       id,
		DownloadURL: fmt.Sprintf("/api/v1/papers/%s/download", id),
		GeneratedAt: now,
		Message:     "Manuscript generated. Fetch the archive from the download URL.",
	}, nil
}

func (s *paperService) Archive(ctx context.Context, id string) (string, error) {
	if _, err := s.requireJob(ctx, id); err != nil {
		return "", err
	}

	archivePath := s.ws.ArchivePath(id)
	if _, err := os.Stat(archivePath); err != nil {
		if archivePath, err = s.ws.Archive(id); err != nil {
			s.logger.Error("Failed to build archive", "error", err, "job_id", id)
			return "", utils.NewInternalError("Failed to build archive")
		}
	}
	return archivePath, nil
}

func (s *paperService) Diagnostics() *models.DiagResponse {
	path, found := s.conv.Locate()
	return &models.DiagResponse{PandocPath: path, Found: found}
}

// requireJob loads the job and verifies its storage still exists. Either
// one missing means the session has expired.
func (s *paperService) requireJob(ctx context.Context, id string) (*models.ConversionJob, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load job", "error", err, "job_id", id)
		return nil, utils.NewInternalError("Failed to load job")
	}
	if job == nil || !s.ws.OutputExists(id) {
		return nil, utils.NewGoneError(sessionExpiredMessage)
	}
	return job, nil
}

// latexBody runs the typeset stage and strips the duplicated
// abstract/keyword sections; those are re-inserted from the edited fields.
func (s *paperService) latexBody(markdown string) string {
	return latex.StripAbstractAndKeywords(s.conv.MarkdownToLatex(markdown))
}

// conversionError maps converter failures onto user-facing errors.
func (s *paperService) conversionError(err error, jobID, filename string) error {
	if errors.Is(err, converter.ErrUnavailable) {
		s.logger.Error("Pandoc not found", "job_id", jobID, "filename", filename)
		return utils.NewUnavailableError(converter.ErrUnavailable.Error())
	}

	var runErr *converter.RunError
	if errors.As(err, &runErr) {
		s.logger.Error("Pandoc conversion failed", "job_id", jobID, "filename", filename, "output", runErr.Output)
		return utils.NewUnprocessableError(runErr.Error())
	}

	s.logger.Error("Document conversion failed", "error", err, "job_id", jobID, "filename", filename)
	return utils.NewInternalError("Failed to convert document")
}

// publishArchive pushes the finished archive to object storage when
// configured. Best-effort: a publish failure never fails the generate.
func (s *paperService) publishArchive(ctx context.Context, id, archivePath string) {
	if s.store == nil {
		return
	}

	data, err := os.ReadFile(archivePath)
	if err != nil {
		s.logger.Warn("Failed to read archive for publishing", "error", err, "job_id", id)
		return
	}

	key := fmt.Sprintf("archives/%s/ieee_output.zip", id)
	if err := s.store.Upload(ctx, key, data, "application/zip"); err != nil {
		s.logger.Warn("Failed to publish archive", "error", err, "job_id", id, "key", key)
		return
	}

	s.logger.Info("Archive published", "job_id", id, "key", key)
}

// splitFormKeywords splits the user-submitted keyword string on semicolons
// or commas, dropping empties.
func splitFormKeywords(raw string) []string {
	var keywords []string
	for _, k := range formKeywordSplitRe.Split(raw, -1) {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
