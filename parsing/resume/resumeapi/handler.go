// Package resumeapi exposes the parsing service over HTTP: file upload,
// pasted text, batch upload, and JSON/Markdown downloads.
package resumeapi

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cvlens/cvlens/internal/extract"
	"github.com/cvlens/cvlens/parsing/resume"
	"github.com/cvlens/cvlens/parsing/resume/resumesrv"
)

type Handlers struct {
	service     *resumesrv.Service
	extractor   *extract.Extractor
	maxFileSize int64
}

func NewHandlers(service *resumesrv.Service, extractor *extract.Extractor, maxFileSize int64) *Handlers {
	return &Handlers{
		service:     service,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

func (h *Handlers) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Index)

	api := app.Group("/api/v1/resumes")
	api.Post("/parse", h.ParseUpload)         // multipart file upload
	api.Post("/parse-text", h.ParseText)      // pasted text
	api.Post("/batch", h.ParseBatch)          // multiple files
	api.Post("/markdown", h.DownloadMarkdown) // record -> .md download
}

// Index serves the embedded single-page UI.
func (h *Handlers) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}

// ParseUpload parses one uploaded resume file.
// POST /api/v1/resumes/parse
func (h *Handlers) ParseUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return resume.ErrInvalidRequest("file is required")
	}
	if file.Size > h.maxFileSize {
		return extract.ErrFileTooLarge(file.Size, h.maxFileSize).
			WithDetail("filename", file.Filename)
	}

	data, err := readMultipart(file)
	if err != nil {
		return extract.ErrReadFailed(err).WithDetail("filename", file.Filename)
	}

	text, err := h.extractor.TextFromBytes(data, filepath.Ext(file.Filename))
	if err != nil {
		return err
	}

	record, err := h.service.Parse(c.Context(), text)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// ParseText parses pasted resume text.
// POST /api/v1/resumes/parse-text
func (h *Handlers) ParseText(c *fiber.Ctx) error {
	var req resume.ParseTextRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidRequest("invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return resume.ErrEmptyInput()
	}

	record, err := h.service.Parse(c.Context(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// ParseBatch parses several uploaded files, collecting per-file outcomes.
// One bad file never fails the request.
// POST /api/v1/resumes/batch
func (h *Handlers) ParseBatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return resume.ErrInvalidRequest("multipart form is required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return resume.ErrInvalidRequest("at least one file is required")
	}

	result := make(resume.BatchResult, 0, len(files))
	for _, file := range files {
		entry := resume.BatchEntry{Filename: file.Filename}

		data, err := readMultipart(file)
		if err == nil {
			var text string
			if text, err = h.extractor.TextFromBytes(data, filepath.Ext(file.Filename)); err == nil {
				var record *resume.Record
				if record, err = h.service.Parse(c.Context(), text); err == nil {
					entry.Success = true
					entry.Data = record
				}
			}
		}
		if err != nil {
			entry.Error = err.Error()
		}
		result = append(result, entry)
	}

	return c.JSON(fiber.Map{
		"total":   len(result),
		"success": result.Succeeded(),
		"failed":  result.Failed(),
		"results": result,
	})
}

// DownloadMarkdown renders a previously parsed record as a Markdown
// attachment.
// POST /api/v1/resumes/markdown
func (h *Handlers) DownloadMarkdown(c *fiber.Ctx) error {
	var record resume.Record
	if err := c.BodyParser(&record); err != nil {
		return resume.ErrInvalidRequest("invalid record JSON")
	}

	filename := "resume_parsed_" + uuid.New().String()[:8] + ".md"
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(record.Markdown())
}

func readMultipart(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
