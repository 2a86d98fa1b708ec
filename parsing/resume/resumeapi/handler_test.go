package resumeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlens/cvlens/internal/extract"
	"github.com/cvlens/cvlens/parsing/resume"
	"github.com/cvlens/cvlens/parsing/resume/resumesrv"
	"github.com/cvlens/cvlens/pkg/errx"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

const validReply = `{"name":"Jane Doe","email":"jane@x.com","primarySkills":["Python","SQL"]}`

func newTestApp(gen *stubGenerator) *fiber.App {
	extractor := extract.New(1 << 20)
	svc := resumesrv.NewService(gen, nil, extractor, resumesrv.Options{
		MaxRetries:       1,
		RequestTimeout:   time.Second,
		DecodeBackoff:    time.Millisecond,
		TransportBackoff: time.Millisecond,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *errx.Error
			if errors.As(err, &e) {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		},
	})
	NewHandlers(svc, extractor, 1<<20).RegisterRoutes(app)
	return app
}

func multipartBody(t *testing.T, field string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestIndex(t *testing.T) {
	app := newTestApp(&stubGenerator{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	defer resp.Body.Close()
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The page offers all three input modes plus the batch download.
	html := string(page)
	assert.Contains(t, html, "/api/v1/resumes/parse")
	assert.Contains(t, html, "/api/v1/resumes/parse-text")
	assert.Contains(t, html, "/api/v1/resumes/batch")
	assert.Contains(t, html, "batch_results.json")
}

func TestParseText(t *testing.T) {
	gen := &stubGenerator{reply: validReply}
	app := newTestApp(gen)

	body := strings.NewReader(`{"text":"Jane Doe\njane@x.com\nSkills: Python, SQL"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse-text", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var record resume.Record
	decodeBody(t, resp, &record)
	require.NotNil(t, record.Name)
	assert.Equal(t, "Jane Doe", *record.Name)
	assert.Equal(t, 1, gen.calls)
}

func TestParseTextEmpty(t *testing.T) {
	gen := &stubGenerator{}
	app := newTestApp(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse-text", strings.NewReader(`{"text":"   "}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "RESUME_EMPTY_INPUT", body["code"])
	assert.Equal(t, 0, gen.calls)
}

func TestParseUpload(t *testing.T) {
	gen := &stubGenerator{reply: validReply}
	app := newTestApp(gen)

	buf, contentType := multipartBody(t, "file", map[string]string{"resume.txt": "Jane Doe\njane@x.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", buf)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var record resume.Record
	decodeBody(t, resp, &record)
	require.NotNil(t, record.Email)
	assert.Equal(t, "jane@x.com", *record.Email)
}

func TestParseUploadUnsupportedFormat(t *testing.T) {
	app := newTestApp(&stubGenerator{})

	buf, contentType := multipartBody(t, "file", map[string]string{"resume.odt": "content"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", buf)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "EXTRACT_UNSUPPORTED_FORMAT", body["code"])
}

func TestParseUploadMissingFile(t *testing.T) {
	app := newTestApp(&stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", strings.NewReader(""))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseBatchMixedOutcomes(t *testing.T) {
	gen := &stubGenerator{reply: validReply}
	app := newTestApp(gen)

	buf, contentType := multipartBody(t, "files", map[string]string{
		"good.txt": "Jane Doe\njane@x.com",
		"bad.odt":  "unsupported",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/batch", buf)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total   int                `json:"total"`
		Success int                `json:"success"`
		Failed  int                `json:"failed"`
		Results resume.BatchResult `json:"results"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 1, body.Success)
	assert.Equal(t, 1, body.Failed)
	require.Len(t, body.Results, 2)
	for _, entry := range body.Results {
		if entry.Success {
			assert.NotNil(t, entry.Data)
			assert.Empty(t, entry.Error)
		} else {
			assert.Nil(t, entry.Data)
			assert.NotEmpty(t, entry.Error)
		}
	}
}

func TestDownloadMarkdown(t *testing.T) {
	app := newTestApp(&stubGenerator{})

	body := strings.NewReader(`{"name":"Jane Doe","primarySkills":["Python"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/markdown", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")

	defer resp.Body.Close()
	md, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(md), "# Resume Parsing Results"))
	assert.Contains(t, string(md), "- **Name:** Jane Doe")
}
