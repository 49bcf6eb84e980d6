package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ukaji3/clipdeck-go/internal/metrics"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/output"
)

// Client-facing messages.
const (
	msgMissingStaged   = "Faltam os arquivos 'excel' e/ou 'logo'."
	msgMissingInMemory = "Arquivo Excel não enviado"
	msgReadExcel       = "Erro ao ler Excel: "
	msgReadLogo        = "Erro ao ler logo: "
	msgGenerate        = "Erro ao gerar apresentação: "
	msgTooLarge        = "Arquivo muito grande"
)

// handleStaged saves the spreadsheet and the logo to a per-request
// temporary directory and answers with a base64 envelope.
func (s *Server) handleStaged(c echo.Context) error {
	start := time.Now()
	enc := output.NewBase64Envelope()

	excel, errExcel := c.FormFile("excel")
	logoFile, errLogo := c.FormFile("logo")
	if errExcel != nil || errLogo != nil {
		return s.reject(c, RouteStaged, enc, start, http.StatusBadRequest, msgMissingStaged)
	}

	dir, err := os.MkdirTemp(s.StagingDir, "clipdeck-*")
	if err != nil {
		return s.reject(c, RouteStaged, enc, start, http.StatusInternalServerError, msgGenerate+err.Error())
	}
	defer os.RemoveAll(dir)

	in := clipdeck.Input{Name: excel.Filename}
	if in.WorkbookPath, err = stage(excel, dir, "planilha"); err != nil {
		return s.reject(c, RouteStaged, enc, start, http.StatusBadRequest, msgReadExcel+err.Error())
	}
	if in.LogoPath, err = stage(logoFile, dir, "logo"); err != nil {
		return s.reject(c, RouteStaged, enc, start, http.StatusBadRequest, msgReadLogo+err.Error())
	}

	return s.generate(c, RouteStaged, enc, start, in)
}

// handleInMemory reads the spreadsheet into memory and answers with the
// deck as an attachment.
func (s *Server) handleInMemory(c echo.Context) error {
	start := time.Now()
	enc := output.NewDirectDownload()

	file, err := c.FormFile("file")
	if err != nil {
		return s.reject(c, RouteInMemory, enc, start, http.StatusBadRequest, msgMissingInMemory)
	}

	data, err := readAll(file)
	if err != nil {
		return s.reject(c, RouteInMemory, enc, start, http.StatusBadRequest, msgReadExcel+err.Error())
	}

	return s.generate(c, RouteInMemory, enc, start, clipdeck.Input{Name: file.Filename, Workbook: data})
}

func (s *Server) generate(c echo.Context, route string, enc output.Encoder, start time.Time, in clipdeck.Input) error {
	ctx := c.Request().Context()

	report, err := clipdeck.Generate(ctx, in, s.opts)
	if err != nil {
		switch clipdeck.StageOf(err) {
		case clipdeck.StageWorkbook:
			return s.reject(c, route, enc, start, http.StatusBadRequest, msgReadExcel+clipdeck.Cause(err).Error())
		case clipdeck.StageLogo:
			return s.reject(c, route, enc, start, http.StatusBadRequest, msgReadLogo+clipdeck.Cause(err).Error())
		default:
			s.logger.ErrorContext(ctx, "report generation failed", "route", route, "error", err)
			return s.reject(c, route, enc, start, http.StatusInternalServerError, msgGenerate+clipdeck.Cause(err).Error())
		}
	}

	wb := report.Workbook
	for _, sheet := range wb.Skipped {
		s.logger.DebugContext(ctx, "sheet skipped", "book", wb.BookName, "sheet", sheet)
	}
	for _, category := range wb.Categories {
		if category.Dropped > 0 {
			s.logger.DebugContext(ctx, "rows without title dropped", "sheet", category.Name, "rows", category.Dropped)
		}
	}

	payload, err := enc.Encode(report.PPTX)
	if err != nil {
		return s.reject(c, route, enc, start, http.StatusInternalServerError, msgGenerate+err.Error())
	}

	metrics.RecordReport(route, len(report.Deck.Slides), time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "report generated",
		"route", route,
		"book", wb.BookName,
		"categories", len(wb.Categories),
		"records", wb.RecordCount(),
		"slides", len(report.Deck.Slides),
		"bytes", len(report.PPTX))

	return send(c, http.StatusOK, payload)
}

// reject answers with the error envelope of enc.
func (s *Server) reject(c echo.Context, route string, enc output.Encoder, start time.Time, status int, msg string) error {
	outcome := metrics.StatusBadRequest
	if status >= http.StatusInternalServerError {
		outcome = metrics.StatusServerError
	}
	metrics.RecordFailure(route, outcome, time.Since(start).Seconds())

	payload, err := enc.EncodeError(msg)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, msg).SetInternal(err)
	}
	return send(c, status, payload)
}

func send(c echo.Context, status int, p *output.Payload) error {
	if p.Filename != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", p.Filename))
	}
	return c.Blob(status, p.ContentType, p.Body)
}

// stage copies an uploaded file into dir under base, keeping its extension.
func stage(fh *multipart.FileHeader, dir, base string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(dir, base+strings.ToLower(filepath.Ext(filepath.Base(fh.Filename))))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	return path, dst.Close()
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
