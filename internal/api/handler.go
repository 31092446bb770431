package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"llm-translate/internal/chunker"
	"llm-translate/internal/config"
	"llm-translate/internal/helper"
	"llm-translate/internal/llmservice"
	"llm-translate/internal/models"
	"llm-translate/internal/parser"
	"llm-translate/internal/translate"
	"llm-translate/web"
)

const msgNoText = "No text provided."

// validationError carries a message shown to the caller as is, without the "Error: " prefix.
type validationError string

func (e validationError) Error() string { return string(e) }

// Handler serves the translation endpoints. It holds no request state: the
// model catalog is re-read and a new Translator is built for every request.
type Handler struct {
	catalogPath    string
	newTranslator  llmservice.Factory
	maxUploadBytes int64
	now            func() time.Time
}

func NewHandler(catalogPath string, factory llmservice.Factory, maxUploadBytes int64) *Handler {
	return &Handler{
		catalogPath:    catalogPath,
		newTranslator:  factory,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

func (h *Handler) Translate(c *gin.Context) {
	var req models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, err)
		return
	}

	res, err := h.translate(c.Request.Context(), req.Text, req.Model, req.Language)
	if err != nil {
		h.fail(c, err)
		return
	}

	if req.RenderHTML {
		res.TranslationHTML, err = helper.RenderMarkdown(res.Translation)
		if err != nil {
			h.fail(c, fmt.Errorf("failed to render translation: %w", err))
			return
		}
	}

	requestLogger(c).Debug().Bool("chunk_mode", res.ChunkMode).Str("model", req.Model).Msg("Translation done")
	c.JSON(http.StatusOK, res)
}

func (h *Handler) TranslateFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		h.fail(c, err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		h.fail(c, err)
		return
	}

	text, err := parser.ExtractText(fh.Filename, data)
	if errors.Is(err, parser.ErrUnsupportedFormat) {
		h.fail(c, validationError(fmt.Sprintf("Unsupported file type %q. Supported types: %s",
			filepath.Ext(fh.Filename), strings.Join(parser.SupportedExtensions, ", "))))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	requestLogger(c).Debug().Str("filename", fh.Filename).Int("words", chunker.WordCount(text)).Msg("Extracted document text")

	res, err := h.translate(c.Request.Context(), text, c.PostForm("model"), c.PostForm("language"))
	if err != nil {
		h.fail(c, err)
		return
	}
	res.Filename = fh.Filename
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListModels(c *gin.Context) {
	catalog, err := config.LoadCatalog(h.catalogPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ModelListResponse{Response: true, Models: catalog.ModelNames()})
}

func (h *Handler) translate(ctx context.Context, text, modelName, language string) (*models.TranslationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, validationError(msgNoText)
	}

	catalog, err := config.LoadCatalog(h.catalogPath)
	if err != nil {
		return nil, err
	}

	model, ok := catalog.FindModel(modelName)
	if !ok {
		return nil, validationError(fmt.Sprintf("Model %s not found in %s !", modelName, filepath.Base(h.catalogPath)))
	}

	if language == "" {
		language = models.DefaultLanguage
	}

	chunkMode := chunker.WordCount(text) > model.MaxWords()

	tr, err := h.newTranslator(model, catalog.PromptTemplate())
	if err != nil {
		return nil, err
	}

	translation, err := translate.Text(ctx, chunkMode, tr, text, language)
	if err != nil {
		return nil, err
	}

	return &models.TranslationResult{
		Response:    true,
		Translation: translation,
		Timestamp:   helper.Timestamp(h.now()),
		ChunkMode:   chunkMode,
	}, nil
}

// fail reports err as a structured failure. Failures are part of the response body, the status stays 200.
func (h *Handler) fail(c *gin.Context, err error) {
	msg := "Error: " + err.Error()
	var ve validationError
	if errors.As(err, &ve) {
		msg = string(ve)
	}

	requestLogger(c).Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.JSON(http.StatusOK, models.FailureResponse{Response: false, Message: msg})
}
