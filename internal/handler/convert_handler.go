package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leandrowiemesfilho/doc2md/internal/converter"
	"github.com/leandrowiemesfilho/doc2md/internal/domain"
	"github.com/leandrowiemesfilho/doc2md/internal/middleware"
	"github.com/leandrowiemesfilho/doc2md/internal/upload"
)

// multipartOverhead is the room left for multipart headers, boundaries and
// other form fields on top of the upload size limit.
const multipartOverhead = 1 << 20

// ConvertHandler accepts document uploads and answers with their Markdown.
type ConvertHandler struct {
	store     *upload.Store
	converter converter.Converter
	verbose   bool
}

// NewConvertHandler creates a new ConvertHandler. Uploads are written to
// store and then passed by path to conv.
func NewConvertHandler(store *upload.Store, conv converter.Converter, verbose bool) *ConvertHandler {
	return &ConvertHandler{store: store, converter: conv, verbose: verbose}
}

// WordToMarkdown handles POST /api/contracts/convert/word-to-md
func (h *ConvertHandler) WordToMarkdown(c *gin.Context) {
	h.convert(c, domain.DOCX, "Only .docx files are supported for Word to Markdown conversion")
}

// PDFToMarkdown handles POST /api/contracts/convert/pdf-to-md
func (h *ConvertHandler) PDFToMarkdown(c *gin.Context) {
	h.convert(c, domain.PDF, "Only .pdf files are supported for PDF to Markdown conversion")
}

// Convert handles POST /api/contracts/convert for any supported file type.
func (h *ConvertHandler) Convert(c *gin.Context) {
	h.convert(c, "", "")
}

func (h *ConvertHandler) convert(c *gin.Context, want domain.FileType, wrongTypeDetail string) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.store.MaxBytes()+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleError(c, h.store.TooLargeError())
			return
		}
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	fileType, ok := domain.FileTypeFromExtension(domain.Extension(header.Filename))
	if want != "" && fileType != want {
		RespondError(c, http.StatusBadRequest, wrongTypeDetail)
		return
	}
	if !ok {
		HandleError(c, &domain.UnsupportedFormatError{Ext: domain.Extension(header.Filename)})
		return
	}

	path, err := h.store.Save(header.Filename, file)
	if err != nil {
		HandleError(c, err)
		return
	}

	if h.verbose {
		requestID, _ := c.Get(middleware.RequestIDKey)
		log.Printf("[%s] converting %s (%s) stored as %s", requestID, header.Filename, fileType, path)
	}

	markdown, err := h.converter.Convert(path)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.ConversionResult{
		OriginalFilename: header.Filename,
		MarkdownContent:  markdown,
		Message:          upperFirst(fmt.Sprintf("%s successfully converted to Markdown", fileType.Label())),
	})
}
