package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/leandrowiemesfilho/doc2md/internal/domain"
	"github.com/leandrowiemesfilho/doc2md/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}

// MapError translates domain errors to an HTTP status code and detail message.
func MapError(err error) (status int, detail string) {
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, upperFirst(err.Error())
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Unsupported file type. Allowed types: " + strings.Join(domain.AllowedExtensions, ", ")
	case errors.Is(err, domain.ErrFileNameTooLong):
		return http.StatusBadRequest, "File name too long"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, upperFirst(err.Error())
	case errors.Is(err, domain.ErrConversion):
		return http.StatusInternalServerError, upperFirst(err.Error())
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, detail := MapError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.RequestIDKey)
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, detail)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
