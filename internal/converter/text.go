package converter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/leandrowiemesfilho/doc2md/internal/domain"
)

var errInvalidGBK = errors.New("invalid GBK byte sequence")

// ReadText returns the content of a plain text file. UTF-8 content is
// returned unchanged; anything else is decoded as GBK.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewConversionError(domain.TXT, path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil {
		return "", domain.NewConversionError(domain.TXT, path, fmt.Errorf("decoding as GBK: %w", err))
	}
	// GBK has no mapping for U+FFFD, so one in the output marks an undecodable byte.
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", domain.NewConversionError(domain.TXT, path, errInvalidGBK)
	}
	return string(decoded), nil
}
