package docsai

import (
	"path/filepath"
	"strings"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/gabriel-vasile/mimetype"
)

// mimeByExtension maps the accepted scan formats to their MIME types
var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

var allowedMimes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/bmp":       true,
	"image/webp":      true,
}

// ResolveMime decides the MIME type to ship with a document. The extension
// names the expected type; the content bytes have the final say when they
// disagree. Files that are neither an accepted extension nor accepted
// content are rejected.
func ResolveMime(filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	declared, extOK := mimeByExtension[ext]
	if !extOK {
		return "", shared.NewValidationError("File type not allowed: " + filename)
	}

	sniffed := mimetype.Detect(content)
	if sniffed.Is(declared) {
		return declared, nil
	}
	base := baseMime(sniffed.String())
	if allowedMimes[base] {
		return base, nil
	}
	return "", shared.NewValidationError("File content does not match an allowed type: " + filename)
}

// baseMime strips any parameters from a MIME string
func baseMime(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		return strings.TrimSpace(m[:i])
	}
	return m
}
