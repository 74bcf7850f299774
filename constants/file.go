package constants

import "strings"

// FileFormat is the closed set of document formats the extractors understand.
type FileFormat string

const (
	PDF   FileFormat = "PDF"
	IMAGE FileFormat = "IMAGE"
	SHEET FileFormat = "SHEET"
	ECXML FileFormat = "ECXML"
)

// AllowedExtensions holds the upload extensions accepted before any I/O.
var AllowedExtensions = map[string]struct{}{
	"pdf":   {},
	"png":   {},
	"jpg":   {},
	"jpeg":  {},
	"xlsx":  {},
	"xml":   {},
	"ecxml": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its format, or "" if unsupported.
func MapExtToFormat(ext string) FileFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "png", "jpg", "jpeg":
		return IMAGE
	case "xlsx":
		return SHEET
	case "xml", "ecxml":
		return ECXML
	default:
		return ""
	}
}
