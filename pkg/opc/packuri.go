package opc

import (
	"path"
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

// PackURI is the absolute name of a part inside a package, such as
// "/word/document.xml". The package itself is "/".
type PackURI string

// Well-known package URIs.
const (
	PackageURI      PackURI = "/"
	ContentTypesURI PackURI = "/[Content_Types].xml"
)

// NewPackURI validates s and normalizes "." and ".." segments.
func NewPackURI(s string) (PackURI, error) {
	if !strings.HasPrefix(s, "/") {
		return "", docxerr.NewInvalidArgument("partname", s, "must begin with a slash")
	}
	return PackURI(path.Clean(s)), nil
}

// MustPackURI is NewPackURI for literals; it panics on an invalid name.
func MustPackURI(s string) PackURI {
	u, err := NewPackURI(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromRelRef resolves a relationship target reference against the base
// URI of the relationship source. Absolute references ignore baseURI.
func FromRelRef(baseURI, ref string) (PackURI, error) {
	if strings.HasPrefix(ref, "/") {
		return NewPackURI(ref)
	}
	return NewPackURI(path.Join(baseURI, ref))
}

// BaseURI returns the directory portion, "/word" for
// "/word/document.xml". The package URI is its own base.
func (u PackURI) BaseURI() string {
	return path.Dir(string(u))
}

// Filename returns the final segment, "" for the package URI.
func (u PackURI) Filename() string {
	if u == PackageURI {
		return ""
	}
	return path.Base(string(u))
}

// Ext returns the extension without its leading dot.
func (u PackURI) Ext() string {
	return strings.TrimPrefix(path.Ext(string(u)), ".")
}

// Idx returns the numeric suffix of the filename stem, 21 for
// "/word/header21.xml". ok is false for names without one, such as
// "/word/document.xml".
func (u PackURI) Idx() (int, bool) {
	stem := strings.TrimSuffix(u.Filename(), path.Ext(string(u)))
	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	digits := stem[i:]
	if i == 0 || digits == "" || digits[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Membername returns the name used for the part inside the zip archive,
// the URI without its leading slash.
func (u PackURI) Membername() string {
	return strings.TrimPrefix(string(u), "/")
}

// RelativeRef returns the reference from baseURI to u, as written in the
// Target attribute of a relationship.
func (u PackURI) RelativeRef(baseURI string) string {
	if baseURI == "/" {
		return u.Membername()
	}
	from := strings.Split(strings.Trim(baseURI, "/"), "/")
	to := strings.Split(u.Membername(), "/")

	common := 0
	for common < len(from) && common < len(to)-1 && from[common] == to[common] {
		common++
	}
	parts := make([]string, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)
	return strings.Join(parts, "/")
}

// RelsURI returns the URI of the relationships part belonging to u:
// "/word/_rels/document.xml.rels", or "/_rels/.rels" for the package.
func (u PackURI) RelsURI() PackURI {
	return PackURI(path.Join(u.BaseURI(), "_rels", u.Filename()+".rels"))
}

// String returns the URI as a string.
func (u PackURI) String() string { return string(u) }
