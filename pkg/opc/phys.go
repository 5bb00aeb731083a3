package opc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

// physReader gives access to the members of a stored package.
type physReader interface {
	// blobFor returns the bytes stored for uri.
	blobFor(uri PackURI) ([]byte, error)
	// has reports whether uri is stored.
	has(uri PackURI) bool
	// names lists every stored member.
	names() []PackURI
	Close() error
}

// contentTypesXML returns the manifest of a stored package.
func contentTypesXML(r physReader) ([]byte, error) {
	if !r.has(ContentTypesURI) {
		return nil, docxerr.NewInvalidXML("package has no [Content_Types].xml")
	}
	return r.blobFor(ContentTypesURI)
}

// relsXMLFor returns the stored relationships of source, nil when it has
// none.
func relsXMLFor(r physReader, source PackURI) ([]byte, error) {
	uri := source.RelsURI()
	if !r.has(uri) {
		return nil, nil
	}
	return r.blobFor(uri)
}

// openPhysReader opens a zip file or an unzipped package directory.
func openPhysReader(path string) (physReader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, docxerr.NewPackageNotFound(path, err)
	}
	if info.IsDir() {
		return newDirPhysReader(path), nil
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, docxerr.NewPackageNotFound(path, err)
	}
	return newZipPhysReader(&zr.Reader, zr), nil
}

// zipPhysReader reads members from a zip archive. Lookups fall back to a
// case-insensitive match, since producers disagree on the case of names.
type zipPhysReader struct {
	files  map[string]*zip.File
	folded map[string]*zip.File
	closer io.Closer
}

func newZipPhysReader(zr *zip.Reader, closer io.Closer) *zipPhysReader {
	r := &zipPhysReader{
		files:  make(map[string]*zip.File, len(zr.File)),
		folded: make(map[string]*zip.File, len(zr.File)),
		closer: closer,
	}
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		r.files[f.Name] = f
		r.folded[strings.ToLower(f.Name)] = f
	}
	return r
}

// readZipPhysReader opens an in-memory zip archive.
func readZipPhysReader(ra io.ReaderAt, size int64) (*zipPhysReader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, docxerr.NewPackageNotFound("<stream>", err)
	}
	return newZipPhysReader(zr, nil), nil
}

func (r *zipPhysReader) lookup(uri PackURI) *zip.File {
	name := uri.Membername()
	if f, ok := r.files[name]; ok {
		return f
	}
	return r.folded[strings.ToLower(name)]
}

func (r *zipPhysReader) has(uri PackURI) bool { return r.lookup(uri) != nil }

func (r *zipPhysReader) blobFor(uri PackURI) ([]byte, error) {
	f := r.lookup(uri)
	if f == nil {
		return nil, fmt.Errorf("no member %s in package: %w", uri.Membername(), fs.ErrNotExist)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	return content, nil
}

func (r *zipPhysReader) names() []PackURI {
	out := make([]PackURI, 0, len(r.files))
	for name := range r.files {
		out = append(out, PackURI("/"+name))
	}
	return out
}

func (r *zipPhysReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// dirPhysReader reads members from an unzipped package directory.
type dirPhysReader struct {
	root string
}

func newDirPhysReader(root string) *dirPhysReader {
	return &dirPhysReader{root: root}
}

func (r *dirPhysReader) path(uri PackURI) string {
	return filepath.Join(r.root, filepath.FromSlash(uri.Membername()))
}

func (r *dirPhysReader) has(uri PackURI) bool {
	info, err := os.Stat(r.path(uri))
	return err == nil && !info.IsDir()
}

func (r *dirPhysReader) blobFor(uri PackURI) ([]byte, error) {
	content, err := os.ReadFile(r.path(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", uri, err)
	}
	return content, nil
}

func (r *dirPhysReader) names() []PackURI {
	var out []PackURI
	_ = filepath.WalkDir(r.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(r.root, p)
		if relErr != nil {
			return nil
		}
		out = append(out, PackURI("/"+filepath.ToSlash(rel)))
		return nil
	})
	return out
}

func (r *dirPhysReader) Close() error { return nil }

// zipPhysWriter writes package members to a zip archive.
type zipPhysWriter struct {
	z      *zip.Writer
	method uint16
	now    time.Time
}

func newZipPhysWriter(w io.Writer, method uint16) *zipPhysWriter {
	return &zipPhysWriter{z: zip.NewWriter(w), method: method, now: time.Now()}
}

func (w *zipPhysWriter) write(uri PackURI, blob []byte) error {
	header := zip.FileHeader{
		Name:     uri.Membername(),
		Method:   w.method,
		Modified: w.now,
	}
	out, err := w.z.CreateHeader(&header)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", header.Name, err)
	}
	if _, err := io.Copy(out, bytes.NewReader(blob)); err != nil {
		return fmt.Errorf("failed to write %s: %w", header.Name, err)
	}
	return nil
}

func (w *zipPhysWriter) Close() error {
	return w.z.Close()
}
