package opc

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

// Package is an Open Packaging Convention container: a graph of parts
// rooted at the package relationships.
type Package struct {
	rels    *Relationships
	factory *PartFactory
	config  *Config
	logger  *logrus.Logger
	cache   *ReaderCache
	orphans []PackURI
}

// Option configures a Package.
type Option func(*Package)

// WithPartFactory sets the factory that decides the concrete type of each
// loaded part.
func WithPartFactory(f *PartFactory) Option {
	return func(p *Package) { p.factory = f }
}

// WithConfig replaces the global configuration for this package.
func WithConfig(c *Config) Option {
	return func(p *Package) { p.config = c }
}

// WithLogger sets the logger for package-level events.
func WithLogger(l *logrus.Logger) Option {
	return func(p *Package) { p.logger = l }
}

// WithReaderCache makes Open and OpenBytes go through c instead of the
// shared cache configured by CacheMaxSize.
func WithReaderCache(c *ReaderCache) Option {
	return func(p *Package) { p.cache = c }
}

// NewPackage returns an empty package.
func NewPackage(opts ...Option) *Package {
	p := &Package{rels: NewRelationships(PackageURI.BaseURI())}
	for _, opt := range opts {
		opt(p)
	}
	if p.factory == nil {
		p.factory = NewPartFactory()
	}
	if p.config == nil {
		p.config = GetGlobalConfig()
	}
	if p.logger == nil {
		p.logger = GetLogger()
	}
	if p.cache == nil {
		p.cache = sharedReaderCache(p.config)
	}
	return p
}

// Open loads the package stored at path, a zip file or an unzipped
// package directory.
func Open(path string, opts ...Option) (*Package, error) {
	p := NewPackage(opts...)

	var phys physReader
	var err error
	if p.cache != nil {
		phys, err = p.cache.openFile(path, p.logger)
	} else {
		phys, err = openPhysReader(path)
	}
	if err != nil {
		return nil, err
	}
	defer phys.Close()

	if err := p.load(phys); err != nil {
		return nil, err
	}
	p.logger.WithFields(Fields{
		"path":  path,
		"parts": len(p.Parts()),
	}).Debug("opened package")
	return p, nil
}

// OpenReader loads a zip package of size bytes from r.
func OpenReader(r io.ReaderAt, size int64, opts ...Option) (*Package, error) {
	p := NewPackage(opts...)
	phys, err := readZipPhysReader(r, size)
	if err != nil {
		return nil, err
	}
	if err := p.load(phys); err != nil {
		return nil, err
	}
	return p, nil
}

// OpenBytes loads a zip package held in memory.
func OpenBytes(data []byte, opts ...Option) (*Package, error) {
	p := NewPackage(opts...)

	var phys physReader
	var err error
	if p.cache != nil {
		phys, err = p.cache.openBytes(data)
	} else {
		phys, err = readZipPhysReader(bytes.NewReader(data), int64(len(data)))
	}
	if err != nil {
		return nil, err
	}
	if err := p.load(phys); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Package) load(phys physReader) error {
	reader, err := readPackage(phys)
	if err != nil {
		return err
	}
	if err := reader.unmarshal(p, p.factory); err != nil {
		return err
	}
	p.orphans = reader.orphans
	for _, name := range p.orphans {
		p.logger.WithField("partname", name).Debug("skipped member not reachable by any relationship")
	}
	return nil
}

// Config returns the configuration the package was built with.
func (p *Package) Config() *Config { return p.config }

// Logger returns the logger set with WithLogger, or the global logger.
func (p *Package) Logger() *logrus.Logger {
	if p == nil || p.logger == nil {
		return GetLogger()
	}
	return p.logger
}

// Factory returns the part factory of the package.
func (p *Package) Factory() *PartFactory { return p.factory }

// Orphans lists stored members that no relationship reached when the
// package was opened. They are not loaded and are not written on save.
func (p *Package) Orphans() []PackURI { return p.orphans }

// Rels returns the package relationships.
func (p *Package) Rels() *Relationships { return p.rels }

// RelateTo returns the rId of the package relationship of relType to
// target, adding one when needed.
func (p *Package) RelateTo(target Part, relType string) string {
	return p.rels.GetOrAdd(relType, target).RID()
}

// PartRelatedBy returns the single part the package relates to by relType.
func (p *Package) PartRelatedBy(relType string) (Part, error) {
	return p.rels.PartWithRelType(relType)
}

// DropRel removes package relationship rID.
func (p *Package) DropRel(rID string) {
	p.rels.Remove(rID)
	logDrop(p.logger, PackageURI, rID)
}

// MainDocumentPart returns the target of the officeDocument relationship.
func (p *Package) MainDocumentPart() (Part, error) {
	return p.PartRelatedBy(RTOfficeDocument)
}

// IterRels yields every relationship reachable from the package, depth
// first. The relationships of each part are visited once even when the
// graph has cycles.
func (p *Package) IterRels() iter.Seq[*Relationship] {
	return func(yield func(*Relationship) bool) {
		visited := make(map[Part]bool)
		var walk func(rels *Relationships) bool
		walk = func(rels *Relationships) bool {
			for _, r := range rels.All() {
				if !yield(r) {
					return false
				}
				if r.external || visited[r.target] {
					continue
				}
				visited[r.target] = true
				if !walk(r.target.Rels()) {
					return false
				}
			}
			return true
		}
		walk(p.rels)
	}
}

// IterParts yields every part reachable from the package exactly once,
// depth first.
func (p *Package) IterParts() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		visited := make(map[Part]bool)
		var walk func(rels *Relationships) bool
		walk = func(rels *Relationships) bool {
			for _, r := range rels.All() {
				if r.external || visited[r.target] {
					continue
				}
				visited[r.target] = true
				if !yield(r.target) || !walk(r.target.Rels()) {
					return false
				}
			}
			return true
		}
		walk(p.rels)
	}
}

// Parts returns the reachable parts in IterParts order.
func (p *Package) Parts() []Part {
	var out []Part
	for part := range p.IterParts() {
		out = append(out, part)
	}
	return out
}

// PartByName returns the reachable part named partname.
func (p *Package) PartByName(partname PackURI) (Part, bool) {
	for part := range p.IterParts() {
		if part.Partname() == partname {
			return part, true
		}
	}
	return nil, false
}

// NextPartname returns the partname built from tmpl with the lowest
// positive number not used by a reachable part. tmpl holds one %d verb,
// as in "/word/header%d.xml".
func (p *Package) NextPartname(tmpl string) (PackURI, error) {
	if strings.Count(tmpl, "%d") != 1 || strings.Count(tmpl, "%") != 1 {
		return "", docxerr.NewInvalidArgument("tmpl", tmpl, "must contain exactly one %d verb")
	}
	used := make(map[PackURI]bool)
	for part := range p.IterParts() {
		used[part.Partname()] = true
	}
	for n := 1; ; n++ {
		candidate, err := NewPackURI(fmt.Sprintf(tmpl, n))
		if err != nil {
			return "", err
		}
		if !used[candidate] {
			return candidate, nil
		}
	}
}

// CoreProperties returns the core properties part, adding a default one
// when the package has none.
func (p *Package) CoreProperties() (*CorePropertiesPart, error) {
	var found []Part
	for _, r := range p.rels.All() {
		if !r.external && r.relType == RTCoreProperties {
			found = append(found, r.target)
		}
	}
	switch len(found) {
	case 0:
		cp := NewCorePropertiesPart(p)
		p.RelateTo(cp, RTCoreProperties)
		return cp, nil
	case 1:
		cp, ok := found[0].(*CorePropertiesPart)
		if !ok {
			return nil, docxerr.NewInvalidXML("core properties part %s has unexpected type %T", found[0].Partname(), found[0])
		}
		return cp, nil
	default:
		return nil, docxerr.NewInvalidXML("package has %d core properties parts", len(found))
	}
}

// ContentTypes returns the manifest entries a save would write now.
func (p *Package) ContentTypes() []ContentTypeEntry {
	return contentTypesFromParts(p.Parts()).entries()
}

// Save writes the package as a zip archive to w.
func (p *Package) Save(w io.Writer) error {
	parts := p.Parts()
	for _, part := range parts {
		part.BeforeMarshal()
	}
	if err := writePackage(w, p.rels, parts, p.config.zipMethod()); err != nil {
		return fmt.Errorf("failed to save package: %w", err)
	}
	p.logger.WithFields(Fields{
		"parts":       len(parts),
		"compression": p.config.Compression,
	}).Debug("saved package")
	return nil
}

// SaveFile writes the package to path. The archive is written to a
// temporary file in the same directory and renamed into place, so a
// failed save leaves any existing file untouched.
func (p *Package) SaveFile(path string) error {
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf("%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	if err := p.Save(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename %s: %w", tmp, err)
	}
	return nil
}
