package opc

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	wNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`
	rNS = `xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

	rtBack = "http://example.com/relationships/back"
)

// docxMembers is a small word document: a main part citing styles (which
// points back at the document), an image and an external hyperlink, plus
// core properties and one member nothing relates to.
func docxMembers() map[string]string {
	return map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="` + CTOpcRelationships + `"/>` +
			`<Default Extension="xml" ContentType="` + CTXML + `"/>` +
			`<Default Extension="PNG" ContentType="` + CTPng + `"/>` +
			`<Override PartName="/word/document.xml" ContentType="` + CTWmlDocumentMain + `"/>` +
			`<Override PartName="/word/styles.xml" ContentType="` + CTWmlStyles + `"/>` +
			`<Override PartName="/docProps/core.xml" ContentType="` + CTOpcCoreProperties + `"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="` + RTOfficeDocument + `" Target="word/document.xml"/>` +
			`<Relationship Id="rId2" Type="` + RTCoreProperties + `" Target="docProps/core.xml"/>` +
			`</Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document ` + wNS + ` ` + rNS + `><w:body><w:p><w:hyperlink r:id="rId2"><w:r><w:t>Hello</w:t></w:r></w:hyperlink></w:p></w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="` + RTStyles + `" Target="styles.xml"/>` +
			`<Relationship Id="rId2" Type="` + RTHyperlink + `" Target="http://example.com/" TargetMode="External"/>` +
			`<Relationship Id="rId3" Type="` + RTImage + `" Target="media/image1.png"/>` +
			`</Relationships>`,
		"word/styles.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles ` + wNS + `/>`,
		"word/_rels/styles.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="` + rtBack + `" Target="/word/document.xml"/>` +
			`</Relationships>`,
		"word/media/image1.png": "\x89PNG fake image bytes",
		"docProps/core.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
			`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
			`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
			`<dc:creator>Alice</dc:creator><dc:title>Fixture</dc:title>` +
			`<dcterms:modified xsi:type="dcterms:W3CDTF">2024-03-01T10:20:30Z</dcterms:modified>` +
			`</cp:coreProperties>`,
		"word/orphan.xml": `<orphan/>`,
	}
}

// buildZip stores members in a zip archive, in name order.
func buildZip(t *testing.T, members map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(members[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// writeDir lays members out as an unzipped package under a temp dir.
func writeDir(t *testing.T, members map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range members {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

// readZip returns the members of a zip archive keyed by name.
func readZip(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		var b bytes.Buffer
		_, err = b.ReadFrom(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = b.Bytes()
	}
	return out
}

func openFixture(t *testing.T, opts ...Option) *Package {
	t.Helper()
	pkg, err := OpenBytes(buildZip(t, docxMembers()), opts...)
	require.NoError(t, err)
	return pkg
}

func xmlFactory() *PartFactory {
	f := NewPartFactory()
	f.Register(CTWmlDocumentMain, LoadXMLPart)
	f.Register(CTWmlStyles, LoadXMLPart)
	return f
}

func partnames(parts []Part) []PackURI {
	out := make([]PackURI, len(parts))
	for i, p := range parts {
		out[i] = p.Partname()
	}
	return out
}
