package opc

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

func TestCorePropertiesFromPackage(t *testing.T) {
	pkg := openFixture(t)

	cp, err := pkg.CoreProperties()
	require.NoError(t, err)
	assert.Equal(t, "Fixture", cp.Title())
	assert.Equal(t, "Alice", cp.Creator())
	assert.Equal(t, "", cp.Subject())
	assert.Equal(t, 0, cp.Revision())

	modified, ok := cp.Modified()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), modified.UTC())

	_, ok = cp.Created()
	assert.False(t, ok)
}

func TestCorePropertiesDefaultPart(t *testing.T) {
	pkg := NewPackage()

	cp, err := pkg.CoreProperties()
	require.NoError(t, err)
	assert.Equal(t, CorePropertiesURI, cp.Partname())
	assert.Equal(t, "Word Document", cp.Title())
	assert.Equal(t, "go-docx", cp.Creator())
	assert.Equal(t, 1, cp.Revision())
	_, ok := cp.Modified()
	assert.True(t, ok)

	// asking again returns the same part
	again, err := pkg.CoreProperties()
	require.NoError(t, err)
	assert.Same(t, cp, again)
}

func TestCorePropertiesSettersKeepSchemaOrder(t *testing.T) {
	pkg := NewPackage()
	cp, err := pkg.CoreProperties()
	require.NoError(t, err)

	cp.SetCategory("reports")
	cp.SetKeywords("a, b")
	cp.SetLastModifiedBy("Bob")
	cp.SetDescription("about things")
	cp.SetSubject("things")
	cp.SetCreated(time.Date(2023, 12, 24, 8, 0, 0, 0, time.FixedZone("CET", 3600)))

	var tags []string
	for _, c := range cp.Element().Children() {
		tags = append(tags, c.Tag())
	}
	assert.Equal(t, []string{
		"cp:category", "dcterms:created", "dc:creator", "dc:description",
		"cp:keywords", "cp:lastModifiedBy", "dcterms:modified", "cp:revision",
		"dc:subject", "dc:title",
	}, tags)

	created := cp.Element().FirstChild("dcterms:created")
	assert.Equal(t, "2023-12-24T07:00:00Z", created.Text())
	typ, ok := created.Attr("xsi:type")
	require.True(t, ok)
	assert.Equal(t, "dcterms:W3CDTF", typ)
}

func TestCorePropertiesRoundTrip(t *testing.T) {
	pkg := openFixture(t)
	cp, err := pkg.CoreProperties()
	require.NoError(t, err)
	cp.SetTitle("Renamed")
	require.NoError(t, cp.SetRevision(7))

	var buf bytes.Buffer
	require.NoError(t, pkg.Save(&buf))
	reopened, err := OpenBytes(buf.Bytes())
	require.NoError(t, err)

	cp, err = reopened.CoreProperties()
	require.NoError(t, err)
	assert.Equal(t, "Renamed", cp.Title())
	assert.Equal(t, 7, cp.Revision())
	assert.Equal(t, "Alice", cp.Creator())
}

func TestCorePropertiesInvalidRevision(t *testing.T) {
	cp := NewCorePropertiesPart(nil)
	err := cp.SetRevision(0)
	assert.True(t, docxerr.IsInvalidArgument(err))
	assert.Equal(t, 1, cp.Revision())
}

func TestParseW3CDTF(t *testing.T) {
	tests := []struct {
		in     string
		want   time.Time
		wantOK bool
	}{
		{"2024-03-01T10:20:30Z", time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), true},
		{"2024-03-01T10:20:30.5Z", time.Date(2024, 3, 1, 10, 20, 30, 500000000, time.UTC), true},
		{"2024-03-01T12:20:30+02:00", time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), true},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseW3CDTF(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestLoadCorePropertiesRejectsOtherRoots(t *testing.T) {
	_, err := LoadCorePropertiesPart(CorePropertiesURI, CTOpcCoreProperties, []byte(`<other/>`), nil)
	assert.True(t, docxerr.IsInvalidXML(err))
}
