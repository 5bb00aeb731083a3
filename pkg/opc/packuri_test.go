package opc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

func TestNewPackURI(t *testing.T) {
	tests := []struct {
		in      string
		want    PackURI
		wantErr bool
	}{
		{"/word/document.xml", "/word/document.xml", false},
		{"/word/../docProps/core.xml", "/docProps/core.xml", false},
		{"/word/./media/image1.png", "/word/media/image1.png", false},
		{"/", "/", false},
		{"word/document.xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewPackURI(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, docxerr.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustPackURIPanics(t *testing.T) {
	assert.Panics(t, func() { MustPackURI("relative.xml") })
}

func TestPackURIComponents(t *testing.T) {
	tests := []struct {
		uri        PackURI
		baseURI    string
		filename   string
		ext        string
		membername string
		relsURI    PackURI
	}{
		{"/", "/", "", "", "", "/_rels/.rels"},
		{"/word/document.xml", "/word", "document.xml", "xml", "word/document.xml", "/word/_rels/document.xml.rels"},
		{"/docProps/core.xml", "/docProps", "core.xml", "xml", "docProps/core.xml", "/docProps/_rels/core.xml.rels"},
		{"/word/media/image1.png", "/word/media", "image1.png", "png", "word/media/image1.png", "/word/media/_rels/image1.png.rels"},
		{"/[Content_Types].xml", "/", "[Content_Types].xml", "xml", "[Content_Types].xml", "/_rels/[Content_Types].xml.rels"},
	}

	for _, tt := range tests {
		t.Run(string(tt.uri), func(t *testing.T) {
			assert.Equal(t, tt.baseURI, tt.uri.BaseURI())
			assert.Equal(t, tt.filename, tt.uri.Filename())
			assert.Equal(t, tt.ext, tt.uri.Ext())
			assert.Equal(t, tt.membername, tt.uri.Membername())
			assert.Equal(t, tt.relsURI, tt.uri.RelsURI())
		})
	}
}

func TestPackURIIdx(t *testing.T) {
	tests := []struct {
		uri    PackURI
		want   int
		wantOK bool
	}{
		{"/word/header1.xml", 1, true},
		{"/word/header21.xml", 21, true},
		{"/word/media/image300.png", 300, true},
		{"/word/document.xml", 0, false},
		{"/word/header01.xml", 0, false},
		{"/word/123.xml", 0, false},
		{"/", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.uri), func(t *testing.T) {
			got, ok := tt.uri.Idx()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPackURIRelativeRef(t *testing.T) {
	tests := []struct {
		uri     PackURI
		baseURI string
		want    string
	}{
		{"/word/document.xml", "/", "word/document.xml"},
		{"/word/styles.xml", "/word", "styles.xml"},
		{"/word/media/image1.png", "/word", "media/image1.png"},
		{"/docProps/core.xml", "/word", "../docProps/core.xml"},
		{"/customXml/item1.xml", "/word/glossary", "../../customXml/item1.xml"},
		{"/word/document.xml", "/word/media", "../document.xml"},
	}

	for _, tt := range tests {
		t.Run(string(tt.uri)+" from "+tt.baseURI, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.uri.RelativeRef(tt.baseURI))
		})
	}
}

func TestFromRelRef(t *testing.T) {
	tests := []struct {
		baseURI string
		ref     string
		want    PackURI
	}{
		{"/", "word/document.xml", "/word/document.xml"},
		{"/word", "styles.xml", "/word/styles.xml"},
		{"/word", "../docProps/core.xml", "/docProps/core.xml"},
		{"/word", "/word/media/image1.png", "/word/media/image1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := FromRelRef(tt.baseURI, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelativeRefRoundTrip(t *testing.T) {
	uris := []PackURI{"/word/document.xml", "/docProps/app.xml", "/word/media/image2.jpeg", "/customXml/item1.xml"}
	bases := []string{"/", "/word", "/word/media", "/docProps"}

	for _, u := range uris {
		for _, base := range bases {
			got, err := FromRelRef(base, u.RelativeRef(base))
			require.NoError(t, err)
			assert.Equal(t, u, got, "from %s", base)
		}
	}
}
