package opc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestBytes(t *testing.T) {
	a := DigestBytes([]byte("hello"))
	b := DigestBytes([]byte("hello"))
	c := DigestBytes([]byte("hello!"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a.String(), 64)
}

func TestPartDigestCoversRelationships(t *testing.T) {
	plain := NewBasePart(MustPackURI("/word/document.xml"), CTWmlDocumentMain, []byte("<x/>"), nil)
	linked := NewBasePart(MustPackURI("/word/document.xml"), CTWmlDocumentMain, []byte("<x/>"), nil)
	linked.RelateToExternal("http://example.com/", RTHyperlink)

	d1, err := PartDigest(plain)
	require.NoError(t, err)
	d2, err := PartDigest(linked)
	require.NoError(t, err)

	assert.Equal(t, DigestBytes([]byte("<x/>")), d1)
	assert.NotEqual(t, d1, d2)
}

func TestFingerprintChangesWithEdits(t *testing.T) {
	pkg := openFixture(t, WithPartFactory(xmlFactory()))
	before, err := Fingerprint(pkg)
	require.NoError(t, err)
	assert.Len(t, before, 4)

	main, err := pkg.MainDocumentPart()
	require.NoError(t, err)
	main.(*XMLPart).Element().FirstChild("w:body").SetAttr("w:rsidR", "01")

	after, err := Fingerprint(pkg)
	require.NoError(t, err)
	assert.NotEqual(t, before["/word/document.xml"], after["/word/document.xml"])
	assert.Equal(t, before["/word/styles.xml"], after["/word/styles.xml"])
}
