package docxerr

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "PackageNotFoundError",
			err:     &PackageNotFoundError{Path: "missing.docx"},
			wantMsg: "package not found at 'missing.docx'",
		},
		{
			name:    "PackageNotFoundError with cause",
			err:     &PackageNotFoundError{Path: "a.docx", Cause: errors.New("not a zip file")},
			wantMsg: "package not found at 'a.docx': not a zip file",
		},
		{
			name:    "missing attribute",
			err:     MissingAttr("w:pgSz", "w:w"),
			wantMsg: "invalid xml in <w:pgSz> attribute 'w:w': required attribute not present",
		},
		{
			name:    "missing child",
			err:     MissingChild("w:tbl", "w:tblPr"),
			wantMsg: "invalid xml in <w:tbl>: required <w:tblPr> child element not present",
		},
		{
			name:    "invalid value",
			err:     InvalidValue("ST_OnOff", "maybe", "expected one of 1, 0, true, false, on, off"),
			wantMsg: "invalid xml value 'maybe': not a valid ST_OnOff: expected one of 1, 0, true, false, on, off",
		},
		{
			name:    "InvalidArgumentError",
			err:     NewInvalidArgument("partname", "word/document.xml", "must begin with slash"),
			wantMsg: "invalid argument partname 'word/document.xml': must begin with slash",
		},
		{
			name:    "InvalidArgumentError without value",
			err:     NewInvalidArgument("reltype", "", "no relationship of type"),
			wantMsg: "invalid argument reltype: no relationship of type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestErrorCategories(t *testing.T) {
	notFound := NewPackageNotFound("x.docx", os.ErrNotExist)
	invalidXML := fmt.Errorf("loading part: %w", MissingAttr("w:style", "w:styleId"))
	invalidArg := fmt.Errorf("lookup: %w", NewInvalidArgument("rId", "rId9", "external relationship has no target part"))

	assert.True(t, IsPackageNotFound(notFound))
	assert.True(t, errors.Is(notFound, os.ErrNotExist), "cause stays reachable")
	assert.False(t, IsInvalidXML(notFound))

	assert.True(t, IsInvalidXML(invalidXML))
	assert.False(t, IsInvalidArgument(invalidXML))

	assert.True(t, IsInvalidArgument(invalidArg))
	assert.False(t, IsPackageNotFound(invalidArg))
}

func TestWithTag(t *testing.T) {
	err := WithTag(InvalidValue("xsd:int", "abc", "not an integer"), "w:sz", "w:val")

	var ix *InvalidXMLError
	if assert.True(t, errors.As(err, &ix)) {
		assert.Equal(t, "w:sz", ix.Tag)
		assert.Equal(t, "w:val", ix.Attr)
		assert.Equal(t, "abc", ix.Value)
	}

	plain := errors.New("boom")
	assert.Same(t, plain, WithTag(plain, "w:p", ""))
}
