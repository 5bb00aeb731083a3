package wml

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/oxml"
)

const nsDecls = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

// parse parses s and returns the typed wrapper of its root.
func parse(t *testing.T, s string) oxml.Node {
	t.Helper()
	tree, err := oxml.Parse([]byte(s))
	require.NoError(t, err)
	return oxml.Wrap(tree.Root())
}

func tagsOf(e *oxml.Element) []string {
	var tags []string
	for _, c := range e.Children() {
		tags = append(tags, c.Tag())
	}
	return tags
}

func ptr[T any](v T) *T { return &v }
