package oxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Match is one node selected by Query.
type Match struct {
	// XML is the serialized node.
	XML string
	// Text is the node's concatenated text content.
	Text string
}

// Query evaluates an XPath 1.0 expression against a snapshot of n. The
// conventional OOXML prefixes (w, r, a, ...) may be used in expr. The
// query runs on a copy, so later edits to n are not reflected.
func Query(n Node, expr string) ([]Match, error) {
	root, compiled, err := prepareQuery(n, expr)
	if err != nil {
		return nil, err
	}
	nodes := xmlquery.QuerySelectorAll(root, compiled)
	out := make([]Match, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, Match{XML: node.OutputXML(true), Text: node.InnerText()})
	}
	return out, nil
}

// Evaluate evaluates an XPath expression that yields a scalar, such as
// count(//w:p) or string(//w:t), and returns it formatted as a string.
// Node-set results are rendered as the text of their first node.
func Evaluate(n Node, expr string) (string, error) {
	root, compiled, err := prepareQuery(n, expr)
	if err != nil {
		return "", err
	}
	switch v := compiled.Evaluate(xmlquery.CreateXPathNavigator(root)).(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		return v, nil
	case bool:
		return fmt.Sprint(v), nil
	case *xpath.NodeIterator:
		if v.MoveNext() {
			return v.Current().Value(), nil
		}
		return "", nil
	default:
		return fmt.Sprint(v), nil
	}
}

func prepareQuery(n Node, expr string) (*xmlquery.Node, *xpath.Expr, error) {
	compiled, err := xpath.CompileWithNS(expr, nsmap)
	if err != nil {
		return nil, nil, fmt.Errorf("compiling xpath %q: %w", expr, err)
	}
	s, err := n.Elem().XML()
	if err != nil {
		return nil, nil, err
	}
	root, err := xmlquery.Parse(strings.NewReader(s))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing XML: %w", err)
	}
	return root, compiled, nil
}
