package source

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown extracts tree listings from code blocks using goldmark. A README
// usually carries the project layout inside a code fence; the prose around
// it is ignored.
type Markdown struct{}

func (p *Markdown) Extract(r io.Reader) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			if block := blockText(n, src); looksLikeTree(block) {
				blocks = append(blocks, block)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	if len(blocks) == 0 {
		// No code block carries a listing; the whole file may be one.
		return string(src), nil
	}
	return strings.Join(blocks, "\n"), nil
}

// blockText gets the raw line content of a goldmark block node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}
