package engine

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrParse is the single failure kind every strategy stage can hit: the input
// is not a syntactically valid Python module. Stages never surface it to
// callers; they fall back to passing their input through.
var ErrParse = errors.New("source is not valid python")

// parseModule parses src as a Python module. A tree whose root contains error
// or missing nodes counts as a parse failure, matching what a strict parser
// would reject. The caller owns the returned tree and must Close it.
//
// A fresh parser is created per call; tree-sitter parsers are not safe for
// concurrent use, and this keeps a single strategy instance goroutine safe.
func parseModule(src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	root := tree.RootNode()
	if root == nil || root.HasError() {
		tree.Close()
		return nil, ErrParse
	}
	return tree, nil
}

// nodeText returns the source text a node spans.
func nodeText(n *sitter.Node, src []byte) string {
	return string(src[n.StartByte():n.EndByte()])
}

// validSource reports whether code parses cleanly as a Python module.
func validSource(code string) bool {
	tree, err := parseModule([]byte(code))
	if err != nil {
		return false
	}
	tree.Close()
	return true
}
