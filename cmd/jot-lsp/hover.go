package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	pos := params.Position
	line := int(pos.Line)
	col := int(pos.Character)

	targetNode := findNodeAtPosition(doc.node, doc.positions, line, col)
	if targetNode == nil {
		return nil, nil
	}

	hoverText := buildHoverText(targetNode)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtPosition returns the node starting nearest to the given
// position on its line.
func findNodeAtPosition(root *ir.Value, positions map[*ir.Value]*token.Pos, line, col int) *ir.Value {
	var bestNode *ir.Value
	var bestCol int

	root.Visit(func(node *ir.Value, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		pos := positions[node]
		if pos == nil {
			return true, nil
		}
		posLine, posCol := pos.LineCol()
		if posLine != line {
			return true, nil
		}
		if bestNode == nil || abs(posCol-col) < abs(bestCol-col) {
			bestNode = node
			bestCol = posCol
		}
		return true, nil
	})
	return bestNode
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func buildHoverText(node *ir.Value) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo(node)))
	if vi := valueInfo(node); vi != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", vi))
	}
	return strings.Join(parts, "\n\n")
}

func typeInfo(node *ir.Value) string {
	switch node.Kind() {
	case ir.NullKind:
		return "null"
	case ir.BoolKind:
		return "boolean"
	case ir.IntKind:
		return "integer"
	case ir.FloatKind:
		return "float"
	case ir.StringKind:
		return "string"
	case ir.ArrayKind:
		return "array"
	case ir.ObjectKind:
		return "object"
	default:
		return "unknown"
	}
}

func valueInfo(node *ir.Value) string {
	switch node.Kind() {
	case ir.NullKind:
		return "`null`"
	case ir.BoolKind:
		if node.GetBoolOr(false) {
			return "`true`"
		}
		return "`false`"
	case ir.IntKind:
		return fmt.Sprintf("`%d`", node.GetIntOr(0))
	case ir.FloatKind:
		f, _ := node.AsFloat()
		return fmt.Sprintf("`%g`", f)
	case ir.StringKind:
		val, _ := node.AsString()
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		return fmt.Sprintf("`%s`", val)
	case ir.ArrayKind:
		return fmt.Sprintf("array with %d elements", node.Len())
	case ir.ObjectKind:
		return fmt.Sprintf("object with %d keys", node.Len())
	}
	return ""
}
