package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/EnragedAntelope/PromptExtract/graphapi"
)

// ResolveString recovers the literal prompt text behind a node, following
// text-typed links backward when the value is not stored locally. An
// empty result means no literal could be found.
func ResolveString(g *graphapi.Graph, node *graphapi.GraphNode) string {
	return resolveNode(g, node, make(map[int]bool))
}

// resolveNode applies the resolution policy in priority order:
//
//  1. a text encoder whose "text" input is unlinked holds the prompt in
//     its first widget value
//  2. otherwise the longest non-empty string anywhere in widgets_values
//  3. otherwise follow a linked "text" input
//  4. otherwise follow linked STRING-typed inputs in slot order
//
// Rule 2 is a heuristic: auxiliary widget strings (labels, filename
// prefixes, seeds rendered as text) tend to be shorter than the prompt
// body. It matches observed workflows well but is not guaranteed to pick
// the right string.
//
// The visited set is shared across the whole resolution so cyclic or
// re-convergent graphs short-circuit to "no value" instead of recursing
// forever.
func resolveNode(g *graphapi.Graph, node *graphapi.GraphNode, visited map[int]bool) string {
	if visited[node.ID] {
		return ""
	}
	visited[node.ID] = true

	// An encoder stores the prompt locally unless its text input is
	// explicitly fed from outside.
	if IsTextEncoderNode(node) {
		text := node.GetInputWithName("text")
		linked := text != nil && text.Link != nil
		if !linked && len(node.WidgetValues) > 0 {
			if s, ok := node.WidgetValues[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}

	// Generic literal-bearing nodes (ShowText and friends).
	if s := longestWidgetString(node); s != "" {
		return s
	}

	// Follow an explicit text input.
	for i := range node.Inputs {
		inp := &node.Inputs[i]
		if inp.Name != "text" || inp.Link == nil {
			continue
		}
		if pred := sourceNode(g, *inp.Link); pred != nil {
			if res := resolveNode(g, pred, visited); res != "" {
				return res
			}
		}
	}

	// Otherwise follow any STRING input.
	for i := range node.Inputs {
		inp := &node.Inputs[i]
		if inp.Type != "STRING" || inp.Link == nil {
			continue
		}
		if pred := sourceNode(g, *inp.Link); pred != nil {
			if res := resolveNode(g, pred, visited); res != "" {
				return res
			}
		}
	}

	return ""
}

// longestWidgetString returns the longest non-blank string in the node's
// widget payload, trimmed. Length is counted in runes, not bytes.
func longestWidgetString(node *graphapi.GraphNode) string {
	best := ""
	bestLen := 0
	for _, s := range node.FlattenedWidgetStrings() {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if l := utf8.RuneCountInString(s); l > bestLen {
			best = s
			bestLen = l
		}
	}
	return strings.TrimSpace(best)
}

func sourceNode(g *graphapi.Graph, linkID int) *graphapi.GraphNode {
	link := g.GetLinkById(linkID)
	if link == nil {
		return nil
	}
	return g.GetNodeById(link.OriginID)
}
