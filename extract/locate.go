package extract

import (
	"github.com/EnragedAntelope/PromptExtract/graphapi"
)

// FindSaveImageNode returns the image-save node that produced the final
// image. When a workflow has several save nodes the one with the highest
// execution order wins; ties keep the earliest node in document order, so
// the choice is deterministic. Returns nil when no save node exists.
func FindSaveImageNode(g *graphapi.Graph) *graphapi.GraphNode {
	var best *graphapi.GraphNode
	for _, n := range g.Nodes {
		if !IsSaveImageNode(n) {
			continue
		}
		if best == nil || n.Order > best.Order {
			best = n
		}
	}
	return best
}
