package extract

import (
	"github.com/EnragedAntelope/PromptExtract/graphapi"
)

// traversableInputTypes are the slot types worth following when hunting
// for a text encoder. Latent, image and model wiring never leads back to
// prompt text and would only widen the search.
var traversableInputTypes = map[string]bool{
	"CONDITIONING": true,
	"CLIP":         true,
	"STRING":       true,
	"any":          true,
}

// FindPositiveSource walks upstream from the node feeding the save node
// (typically a VAEDecode, sometimes a detailer or upscaler) and returns
// the node producing the first reachable "positive" conditioning input.
// The walk is breadth first in FIFO order, so when several samplers
// exist the one fewest hops from the image wins. Returns nil when no
// positive input is reachable.
func FindPositiveSource(g *graphapi.Graph, start *graphapi.GraphNode) *graphapi.GraphNode {
	queue := []*graphapi.GraphNode{start}
	seen := make(map[int]bool)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if seen[node.ID] {
			continue
		}
		seen[node.ID] = true

		for _, inp := range node.Inputs {
			if inp.Name != "positive" || inp.Link == nil {
				continue
			}
			if link := g.GetLinkById(*inp.Link); link != nil {
				// The producer of the conditioning, not the consumer.
				return g.GetNodeById(link.OriginID)
			}
		}

		// keep walking upstream through all inputs
		for _, inp := range node.Inputs {
			if inp.Link == nil {
				continue
			}
			link := g.GetLinkById(*inp.Link)
			if link == nil {
				continue
			}
			if pred := g.GetNodeById(link.OriginID); pred != nil {
				queue = append(queue, pred)
			}
		}
	}
	return nil
}

// FindTextEncoder walks upstream from a conditioning-producing node and
// returns the first text-encoder node found, following only input slots
// whose type can plausibly carry prompt data. Returns nil when no
// encoder is reachable.
func FindTextEncoder(g *graphapi.Graph, start *graphapi.GraphNode) *graphapi.GraphNode {
	queue := []*graphapi.GraphNode{start}
	seen := make(map[int]bool)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if seen[node.ID] {
			continue
		}
		seen[node.ID] = true

		if IsTextEncoderNode(node) {
			return node
		}

		for _, inp := range node.Inputs {
			if inp.Link == nil || !traversableInputTypes[inp.Type] {
				continue
			}
			link := g.GetLinkById(*inp.Link)
			if link == nil {
				continue
			}
			if pred := g.GetNodeById(link.OriginID); pred != nil {
				queue = append(queue, pred)
			}
		}
	}
	return nil
}
