// Package extract recovers the final positive prompt from a ComfyUI
// workflow graph. It locates the node that saved the image, walks the
// link graph backward to the sampler's positive conditioning, finds the
// text encoder feeding it, and resolves the literal string the encoder
// was given.
package extract

import (
	"encoding/json"
	"fmt"

	"github.com/EnragedAntelope/PromptExtract/graphapi"
)

// FinalPositivePrompt traces the workflow backward from its final
// image-save node and returns the literal positive prompt. A non-empty
// Reason explains which stage came up empty; none of them are fatal to a
// batch run.
func FinalPositivePrompt(g *graphapi.Graph) (string, Reason) {
	save := FindSaveImageNode(g)
	if save == nil {
		return "", ReasonNoSaveImage
	}

	images := save.GetLinkedInputWithName("images")
	if images == nil {
		return "", ReasonNoSaveImageLink
	}

	var start *graphapi.GraphNode
	if link := g.GetLinkById(*images.Link); link != nil {
		start = g.GetNodeById(link.OriginID)
	}
	if start == nil {
		return "", ReasonNoStartNode
	}

	posSource := FindPositiveSource(g, start)
	if posSource == nil {
		return "", ReasonNoPositive
	}

	encoder := FindTextEncoder(g, posSource)
	if encoder == nil {
		return "", ReasonNoClipEncode
	}

	prompt := ResolveString(g, encoder)
	if prompt == "" {
		return "", ReasonNoPrompt
	}
	return prompt, ReasonNone
}

// FromWorkflowJSON is the per-document entry point: it parses a
// serialized workflow and resolves its prompt. Decode failures and any
// unexpected fault inside the traversal come back as an "error:" reason
// so one corrupt document never takes down the run.
func FromWorkflowJSON(data []byte) (prompt string, reason Reason) {
	defer func() {
		if r := recover(); r != nil {
			prompt = ""
			reason = WrapError(fmt.Errorf("%v", r))
		}
	}()

	graph := &graphapi.Graph{}
	if err := json.Unmarshal(data, graph); err != nil {
		return "", WrapError(err)
	}
	return FinalPositivePrompt(graph)
}
