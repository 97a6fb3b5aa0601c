package extract

import (
	"strings"

	"github.com/EnragedAntelope/PromptExtract/graphapi"
)

// Node kinds are matched by substring rather than exact type equality so
// renamed variants and custom node packs ("SaveImageExtended",
// "Save Image w/ Metadata", "CLIPTextEncodeSDXL") still register. New
// kinds extend these predicates, never the traversals.

// IsSaveImageNode reports whether the node writes a final image to disk.
func IsSaveImageNode(n *graphapi.GraphNode) bool {
	return strings.Contains(n.Type, "SaveImage") || strings.Contains(n.Type, "Save Image")
}

// IsTextEncoderNode reports whether the node encodes literal text into
// conditioning.
func IsTextEncoderNode(n *graphapi.GraphNode) bool {
	return strings.Contains(n.Type, "CLIPTextEncode")
}
