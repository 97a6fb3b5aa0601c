// PromptExtract recovers the final positive prompt from images generated by
// ComfyUI. It parses the node-graph workflow embedded in an image's metadata
// and traces data dependencies backward from the image-saving node to the
// text encoder that supplied its conditioning, resolving through indirection,
// widget-stored literals, and string-producing helper nodes.
package promptextract
