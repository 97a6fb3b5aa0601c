package graphapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexWorkflow = `{
  "last_node_id": 3, "last_link_id": 4, "version": 0.4,
  "nodes": [
    {"id": 1, "type": "CLIPTextEncode", "pos": [100, 200], "size": [400, 200], "order": 0,
     "inputs": [{"name": "clip", "type": "CLIP", "link": null}],
     "outputs": [{"name": "CONDITIONING", "type": "CONDITIONING", "links": [1]}],
     "widgets_values": ["a cat"]},
    {"id": 2, "type": "KSampler", "pos": [600, 200], "size": {"0": 300, "1": 300}, "order": 1,
     "inputs": [{"name": "positive", "type": "CONDITIONING", "link": 1}]}
  ],
  "links": [
    [1, 1, 0, 2, 0, "CONDITIONING"],
    [9, 9],
    [4, 2, 0, 3, 0, "LATENT", "extra-field-from-newer-frontend"]
  ]
}`

func TestGraphUnmarshalBuildsIndices(t *testing.T) {
	g, err := NewGraphFromJsonString(indexWorkflow)
	require.NoError(t, err)

	require.Len(t, g.Nodes, 2)
	assert.Equal(t, 3, g.LastNodeID)
	assert.Equal(t, 4, g.LastLinkID)

	// the short record [9, 9] is dropped, the 7-field record is kept
	require.Len(t, g.Links, 2)

	assert.Same(t, g.Nodes[0], g.GetNodeById(1))
	assert.Same(t, g.Nodes[1], g.GetNodeById(2))
	assert.Nil(t, g.GetNodeById(42))

	link := g.GetLinkById(1)
	require.NotNil(t, link)
	assert.Equal(t, 1, link.OriginID)
	assert.Equal(t, 0, link.OriginSlot)
	assert.Equal(t, 2, link.TargetID)
	assert.Equal(t, 0, link.TargetSlot)
	assert.Equal(t, "CONDITIONING", link.Type)

	assert.Nil(t, g.GetLinkById(9))
	require.NotNil(t, g.GetLinkById(4))
	assert.Equal(t, "LATENT", g.GetLinkById(4).Type)

	// nodes know their parent graph
	assert.Same(t, g, g.GetNodeById(1).Graph)
}

func TestLinkObjectFormat(t *testing.T) {
	g, err := NewGraphFromJsonString(`{
	  "nodes": [],
	  "links": [{"id": 7, "origin_id": 1, "origin_slot": 2, "target_id": 3, "target_slot": 4, "type": "IMAGE"}]
	}`)
	require.NoError(t, err)

	link := g.GetLinkById(7)
	require.NotNil(t, link)
	assert.Equal(t, 1, link.OriginID)
	assert.Equal(t, 2, link.OriginSlot)
	assert.Equal(t, 3, link.TargetID)
	assert.Equal(t, 4, link.TargetSlot)
	assert.Equal(t, "IMAGE", link.Type)
}

func TestSlotLinkDistinguishesNullFromZero(t *testing.T) {
	g, err := NewGraphFromJsonString(`{
	  "nodes": [
	    {"id": 1, "type": "X", "order": 0,
	     "inputs": [
	       {"name": "a", "type": "STRING", "link": null},
	       {"name": "b", "type": "STRING", "link": 0},
	       {"name": "c", "type": "STRING"}]}
	  ],
	  "links": []
	}`)
	require.NoError(t, err)

	n := g.GetNodeById(1)
	require.NotNil(t, n)

	assert.Nil(t, n.Inputs[0].Link)
	require.NotNil(t, n.Inputs[1].Link)
	assert.Equal(t, 0, *n.Inputs[1].Link)
	assert.Nil(t, n.Inputs[2].Link)
}

func TestGetInputWithName(t *testing.T) {
	g, err := NewGraphFromJsonString(`{
	  "nodes": [
	    {"id": 1, "type": "X", "order": 0,
	     "inputs": [
	       {"name": "text", "type": "STRING", "link": null},
	       {"name": "text", "type": "STRING", "link": 5}]}
	  ],
	  "links": []
	}`)
	require.NoError(t, err)

	n := g.GetNodeById(1)

	// plain lookup returns the first by name; the linked lookup skips
	// unconnected slots
	assert.Nil(t, n.GetInputWithName("text").Link)
	linked := n.GetLinkedInputWithName("text")
	require.NotNil(t, linked)
	assert.Equal(t, 5, *linked.Link)
	assert.Nil(t, n.GetLinkedInputWithName("positive"))
}

func TestGetNodeForInput(t *testing.T) {
	g, err := NewGraphFromJsonString(indexWorkflow)
	require.NoError(t, err)

	sampler := g.GetNodeById(2)
	require.NotNil(t, sampler)

	encoder := sampler.GetNodeForInput(0)
	require.NotNil(t, encoder)
	assert.Equal(t, 1, encoder.ID)

	assert.Nil(t, sampler.GetNodeForInput(5))
}

func TestFlattenedWidgetStrings(t *testing.T) {
	g, err := NewGraphFromJsonString(`{
	  "nodes": [
	    {"id": 1, "type": "X", "order": 0,
	     "widgets_values": ["a", ["b", 3, ["c"]], 7, "d"]}
	  ],
	  "links": []
	}`)
	require.NoError(t, err)

	n := g.GetNodeById(1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, n.FlattenedWidgetStrings())

	// no widgets at all
	g2, err := NewGraphFromJsonString(`{"nodes": [{"id": 1, "type": "X", "order": 0}], "links": []}`)
	require.NoError(t, err)
	assert.Empty(t, g2.GetNodeById(1).FlattenedWidgetStrings())
}

func TestPosAndSizeVariants(t *testing.T) {
	g, err := NewGraphFromJsonString(indexWorkflow)
	require.NoError(t, err)

	n1 := g.GetNodeById(1)
	assert.Equal(t, 100.0, n1.Position.X)
	assert.Equal(t, 200.0, n1.Position.Y)
	assert.Equal(t, 400.0, n1.Size.Width)
	assert.Equal(t, 200.0, n1.Size.Height)

	// size as a map keyed "0"/"1"
	n2 := g.GetNodeById(2)
	assert.Equal(t, 300.0, n2.Size.Width)
	assert.Equal(t, 300.0, n2.Size.Height)
}

func TestGetNodesWithType(t *testing.T) {
	g, err := NewGraphFromJsonString(`{
	  "nodes": [
	    {"id": 1, "type": "SaveImage", "order": 0},
	    {"id": 2, "type": "SaveImage", "order": 1},
	    {"id": 3, "type": "VAEDecode", "order": 2}
	  ],
	  "links": []
	}`)
	require.NoError(t, err)

	saves := g.GetNodesWithType("SaveImage")
	require.Len(t, saves, 2)
	assert.Equal(t, 1, saves[0].ID)
	assert.Equal(t, 2, saves[1].ID)
	assert.Empty(t, g.GetNodesWithType("KSampler"))
}
