package graphapi

import (
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Graph is the workflow document a ComfyUI frontend embeds in the metadata
// of every image it saves: a flat list of nodes plus the links that wire
// node outputs into node inputs. A Graph is read-only after unmarshaling;
// the by-ID indices are built exactly once and every traversal resolves
// nodes and links through them.
type Graph struct {
	Nodes      []*GraphNode       `json:"nodes"`
	Links      []*Link            `json:"links"`
	LastNodeID int                `json:"last_node_id"`
	LastLinkID int                `json:"last_link_id"`
	Version    float64            `json:"version"`
	NodesByID  map[int]*GraphNode `json:"-"`
	LinksByID  map[int]*Link      `json:"-"`
}

func (t *Graph) UnmarshalJSON(b []byte) error {
	// Links are decoded individually so a malformed record drops only that
	// record instead of the whole document. Legacy exports carry short link
	// tuples that must not abort indexing.
	type alias struct {
		Nodes      []*GraphNode      `json:"nodes"`
		Links      []json.RawMessage `json:"links"`
		LastNodeID int               `json:"last_node_id"`
		LastLinkID int               `json:"last_link_id"`
		Version    float64           `json:"version"`
	}

	a := &alias{}
	if err := json.Unmarshal(b, a); err != nil {
		return err
	}

	t.Nodes = a.Nodes
	t.LastNodeID = a.LastNodeID
	t.LastLinkID = a.LastLinkID
	t.Version = a.Version

	t.Links = make([]*Link, 0, len(a.Links))
	for _, raw := range a.Links {
		link := &Link{}
		if err := json.Unmarshal(raw, link); err != nil {
			continue
		}
		t.Links = append(t.Links, link)
	}

	// Populate the "by ID's"
	t.NodesByID = make(map[int]*GraphNode)
	t.LinksByID = make(map[int]*Link)
	for _, node := range t.Nodes {
		t.NodesByID[node.ID] = node
		// Give the node a pointer to it's parent graph
		node.Graph = t
	}
	for _, link := range t.Links {
		t.LinksByID[link.ID] = link
	}

	return nil
}

func (t *Graph) GetLinkById(id int) *Link {
	val, ok := t.LinksByID[id]
	if ok {
		return val
	}
	return nil
}

func (t *Graph) GetNodeById(id int) *GraphNode {
	val, ok := t.NodesByID[id]
	if ok {
		return val
	}
	return nil
}

// GetNodesWithType retrieves all nodes in the graph that match a specified type.
//
// Parameters:
//   - nodeType: The type of node to filter by.
//
// Returns:
//   - A slice of pointers to GraphNodes that match the specified type.
func (t *Graph) GetNodesWithType(nodeType string) []*GraphNode {
	retv := make([]*GraphNode, 0)
	for _, n := range t.Nodes {
		if n.Type == nodeType {
			retv = append(retv, n)
		}
	}
	return retv
}

func NewGraphFromJsonReader(r io.Reader) (*Graph, error) {
	fileContent, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	graph := &Graph{}
	err = json.Unmarshal(fileContent, &graph)
	if err != nil {
		return nil, err
	}
	return graph, nil
}

func NewGraphFromJsonFile(path string) (*Graph, error) {
	freader, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer freader.Close()

	return NewGraphFromJsonReader(freader)
}

func NewGraphFromJsonString(data string) (*Graph, error) {
	reader := strings.NewReader(data)
	return NewGraphFromJsonReader(reader)
}
