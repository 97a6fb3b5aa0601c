package graphapi

// GraphNode represents the encapsulation of an individual functionality within a Graph
type GraphNode struct {
	ID           int           `json:"id"`
	Type         string        `json:"type"`
	Position     Pos           `json:"pos"`
	Size         Size          `json:"size"`
	Order        int           `json:"order"`
	Mode         int           `json:"mode"`
	Title        string        `json:"title"`
	WidgetValues []interface{} `json:"widgets_values"`
	Color        string        `json:"color"`
	BGColor      string        `json:"bgcolor"`
	Inputs       []Slot        `json:"inputs,omitempty"`
	Outputs      []Slot        `json:"outputs,omitempty"`
	Graph        *Graph        `json:"-"`
}

// GetInputWithName returns the first input slot with the given name, or
// nil if the node has none. Input names are roles ("positive", "text")
// and are not guaranteed unique within a node.
func (n *GraphNode) GetInputWithName(name string) *Slot {
	for i, s := range n.Inputs {
		if s.Name == name {
			return &n.Inputs[i]
		}
	}
	return nil
}

// GetLinkedInputWithName returns the first input slot with the given name
// that is fed by a link.
func (n *GraphNode) GetLinkedInputWithName(name string) *Slot {
	for i, s := range n.Inputs {
		if s.Name == name && s.Link != nil {
			return &n.Inputs[i]
		}
	}
	return nil
}

// GetInputLink returns the link record feeding the input slot at
// slotIndex, or nil when the slot is unconnected or the link id dangles.
func (n *GraphNode) GetInputLink(slotIndex int) *Link {
	ncount := len(n.Inputs)
	if ncount == 0 || slotIndex >= ncount {
		return nil
	}

	slot := n.Inputs[slotIndex]
	if slot.Link == nil {
		return nil
	}
	return n.Graph.GetLinkById(*slot.Link)
}

// GetNodeForInput returns the node whose output feeds the input slot at
// slotIndex, or nil if the slot is unconnected or the reference dangles.
func (n *GraphNode) GetNodeForInput(slotIndex int) *GraphNode {
	l := n.GetInputLink(slotIndex)
	if l == nil {
		return nil
	}
	return n.Graph.GetNodeById(l.OriginID)
}

// FlattenedWidgetStrings collects every string held in the node's
// widgets_values payload, descending into nested sequences. Numbers and
// other non-string widgets are dropped.
func (n *GraphNode) FlattenedWidgetStrings() []string {
	return flattenStrings(n.WidgetValues)
}

func flattenStrings(v interface{}) []string {
	switch value := v.(type) {
	case string:
		return []string{value}
	case []interface{}:
		retv := make([]string, 0, len(value))
		for _, e := range value {
			retv = append(retv, flattenStrings(e)...)
		}
		return retv
	}
	return nil
}
