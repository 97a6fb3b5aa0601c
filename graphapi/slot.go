package graphapi

// Slot represents a connection point within a GraphNode. An input slot
// with a nil Link is satisfied by a widget literal or left unconnected;
// the distinction from link id 0 matters, so Link is a pointer.
type Slot struct {
	Name      string `json:"name"`                 // The name of the slot
	Type      string `json:"type"`                 // The type of the data the slot accepts
	Link      *int   `json:"link,omitempty"`       // Id of the link feeding an input slot
	Links     *[]int `json:"links,omitempty"`      // Array of link ids for output slots
	SlotIndex *int   `json:"slot_index,omitempty"` // Index of the Slot in relation to other Slots
}
