package graphapi

import (
	"encoding/json"
	"errors"
)

// Link is a directed edge wiring one node's output slot into another
// node's input slot. Links never change after parse.
type Link struct {
	ID         int
	OriginID   int
	OriginSlot int
	TargetID   int
	TargetSlot int
	Type       string
}

func intField(v interface{}) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (l *Link) UnmarshalJSON(b []byte) error {
	// Try to unmarshal as array (tuple format) first. Tuples carry at
	// least [id, origin_id, origin_slot, target_id, target_slot, type];
	// trailing fields from newer frontends are ignored.
	var tmp []interface{}
	if err := json.Unmarshal(b, &tmp); err == nil {
		if len(tmp) < 6 {
			return errors.New("too few fields in JSON array")
		}

		fields := [5]int{}
		for i := range fields {
			v, ok := intField(tmp[i])
			if !ok {
				return errors.New("non-numeric field in JSON array")
			}
			fields[i] = v
		}

		l.ID = fields[0]
		l.OriginID = fields[1]
		l.OriginSlot = fields[2]
		l.TargetID = fields[3]
		l.TargetSlot = fields[4]
		l.Type, _ = tmp[5].(string)

		return nil
	}

	// Try to unmarshal as object format
	var obj struct {
		ID         int    `json:"id"`
		OriginID   int    `json:"origin_id"`
		OriginSlot int    `json:"origin_slot"`
		TargetID   int    `json:"target_id"`
		TargetSlot int    `json:"target_slot"`
		Type       string `json:"type"`
	}

	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	l.ID = obj.ID
	l.OriginID = obj.OriginID
	l.OriginSlot = obj.OriginSlot
	l.TargetID = obj.TargetID
	l.TargetSlot = obj.TargetSlot
	l.Type = obj.Type

	return nil
}
