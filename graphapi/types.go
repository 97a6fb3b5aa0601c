package graphapi

import (
	"encoding/json"
)

type Pos struct {
	X float64
	Y float64
}

func (p *Pos) UnmarshalJSON(b []byte) error {
	var tmp []interface{}
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}

	for i, v := range tmp {
		value, ok := v.(float64)
		if !ok {
			continue
		}
		if i == 0 {
			p.X = value
		} else {
			p.Y = value
		}
	}

	return nil
}

type Size struct {
	Width  float64
	Height float64
}

// the json code can have either an array of values, or a dictionary of
// values keyed "0" and "1"
func (s *Size) UnmarshalJSON(b []byte) error {
	var tmpArr []interface{}
	if err := json.Unmarshal(b, &tmpArr); err == nil && len(tmpArr) == 2 {
		for i, v := range tmpArr {
			value, ok := v.(float64)
			if !ok {
				continue
			}
			if i == 0 {
				s.Width = value
			} else {
				s.Height = value
			}
		}
		return nil
	}

	var tmpMap map[string]interface{}
	if err := json.Unmarshal(b, &tmpMap); err != nil {
		return err
	}

	for k, v := range tmpMap {
		value, ok := v.(float64)
		if !ok {
			continue
		}
		if k == "0" {
			s.Width = value
		} else {
			s.Height = value
		}
	}

	return nil
}
