package model

import (
	"strconv"
)

// EndCursor is the last_id value the API sends once there are no more pages.
const EndCursor Cursor = "0"

// Cursor is the opaque last_id pagination token.
type Cursor string

// IsEnd reports whether the cursor marks the end of the result set.
// An absent last_id decodes to the empty cursor.
func (c Cursor) IsEnd() bool {
	return c == "" || c == EndCursor
}

func (c *Cursor) UnmarshalJSON(data []byte) error {
	raw := string(data)
	switch {
	case raw == "null":
		*c = ""
	case len(raw) > 0 && raw[0] == '"':
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return err
		}
		*c = Cursor(unquoted)
	default:
		*c = Cursor(raw)
	}
	return nil
}

type Operation struct {
	Level Level `json:"level"`
}

type OperationsPage struct {
	Operations []Operation `json:"operations"`
	LastID     Cursor      `json:"last_id"`
}

// Levels returns the level of every operation in server order.
func (p *OperationsPage) Levels() []Level {
	levels := make([]Level, 0, len(p.Operations))
	for _, op := range p.Operations {
		levels = append(levels, op.Level)
	}
	return levels
}
