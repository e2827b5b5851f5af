package core

import "time"

// Note is the unit of knowledge the assistant works with.
// Notes are owned by the external note store; the assistant only ever
// reads an immutable snapshot and never writes back.
type Note struct {
	ID        string
	Content   string
	CreatedAt time.Time
}
