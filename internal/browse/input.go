package browse

// Input is the editable query text plus cursor. All edits return a fresh
// value; the rune slice of the receiver is never shared with the result, so
// older states stay valid snapshots.
//
// Invariant: 0 <= cursor <= len(runes).
type Input struct {
	runes  []rune
	cursor int
}

// InsertRune inserts r at the cursor and advances the cursor past it.
func (in Input) InsertRune(r rune) Input {
	next := make([]rune, 0, len(in.runes)+1)
	next = append(next, in.runes[:in.cursor]...)
	next = append(next, r)
	next = append(next, in.runes[in.cursor:]...)
	return Input{runes: next, cursor: in.cursor + 1}
}

// DeleteBackwards removes the rune before the cursor. A no-op on an empty
// buffer or with the cursor at the start.
func (in Input) DeleteBackwards() Input {
	if in.cursor == 0 {
		return in
	}
	next := make([]rune, 0, len(in.runes)-1)
	next = append(next, in.runes[:in.cursor-1]...)
	next = append(next, in.runes[in.cursor:]...)
	return Input{runes: next, cursor: in.cursor - 1}
}

// Clear resets the buffer to empty with the cursor at 0.
func (in Input) Clear() Input { return Input{} }

// String renders the buffer as the query text.
func (in Input) String() string { return string(in.runes) }

// Cursor reports the rune offset of the cursor.
func (in Input) Cursor() int { return in.cursor }

// Len reports the number of runes in the buffer.
func (in Input) Len() int { return len(in.runes) }

// Equal compares two buffers by value.
func (in Input) Equal(other Input) bool {
	if in.cursor != other.cursor || len(in.runes) != len(other.runes) {
		return false
	}
	for i, r := range in.runes {
		if other.runes[i] != r {
			return false
		}
	}
	return true
}
