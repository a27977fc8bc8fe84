package state

// QueryBuffer holds the search text typed on the search screen. It only
// grows at the end and shrinks from the end.
type QueryBuffer struct {
	runes []rune
}

// Append adds text to the end of the buffer
func (q *QueryBuffer) Append(text string) {
	q.runes = append(q.runes, []rune(text)...)
}

// Backspace removes the last character. It reports false on an empty buffer.
func (q *QueryBuffer) Backspace() bool {
	if len(q.runes) == 0 {
		return false
	}
	q.runes = q.runes[:len(q.runes)-1]
	return true
}

func (q *QueryBuffer) String() string {
	return string(q.runes)
}

// Len returns the number of characters in the buffer
func (q *QueryBuffer) Len() int {
	return len(q.runes)
}
