package grid

// Word is a word placed on the grid. It is immutable apart from the single
// translation applied when a finished solution is normalized.
type Word struct {
	text        string
	letters     []rune
	orientation Orientation
	cells       []Point
}

func NewWord(text string, origin Point, orientation Orientation) *Word {
	letters := []rune(text)
	cells := make([]Point, len(letters))
	unit := orientation.Unit()
	pos := origin
	for i := range letters {
		cells[i] = pos
		pos = pos.Add(unit)
	}
	return &Word{
		text:        text,
		letters:     letters,
		orientation: orientation,
		cells:       cells,
	}
}

func (w *Word) Text() string             { return w.text }
func (w *Word) Orientation() Orientation { return w.orientation }
func (w *Word) Origin() Point            { return w.cells[0] }
func (w *Word) Len() int                 { return len(w.letters) }

// Cells returns a copy of the positions the word occupies, in letter order.
func (w *Word) Cells() []Point {
	return append([]Point(nil), w.cells...)
}

// LetterAt returns the i-th letter of the word.
func (w *Word) LetterAt(i int) rune {
	return w.letters[i]
}

func (w *Word) moveBy(delta Point) {
	for i := range w.cells {
		w.cells[i] = w.cells[i].Add(delta)
	}
}
