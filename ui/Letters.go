package ui

// 3x5 點陣數字，'#' 代表要畫的格子
var glyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
}

const (
	LetterWidth   = 3
	LetterHeight  = 5
	LetterSpacing = 1
)

// GetCellsFromChar returns the (col, row) offsets lit for ch. Unknown
// characters have no cells.
func GetCellsFromChar(ch rune) [][2]int {
	rows, ok := glyphs[ch]
	if !ok {
		return nil
	}
	var cells [][2]int
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// WordWidth is the number of columns drawLetters needs for word.
func WordWidth(word string) int {
	n := len([]rune(word))
	if n == 0 {
		return 0
	}
	return n*LetterWidth + (n-1)*LetterSpacing
}
