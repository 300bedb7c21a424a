package puzzle

import (
	"strconv"
	"strings"

	"github.com/tilepuzzle/fifteen/board"
)

// minLineChars is the shortest a line of text could be and still encode
// 16 distinct tile numbers separated by single spaces (ten single-digit
// tiles 0-9, six two-digit tiles 10-15, 15 separating spaces).
const minLineChars = 37

// ParseLine decodes a line of whitespace-separated decimal tile numbers
// into a Board. It scans digit runs left to right, stopping (and
// rejecting the line) the moment a number falls outside [0, 15] or a
// non-numeric run is found before 16 numbers have been read. Lines
// shorter than minLineChars characters are rejected outright, since no
// shorter line can hold 16 valid tile numbers.
func ParseLine(line string) (board.Board, error) {
	var b board.Board

	trimmed := strings.TrimRight(line, "\r\n")
	if len(trimmed) < minLineChars {
		return b, ErrInvalidLine
	}

	rest := trimmed
	seen := 0
	for seen < board.NumCells {
		rest = strings.TrimLeft(rest, " \t")
		numEnd := 0
		for numEnd < len(rest) && rest[numEnd] >= '0' && rest[numEnd] <= '9' {
			numEnd++
		}
		if numEnd == 0 {
			return b, ErrInvalidLine
		}
		v, err := strconv.Atoi(rest[:numEnd])
		if err != nil || v < 0 || v > 15 {
			return b, ErrInvalidLine
		}
		b[seen] = board.Tile(v)
		seen++
		rest = rest[numEnd:]
	}

	if !isPermutationOfBoardTiles(b) {
		return b, ErrInvalidLine
	}
	return b, nil
}

func isPermutationOfBoardTiles(b board.Board) bool {
	var seen [board.NumCells]bool
	for _, t := range b {
		if seen[t] {
			return false
		}
		seen[t] = true
	}
	return true
}
