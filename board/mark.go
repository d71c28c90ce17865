package board

import "fmt"

// Mark is the symbol drawn in a cell
type Mark int

const (
	None Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case None:
		return "none"
	case X:
		return "X"
	case O:
		return "O"
	default:
		return fmt.Sprintf("Mark(%d)", int(m))
	}
}

// ParseMark converts a board character ('X', 'O' or '.') to a Mark
func ParseMark(r rune) (Mark, error) {
	switch r {
	case 'X', 'x':
		return X, nil
	case 'O', 'o':
		return O, nil
	case '.', ' ', '-':
		return None, nil
	}
	return None, fmt.Errorf("unknown mark %q", r)
}
