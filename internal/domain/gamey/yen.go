package gamey

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	emptySymbol  = '.'
	rowSeparator = "/"
)

var (
	ErrYenSize      = errors.New("size must be a positive integer")
	ErrYenTurn      = errors.New("turn must be a non-negative integer")
	ErrYenPlayers   = errors.New("players must be two distinct single-character symbols")
	ErrYenRowCount  = errors.New("layout row count does not match size")
	ErrYenRowLength = errors.New("layout row has wrong length")
	ErrYenSymbol    = errors.New("layout contains an unknown symbol")
)

// YEN is the wire form of a position.
type YEN struct {
	Size    int      `json:"size" bson:"size"`
	Turn    int      `json:"turn" bson:"turn"`
	Players []string `json:"players" bson:"players"`
	Layout  string   `json:"layout" bson:"layout"`
}

func NewYEN(size, turn int, players []string, layout string) YEN {
	return YEN{Size: size, Turn: turn, Players: players, Layout: layout}
}

// EmptyLayout builds the layout of an empty board, e.g. "./../..." for size 3.
func EmptyLayout(size int) string {
	if size < 1 {
		return ""
	}
	rows := make([]string, size)
	for r := range rows {
		rows[r] = strings.Repeat(string(emptySymbol), r+1)
	}
	return strings.Join(rows, rowSeparator)
}

// YenError reports which decoding rule a YEN broke. Row and Col are -1 when
// the rule is not tied to a position.
type YenError struct {
	Err    error
	Row    int
	Col    int
	Detail string
}

func (e *YenError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Row >= 0 {
		fmt.Fprintf(&b, " at row %d", e.Row)
	}
	if e.Col >= 0 {
		fmt.Fprintf(&b, ", column %d", e.Col)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *YenError) Unwrap() error {
	return e.Err
}

func yenError(err error, detail string) *YenError {
	return &YenError{Err: err, Row: -1, Col: -1, Detail: detail}
}

func parsePlayers(players []string) ([2]rune, error) {
	var symbols [2]rune
	if len(players) != 2 {
		return symbols, yenError(ErrYenPlayers, fmt.Sprintf("got %d players", len(players)))
	}
	for i, p := range players {
		if utf8.RuneCountInString(p) != 1 {
			return symbols, yenError(ErrYenPlayers, fmt.Sprintf("symbol %q is not a single character", p))
		}
		r, _ := utf8.DecodeRuneInString(p)
		if r == emptySymbol || string(r) == rowSeparator {
			return symbols, yenError(ErrYenPlayers, fmt.Sprintf("symbol %q is reserved", p))
		}
		symbols[i] = r
	}
	if symbols[0] == symbols[1] {
		return symbols, yenError(ErrYenPlayers, fmt.Sprintf("symbol %q is used twice", players[0]))
	}
	return symbols, nil
}

// decodeYEN validates y and fills a board. Stone counts are not checked against turn.
func decodeYEN(y YEN) (*Board, [2]rune, error) {
	if y.Size < 1 {
		return nil, [2]rune{}, yenError(ErrYenSize, fmt.Sprintf("got %d", y.Size))
	}
	if y.Turn < 0 {
		return nil, [2]rune{}, yenError(ErrYenTurn, fmt.Sprintf("got %d", y.Turn))
	}
	symbols, err := parsePlayers(y.Players)
	if err != nil {
		return nil, symbols, err
	}

	rows := strings.Split(y.Layout, rowSeparator)
	if len(rows) != y.Size {
		return nil, symbols, yenError(ErrYenRowCount, fmt.Sprintf("expected %d rows, got %d", y.Size, len(rows)))
	}

	// every row is checked before the board is allocated, so its size is
	// bounded by the length of the layout
	cells := make([][]rune, len(rows))
	for r, row := range rows {
		cells[r] = []rune(row)
		if len(cells[r]) != r+1 {
			return nil, symbols, &YenError{
				Err:    ErrYenRowLength,
				Row:    r,
				Col:    -1,
				Detail: fmt.Sprintf("expected %d cells, got %d", r+1, len(cells[r])),
			}
		}
	}

	board, err := NewBoard(y.Size)
	if err != nil {
		return nil, symbols, yenError(ErrYenSize, err.Error())
	}

	for r, row := range cells {
		for c, ch := range row {
			var cell Cell
			switch ch {
			case emptySymbol:
				cell = Empty
			case symbols[0]:
				cell = Owned(Player0)
			case symbols[1]:
				cell = Owned(Player1)
			default:
				return nil, symbols, &YenError{Err: ErrYenSymbol, Row: r, Col: c, Detail: fmt.Sprintf("%q", ch)}
			}
			board.Set(board.rowCol(r, c), cell)
		}
	}
	return board, symbols, nil
}

func encodeLayout(b *Board, symbols [2]rune) string {
	var sb strings.Builder
	sb.Grow(b.Len() + b.size)
	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}
		for col := 0; col <= row; col++ {
			p, ok := b.Get(b.rowCol(row, col)).Owner()
			if !ok {
				sb.WriteRune(emptySymbol)
				continue
			}
			sb.WriteRune(symbols[p])
		}
	}
	return sb.String()
}
