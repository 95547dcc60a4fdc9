package gamey

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver            = errors.New("game is already finished")
	ErrWrongPlayer         = errors.New("it is not this player's turn")
	ErrOutOfBounds         = errors.New("coordinates are outside the board")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrUnsupportedMovement = errors.New("unsupported movement")
)

var DefaultPlayers = []string{"B", "R"}

// Movement is a single action in a game. Placement is the only kind.
type Movement interface {
	movement()
}

type Placement struct {
	Player PlayerID
	Coords Coordinates
}

func (Placement) movement() {}

// GameStatus is Ongoing with Next set, or Finished with Winner set.
type GameStatus struct {
	Finished bool
	Winner   PlayerID
	Next     PlayerID
}

func Ongoing(next PlayerID) GameStatus {
	return GameStatus{Next: next}
}

func Finished(winner PlayerID) GameStatus {
	return GameStatus{Finished: true, Winner: winner}
}

func (s GameStatus) String() string {
	if s.Finished {
		return "finished"
	}
	return "ongoing"
}

// Outcome is what gets persisted about a game.
type Outcome struct {
	BoardSize  int
	MovesCount int
	Winner     *PlayerID
}

// GameY is one game session. It is built from a YEN, takes moves and is
// encoded back; it is not safe for concurrent use.
type GameY struct {
	board    *Board
	symbols  [2]rune
	ply      int
	trackers [2]*Tracker
	status   GameStatus
}

func NewGame(size int, players []string) (*GameY, error) {
	if size < 1 {
		return nil, yenError(ErrYenSize, fmt.Sprintf("got %d", size))
	}
	return NewGameFromYEN(NewYEN(size, 0, players, EmptyLayout(size)))
}

// NewGameFromYEN decodes y and rebuilds connectivity by replaying every stone
// in row-major order. The status comes from the fully rebuilt board.
func NewGameFromYEN(y YEN) (*GameY, error) {
	board, symbols, err := decodeYEN(y)
	if err != nil {
		return nil, err
	}
	g := &GameY{
		board:   board,
		symbols: symbols,
		ply:     y.Turn,
		trackers: [2]*Tracker{
			NewTracker(board.Len()),
			NewTracker(board.Len()),
		},
	}
	for _, c := range board.AllCoords() {
		if p, ok := board.Get(c).Owner(); ok {
			g.connect(p, c)
		}
	}
	g.status = g.replayStatus()
	return g, nil
}

// replayStatus picks a winner for a decoded board. When both players span
// all sides the one who made the last ply by parity wins.
func (g *GameY) replayStatus() GameStatus {
	last := g.expectedPlayer().Other()
	if g.trackers[last].Won() {
		return Finished(last)
	}
	if g.trackers[last.Other()].Won() {
		return Finished(last.Other())
	}
	return Ongoing(g.expectedPlayer())
}

func (g *GameY) expectedPlayer() PlayerID {
	return PlayerID(g.ply % 2)
}

func (g *GameY) connect(p PlayerID, c Coordinates) {
	g.connectInto(g.trackers[p], p, c)
}

func (g *GameY) connectInto(t *Tracker, p PlayerID, c Coordinates) {
	idx := g.board.Index(c)
	for _, s := range c.Sides() {
		t.TouchSide(idx, s)
	}
	own := Owned(p)
	for _, n := range g.board.Neighbors(c) {
		if g.board.Get(n) == own {
			t.Connect(idx, g.board.Index(n))
		}
	}
}

// AddMove validates and applies m. A rejected move leaves the game untouched.
func (g *GameY) AddMove(m Movement) error {
	switch mv := m.(type) {
	case Placement:
		return g.place(mv)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedMovement, m)
	}
}

func (g *GameY) place(p Placement) error {
	if g.status.Finished {
		return ErrGameOver
	}
	if expected := g.expectedPlayer(); p.Player != expected {
		return fmt.Errorf("%w: expected player %d, got %d", ErrWrongPlayer, expected, p.Player)
	}
	if !g.board.Contains(p.Coords) {
		return fmt.Errorf("%w: %s on a board of size %d", ErrOutOfBounds, p.Coords, g.board.size)
	}
	if !g.board.Get(p.Coords).IsEmpty() {
		return fmt.Errorf("%w: %s", ErrCellOccupied, p.Coords)
	}

	g.board.Set(p.Coords, Owned(p.Player))
	g.ply++
	g.connect(p.Player, p.Coords)

	if g.trackers[p.Player].Won() {
		g.status = Finished(p.Player)
	} else {
		g.status = Ongoing(p.Player.Other())
	}
	return nil
}

// NextPlayer is false once the game is finished.
func (g *GameY) NextPlayer() (PlayerID, bool) {
	if g.status.Finished {
		return 0, false
	}
	return g.status.Next, true
}

func (g *GameY) Status() GameStatus {
	return g.status
}

func (g *GameY) Size() int {
	return g.board.size
}

func (g *GameY) Ply() int {
	return g.ply
}

func (g *GameY) Players() []string {
	return []string{string(g.symbols[0]), string(g.symbols[1])}
}

// Cell returns the cell at c, or false when c is off the board.
func (g *GameY) Cell(c Coordinates) (Cell, bool) {
	if !g.board.Contains(c) {
		return Empty, false
	}
	return g.board.Get(c), true
}

func (g *GameY) AvailableCells() []Coordinates {
	free := make([]Coordinates, 0, g.board.Len())
	for _, c := range g.board.AllCoords() {
		if g.board.Get(c).IsEmpty() {
			free = append(free, c)
		}
	}
	return free
}

func (g *GameY) YEN() YEN {
	return YEN{
		Size:    g.board.size,
		Turn:    g.ply,
		Players: g.Players(),
		Layout:  encodeLayout(g.board, g.symbols),
	}
}

// Wins reports whether p taking the empty cell c would connect all three
// sides for p. The game itself is not modified.
func (g *GameY) Wins(p PlayerID, c Coordinates) bool {
	if !g.board.Contains(c) || !g.board.Get(c).IsEmpty() {
		return false
	}
	t := g.trackers[p].clone()
	g.connectInto(t, p, c)
	return t.Won()
}

func (g *GameY) Outcome() Outcome {
	o := Outcome{BoardSize: g.board.size, MovesCount: g.ply}
	if g.status.Finished {
		w := g.status.Winner
		o.Winner = &w
	}
	return o
}
