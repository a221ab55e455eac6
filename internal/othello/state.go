package othello

import (
	"fmt"

	"github.com/playothello/othello-client/internal/board"
	"github.com/playothello/othello-client/internal/entity"
)

type NotificationLevel string

const (
	LevelInfo  NotificationLevel = "info"
	LevelError NotificationLevel = "error"
)

// Notification is one entry of the game's append-only feed. Nothing
// here ever removes one; how long it stays visible is up to the view.
type Notification struct {
	Text  string
	Level NotificationLevel
}

// TurnHolder names the player whose move it is, with their stone.
type TurnHolder struct {
	Player entity.Player
	Stone  entity.Stone
}

// State is the projection of one game session. The board is replaced
// wholesale by every server snapshot; nothing is computed locally
// beyond view derivations like Score and Banner.
type State struct {
	Board         board.Board
	Turn          *TurnHolder
	MyStone       entity.Stone
	Notifications []Notification
	Ended         bool
}

// NewState starts with the synthetic opening board. It is shown only
// until the first snapshot from the server arrives.
func NewState() State {
	return State{Board: board.Starting()}
}

// IsMyTurn reports whether the local player holds the turn.
func (that State) IsMyTurn(local entity.Player) bool {
	return that.Turn != nil && that.Turn.Player.ID == local.ID
}

// Score counts the stones per color on the current board.
func (that State) Score() (black, white int) {
	return that.Board.Score()
}

// Banner derives the one-line turn status shown above the board.
func (that State) Banner(local entity.Player) string {
	switch {
	case that.Ended:
		return "Game has ended"
	case that.IsMyTurn(local):
		return "It's your move!"
	case that.Turn != nil:
		return fmt.Sprintf("It's %s's move", that.Turn.Player.Name)
	default:
		return "Game not started yet, waiting for other player to join"
	}
}
