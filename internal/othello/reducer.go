package othello

import (
	"fmt"
	"log/slog"

	"github.com/playothello/othello-client/internal/entity"
	"github.com/playothello/othello-client/internal/protocol"
)

// Reducer folds inbound game messages into the next State. The local
// player identity is threaded in at construction so the reducer never
// reaches for ambient state.
type Reducer struct {
	logger *slog.Logger
	player entity.Player
}

func NewReducer(logger *slog.Logger, player entity.Player) *Reducer {
	return &Reducer{
		logger: logger.With("component", "othello"),
		player: player,
	}
}

func (that *Reducer) Apply(state State, msg protocol.GameMessage) State {
	if m, ok := msg.(protocol.Unrecognized); ok {
		that.logger.Warn("dropping unrecognized game frame", "action", m.Action, "error", m.Err)
		return state
	}

	// GameEnded is terminal. Whatever arrives afterwards is an anomaly
	// and must not reopen the session.
	if state.Ended {
		that.logger.Warn("dropping frame received after game end", "message", fmt.Sprintf("%T", msg))
		return state
	}

	switch m := msg.(type) {
	case protocol.PlayerJoined:
		state.Notifications = notify(state.Notifications, LevelInfo, fmt.Sprintf("Player %s joined!", m.Player.Name))
	case protocol.PlayerLeft:
		state.Notifications = notify(state.Notifications, LevelInfo, fmt.Sprintf("Player %s left!", m.Player.Name))
	case protocol.GameStarted:
		state.Notifications = notify(state.Notifications, LevelInfo, m.Text)
	case protocol.InvalidMove:
		state.Notifications = notify(state.Notifications, LevelInfo, m.Text)
	case protocol.WaitingForOpponent:
		state.Notifications = notify(state.Notifications, LevelInfo, m.Text)
		state.Turn = nil
	case protocol.NextToMove:
		state.Board = m.Board
		state.MyStone = m.Board.Players.StoneOf(that.player.ID)
		state.Turn = &TurnHolder{Player: m.Player, Stone: m.Board.Players.StoneOf(m.Player.ID)}
	case protocol.PlayerMoved:
		state.Board = m.Board
		if m.Player.ID != that.player.ID {
			state.Notifications = notify(state.Notifications, LevelInfo, fmt.Sprintf("Player %s moved", m.Player.Name))
		}
		// The turn passes to the non-mover. With no opponent assigned
		// yet there is nobody to pass it to, so it stays as it was.
		if opponent, ok := m.Board.Players.Opponent(m.Player.ID); ok {
			state.Turn = &TurnHolder{Player: opponent.Player, Stone: opponent.Stone}
		}
	case protocol.GameEnded:
		state.Notifications = notify(state.Notifications, LevelInfo, m.Text)
		state.Ended = true
	}

	return state
}

// notify copies before appending so that published snapshots never
// share a backing array with later ones.
func notify(feed []Notification, level NotificationLevel, text string) []Notification {
	next := make([]Notification, len(feed), len(feed)+1)
	copy(next, feed)
	return append(next, Notification{Text: text, Level: level})
}
