package lobby

import (
	"fmt"
	"log/slog"

	"github.com/playothello/othello-client/internal/protocol"
)

// Reducer folds inbound lobby messages into the next State. It is a
// pure transition function: the previous State value is never touched,
// every change lands on the returned copy.
type Reducer struct {
	logger *slog.Logger
}

func NewReducer(logger *slog.Logger) *Reducer {
	return &Reducer{logger: logger.With("component", "lobby")}
}

func (that *Reducer) Apply(state State, msg protocol.LobbyMessage) State {
	switch m := msg.(type) {
	case protocol.Chat:
		state.Chat = appendChat(state.Chat, PlayerEntry(m.Sender, m.Text))
	case protocol.GameCreated:
		// The server sends the complete game list, not a delta.
		state.Games = gamesByID(m.Games)
		state.Chat = appendChat(state.Chat, SystemEntry(fmt.Sprintf("%s created game", m.Created.Owner.Name)))
	case protocol.PlayerJoinedLobby:
		state.Roster = rosterByID(m.Roster)
		state.Chat = appendChat(state.Chat, SystemEntry(fmt.Sprintf("%s joined the lobby", m.Player.Name)))
	case protocol.PlayerLeftLobby:
		state.Roster = rosterByID(m.Roster)
		state.Chat = appendChat(state.Chat, SystemEntry(fmt.Sprintf("%s left the lobby", m.Player.Name)))
	case protocol.Unrecognized:
		that.logger.Warn("dropping unrecognized lobby frame", "action", m.Action, "error", m.Err)
	}

	return state
}

// appendChat copies before appending so that published snapshots never
// share a backing array with later ones.
func appendChat(entries []ChatEntry, entry ChatEntry) []ChatEntry {
	next := make([]ChatEntry, len(entries), len(entries)+1)
	copy(next, entries)
	return append(next, entry)
}
