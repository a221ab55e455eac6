package lobby

import (
	"sort"

	"github.com/playothello/othello-client/internal/entity"
)

// ChatKind discriminates the two kinds of transcript entries. The kind
// is decided once, when the entry is created, so rendering never has
// to inspect the entry again.
type ChatKind string

const (
	ChatKindPlayer ChatKind = "player"
	ChatKindSystem ChatKind = "system"
)

// ChatEntry is one line of the lobby transcript: either a chat line
// from a player or a synthesized system notice.
type ChatEntry struct {
	Kind   ChatKind
	Sender entity.Player
	Text   string
}

func PlayerEntry(sender entity.Player, text string) ChatEntry {
	return ChatEntry{Kind: ChatKindPlayer, Sender: sender, Text: text}
}

func SystemEntry(text string) ChatEntry {
	return ChatEntry{Kind: ChatKindSystem, Text: text}
}

// State is the lobby projection: the chat transcript, the roster of
// connected players and the list of game rooms. It is only ever
// mutated by the Reducer, one message at a time.
type State struct {
	Chat   []ChatEntry
	Roster map[string]entity.Player
	Games  map[string]entity.GameSummary
}

// NewState seeds a fresh lobby state from the bootstrap snapshots.
// Later roster and game-list messages replace these wholesale.
func NewState(games []entity.GameSummary, roster []entity.Player) State {
	return State{
		Roster: rosterByID(roster),
		Games:  gamesByID(games),
	}
}

// SortedGames returns the game list ordered by name for display.
func (that State) SortedGames() []entity.GameSummary {
	games := make([]entity.GameSummary, 0, len(that.Games))
	for _, game := range that.Games {
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Name < games[j].Name })
	return games
}

// SortedRoster returns the connected players ordered by name.
func (that State) SortedRoster() []entity.Player {
	players := make([]entity.Player, 0, len(that.Roster))
	for _, player := range that.Roster {
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players
}

func rosterByID(roster []entity.Player) map[string]entity.Player {
	byID := make(map[string]entity.Player, len(roster))
	for _, player := range roster {
		byID[player.ID] = player
	}
	return byID
}

func gamesByID(games []entity.GameSummary) map[string]entity.GameSummary {
	byID := make(map[string]entity.GameSummary, len(games))
	for _, game := range games {
		byID[game.ID] = game
	}
	return byID
}
