package entity

// GameSummary is a lobby-side listing of a game room. It is distinct
// from the authoritative board state used inside an active game session.
type GameSummary struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Owner   Player       `json:"owner"`
	Players PlayerStones `json:"players"`
}

const maxPlayersPerGame = 2

// IsPlayable reports whether the given player is already registered for
// this game and can open it directly.
func (that *GameSummary) IsPlayable(playerID string) bool {
	return that.Players.Contains(playerID)
}

// IsJoinable reports whether the given player could still take the free
// seat in this game.
func (that *GameSummary) IsJoinable(playerID string) bool {
	if that.Players.Contains(playerID) {
		return false
	}
	return len(that.Players) < maxPlayersPerGame
}
