package entity

// Player is the identity handed out by the server on registration.
// It is read-only here; only the server ever assigns IDs.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Stone values use the wire spelling so boards and assignments
// unmarshal without a mapping step. The empty string doubles as
// "no stone on this tile" and "my stone is not known yet".
type Stone string

const (
	StoneBlack Stone = "black_stone"
	StoneWhite Stone = "white_stone"
	StoneNone  Stone = ""
)

func (that Stone) IsSet() bool {
	return that == StoneBlack || that == StoneWhite
}

// PlayerStone binds one participant to the color they play.
type PlayerStone struct {
	Player Player `json:"player"`
	Stone  Stone  `json:"stone"`
}

// PlayerStones is a game's stone assignment, at most two entries.
type PlayerStones []PlayerStone

// StoneOf returns the stone assigned to the given player, or StoneNone
// if the player is not part of the assignment.
func (that PlayerStones) StoneOf(playerID string) Stone {
	for _, ps := range that {
		if ps.Player.ID == playerID {
			return ps.Stone
		}
	}
	return StoneNone
}

// Opponent returns the participant other than the given player.
func (that PlayerStones) Opponent(playerID string) (PlayerStone, bool) {
	for _, ps := range that {
		if ps.Player.ID != playerID {
			return ps, true
		}
	}
	return PlayerStone{}, false
}

func (that PlayerStones) Contains(playerID string) bool {
	return that.StoneOf(playerID).IsSet()
}
