package protocol

import (
	"github.com/playothello/othello-client/internal/board"
	"github.com/playothello/othello-client/internal/entity"
)

// Inbound frames carry a string "action" field that selects the
// message shape. Each session kind has its own closed set of variants;
// reducers switch over them exhaustively.
const (
	ActionChat            = "chat"
	ActionGameCreated     = "game-created"
	ActionJoinedLobby     = "player-joined-lobby"
	ActionLeftLobby       = "player-left-lobby"
	ActionJoinedGame      = "player-joined"
	ActionLeftGame        = "player-left"
	ActionGameStarted     = "game-started"
	ActionInvalidMove     = "invalid-move"
	ActionWaitingOpponent = "game-waiting-for-opponent"
	ActionNextToMove      = "player-next-to-move"
	ActionPlayerMoved     = "player-moved"
	ActionGameEnded       = "game-end"
)

// LobbyMessage is the closed set of frames a lobby session can receive.
type LobbyMessage interface{ isLobbyMessage() }

// GameMessage is the closed set of frames a game session can receive.
type GameMessage interface{ isGameMessage() }

// Chat is a chat line posted by a player in the lobby.
type Chat struct {
	Sender entity.Player
	Text   string
}

// GameCreated announces a new game room. Games is the complete current
// game list, not a delta.
type GameCreated struct {
	Created entity.GameSummary
	Games   []entity.GameSummary
}

// PlayerJoinedLobby carries the full lobby roster after a join.
type PlayerJoinedLobby struct {
	Player entity.Player
	Roster []entity.Player
}

// PlayerLeftLobby carries the full lobby roster after a leave.
type PlayerLeftLobby struct {
	Player entity.Player
	Roster []entity.Player
}

// PlayerJoined announces a player entering the game room.
type PlayerJoined struct {
	Player entity.Player
}

// PlayerLeft announces a player leaving the game room.
type PlayerLeft struct {
	Player entity.Player
}

// GameStarted carries the server's start announcement.
type GameStarted struct {
	Text string
}

// InvalidMove reports that the last move intent was refused by the
// server. Local state is never updated ahead of the server, so this
// only surfaces as a notification.
type InvalidMove struct {
	Text string
}

// WaitingForOpponent means the game cannot progress until a second
// player joins; the turn holder is unknown until the next assignment.
type WaitingForOpponent struct {
	Text string
}

// NextToMove assigns the turn and carries a full board snapshot.
type NextToMove struct {
	Player entity.Player
	Board  board.Board
}

// PlayerMoved reports an applied move together with the resulting
// board snapshot.
type PlayerMoved struct {
	Player entity.Player
	Board  board.Board
}

// GameEnded is terminal for a game session.
type GameEnded struct {
	Text string
}

// Unrecognized stands in for any frame that could not be decoded:
// unknown action, malformed JSON, or an invalid embedded board.
// Reducers drop it without touching state.
type Unrecognized struct {
	Action string
	Err    error
}

func (Chat) isLobbyMessage()              {}
func (GameCreated) isLobbyMessage()       {}
func (PlayerJoinedLobby) isLobbyMessage() {}
func (PlayerLeftLobby) isLobbyMessage()   {}

func (PlayerJoined) isGameMessage()       {}
func (PlayerLeft) isGameMessage()         {}
func (GameStarted) isGameMessage()        {}
func (InvalidMove) isGameMessage()        {}
func (WaitingForOpponent) isGameMessage() {}
func (NextToMove) isGameMessage()         {}
func (PlayerMoved) isGameMessage()        {}
func (GameEnded) isGameMessage()          {}

func (Unrecognized) isLobbyMessage() {}
func (Unrecognized) isGameMessage()  {}
