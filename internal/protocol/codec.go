package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/playothello/othello-client/internal/apperror"
	"github.com/playothello/othello-client/internal/board"
	"github.com/playothello/othello-client/internal/entity"
)

// Wire shapes. Field names on the wire differ from the internal ones
// (hyphenated, or renamed like player_who_moved), so each action gets
// an explicit envelope struct here instead of reusing the message types.

type wireEnvelope struct {
	Action string `json:"action"`
}

type wireChat struct {
	Sender  entity.Player `json:"sender"`
	Message string        `json:"message"`
}

type wireGameCreated struct {
	Created entity.GameSummary   `json:"created-game"`
	Games   []entity.GameSummary `json:"games"`
}

type wireLobbyRoster struct {
	Player entity.Player   `json:"player"`
	Roster []entity.Player `json:"players-in-lobby"`
}

type wirePlayer struct {
	Player entity.Player `json:"player"`
}

type wireText struct {
	Message string `json:"message"`
}

type wireNextToMove struct {
	Player entity.Player `json:"player_next_to_move"`
	Board  board.Board   `json:"game"`
}

type wirePlayerMoved struct {
	Player entity.Player `json:"player_who_moved"`
	Board  board.Board   `json:"game"`
}

// DecodeLobby parses one lobby frame. It never fails: anything that
// cannot be decoded comes back as Unrecognized so that a single bad
// frame cannot take the session down.
func DecodeLobby(raw []byte) LobbyMessage {
	action, err := readAction(raw)
	if err != nil {
		return Unrecognized{Err: err}
	}

	switch action {
	case ActionChat:
		var msg wireChat
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return Chat{Sender: msg.Sender, Text: msg.Message}
	case ActionGameCreated:
		var msg wireGameCreated
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return GameCreated{Created: msg.Created, Games: msg.Games}
	case ActionJoinedLobby:
		var msg wireLobbyRoster
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return PlayerJoinedLobby{Player: msg.Player, Roster: msg.Roster}
	case ActionLeftLobby:
		var msg wireLobbyRoster
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return PlayerLeftLobby{Player: msg.Player, Roster: msg.Roster}
	default:
		return Unrecognized{Action: action, Err: apperror.ErrUnknownAction}
	}
}

// DecodeGame parses one game frame, with the same no-fail contract as
// DecodeLobby. Board-carrying frames are only accepted with a valid
// 64-tile board.
func DecodeGame(raw []byte) GameMessage {
	action, err := readAction(raw)
	if err != nil {
		return Unrecognized{Err: err}
	}

	switch action {
	case ActionJoinedGame:
		var msg wirePlayer
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return PlayerJoined{Player: msg.Player}
	case ActionLeftGame:
		var msg wirePlayer
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return PlayerLeft{Player: msg.Player}
	case ActionGameStarted:
		var msg wireText
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return GameStarted{Text: msg.Message}
	case ActionInvalidMove:
		var msg wireText
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return InvalidMove{Text: msg.Message}
	case ActionWaitingOpponent:
		var msg wireText
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return WaitingForOpponent{Text: msg.Message}
	case ActionNextToMove:
		var msg wireNextToMove
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		if err = msg.Board.Validate(); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return NextToMove{Player: msg.Player, Board: msg.Board}
	case ActionPlayerMoved:
		var msg wirePlayerMoved
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		if err = msg.Board.Validate(); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return PlayerMoved{Player: msg.Player, Board: msg.Board}
	case ActionGameEnded:
		var msg wireText
		if err = unmarshalFrame(raw, &msg); err != nil {
			return Unrecognized{Action: action, Err: err}
		}
		return GameEnded{Text: msg.Message}
	default:
		return Unrecognized{Action: action, Err: apperror.ErrUnknownAction}
	}
}

func readAction(raw []byte) (string, error) {
	var envelope wireEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	if envelope.Action == "" {
		return "", fmt.Errorf("%w: missing action", apperror.ErrMalformedMessage)
	}

	return envelope.Action, nil
}

func unmarshalFrame(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}
	return nil
}
