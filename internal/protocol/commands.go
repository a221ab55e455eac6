package protocol

import "github.com/playothello/othello-client/internal/board"

// Outbound commands are fire-and-forget: the server acknowledges
// nothing directly, any effect arrives later as its own inbound frame.
const (
	ActionSendChat   = "chat"
	ActionCreateGame = "create-game"
	ActionMove       = "move"
)

type ChatCommand struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

type CreateGameCommand struct {
	Action string `json:"action"`
	Name   string `json:"name"`
}

type MoveCommand struct {
	Action   string         `json:"action"`
	Position board.Position `json:"position"`
}

func NewChatCommand(text string) ChatCommand {
	return ChatCommand{Action: ActionSendChat, Message: text}
}

func NewCreateGameCommand(name string) CreateGameCommand {
	return CreateGameCommand{Action: ActionCreateGame, Name: name}
}

func NewMoveCommand(x, y int) MoveCommand {
	return MoveCommand{Action: ActionMove, Position: board.Position{X: x, Y: y}}
}
