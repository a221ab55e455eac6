package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playothello/othello-client/internal/entity"
	"github.com/playothello/othello-client/internal/lobby"
	"github.com/playothello/othello-client/internal/othello"
	"github.com/playothello/othello-client/internal/protocol"
)

// LobbySession is the controller for the shared lobby stream.
type LobbySession struct {
	*Session[lobby.State, protocol.LobbyMessage]
}

// DialLobby opens the lobby channel for the given player. The initial
// state normally comes from the bootstrap snapshots.
func DialLobby(ctx context.Context, logger *slog.Logger, wsBaseURL string, player entity.Player, initial lobby.State) (*LobbySession, error) {
	conn, err := Dial(ctx, fmt.Sprintf("%s/lobby/%s", wsBaseURL, player.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to open lobby session: %w", err)
	}

	reducer := lobby.NewReducer(logger)

	return &LobbySession{New(logger, conn, protocol.DecodeLobby, reducer.Apply, initial)}, nil
}

func (that *LobbySession) SendChat(ctx context.Context, text string) error {
	return that.Send(ctx, protocol.NewChatCommand(text))
}

func (that *LobbySession) CreateGame(ctx context.Context, name string) error {
	return that.Send(ctx, protocol.NewCreateGameCommand(name))
}

// GameSession is the controller for one game's stream.
type GameSession struct {
	*Session[othello.State, protocol.GameMessage]
}

// DialGame opens the channel for one game as the given player.
func DialGame(ctx context.Context, logger *slog.Logger, wsBaseURL, gameID string, player entity.Player) (*GameSession, error) {
	conn, err := Dial(ctx, fmt.Sprintf("%s/game/%s/%s", wsBaseURL, gameID, player.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to open game session: %w", err)
	}

	reducer := othello.NewReducer(logger, player)

	return &GameSession{New(logger, conn, protocol.DecodeGame, reducer.Apply, othello.NewState())}, nil
}

func (that *GameSession) PlaceStone(ctx context.Context, x, y int) error {
	return that.Send(ctx, protocol.NewMoveCommand(x, y))
}
