package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/playothello/othello-client/internal/apperror"
	"github.com/playothello/othello-client/internal/entity"
)

const requestTimeout = 10 * time.Second

// Client fetches the one-off snapshots a session starts from: the
// local identity, the current game list and the lobby roster. After
// session start these are superseded by inbound snapshot messages.
type Client struct {
	logger  *slog.Logger
	baseURL string
	client  *http.Client
}

func NewClient(logger *slog.Logger, baseURL string) *Client {
	return &Client{
		logger:  logger.With("component", "bootstrap"),
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type createPlayerRequest struct {
	Nickname string `json:"nickname"`
}

// CreatePlayer registers the nickname with the server and returns the
// identity it assigned.
func (that *Client) CreatePlayer(ctx context.Context, nickname string) (entity.Player, error) {
	body, err := json.Marshal(createPlayerRequest{Nickname: nickname})
	if err != nil {
		return entity.Player{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.baseURL+"/create-player", bytes.NewReader(body))
	if err != nil {
		return entity.Player{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var player entity.Player
	if err = that.do(req, &player); err != nil {
		return entity.Player{}, fmt.Errorf("failed to create player: %w", err)
	}

	that.logger.Info("registered player", "id", player.ID, "name", player.Name)

	return player, nil
}

// ListGames returns the current game list.
func (that *Client) ListGames(ctx context.Context) ([]entity.GameSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, that.baseURL+"/list-games", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	var games []entity.GameSummary
	if err = that.do(req, &games); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

// ListLobbyPlayers returns the current lobby roster.
func (that *Client) ListLobbyPlayers(ctx context.Context) ([]entity.Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, that.baseURL+"/list-players-in-lobby", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	var players []entity.Player
	if err = that.do(req, &players); err != nil {
		return nil, fmt.Errorf("failed to list lobby players: %w", err)
	}

	return players, nil
}

func (that *Client) do(req *http.Request, v any) error {
	resp, err := that.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", apperror.ErrBadSnapshot, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrBadSnapshot, err)
	}

	return nil
}
