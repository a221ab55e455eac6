package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/playothello/othello-client/internal/bootstrap"
	"github.com/playothello/othello-client/internal/entity"
	"github.com/playothello/othello-client/internal/lobby"
	"github.com/playothello/othello-client/internal/session"

	rl "github.com/chzyer/readline"
	"golang.org/x/sync/errgroup"
)

// Terminal is the interactive frontend: a lobby screen and a game
// screen, both driven by one readline instance. Sessions are opened
// when a screen is entered and closed when it is left; a session that
// became unavailable is recovered by going back to the lobby and
// opening a fresh one.
type Terminal struct {
	logger    *slog.Logger
	wsBaseURL string
	boot      *bootstrap.Client
	player    entity.Player
	rl        *rl.Instance
}

func New(logger *slog.Logger, wsBaseURL string, boot *bootstrap.Client, player entity.Player) (*Terminal, error) {
	completer := rl.NewPrefixCompleter(
		rl.PcItem("say"),
		rl.PcItem("create"),
		rl.PcItem("games"),
		rl.PcItem("players"),
		rl.PcItem("join"),
		rl.PcItem("move"),
		rl.PcItem("board"),
		rl.PcItem("score"),
		rl.PcItem("back"),
		rl.PcItem("quit"),
	)

	instance, err := rl.NewEx(&rl.Config{
		Prompt:            "lobby» ",
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &Terminal{
		logger:    logger.With("component", "terminal"),
		wsBaseURL: wsBaseURL,
		boot:      boot,
		player:    player,
		rl:        instance,
	}, nil
}

// Run alternates between the lobby screen and a game screen until the
// user quits or the lobby itself cannot be reached.
func (that *Terminal) Run(ctx context.Context) error {
	defer that.rl.Close()

	for {
		gameID, err := that.runLobby(ctx)
		if err != nil {
			return err
		}
		if gameID == "" {
			return nil
		}

		if err = that.runGame(ctx, gameID); err != nil {
			return err
		}
	}
}

// runLobby opens a lobby session seeded from the bootstrap snapshots
// and runs the lobby REPL. It returns the id of the game to enter, or
// "" when the user quit.
func (that *Terminal) runLobby(ctx context.Context) (string, error) {
	games, err := that.boot.ListGames(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch game list: %w", err)
	}

	roster, err := that.boot.ListLobbyPlayers(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch lobby roster: %w", err)
	}

	sess, err := session.DialLobby(ctx, that.logger, that.wsBaseURL, that.player, lobby.NewState(games, roster))
	if err != nil {
		return "", fmt.Errorf("failed to connect to lobby: %w", err)
	}

	group, runCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return sess.Run(runCtx) })
	group.Go(func() error {
		that.followLobby(sess)
		return nil
	})

	gameID := that.lobbyRepl(ctx, sess)

	_ = sess.Close()
	if err = group.Wait(); err != nil {
		return "", fmt.Errorf("lobby session failed: %w", err)
	}

	return gameID, nil
}

// followLobby prints transcript entries as they arrive.
func (that *Terminal) followLobby(sess *session.LobbySession) {
	seen := 0
	for state := range sess.Updates() {
		for _, entry := range state.Chat[seen:] {
			printChatEntry(entry)
		}
		seen = len(state.Chat)
	}

	if sess.Status() == session.StatusUnavailable {
		fmt.Println("Connection to the lobby was lost. Press enter to exit.")
	}
}

func (that *Terminal) lobbyRepl(ctx context.Context, sess *session.LobbySession) string {
	that.rl.SetPrompt("lobby» ")

	printRoster(sess.State().SortedRoster())
	printGames(sess.State().SortedGames(), that.player.ID)

	for {
		if sess.Status() != session.StatusActive {
			return ""
		}

		line, err := that.rl.Readline()
		if errors.Is(err, rl.ErrInterrupt) {
			if len(line) == 0 {
				return ""
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return ""
		}

		cmd, rest := splitCommand(line)
		switch cmd {
		case "say":
			if rest == "" {
				fmt.Println("say <message>")
				continue
			}
			if err = sess.SendChat(ctx, rest); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "create":
			if rest == "" {
				fmt.Println("create <game name>")
				continue
			}
			if err = sess.CreateGame(ctx, rest); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "games":
			printGames(sess.State().SortedGames(), that.player.ID)
		case "players":
			printRoster(sess.State().SortedRoster())
		case "join":
			game, ok := findGame(sess.State(), rest)
			if !ok {
				fmt.Println("join <game id or name>")
				continue
			}
			if !game.IsPlayable(that.player.ID) && !game.IsJoinable(that.player.ID) {
				fmt.Printf("Game %s already has two players\n", game.Name)
				continue
			}
			return game.ID
		case "quit", "exit":
			return ""
		case "":
			continue
		default:
			fmt.Println("commands: say, create, games, players, join, quit")
		}
	}
}

// runGame opens the session for one game and runs the game REPL. A
// lost game session is not fatal: the user lands back in the lobby.
func (that *Terminal) runGame(ctx context.Context, gameID string) error {
	sess, err := session.DialGame(ctx, that.logger, that.wsBaseURL, gameID, that.player)
	if err != nil {
		that.logger.Warn("failed to connect to game", "gameID", gameID, "error", err)
		fmt.Println("This game doesn't exist or has already ended. Heading back to the lobby.")
		return nil
	}

	group, runCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return sess.Run(runCtx) })
	group.Go(func() error {
		that.followGame(sess)
		return nil
	})

	that.gameRepl(ctx, sess)

	_ = sess.Close()
	if err = group.Wait(); err != nil {
		that.logger.Warn("game session failed", "gameID", gameID, "error", err)
		fmt.Println("Connection to the game was lost. Heading back to the lobby.")
	}

	return nil
}

// followGame prints notifications as they arrive and redraws the board
// whenever the turn status changes.
func (that *Terminal) followGame(sess *session.GameSession) {
	seen := 0
	banner := ""
	for state := range sess.Updates() {
		for _, notification := range state.Notifications[seen:] {
			printNotification(notification)
		}
		seen = len(state.Notifications)

		if next := state.Banner(that.player); next != banner {
			banner = next
			printBoard(state.Board)
			fmt.Println(banner)
			that.rl.SetPrompt(gamePrompt(state, that.player))
			that.rl.Refresh()
		}
	}

	if sess.Status() == session.StatusUnavailable {
		fmt.Println("Connection to the game was lost. Press enter to head back to the lobby.")
	}
}

func (that *Terminal) gameRepl(ctx context.Context, sess *session.GameSession) {
	that.rl.SetPrompt(gamePrompt(sess.State(), that.player))

	printBoard(sess.State().Board)
	fmt.Println(sess.State().Banner(that.player))

	for {
		if sess.Status() != session.StatusActive {
			return
		}

		line, err := that.rl.Readline()
		if errors.Is(err, rl.ErrInterrupt) {
			if len(line) == 0 {
				return
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return
		}

		cmd, rest := splitCommand(line)
		switch cmd {
		case "move":
			var x, y int
			if _, err = fmt.Sscan(rest, &x, &y); err != nil {
				fmt.Println("move <x> <y>")
				continue
			}
			if err = sess.PlaceStone(ctx, x, y); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "board", "":
			state := sess.State()
			printBoard(state.Board)
			fmt.Println(state.Banner(that.player))
		case "score":
			printScore(sess.State())
		case "back", "quit", "exit":
			return
		default:
			fmt.Println("commands: move, board, score, back")
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(parts) == 2 {
		return parts[0], strings.TrimSpace(parts[1])
	}
	return parts[0], ""
}

// findGame resolves a user-entered game id or name against the list.
func findGame(state lobby.State, key string) (entity.GameSummary, bool) {
	if key == "" {
		return entity.GameSummary{}, false
	}

	if game, ok := state.Games[key]; ok {
		return game, true
	}

	for _, game := range state.Games {
		if strings.EqualFold(game.Name, key) {
			return game, true
		}
	}

	return entity.GameSummary{}, false
}
