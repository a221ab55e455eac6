package terminal

import (
	"fmt"

	"github.com/playothello/othello-client/internal/board"
	"github.com/playothello/othello-client/internal/entity"
	"github.com/playothello/othello-client/internal/lobby"
	"github.com/playothello/othello-client/internal/othello"
)

func stoneGlyph(stone entity.Stone) string {
	switch stone {
	case entity.StoneBlack:
		return "●"
	case entity.StoneWhite:
		return "○"
	default:
		return "·"
	}
}

func printBoard(b board.Board) {
	fmt.Print("  ")
	for x := 0; x < board.Size; x++ {
		fmt.Printf(" %d", x)
	}
	fmt.Println()

	for y := 0; y < board.Size; y++ {
		fmt.Printf(" %d", y)
		for x := 0; x < board.Size; x++ {
			glyph := " "
			if tile, ok := b.At(x, y); ok {
				glyph = stoneGlyph(tile.Stone)
			}
			fmt.Printf(" %s", glyph)
		}
		fmt.Println()
	}
}

func printScore(state othello.State) {
	black, white := state.Score()
	fmt.Printf("%s %d  %s %d\n", stoneGlyph(entity.StoneBlack), black, stoneGlyph(entity.StoneWhite), white)
}

func printChatEntry(entry lobby.ChatEntry) {
	if entry.Kind == lobby.ChatKindPlayer {
		fmt.Printf("%s: %s\n", entry.Sender.Name, entry.Text)
		return
	}
	fmt.Printf("* %s\n", entry.Text)
}

func printNotification(notification othello.Notification) {
	if notification.Level == othello.LevelError {
		fmt.Printf("! %s\n", notification.Text)
		return
	}
	fmt.Printf("> %s\n", notification.Text)
}

func printRoster(players []entity.Player) {
	fmt.Printf("Players in lobby (%d):\n", len(players))
	for _, player := range players {
		fmt.Printf("  %s\n", player.Name)
	}
}

func printGames(games []entity.GameSummary, playerID string) {
	if len(games) == 0 {
		fmt.Println("No games yet. Use: create <game name>")
		return
	}

	fmt.Println("Games:")
	for _, game := range games {
		seats := ""
		for _, ps := range game.Players {
			seats += fmt.Sprintf(" %s %s", ps.Player.Name, stoneGlyph(ps.Stone))
		}

		tag := ""
		switch {
		case game.IsPlayable(playerID):
			tag = " [play]"
		case game.IsJoinable(playerID):
			tag = " [join]"
		}

		fmt.Printf("  %s (%d/2)%s%s  id=%s\n", game.Name, len(game.Players), tag, seats, game.ID)
	}
}

// gamePrompt reflects whose move it is, gogogo-client style.
func gamePrompt(state othello.State, local entity.Player) string {
	if state.Ended {
		return "game|ended» "
	}
	if state.IsMyTurn(local) {
		return fmt.Sprintf("game|%s!» ", stoneGlyph(state.MyStone))
	}
	return fmt.Sprintf("game|%s» ", stoneGlyph(state.MyStone))
}
