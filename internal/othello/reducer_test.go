package othello

import (
	"io"
	"log/slog"
	"testing"

	"github.com/playothello/othello-client/internal/board"
	"github.com/playothello/othello-client/internal/entity"
	"github.com/playothello/othello-client/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ann = entity.Player{ID: "p1", Name: "Ann"}
	ben = entity.Player{ID: "p2", Name: "Ben"}
)

// local player in all tests is Ann.
func testReducer() *Reducer {
	return NewReducer(slog.New(slog.NewTextHandler(io.Discard, nil)), ann)
}

func boardWith(assignment entity.PlayerStones) board.Board {
	b := board.Starting()
	b.Players = assignment
	return b
}

func fullAssignment() entity.PlayerStones {
	return entity.PlayerStones{
		{Player: ann, Stone: entity.StoneBlack},
		{Player: ben, Stone: entity.StoneWhite},
	}
}

func TestReducer_Notifications(t *testing.T) {
	t.Run("Join and leave append notifications without touching the board", func(t *testing.T) {
		// Given: a fresh game state
		reducer := testReducer()
		state := NewState()

		// When: join and leave frames are folded
		state = reducer.Apply(state, protocol.PlayerJoined{Player: ben})
		state = reducer.Apply(state, protocol.PlayerLeft{Player: ben})

		// Then: two informational notifications were appended in order
		require.Len(t, state.Notifications, 2)
		assert.Equal(t, "Player Ben joined!", state.Notifications[0].Text)
		assert.Equal(t, "Player Ben left!", state.Notifications[1].Text)
		assert.Equal(t, LevelInfo, state.Notifications[0].Level)

		// And: the board is still the synthetic opening board
		black, white := state.Score()
		assert.Equal(t, 2, black)
		assert.Equal(t, 2, white)
	})

	t.Run("Started and invalid-move carry the server text", func(t *testing.T) {
		// Given: a fresh game state
		reducer := testReducer()
		state := NewState()

		// When: the two text frames are folded
		state = reducer.Apply(state, protocol.GameStarted{Text: "game on"})
		state = reducer.Apply(state, protocol.InvalidMove{Text: "that is not legal"})

		// Then: each text became one notification
		require.Len(t, state.Notifications, 2)
		assert.Equal(t, "game on", state.Notifications[0].Text)
		assert.Equal(t, "that is not legal", state.Notifications[1].Text)
	})

	t.Run("Waiting for opponent clears the turn holder", func(t *testing.T) {
		// Given: a state where Ann holds the turn
		reducer := testReducer()
		state := NewState()
		state.Turn = &TurnHolder{Player: ann, Stone: entity.StoneBlack}

		// When: a waiting frame is folded
		state = reducer.Apply(state, protocol.WaitingForOpponent{Text: "waiting"})

		// Then: the turn is unknown and the text was appended
		assert.Nil(t, state.Turn)
		require.Len(t, state.Notifications, 1)
		assert.Equal(t, "waiting", state.Notifications[0].Text)
	})
}

func TestReducer_NextToMove(t *testing.T) {
	t.Run("Replaces the board and derives both stones", func(t *testing.T) {
		// Given: a fresh state and a snapshot assigning Ann black
		reducer := testReducer()
		state := NewState()

		// When: the turn is assigned to Ann
		state = reducer.Apply(state, protocol.NextToMove{Player: ann, Board: boardWith(fullAssignment())})

		// Then: my stone and the holder's stone come from the assignment
		assert.Equal(t, entity.StoneBlack, state.MyStone)
		require.NotNil(t, state.Turn)
		assert.Equal(t, ann, state.Turn.Player)
		assert.Equal(t, entity.StoneBlack, state.Turn.Stone)
	})

	t.Run("Leaves my stone unknown when I am not assigned", func(t *testing.T) {
		// Given: a snapshot whose assignment has only Ben
		reducer := testReducer()
		state := NewState()
		assignment := entity.PlayerStones{{Player: ben, Stone: entity.StoneWhite}}

		// When: the turn is assigned to Ben
		state = reducer.Apply(state, protocol.NextToMove{Player: ben, Board: boardWith(assignment)})

		// Then: my stone stays unknown
		assert.Equal(t, entity.StoneNone, state.MyStone)
		require.NotNil(t, state.Turn)
		assert.Equal(t, ben, state.Turn.Player)
	})
}

func TestReducer_PlayerMoved(t *testing.T) {
	t.Run("A local move appends nothing and passes the turn", func(t *testing.T) {
		// Given: Ann holds the turn
		reducer := testReducer()
		state := NewState()
		state = reducer.Apply(state, protocol.NextToMove{Player: ann, Board: boardWith(fullAssignment())})

		// When: the server reports Ann's own move
		state = reducer.Apply(state, protocol.PlayerMoved{Player: ann, Board: boardWith(fullAssignment())})

		// Then: no "moved" notification was appended for the local player
		assert.Empty(t, state.Notifications)

		// And: the turn passed to the non-mover with their stone
		require.NotNil(t, state.Turn)
		assert.Equal(t, ben, state.Turn.Player)
		assert.Equal(t, entity.StoneWhite, state.Turn.Stone)
	})

	t.Run("An opponent move appends exactly one notification", func(t *testing.T) {
		// Given: a running game
		reducer := testReducer()
		state := NewState()
		state = reducer.Apply(state, protocol.NextToMove{Player: ben, Board: boardWith(fullAssignment())})

		// When: the server reports Ben's move
		state = reducer.Apply(state, protocol.PlayerMoved{Player: ben, Board: boardWith(fullAssignment())})

		// Then: one notification narrates it and the turn is Ann's
		require.Len(t, state.Notifications, 1)
		assert.Equal(t, "Player Ben moved", state.Notifications[0].Text)
		require.NotNil(t, state.Turn)
		assert.Equal(t, ann, state.Turn.Player)
		assert.Equal(t, entity.StoneBlack, state.Turn.Stone)
	})

	t.Run("Keeps the turn as-is when no opponent is assigned yet", func(t *testing.T) {
		// Given: a board whose assignment names only the mover
		reducer := testReducer()
		state := NewState()
		assignment := entity.PlayerStones{{Player: ann, Stone: entity.StoneBlack}}

		// When: Ann's move is reported
		state = reducer.Apply(state, protocol.PlayerMoved{Player: ann, Board: boardWith(assignment)})

		// Then: there is nobody to pass the turn to
		assert.Nil(t, state.Turn)
	})
}

func TestReducer_GameEnded(t *testing.T) {
	t.Run("Marks the state terminal", func(t *testing.T) {
		// Given: a running game
		reducer := testReducer()
		state := NewState()

		// When: the end frame is folded
		state = reducer.Apply(state, protocol.GameEnded{Text: "Ann wins"})

		// Then: the state is ended and the text was appended
		assert.True(t, state.Ended)
		require.Len(t, state.Notifications, 1)
		assert.Equal(t, "Ann wins", state.Notifications[0].Text)
	})

	t.Run("Drops every frame after the end", func(t *testing.T) {
		// Given: an ended game
		reducer := testReducer()
		state := NewState()
		state = reducer.Apply(state, protocol.GameEnded{Text: "Ann wins"})

		// When: further frames arrive
		next := reducer.Apply(state, protocol.PlayerMoved{Player: ben, Board: boardWith(fullAssignment())})
		next = reducer.Apply(next, protocol.PlayerJoined{Player: ben})
		next = reducer.Apply(next, protocol.GameStarted{Text: "again"})

		// Then: board, notifications and the ended flag are unchanged
		assert.Equal(t, state, next)
	})
}

func TestReducer_Unrecognized(t *testing.T) {
	t.Run("Leaves the prior state identical", func(t *testing.T) {
		// Given: a game with some history
		reducer := testReducer()
		state := NewState()
		state = reducer.Apply(state, protocol.NextToMove{Player: ann, Board: boardWith(fullAssignment())})

		// When: an unrecognized frame is folded
		next := reducer.Apply(state, protocol.Unrecognized{Action: "game-paused"})

		// Then: nothing changed
		assert.Equal(t, state, next)
	})
}

func TestReducer_TurnScenario(t *testing.T) {
	t.Run("Assignment then local move hands the turn to the opponent", func(t *testing.T) {
		// Given: a fresh game, local player Ann
		reducer := testReducer()
		state := NewState()

		// When: the turn is assigned to Ann with her playing black
		state = reducer.Apply(state, protocol.NextToMove{Player: ann, Board: boardWith(fullAssignment())})

		// And: Ann's move is applied
		state = reducer.Apply(state, protocol.PlayerMoved{Player: ann, Board: boardWith(fullAssignment())})

		// Then: the turn holder is the other participant with their stone
		require.NotNil(t, state.Turn)
		assert.Equal(t, ben, state.Turn.Player)
		assert.Equal(t, entity.StoneWhite, state.Turn.Stone)

		// And: no "moved" notification was appended for the local mover
		assert.Empty(t, state.Notifications)
	})
}

func TestState_Banner(t *testing.T) {
	t.Run("Covers all four turn situations", func(t *testing.T) {
		// Given: a fresh state
		state := NewState()

		// Then: with no turn holder the game has not started
		assert.Equal(t, "Game not started yet, waiting for other player to join", state.Banner(ann))

		// And: with Ann holding the turn the banner prompts her
		state.Turn = &TurnHolder{Player: ann, Stone: entity.StoneBlack}
		assert.Equal(t, "It's your move!", state.Banner(ann))

		// And: with Ben holding the turn it names the opponent
		state.Turn = &TurnHolder{Player: ben, Stone: entity.StoneWhite}
		assert.Equal(t, "It's Ben's move", state.Banner(ann))

		// And: an ended game always reports the end
		state.Ended = true
		assert.Equal(t, "Game has ended", state.Banner(ann))
	})
}
