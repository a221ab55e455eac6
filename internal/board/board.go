package board

import (
	"fmt"

	"github.com/playothello/othello-client/internal/apperror"
	"github.com/playothello/othello-client/internal/entity"
)

// Size is the side length of the board; games are always played on
// Size x Size tiles.
const Size = 8

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is one cell of the board. Stone is StoneNone for an empty cell;
// the wire sends null there, which unmarshals to the zero value.
type Tile struct {
	Position Position     `json:"position"`
	Stone    entity.Stone `json:"stone"`
}

// Board is the full server-owned projection of a game: all 64 tiles
// plus the player-to-stone assignment. The JSON tags match the shape
// the server embeds into game messages.
type Board struct {
	Tiles   []Tile              `json:"board"`
	Players entity.PlayerStones `json:"player_to_stone"`
}

// Starting builds the synthetic opening board shown before the first
// server snapshot arrives: two white stones at (3,3) and (4,4), two
// black stones at (3,4) and (4,3), everything else empty.
func Starting() Board {
	tiles := make([]Tile, 0, Size*Size)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			stone := entity.StoneNone
			if (x == 3 && y == 3) || (x == 4 && y == 4) {
				stone = entity.StoneWhite
			} else if (x == 3 && y == 4) || (x == 4 && y == 3) {
				stone = entity.StoneBlack
			}
			tiles = append(tiles, Tile{Position: Position{X: x, Y: y}, Stone: stone})
		}
	}

	return Board{Tiles: tiles}
}

// At returns the tile at the given position.
func (that *Board) At(x, y int) (Tile, bool) {
	for _, tile := range that.Tiles {
		if tile.Position.X == x && tile.Position.Y == y {
			return tile, true
		}
	}
	return Tile{}, false
}

// Score counts the stones of each color currently on the board.
// Empty tiles count for neither side.
func (that *Board) Score() (black, white int) {
	for _, tile := range that.Tiles {
		switch tile.Stone {
		case entity.StoneBlack:
			black++
		case entity.StoneWhite:
			white++
		}
	}
	return black, white
}

// Validate checks the board shape invariant: exactly Size*Size tiles
// with every position present exactly once, and no more than two
// assignment entries mapping to distinct colors.
func (that *Board) Validate() error {
	if len(that.Tiles) != Size*Size {
		return fmt.Errorf("%w: %d tiles", apperror.ErrMalformedBoard, len(that.Tiles))
	}

	seen := make(map[Position]bool, Size*Size)
	for _, tile := range that.Tiles {
		pos := tile.Position
		if pos.X < 0 || pos.X >= Size || pos.Y < 0 || pos.Y >= Size {
			return fmt.Errorf("%w: position (%d,%d) out of range", apperror.ErrMalformedBoard, pos.X, pos.Y)
		}
		if seen[pos] {
			return fmt.Errorf("%w: duplicate position (%d,%d)", apperror.ErrMalformedBoard, pos.X, pos.Y)
		}
		seen[pos] = true
	}

	if len(that.Players) > 2 {
		return fmt.Errorf("%w: %d players assigned", apperror.ErrMalformedBoard, len(that.Players))
	}
	if len(that.Players) == 2 && that.Players[0].Stone == that.Players[1].Stone {
		return fmt.Errorf("%w: both players assigned %s", apperror.ErrMalformedBoard, that.Players[0].Stone)
	}

	return nil
}
