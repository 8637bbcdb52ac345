package game

import (
	"fmt"
	"strings"
)

// RenderDebug dumps the grid as tile glyphs, followed by the spare tile and a player legend.
func (b *Board) RenderDebug() string {
	var sb strings.Builder
	for y := range Size {
		glyphs := make([][3]string, Size)
		for x := range Size {
			glyphs[x] = b.grid[y][x].Glyph()
		}
		for row := range 3 {
			for x := range Size {
				sb.WriteString(glyphs[x][row])
			}
			sb.WriteByte('\n')
		}
	}

	spare := b.spare.Glyph()
	fmt.Fprintf(&sb, "spare %s %s\n", b.spare.openings, treasureLabel(b.spare.treasure))
	for _, row := range spare {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	for _, p := range b.Players() {
		c := b.positions[p]
		fmt.Fprintf(&sb, "player %d at %s on %s\n", p, c, treasureLabel(b.TileAt(c).treasure))
	}
	return sb.String()
}

func treasureLabel(t Treasure) string {
	if t == NoTreasure {
		return "-"
	}
	return string(t)
}
