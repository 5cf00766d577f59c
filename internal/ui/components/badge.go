package components

import (
	"github.com/alexisbeaulieu97/campus/internal/site/content"
	"github.com/alexisbeaulieu97/campus/internal/ui/render"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// Badge renders a small coloured label.
func Badge(text string, color render.PaletteFamily) *node.Node {
	if color == "" {
		color = render.Slate
	}
	return node.El("span", node.Props{}.WithData("badge", string(color)), node.Text(text))
}

// LevelColor maps a course level to its badge colour.
func LevelColor(level content.Level) render.PaletteFamily {
	switch level {
	case content.Beginner:
		return render.Green
	case content.Intermediate:
		return render.Yellow
	case content.Advanced:
		return render.Red
	default:
		return render.Slate
	}
}

// LevelBadge renders a course level badge.
func LevelBadge(level content.Level) *node.Node {
	return Badge(string(level), LevelColor(level))
}
