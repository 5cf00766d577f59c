package components

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/alexisbeaulieu97/campus/internal/site/content"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators: 5000 becomes "5,000".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// StatCard renders one dashboard counter with a progress bar towards its
// target.
func StatCard(stat content.Stat) *node.Node {
	var bar *node.Node
	if stat.Target > 0 {
		ratio := min(float64(stat.Value)/float64(stat.Target), 1)
		bar = node.El("div", node.Props{}.WithData("progress", fmt.Sprintf("%.3f", ratio)))
	}
	return Card(node.Props{},
		CardTitle(stat.Label),
		node.El("h2", node.Props{}, node.Text(FormatCount(stat.Value))),
		CardDescription(stat.Note),
		bar,
	)
}
