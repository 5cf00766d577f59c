package components

import (
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// Card renders a bordered container.
func Card(props node.Props, children ...*node.Node) *node.Node {
	own := node.Props{Data: map[string]string{"part": "card"}}
	node.Inherit(&own, props)
	return node.El("div", own, children...)
}

// CardHeader groups the title and description.
func CardHeader(children ...*node.Node) *node.Node {
	return node.El("div", node.Props{}.WithData("part", "card-header"), children...)
}

// CardTitle renders the card heading.
func CardTitle(text string) *node.Node {
	return node.El("div", node.Props{}.WithData("part", "card-title"), node.Text(text))
}

// CardDescription renders muted text under the title. Empty text is absent.
func CardDescription(text string) *node.Node {
	if text == "" {
		return nil
	}
	return node.El("div", node.Props{}.WithData("part", "card-description"), node.Text(text))
}

// CardContent wraps the card body.
func CardContent(children ...*node.Node) *node.Node {
	return node.El("div", node.Props{}.WithData("part", "card-content"), children...)
}

// CardFooter wraps the card actions.
func CardFooter(children ...*node.Node) *node.Node {
	return node.El("div", node.Props{}.WithData("part", "card-footer"), children...)
}
