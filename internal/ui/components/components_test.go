package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/campus/internal/site/content"
	"github.com/alexisbeaulieu97/campus/internal/ui/render"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

func TestButtonDefaultsAndCallerProps(t *testing.T) {
	t.Parallel()

	clicked := false
	b := Button(ButtonOptions{Props: node.Props{ID: "submit", OnClick: func() { clicked = true }}}, node.Text("Submit"))
	require.Equal(t, "button", b.Tag)
	require.Equal(t, "button", b.Props.Type)
	require.Equal(t, "default", b.Props.Data["variant"])
	require.Equal(t, "submit", b.Props.ID)
	require.True(t, b.Click())
	require.True(t, clicked)

	forced := Button(ButtonOptions{Variant: ButtonOutline, Props: node.Props{}.WithData("variant", "ghost")})
	require.Equal(t, "outline", forced.Props.Data["variant"])
}

func TestButtonAsChildBecomesTheChild(t *testing.T) {
	t.Parallel()

	navigated := ""
	link := LinkButton("/courses", "Explore Courses", ButtonDefault, func() { navigated = "/courses" })
	require.Equal(t, "a", link.Tag)
	require.Equal(t, "/courses", link.Props.Href)
	require.Equal(t, "lg", link.Props.Data["size"])
	require.Empty(t, link.Props.Type)
	require.True(t, link.Click())
	require.Equal(t, "/courses", navigated)

	require.Panics(t, func() {
		Button(ButtonOptions{AsChild: true}, node.Text("a"), node.Text("b"))
	})
}

func TestLevelBadgeColors(t *testing.T) {
	t.Parallel()

	require.Equal(t, "green", LevelBadge(content.Beginner).Props.Data["badge"])
	require.Equal(t, "yellow", LevelBadge(content.Intermediate).Props.Data["badge"])
	require.Equal(t, "red", LevelBadge(content.Advanced).Props.Data["badge"])
	require.Equal(t, render.Slate, LevelColor("Expert"))
	require.Equal(t, "slate", Badge("x", "").Props.Data["badge"])
}

func TestCardParts(t *testing.T) {
	t.Parallel()

	card := Card(node.Props{ClassName: "course"},
		CardHeader(CardTitle("React.js Mastery"), CardDescription("")),
		CardContent(node.Text("10 weeks")),
		CardFooter(Button(ButtonOptions{}, node.Text("Enroll Now"))),
	)
	require.Equal(t, "card", card.Props.Data["part"])
	require.Equal(t, "course", card.Props.ClassName)
	require.Len(t, card.Children[0].Children, 1, "empty description is absent")
	require.Contains(t, card.TextContent(), "Enroll Now")
}

func TestFieldsAndStat(t *testing.T) {
	t.Parallel()

	field := Field("email", "Email Address *", Input("email", "Enter your email address", ""))
	require.Equal(t, "email", field.Find(func(n *node.Node) bool { return n.Tag == "label" }).Props.HTMLFor)
	require.NotNil(t, field.Find(node.ByID("email")))
	require.Equal(t, "motivation", Textarea("motivation", "", "").Props.Data["field"])

	require.Equal(t, "5,000", FormatCount(5000))
	require.Equal(t, "150", FormatCount(150))

	stat := StatCard(content.Stat{Label: "Total Students", Value: 5000, Target: 6000, Note: "+12% from last month"})
	require.Contains(t, stat.TextContent(), "5,000")
	bar := stat.Find(func(n *node.Node) bool { return n.Props.Data["progress"] != "" })
	require.Equal(t, "0.833", bar.Props.Data["progress"])
	require.Nil(t, StatCard(content.Stat{Label: "x"}).Find(func(n *node.Node) bool { return n.Props.Data["progress"] != "" }))
}
