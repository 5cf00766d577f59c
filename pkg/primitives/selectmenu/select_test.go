package selectmenu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/campus/pkg/primitives/controlled"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

func levelItems() []Item {
	return []Item{
		{Value: "beginner", Label: "Beginner"},
		{Value: "intermediate", Label: "Intermediate"},
		{Value: "advanced", Label: "Advanced", Disabled: true},
	}
}

func TestInitialStateIsClosedWithDefault(t *testing.T) {
	t.Parallel()

	s := New(Options{Items: levelItems()})
	require.False(t, s.IsOpen())
	require.Equal(t, StateClosed, s.State())
	require.Empty(t, s.Value())

	withDefault := New(Options{DefaultValue: "intermediate", Items: levelItems()})
	require.Equal(t, "intermediate", withDefault.Value())
	item, ok := withDefault.SelectedItem()
	require.True(t, ok)
	require.Equal(t, "Intermediate", item.Label)
}

func TestToggleFlipsOpenState(t *testing.T) {
	t.Parallel()

	var opens []bool
	s := New(Options{OnOpenChange: func(v bool) { opens = append(opens, v) }})

	s.Toggle()
	require.True(t, s.IsOpen())
	s.Toggle()
	require.False(t, s.IsOpen())
	s.SetOpen(true)
	require.Equal(t, []bool{true, false, true}, opens)
}

func TestChooseSetsValueAndCloses(t *testing.T) {
	t.Parallel()

	for _, item := range levelItems() {
		if item.Disabled {
			continue
		}
		item := item
		t.Run(item.Value, func(t *testing.T) {
			t.Parallel()

			var events []string
			s := New(Options{
				Items:         levelItems(),
				OnValueChange: func(v string) { events = append(events, "value:"+v) },
				OnOpenChange: func(open bool) {
					if open {
						events = append(events, "open")
					} else {
						events = append(events, "close")
					}
				},
			})
			s.SetOpen(true)

			require.True(t, s.Choose(item.Value))
			require.Equal(t, item.Value, s.Value())
			require.False(t, s.IsOpen())
			require.Equal(t, []string{"open", "value:" + item.Value, "close"}, events)
		})
	}
}

func TestChooseDisabledItemIsNoOp(t *testing.T) {
	t.Parallel()

	calls := 0
	s := New(Options{
		Items:         levelItems(),
		DefaultValue:  "beginner",
		OnValueChange: func(string) { calls++ },
	})
	s.SetOpen(true)

	require.False(t, s.Choose("advanced"))
	require.False(t, s.Choose("unknown"))
	require.Equal(t, "beginner", s.Value())
	require.True(t, s.IsOpen())
	require.Zero(t, calls)
}

func TestChooseWhileClosedDoesNotEmitClose(t *testing.T) {
	t.Parallel()

	closes := 0
	s := New(Options{Items: levelItems(), OnOpenChange: func(bool) { closes++ }})
	require.True(t, s.Choose("beginner"))
	require.Equal(t, "beginner", s.Value())
	require.Zero(t, closes)
}

func TestDisabledSelectIgnoresInteraction(t *testing.T) {
	t.Parallel()

	s := New(Options{Items: levelItems(), Disabled: true})
	s.Toggle()
	require.False(t, s.IsOpen())
	require.False(t, s.Choose("beginner"))

	trigger := s.Trigger(node.Props{})
	require.True(t, trigger.Props.Disabled)
	require.False(t, trigger.Click())
}

func TestControlledValueAndOpen(t *testing.T) {
	t.Parallel()

	var requested []string
	var openRequests []bool
	s := New(Options{
		Items:         levelItems(),
		Value:         controlled.Ptr("beginner"),
		OnValueChange: func(v string) { requested = append(requested, v) },
		Open:          controlled.Ptr(true),
		OnOpenChange:  func(v bool) { openRequests = append(openRequests, v) },
	})

	require.True(t, s.Choose("intermediate"))
	require.Equal(t, "beginner", s.Value())
	require.True(t, s.IsOpen())
	require.Equal(t, []string{"intermediate"}, requested)
	require.Equal(t, []bool{false}, openRequests)

	s.SyncValue(controlled.Ptr("intermediate"))
	s.SyncOpen(controlled.Ptr(false))
	require.Equal(t, "intermediate", s.Value())
	require.False(t, s.IsOpen())
}

func TestContentPresenceFollowsOpenState(t *testing.T) {
	t.Parallel()

	s := New(Options{ID: "course", Items: levelItems()})
	require.Nil(t, s.Content(node.Props{}, s.Items()...))

	trigger := s.Trigger(node.Props{ClassName: "w-full"}, s.ValueText("Choose"))
	require.Equal(t, node.RoleCombobox, trigger.Props.Role)
	require.Equal(t, "course-content", trigger.Props.Controls)
	require.Equal(t, node.FlagFalse, trigger.Props.Expanded)
	require.Equal(t, "w-full", trigger.Props.ClassName)
	require.Equal(t, "Choose", trigger.TextContent())

	require.True(t, trigger.Click())
	content := s.Content(node.Props{}, s.Items()...)
	require.NotNil(t, content)
	require.Equal(t, node.RoleListbox, content.Props.Role)
	require.Equal(t, StateOpen, content.Props.State)
	require.Len(t, content.FindAll(node.ByRole(node.RoleOption)), 3)
}

func TestItemsReflectSelectionAndClicks(t *testing.T) {
	t.Parallel()

	s := New(Options{ID: "level", Items: levelItems(), DefaultOpen: true})
	tree := s.Content(node.Props{}, s.Items()...)

	options := tree.FindAll(node.ByRole(node.RoleOption))
	require.Len(t, options, 3)
	require.Equal(t, ItemUnchecked, options[0].Props.State)
	require.Equal(t, "true", options[2].Props.Data["disabled"])
	require.False(t, options[2].Click())

	require.True(t, options[1].Click())
	require.Equal(t, "intermediate", s.Value())
	require.False(t, s.IsOpen())
	require.Nil(t, s.Content(node.Props{}, s.Items()...))

	s.SetOpen(true)
	rerendered := s.Content(node.Props{}, s.Items()...).FindAll(node.ByRole(node.RoleOption))
	require.Equal(t, ItemChecked, rerendered[1].Props.State)
	require.Equal(t, node.FlagTrue, rerendered[1].Props.Selected)
	require.NotNil(t, rerendered[1].Find(func(n *node.Node) bool { return n.Props.Data["indicator"] == "true" }))
	require.Nil(t, rerendered[0].Find(func(n *node.Node) bool { return n.Props.Data["indicator"] == "true" }))
}

func TestValueTextFallbacks(t *testing.T) {
	t.Parallel()

	s := New(Options{Items: levelItems()})
	placeholder := s.ValueText("Select your experience level")
	require.Equal(t, "Select your experience level", placeholder.TextContent())
	require.Equal(t, "true", placeholder.Props.Data["placeholder"])

	s.Choose("beginner")
	require.Equal(t, "Beginner", s.ValueText("x").TextContent())

	s.SyncValue(controlled.Ptr("custom"))
	require.Equal(t, "custom", s.ValueText("x").TextContent())
}

func TestGroupLabelSeparator(t *testing.T) {
	t.Parallel()

	s := New(Options{Items: levelItems(), DefaultOpen: true})
	tree := s.Content(node.Props{},
		s.Viewport(
			s.Group(node.Props{}, s.Label("Levels"), s.Item(levelItems()[0], node.Props{})),
			s.Separator(),
		),
	)
	require.NotNil(t, tree.Find(node.ByRole(node.RoleGroup)))
	require.NotNil(t, tree.Find(node.ByRole(node.RoleSeparator)))
	require.Contains(t, tree.TextContent(), "Levels")
	require.Len(t, s.Choices(), 3)
}

func TestSetItemsKeepsValue(t *testing.T) {
	t.Parallel()

	s := New(Options{DefaultValue: "intermediate", Items: levelItems()})
	s.SetItems([]Item{{Value: "beginner", Label: "Beginner"}})

	require.Equal(t, "intermediate", s.Value())
	_, ok := s.SelectedItem()
	require.False(t, ok)
	require.False(t, s.Choose("intermediate"))
	require.True(t, s.Choose("beginner"))
	require.Len(t, s.Choices(), 1)
}
