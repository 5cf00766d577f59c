package tabs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/campus/pkg/primitives/controlled"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

var adminTabs = []Tab{
	{Value: "registrations", Label: "Registrations"},
	{Value: "courses", Label: "Courses"},
	{Value: "instructors", Label: "Instructors", Disabled: true},
	{Value: "settings", Label: "Settings"},
}

func panelTree(t *Tabs) *node.Node {
	return t.Root(node.Props{},
		t.List(node.Props{}),
		t.Content("registrations", node.Props{}, node.Text("regs")),
		t.Content("courses", node.Props{}, node.Text("courses")),
		t.Content("instructors", node.Props{}, node.Text("people")),
		t.Content("settings", node.Props{}, node.Text("settings")),
	)
}

func TestDefaultValueShowsOnePanel(t *testing.T) {
	t.Parallel()

	tb := New(Options{DefaultValue: "registrations", Tabs: adminTabs})
	tree := panelTree(tb)

	panels := tree.FindAll(node.ByRole(node.RoleTabpanel))
	require.Len(t, panels, 1)
	require.Equal(t, "content-registrations", panels[0].Props.ID)
	require.Equal(t, "trigger-registrations", panels[0].Props.LabelledBy)
	require.Equal(t, "regs", panels[0].TextContent())
}

func TestTriggerClickActivates(t *testing.T) {
	t.Parallel()

	var changes []string
	tb := New(Options{
		DefaultValue:  "registrations",
		Tabs:          adminTabs,
		OnValueChange: func(v string) { changes = append(changes, v) },
	})

	trigger := panelTree(tb).Find(node.ByID("trigger-courses"))
	require.NotNil(t, trigger)
	require.Equal(t, node.FlagFalse, trigger.Props.Selected)
	require.True(t, trigger.Click())

	require.Equal(t, "courses", tb.Value())
	require.Equal(t, []string{"courses"}, changes)
	tree := panelTree(tb)
	require.Equal(t, StateActive, tree.Find(node.ByID("trigger-courses")).Props.State)
	require.Equal(t, []string{"courses"}, tb.Panels("registrations", "courses", "settings"))
}

func TestDisabledTabIgnoresActivation(t *testing.T) {
	t.Parallel()

	tb := New(Options{DefaultValue: "courses", Tabs: adminTabs})
	require.False(t, tb.Activate("instructors"))
	require.Equal(t, "courses", tb.Value())

	trigger := panelTree(tb).Find(node.ByID("trigger-instructors"))
	require.True(t, trigger.Props.Disabled)
	require.False(t, trigger.Click())
}

func TestUndeclaredValueHidesEveryPanel(t *testing.T) {
	t.Parallel()

	tb := New(Options{DefaultValue: "courses", Tabs: adminTabs})
	require.True(t, tb.Activate("billing"))
	require.Empty(t, panelTree(tb).FindAll(node.ByRole(node.RoleTabpanel)))
}

func TestControlledValue(t *testing.T) {
	t.Parallel()

	var requested []string
	tb := New(Options{
		Value:         controlled.Ptr("settings"),
		Tabs:          adminTabs,
		OnValueChange: func(v string) { requested = append(requested, v) },
	})

	tb.Activate("courses")
	require.Equal(t, "settings", tb.Value())
	require.Equal(t, []string{"courses"}, requested)

	tb.Sync(controlled.Ptr("courses"))
	require.True(t, tb.IsActive("courses"))
}

func TestNextAndPrevSkipDisabledAndWrap(t *testing.T) {
	t.Parallel()

	tb := New(Options{DefaultValue: "courses", Tabs: adminTabs})
	require.True(t, tb.Next())
	require.Equal(t, "settings", tb.Value())
	require.True(t, tb.Next())
	require.Equal(t, "registrations", tb.Value())
	require.True(t, tb.Prev())
	require.Equal(t, "settings", tb.Value())
	require.True(t, tb.Prev())
	require.Equal(t, "courses", tb.Value())

	single := New(Options{DefaultValue: "a", Tabs: []Tab{{Value: "a"}, {Value: "b", Disabled: true}}})
	require.False(t, single.Next())
	require.False(t, New(Options{}).Prev())
}

func TestOrientationAndIDs(t *testing.T) {
	t.Parallel()

	tb := New(Options{ID: "admin", DefaultValue: "courses", Orientation: Vertical, Tabs: adminTabs})
	tree := panelTree(tb)

	list := tree.Find(node.ByRole(node.RoleTablist))
	require.Equal(t, Vertical, list.Props.Orientation)
	require.Len(t, list.FindAll(node.ByRole(node.RoleTab)), len(adminTabs))
	require.NotNil(t, tree.Find(node.ByID("admin-content-courses")))
	require.Contains(t, node.Markup(list), `aria-orientation="vertical"`)

	active := tree.Find(node.ByID("admin-trigger-courses"))
	require.Equal(t, 0, *active.Props.TabIndex)
	require.Equal(t, -1, *tree.Find(node.ByID("admin-trigger-settings")).Props.TabIndex)
}

func TestTriggerKeepsComputedTabIndex(t *testing.T) {
	t.Parallel()

	tb := New(Options{DefaultValue: "courses", Tabs: adminTabs})
	active := tb.Trigger(adminTabs[1], node.Props{TabIndex: node.TabIndex(-1), ClassName: "pill"})
	require.Equal(t, 0, *active.Props.TabIndex)
	require.Equal(t, "pill", active.Props.ClassName)

	declared := tb.Declared()
	require.Equal(t, adminTabs, declared)
	declared[0].Label = "changed"
	require.Equal(t, "Registrations", tb.Declared()[0].Label)
}
