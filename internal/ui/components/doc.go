// Package components builds the site's styled elements (buttons, badges,
// cards, form fields, stat cards) as primitive node trees.
//
// Components compute their own props and then fill in whatever the caller
// passed, so the attributes a component relies on cannot be overridden:
//
//	components.Button(components.ButtonOptions{Variant: components.ButtonOutline}, node.Text("Logout"))
//
// Appearance is decided later by internal/ui/render from the data attributes
// set here (data-variant, data-badge, data-part, data-progress).
package components
