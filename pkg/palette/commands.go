// Package palette implements the insertion workflow: a transient, searchable
// menu of creatable element kinds bound to one column, independent of any UI
// framework so the state machine is testable on its own.
package palette

import (
	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

// Command is one creatable entry in the palette. Disabled commands are
// reserved kinds that render but cannot be selected.
type Command struct {
	Kind        models.ElementKind
	Label       string
	Description string
	Category    string
	Disabled    bool
}

// Category names in their fixed display order.
const (
	CategoryBasics      = "Basics"
	CategoryMedia       = "Media"
	CategoryData        = "Data"
	CategoryInteractive = "Interactive"
	CategorySocial      = "Social"
)

// Categories returns the fixed category order.
func Categories() []string {
	return []string{
		CategoryBasics,
		CategoryMedia,
		CategoryData,
		CategoryInteractive,
		CategorySocial,
	}
}

// Commands returns the full command registry in category order. The set of
// enabled commands tracks the element default table one to one.
func Commands() []Command {
	return []Command{
		{Kind: models.KindText, Label: "Text", Description: "Plain paragraph of rich text", Category: CategoryBasics},
		{Kind: models.KindHeading, Label: "Heading", Description: "Section heading, levels 1-3", Category: CategoryBasics},
		{Kind: models.KindList, Label: "List", Description: "Bulleted, numbered or checklist", Category: CategoryBasics},
		{Kind: models.KindQuote, Label: "Quote", Description: "Pull quote with attribution", Category: CategoryBasics},
		{Kind: models.KindCode, Label: "Code", Description: "Monospaced code snippet", Category: CategoryBasics},

		{Kind: models.KindImage, Label: "Image", Description: "Image from a URL with caption", Category: CategoryMedia},
		{Kind: models.KindEmbed, Label: "Embed", Description: "Embedded external content", Category: CategoryMedia},
		{Kind: models.KindButton, Label: "Button", Description: "Link styled as a button", Category: CategoryMedia},
		{Kind: models.KindCard, Label: "Card", Description: "Third-party card embed", Category: CategoryMedia},
		{Kind: "payment", Label: "Payment", Description: "Checkout button (coming soon)", Category: CategoryMedia, Disabled: true},

		{Kind: models.KindKPI, Label: "KPI", Description: "Metric tile with trend", Category: CategoryData},
		{Kind: models.KindTable, Label: "Table", Description: "Headers and rows", Category: CategoryData},
		{Kind: models.KindChart, Label: "Chart", Description: "Bar, line or pie chart", Category: CategoryData},
		{Kind: models.KindTracker, Label: "Tracker", Description: "Progress toward a target", Category: CategoryData},

		{Kind: models.KindToggle, Label: "Toggle", Description: "Collapsible block", Category: CategoryInteractive},
		{Kind: models.KindMultipleChoice, Label: "Multiple choice", Description: "Question with options", Category: CategoryInteractive},
		{Kind: models.KindRating, Label: "Rating", Description: "Star or scale rating", Category: CategoryInteractive},
		{Kind: models.KindShortAnswer, Label: "Short answer", Description: "Free-form text question", Category: CategoryInteractive},
		{Kind: models.KindPoll, Label: "Poll", Description: "Vote on options", Category: CategoryInteractive},
		{Kind: "form", Label: "Form", Description: "Multi-field form (coming soon)", Category: CategoryInteractive, Disabled: true},

		{Kind: models.KindCallout, Label: "Callout", Description: "Highlighted note with emoji", Category: CategorySocial},
		{Kind: models.KindComment, Label: "Comment", Description: "Authored remark", Category: CategorySocial},
		{Kind: models.KindProfile, Label: "Profile", Description: "Person card with role and bio", Category: CategorySocial},
	}
}
