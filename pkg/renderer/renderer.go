// Package renderer turns a page into a markdown document for export and
// preview. It covers every element kind; presentation here is deliberately
// plain since the visual skins live outside the structural model.
package renderer

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

const wrapWidth = 80

// RenderPage renders a whole page. When the page is partitioned each tab
// renders under its own heading (controlled by settings); otherwise the flat
// tree renders alone.
func RenderPage(p *models.Page, settings *models.Settings) string {
	var out strings.Builder
	if p.Title != "" {
		out.WriteString(fmt.Sprintf("# %s\n\n", p.Title))
	}

	if p.TabsEnabled && len(p.Tabs) > 0 {
		for _, tab := range p.Tabs {
			if settings == nil || settings.Output.ShowTabHeading {
				out.WriteString(fmt.Sprintf("## %s\n\n", tab.Label))
			}
			out.WriteString(RenderTree(tab.Sections))
		}
		return out.String()
	}

	out.WriteString(RenderTree(p.Sections))
	return out.String()
}

// RenderTree renders a section tree in reading order: sections top to bottom,
// a section's columns left to right.
func RenderTree(sections []models.Section) string {
	var out strings.Builder
	for _, section := range sections {
		for _, column := range section.Columns {
			for _, el := range column.Elements {
				rendered := RenderElement(el)
				if rendered == "" {
					continue
				}
				out.WriteString(rendered)
				out.WriteString("\n\n")
			}
		}
	}
	return out.String()
}

// RenderElement renders a single element as a markdown fragment without
// trailing blank lines.
func RenderElement(el models.Element) string {
	switch data := el.Data.(type) {
	case *models.TextData:
		return wordwrap.String(data.Text, wrapWidth)

	case *models.HeadingData:
		level := data.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		return fmt.Sprintf("%s %s", strings.Repeat("#", level), data.Text)

	case *models.ImageData:
		img := fmt.Sprintf("![%s](%s)", data.Alt, data.URL)
		if data.Caption != "" {
			img += "\n*" + data.Caption + "*"
		}
		return img

	case *models.EmbedData:
		return fmt.Sprintf("<%s>", data.URL)

	case *models.ButtonData:
		return fmt.Sprintf("[%s](%s)", data.Label, data.URL)

	case *models.ListData:
		return renderList(data)

	case *models.QuoteData:
		quote := "> " + strings.ReplaceAll(wordwrap.String(data.Text, wrapWidth-2), "\n", "\n> ")
		if data.Attribution != "" {
			quote += "\n>\n> — " + data.Attribution
		}
		return quote

	case *models.KPIData:
		return fmt.Sprintf("**%s**: %s %s", data.Label, data.Value, trendArrow(data.Trend))

	case *models.TableData:
		return renderTable(data)

	case *models.CalloutData:
		return fmt.Sprintf("> %s %s", data.Emoji, data.Text)

	case *models.ToggleData:
		return fmt.Sprintf("<details>\n<summary>%s</summary>\n\n%s\n\n</details>", data.Title, data.Body)

	case *models.MultipleChoiceData:
		return renderOptions(data.Question, data.Options, "- [ ] ")

	case *models.RatingData:
		return fmt.Sprintf("%s (1-%d, %s)", data.Question, data.Max, data.Icon)

	case *models.ShortAnswerData:
		return fmt.Sprintf("%s\n_%s_", data.Question, data.Placeholder)

	case *models.ChartData:
		return renderChart(data)

	case *models.CodeData:
		lang := data.Language
		if lang == "plain" {
			lang = ""
		}
		return fmt.Sprintf("```%s\n%s\n```", lang, data.Code)

	case *models.CardData:
		title := data.Title
		if title == "" {
			title = data.URL
		}
		return fmt.Sprintf("[%s](%s)\n%s", title, data.URL, data.Description)

	case *models.CommentData:
		return fmt.Sprintf("> %s\n> — %s", data.Text, data.Author)

	case *models.PollData:
		return renderOptions(data.Question, data.Options, "- ( ) ")

	case *models.TrackerData:
		return fmt.Sprintf("**%s**: %d / %d %s", data.Label, data.Current, data.Target, data.Unit)

	case *models.ProfileData:
		out := fmt.Sprintf("**%s** — %s", data.Name, data.Role)
		if data.Bio != "" {
			out += "\n" + wordwrap.String(data.Bio, wrapWidth)
		}
		return out
	}
	return ""
}

func renderList(data *models.ListData) string {
	var lines []string
	for i, item := range data.Items {
		switch data.Style {
		case "numbered":
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
		case "checklist":
			lines = append(lines, "- [ ] "+item)
		default:
			lines = append(lines, "- "+item)
		}
	}
	return strings.Join(lines, "\n")
}

func renderTable(data *models.TableData) string {
	var out strings.Builder
	out.WriteString("| " + strings.Join(data.Headers, " | ") + " |\n")
	separators := make([]string, len(data.Headers))
	for i := range separators {
		separators[i] = "---"
	}
	out.WriteString("| " + strings.Join(separators, " | ") + " |")
	for _, row := range data.Rows {
		out.WriteString("\n| " + strings.Join(row, " | ") + " |")
	}
	return out.String()
}

func renderOptions(question string, options []string, marker string) string {
	lines := []string{question}
	for _, option := range options {
		lines = append(lines, marker+option)
	}
	return strings.Join(lines, "\n")
}

func renderChart(data *models.ChartData) string {
	lines := []string{fmt.Sprintf("%s chart:", data.Style)}
	for _, series := range data.Series {
		values := make([]string, len(series.Values))
		for i, v := range series.Values {
			values[i] = strings.TrimSuffix(fmt.Sprintf("%.2f", v), ".00")
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", series.Name, strings.Join(values, ", ")))
	}
	return strings.Join(lines, "\n")
}

func trendArrow(trend string) string {
	switch trend {
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return "→"
	}
}
