package view

import (
	"fmt"
	"strings"
)

// Markdown renders any page as markdown.
func Markdown(page Page) string {
	if page == nil {
		return ""
	}

	return page.Markdown()
}

// Markdown implements Page.
func (d *Detail) Markdown() string {
	var out strings.Builder

	fmt.Fprintf(&out, "# %s\n\n", d.Title)

	if d.Subtitle != "" {
		fmt.Fprintf(&out, "_%s_\n\n", d.Subtitle)
	}

	if len(d.Attributes) > 0 {
		out.WriteString("| Attribute | Value |\n| --- | --- |\n")

		for _, attribute := range d.Attributes {
			fmt.Fprintf(&out, "| %s | %s |\n", escapeCell(attribute.Label), escapeCell(attribute.Value))
		}

		out.WriteString("\n")
	}

	if d.Text != "" {
		for _, paragraph := range strings.Split(d.Text, "\n\n") {
			fmt.Fprintf(&out, "> %s\n>\n", paragraph)
		}

		out.WriteString("\n")
	}

	for _, group := range d.Groups {
		fmt.Fprintf(&out, "## %s\n\n", group.Title)

		if len(group.Items) == 0 {
			out.WriteString("- None\n\n")

			continue
		}

		for _, ref := range group.Items {
			fmt.Fprintf(&out, "- %s\n", refMarkdown(ref))
		}

		if more := group.MoreText(); more != "" {
			fmt.Fprintf(&out, "- _%s_\n", more)
		}

		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "[← Back to %s](%s)\n", d.Type, d.BackLink)

	return out.String()
}

// Markdown implements Page.
func (n *NotFound) Markdown() string {
	return fmt.Sprintf("# %s\n\n%s\n\n[← Back to %s](%s)\n", n.Title, n.Message, n.Type, n.BackLink)
}

// Markdown implements Page.
func (l *ListView) Markdown() string {
	var out strings.Builder

	fmt.Fprintf(&out, "# %s\n\n", l.Heading())

	if l.Query != "" {
		fmt.Fprintf(&out, "Search: %q\n\n", l.Query)
	}

	if l.Message != "" {
		fmt.Fprintf(&out, "%s\n", l.Message)

		return out.String()
	}

	fmt.Fprintf(&out, "Page %d of %d · %d results\n\n", l.Page, l.TotalPages, l.Count)
	out.WriteString("| Name | Details |\n| --- | --- |\n")

	for _, item := range l.Items {
		fmt.Fprintf(&out, "| [%s](%s) | %s |\n", escapeCell(item.Name), item.Link, escapeCell(item.Summary))
	}

	links := make([]string, 0, 2)
	if l.PrevPage > 0 {
		links = append(links, fmt.Sprintf("[← Previous](%s)", l.PageLink(l.PrevPage)))
	}

	if l.NextPage > 0 {
		links = append(links, fmt.Sprintf("[Next →](%s)", l.PageLink(l.NextPage)))
	}

	if len(links) > 0 {
		fmt.Fprintf(&out, "\n%s\n", strings.Join(links, " · "))
	}

	return out.String()
}

func refMarkdown(ref Ref) string {
	if ref.Link == "" {
		return ref.Name
	}

	return fmt.Sprintf("[%s](%s)", ref.Name, ref.Link)
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}
