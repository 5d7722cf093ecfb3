package features

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/nova/internal/application"
	"github.com/bnema/nova/internal/domain"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const checksumPrefixLen = 12

type RenderOptions struct {
	Now      time.Time
	Manifest string
}

func renderView(statuses []application.FeatureStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Nova Features"),
		s.header.Render(fmt.Sprintf("installed: %d", len(statuses))),
	}
	if opts.Manifest != "" {
		lines = append(lines, s.header.Render("manifest: "+opts.Manifest))
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No features installed. Say 'improve' or run 'nova features install <topic>'."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, s.section.Render(renderFeature(status, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderFeature(status application.FeatureStatus, opts RenderOptions, s styles) string {
	feature := status.Feature
	parts := []string{s.feature.Render(string(feature.Name))}

	if feature.Topic != "" {
		parts = append(parts, s.detail.Render(fmt.Sprintf("requested as %q", feature.Topic)))
	}

	parts = append(parts, s.meta.Render(fmt.Sprintf("installed %s · sha256 %s",
		installedLabel(feature.InstalledAt, opts.Now),
		shortChecksum(feature.Checksum),
	)))

	if status.Loaded {
		parts = append(parts, s.ok.Render("ready"))
	} else {
		parts = append(parts, s.warning.Render("not loadable, see log"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func installedLabel(at, now time.Time) string {
	if at.IsZero() {
		return "at an unknown time"
	}
	if now.IsZero() {
		return at.Format(time.DateTime)
	}

	age := now.Sub(at)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return pluralize(int(age/time.Minute), "minute") + " ago"
	case age < 48*time.Hour:
		return pluralize(int(age/time.Hour), "hour") + " ago"
	default:
		return at.Format(time.DateOnly)
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func shortChecksum(sum string) string {
	if len(sum) <= checksumPrefixLen {
		return sum
	}
	return sum[:checksumPrefixLen]
}

// RenderSource renders a feature's code as a highlighted markdown document.
func RenderSource(feature domain.FeatureDescriptor, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "# %s\n\n", feature.Name)
	if feature.Topic != "" {
		fmt.Fprintf(&doc, "Requested as *%s*.\n\n", feature.Topic)
	}
	fmt.Fprintf(&doc, "```go\n%s\n```\n", strings.TrimRight(feature.Source, "\n"))

	out, err := renderer.Render(doc.String())
	if err != nil {
		return "", fmt.Errorf("render feature source: %w", err)
	}
	return out, nil
}
