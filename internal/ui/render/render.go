// Package render formats catalog data for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/ui/style"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(style.Slate)
	idStyle       = lipgloss.NewStyle().Foreground(style.Slate).Faint(true)
	momentStyle   = lipgloss.NewStyle().Foreground(style.Teal)
	timeStyle     = lipgloss.NewStyle().Foreground(style.Amber)
	warnStyle     = lipgloss.NewStyle().Foreground(style.Amber)
)

// Catalog renders the cluster list, one cluster per line, in catalog order.
func Catalog(clusters []domain.Cluster) string {
	if len(clusters) == 0 {
		return "No clusters. Index some photos first.\n"
	}

	var b strings.Builder
	for _, cl := range clusters {
		b.WriteString(clusterLine(cl))
		b.WriteByte('\n')
	}
	return b.String()
}

func clusterLine(cl domain.Cluster) string {
	marker := timeStyle.Render(style.Circle)
	if cl.Kind == domain.KindMoment {
		marker = momentStyle.Render(style.Dot)
	}

	parts := []string{marker, titleStyle.Render(cl.Title)}
	if cl.Subtitle != "" {
		parts = append(parts, subtitleStyle.Render(cl.Subtitle))
	}
	parts = append(parts,
		subtitleStyle.Render(fmt.Sprintf("(%d photos)", cl.Count)),
		idStyle.Render(cl.ID),
	)
	return strings.Join(parts, "  ")
}

// Photos renders a cluster header followed by its members, newest first.
func Photos(cl domain.Cluster, assets []domain.Asset) string {
	var b strings.Builder
	b.WriteString(clusterLine(cl))
	b.WriteByte('\n')

	if len(assets) == 0 {
		b.WriteString("  no accessible photos\n")
		return b.String()
	}

	for i, a := range assets {
		b.WriteString(fmt.Sprintf("  %3d. %s\n", i+1, a.URI))
	}
	return b.String()
}

// PermissionStatus renders the current grant with a hint for blocked states.
func PermissionStatus(status domain.PermissionStatus) string {
	if status.Granted() {
		return fmt.Sprintf("%s library access: %s\n", style.Check, status)
	}
	return warnStyle.Render(fmt.Sprintf("%s library access: %s", style.Lock, status)) +
		"\nRun 'lume grant full' or 'lume grant limited --photo <id>' to allow access.\n"
}
