package analytics

import (
	"fmt"
	"strings"
)

// sectionOrder fixes the display order of report sections.
var sectionOrder = []Section{
	SectionVideos,
	SectionPanels,
	SectionGoals,
	SectionLeaderboards,
	SectionRestrictions,
	SectionPinnedChat,
	SectionPointsContext,
	SectionStreamTags,
}

// ConsoleFormatter provides console output formatting for reports
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatReport formats a single channel report for console display
func (f *ConsoleFormatter) FormatReport(report *Report) string {
	var sb strings.Builder

	// Header
	if report.Status.DisplayName != report.Channel {
		fmt.Fprintf(&sb, "\nChannel: %s (%s)\n\n", report.Status.DisplayName, report.Channel)
	} else {
		fmt.Fprintf(&sb, "\nChannel: %s\n\n", report.Channel)
	}

	// Live status
	if report.Status.Live {
		sb.WriteString("├── Status: LIVE\n")
		if report.Status.Title != "" {
			fmt.Fprintf(&sb, "│   Title: %s\n", report.Status.Title)
		}
		if report.Status.Game != "" {
			fmt.Fprintf(&sb, "│   Game: %s\n", report.Status.Game)
		}
		fmt.Fprintf(&sb, "│   Viewers: %d\n", report.Status.Viewers)
	} else {
		sb.WriteString("├── Status: OFFLINE\n")
	}

	if report.UserID != "" {
		fmt.Fprintf(&sb, "├── User ID: %s\n", report.UserID)
	}

	if report.Status.Description != "" {
		fmt.Fprintf(&sb, "├── About: %s\n", report.Status.Description)
	}

	// Section outcomes
	sb.WriteString("╰── Sections\n")
	for i, section := range sectionOrder {
		prefix := "    ├──"
		if i == len(sectionOrder)-1 {
			prefix = "    ╰──"
		}

		if err, failed := report.Errors[section]; failed {
			fmt.Fprintf(&sb, "%s %s: ✗ %v\n", prefix, section, err)
			continue
		}

		fmt.Fprintf(&sb, "%s %s: ✓ %d bytes\n", prefix, section, len(report.Sections[section]))
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatComparison formats channel status rows as a table
func (f *ConsoleFormatter) FormatComparison(statuses []ChannelStatus) string {
	if len(statuses) == 0 {
		return "No channels to compare\n"
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat("━", 75))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%-22s %-9s %10s  %s\n", "CHANNEL", "STATUS", "VIEWERS", "GAME")
	sb.WriteString(strings.Repeat("━", 75))
	sb.WriteString("\n")

	var liveCount int
	var totalViewers int64

	for _, status := range statuses {
		name := status.DisplayName
		if name == "" {
			name = status.Channel
		}
		if len(name) > 20 {
			name = name[:17] + "..."
		}

		switch {
		case status.Failed():
			fmt.Fprintf(&sb, "%-22s %-9s %10s  %s\n", name, "ERROR", "-", "-")
		case status.Live:
			liveCount++
			totalViewers += status.Viewers
			game := status.Game
			if game == "" {
				game = "-"
			}
			fmt.Fprintf(&sb, "%-22s %-9s %10d  %s\n", name, "LIVE", status.Viewers, game)
		default:
			fmt.Fprintf(&sb, "%-22s %-9s %10s  %s\n", name, "OFFLINE", "-", "-")
		}
	}

	sb.WriteString(strings.Repeat("━", 75))
	sb.WriteString("\n")

	channelText := "channel"
	if len(statuses) != 1 {
		channelText = "channels"
	}
	fmt.Fprintf(&sb, "%d of %d %s live", liveCount, len(statuses), channelText)
	if liveCount > 0 {
		fmt.Fprintf(&sb, ", %d viewers total", totalViewers)
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatChecks formats endpoint probe results for console display
func (f *ConsoleFormatter) FormatChecks(checks []EndpointCheck) string {
	var sb strings.Builder

	var okCount, probedCount int

	sb.WriteString("\n")
	for _, check := range checks {
		switch {
		case check.Skipped:
			fmt.Fprintf(&sb, "⊘ %s (skipped)\n", check.Name)
		case check.Err != nil:
			probedCount++
			fmt.Fprintf(&sb, "✗ %s: %v\n", check.Name, check.Err)
		default:
			okCount++
			probedCount++
			fmt.Fprintf(&sb, "✓ %s\n", check.Name)
		}
	}

	endpointText := "endpoint"
	if probedCount != 1 {
		endpointText = "endpoints"
	}
	fmt.Fprintf(&sb, "\n%d of %d %s answered\n", okCount, probedCount, endpointText)

	return sb.String()
}
