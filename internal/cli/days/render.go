package days

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fijnedagvan/dagvan/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// printDays renders a day list as a plain table under a styled heading.
func printDays(heading string, days []models.Day) {
	fmt.Println(headerStyle.Render(heading))

	if len(days) == 0 {
		fmt.Println(dimStyle.Render("No days found."))
		return
	}

	for _, d := range days {
		marker := " "
		if d.Confirmed() {
			marker = "*"
		}
		name := d.Name
		if name == "" {
			name = "(unnamed)"
		}
		line := fmt.Sprintf("%s %-10s %s", marker, d.Date, name)
		if topics := d.Topics(); len(topics) > 0 {
			line += dimStyle.Render("  [" + strings.Join(topics, ", ") + "]")
		}
		fmt.Println(line)
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d day(s); * marks confirmed occurrences", len(days))))
}
