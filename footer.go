package gridmenu

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"gridmenu/style"
)

// RenderFooter renders a footer with metadata about the table.
func RenderFooter(current, total int, filtered []string, name string, width int) string {

	left := fmt.Sprintf("%s/%s", humanize.Comma(int64(current)), humanize.Comma(int64(total)))
	if len(filtered) > 0 {
		left += "  " + style.FilterIcon + " " + strings.Join(filtered, ", ")
	}
	right := name

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
