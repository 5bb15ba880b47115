package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pebblecal/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // month titles, spinner
	colorGreen  = lipgloss.Color("35")  // success, cached formats
	colorYellow = lipgloss.Color("220") // weekends
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // suggested commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // weekday header, freshly rendered formats
	colorDim    = lipgloss.Color("240") // muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for month titles.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for day numbers.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value, such as the seed of a build or one
// holiday date.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Build Summary
// =============================================================================

// printStats prints the size of a build and where each format came from.
func printStats(r *pipeline.Result, formats []string) {
	fmt.Println(statsLine(r.Stats, formats, r.CacheInfo.Hits))
}

// statsLine reads like "27 pages · 12 pebbles · pdf cached · txt fresh".
func statsLine(stats pipeline.Stats, formats, hits []string) string {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d pages", stats.Pages)),
		StyleDim.Render(fmt.Sprintf("%d pebbles", stats.Pebbles)),
	}
	for _, f := range formats {
		if slices.Contains(hits, f) {
			parts = append(parts, styleCached.Render(f+" "+iconCached))
		} else {
			parts = append(parts, styleComputed.Render(f+" "+iconFresh))
		}
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
