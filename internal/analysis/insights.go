package analysis

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// closingInsights is the fixed set of concluding observations printed after
// a full run. No computation happens here; the lines summarize what the
// generated charts show for a typical dataset.
var closingInsights = []string{
	"Visualized trends in matches per season, popular venues, and top-performing teams.",
	"Identified dominant players based on total runs, wickets taken, and Player of the Match awards.",
	"Analyzed scoring patterns, showing run rates typically increase towards the end of innings.",
	"Examined the relationship between toss decisions and match outcomes.",
	"Observed potential trends in average match scores over different seasons.",
}

var furtherAnalysis = []string{
	"Detailed player vs. player or team vs. team statistics.",
	"Venue-specific performance analysis (e.g., impact of toss at specific stadiums).",
	"Performance under pressure (e.g., run rates in chases vs. setting targets).",
	"Building predictive models for match outcomes or player performance.",
}

// PrintClosingSummary writes the static concluding block to out.
func PrintClosingSummary(out io.Writer) {
	color.New(color.FgGreen, color.Bold).Fprintln(out, "\n--- Summary and Conclusion ---")
	fmt.Fprintln(out, "Analysis complete. Key insights derived from the charts and statistics generated:")
	for _, line := range closingInsights {
		fmt.Fprintf(out, "- %s\n", line)
	}
	fmt.Fprintln(out, "\nFurther analysis could explore:")
	for _, line := range furtherAnalysis {
		fmt.Fprintf(out, "  * %s\n", line)
	}
}
