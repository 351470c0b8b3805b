package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"igosint/pkg/instagram"
	"igosint/pkg/report"
)

const notAvailable = "N/A"

var summaryFields = []struct {
	label string
	field instagram.Field
}{
	{"Title", instagram.FieldTitle},
	{"Account type", instagram.FieldAccountType},
	{"Description", instagram.FieldDescription},
	{"Followers", instagram.FieldFollowers},
	{"Following", instagram.FieldFollowing},
	{"Posts", instagram.FieldPosts},
	{"Full name", instagram.FieldFullName},
	{"Biography", instagram.FieldBiography},
}

// RenderSummary formats the results of a run for the console
func RenderSummary(rep *report.Report) string {
	r := lipgloss.NewRenderer(out)
	if !colorEnabled {
		r.SetColorProfile(termenv.Ascii)
	}
	return renderSummary(rep, newSummaryStyles(r))
}

func renderSummary(rep *report.Report, st summaryStyles) string {
	var b strings.Builder

	b.WriteString(st.title.Render("Results Summary"))
	b.WriteString("\n\n")

	if rep.InstagramData == nil {
		b.WriteString(st.failure.Render("❌ No data found for @" + rep.Username))
		return st.panel.Render(b.String())
	}

	row := func(label, value string, ok bool) {
		v := st.value.Render(value)
		if !ok {
			v = st.missing.Render(notAvailable)
		}
		b.WriteString(st.label.Render(label) + v + "\n")
	}

	row("Username", "@"+rep.InstagramData.Username, true)
	for _, f := range summaryFields {
		value, ok := rep.InstagramData.Get(f.field)
		row(f.label, oneLine(value), ok)
	}

	if rep.SocialPresence != nil {
		b.WriteString(st.section.Render("Social sites"))
		b.WriteString("\n")
		for _, s := range rep.SocialPresence.Sites {
			mark := st.failure.Render("❌")
			if s.Found {
				mark = st.success.Render("✅")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", st.label.Render(s.Site), mark))
		}
	}

	if rep.ImagePath != nil {
		b.WriteString(st.section.Render("Profile image"))
		b.WriteString("\n")
		b.WriteString("  " + st.value.Render(*rep.ImagePath) + "\n")
	}

	return st.panel.Render(strings.TrimRight(b.String(), "\n"))
}

// oneLine collapses runs of whitespace, page titles often span lines
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PrintSummary prints the results summary
func PrintSummary(rep *report.Report) {
	if quietMode {
		return
	}
	fmt.Fprintln(out, RenderSummary(rep))
}

// PrintCompletion prints the final report location. It is shown in quiet
// mode so scripts can pick up the path.
func PrintCompletion(reportPath string) {
	fmt.Fprintln(out, Green("✅ Analysis complete! Report saved to: ")+reportPath)
}
