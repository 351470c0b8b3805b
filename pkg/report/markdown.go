package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"igosint/pkg/instagram"
	"igosint/pkg/media"
)

const notAvailable = "N/A"

// WriteMarkdown renders a human-readable version of r
func WriteMarkdown(w io.Writer, r *Report) error {
	md := markdown.NewMarkdown(w)

	writeHeader(md, r)
	writeProfile(md, r)
	writePresence(md, r)
	writeImage(md, r)

	return md.Build()
}

func writeHeader(md *markdown.Markdown, r *Report) {
	md.H1("Instagram OSINT Report: @" + r.Username)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Username", r.Username},
			{"Generated", r.Timestamp},
			{"Account Found", yesNo(r.Summary.AccountFound)},
			{"Profile Image", yesNo(r.Summary.HasProfileImage)},
			{"Has Description", yesNo(r.Summary.HasDescription)},
			{"Social Sites Found", strconv.Itoa(r.Summary.SocialSitesFound)},
		},
	})
	md.PlainText("")
}

func writeProfile(md *markdown.Markdown, r *Report) {
	md.H2("Profile")
	md.PlainText("")

	if r.InstagramData == nil {
		md.Warningf("The profile page for @%s could not be retrieved.", r.Username)
		md.PlainText("")
		return
	}

	rows := [][]string{{"URL", cell(r.InstagramData.URL)}}
	for _, field := range instagram.FieldOrder {
		value, ok := r.InstagramData.Get(field)
		if !ok {
			value = notAvailable
		}
		rows = append(rows, []string{string(field), cell(value)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writePresence(md *markdown.Markdown, r *Report) {
	md.H2("Social Presence")
	md.PlainText("")

	if r.SocialPresence == nil {
		md.PlainText("Not checked.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(r.SocialPresence.Sites))
	for _, s := range r.SocialPresence.Sites {
		status := strconv.Itoa(s.StatusCode)
		if s.Failed() {
			status = "error: " + s.Error
		}
		mark := "❌"
		if s.Found {
			mark = "✅"
		}
		rows = append(rows, []string{s.Site, mark, cell(status), cell(s.URL)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Site", "Found", "Status", "URL"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeImage(md *markdown.Markdown, r *Report) {
	md.H2("Profile Image")
	md.PlainText("")

	if r.ImagePath == nil {
		md.PlainText("Not downloaded.")
		md.PlainText("")
		return
	}

	md.PlainText("Saved to `" + *r.ImagePath + "`.")
	md.PlainText("")

	if len(r.EXIF) == 0 {
		md.PlainText("No EXIF metadata.")
		md.PlainText("")
		return
	}

	if notable := media.NotableTags(r.EXIF); len(notable) > 0 {
		md.Warningf("%d identifying EXIF tag(s) found in the profile image.", len(notable))
		md.PlainText("")
	}

	rows := make([][]string, 0, len(r.EXIF))
	for _, t := range r.EXIF {
		category := string(t.Category)
		if category == "" {
			category = "-"
		}
		rows = append(rows, []string{t.Name, cell(t.Value), category})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Tag", "Value", "Category"},
		Rows:   rows,
	})
	md.PlainText("")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// cell keeps a value on one table row
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
