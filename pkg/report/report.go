package report

import (
	"time"

	"igosint/pkg/instagram"
	"igosint/pkg/media"
	"igosint/pkg/presence"
)

// Summary holds flags derived from the other report sections
type Summary struct {
	AccountFound     bool `json:"account_found"`
	HasProfileImage  bool `json:"has_profile_image"`
	HasDescription   bool `json:"has_description"`
	SocialSitesFound int  `json:"social_sites_found"`
}

// Report is the result of one run. Field order defines the JSON key order.
type Report struct {
	Username       string                   `json:"username"`
	Timestamp      string                   `json:"timestamp"`
	InstagramData  *instagram.ProfileRecord `json:"instagram_data"`
	SocialPresence *presence.Result         `json:"social_presence"`
	ImagePath      *string                  `json:"image_path"`
	Summary        Summary                  `json:"summary"`

	// EXIF is rendered in the Markdown report only
	EXIF []media.Tag `json:"-"`
}

// New assembles a report and computes its summary. Any section may be nil.
func New(username string, record *instagram.ProfileRecord, social *presence.Result, imagePath *string, now time.Time) *Report {
	r := &Report{
		Username:       username,
		Timestamp:      now.Format(time.RFC3339),
		InstagramData:  record,
		SocialPresence: social,
		ImagePath:      imagePath,
	}
	r.Summary = Summarize(record, social)
	return r
}

// Summarize derives the summary flags. has_profile_image follows the
// extracted og:image URL, whether or not the image was downloaded.
func Summarize(record *instagram.ProfileRecord, social *presence.Result) Summary {
	s := Summary{
		AccountFound:     record != nil,
		SocialSitesFound: social.FoundCount(),
	}
	if record != nil {
		s.HasProfileImage = record.Value(instagram.FieldProfileImage) != ""
		s.HasDescription = record.Value(instagram.FieldDescription) != ""
	}
	return s
}

// JSONFilename returns the report file name for username
func JSONFilename(username string) string {
	return username + "_report.json"
}

// MarkdownFilename returns the Markdown report file name for username
func MarkdownFilename(username string) string {
	return username + "_report.md"
}
