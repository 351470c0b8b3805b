package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"igosint/pkg/config"
	"igosint/pkg/httpclient"
	"igosint/pkg/instagram"
	"igosint/pkg/logger"
	"igosint/pkg/presence"
	"igosint/pkg/ui"
)

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// mockInstagramServer serves profile pages and images
type mockInstagramServer struct {
	server     *httptest.Server
	imageCalls int32
	failImage  bool
	omitImage  bool
}

func newMockInstagramServer(t *testing.T) *mockInstagramServer {
	t.Helper()
	m := &mockInstagramServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("/john/", func(w http.ResponseWriter, r *http.Request) {
		image := ""
		if !m.omitImage {
			image = fmt.Sprintf(`<meta property="og:image" content="%s/images/john.png" />`, m.server.URL)
		}
		fmt.Fprintf(w, `<html><head><title>John (@john) • Instagram</title>
<meta name="description" content="10 Followers, 5 Following, 2 Posts" />
%s</head><body><script>{"full_name": "John Doe"}</script></body></html>`, image)
	})
	mux.HandleFunc("/images/john.png", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&m.imageCalls, 1)
		if m.failImage {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngImage)
	})

	m.server = httptest.NewServer(mux)
	t.Cleanup(m.server.Close)
	return m
}

// fakeProber returns a canned presence result
type fakeProber struct {
	calls int
}

func (f *fakeProber) Probe(ctx context.Context, username string) *presence.Result {
	f.calls++
	result := &presence.Result{}
	result.Add(presence.SiteResult{Site: "github.com", Found: true, URL: "https://github.com/" + username, StatusCode: 200})
	result.Add(presence.SiteResult{Site: "reddit.com", URL: "https://reddit.com/" + username, StatusCode: 404})
	result.Add(presence.SiteResult{Site: "medium.com", URL: "https://medium.com/" + username, Error: "timeout"})
	return result
}

func silenceUI(t *testing.T) {
	t.Helper()
	prev := ui.Output()
	ui.SetOutput(io.Discard)
	ui.SetQuietMode(true)
	t.Cleanup(func() {
		ui.SetOutput(prev)
		ui.SetQuietMode(false)
	})
}

func newTestScraper(t *testing.T, m *mockInstagramServer) (*Scraper, *fakeProber, *logger.TestLogger, string) {
	t.Helper()
	silenceUI(t)

	base := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Output.BaseDirectory = base
	cfg.HTTP.ProfileTimeout = 5 * time.Second
	cfg.HTTP.ImageTimeout = 5 * time.Second

	log := logger.NewTestLogger()
	s := New(cfg, log)

	profiles := instagram.NewClient(httpclient.New(cfg.HTTP, log), cfg.HTTP.ProfileTimeout, log)
	profiles.SetBaseURL(m.server.URL)
	s.SetProfileFetcher(profiles)

	prober := &fakeProber{}
	s.SetProber(prober)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return s, prober, log, base
}

func readReport(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded
}

func TestRunProfileOnly(t *testing.T) {
	m := newMockInstagramServer(t)
	s, prober, _, base := newTestScraper(t, m)

	result, err := s.Run(context.Background(), "john", Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "reports", "john_report.json"), result.ReportPath)
	assert.Equal(t, 0, prober.calls)
	assert.Equal(t, int32(0), atomic.LoadInt32(&m.imageCalls))

	decoded := readReport(t, result.ReportPath)
	assert.Equal(t, "john", decoded["username"])
	assert.Equal(t, "2024-05-01T12:00:00Z", decoded["timestamp"])
	assert.Nil(t, decoded["social_presence"])
	assert.Nil(t, decoded["image_path"])

	data := decoded["instagram_data"].(map[string]interface{})
	assert.Equal(t, "John Doe", data["full_name"])
	assert.Equal(t, "10", data["followers"])
	assert.Equal(t, "public", data["account_type"])

	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, true, summary["account_found"])
	assert.Equal(t, true, summary["has_description"])
	assert.Equal(t, true, summary["has_profile_image"], "og:image was extracted even though nothing was downloaded")
}

func TestRunAllSteps(t *testing.T) {
	m := newMockInstagramServer(t)
	s, prober, log, base := newTestScraper(t, m)

	result, err := s.Run(context.Background(), "john", Options{SocialSearch: true, ImageDownload: true})
	require.NoError(t, err)

	assert.Equal(t, 1, prober.calls)
	assert.Equal(t, int32(1), atomic.LoadInt32(&m.imageCalls))

	imagePath := filepath.Join(base, "images", "john_profile.png")
	content, err := os.ReadFile(imagePath)
	require.NoError(t, err)
	assert.Equal(t, pngImage, content)

	require.NotNil(t, result.Report.ImagePath)
	assert.Equal(t, imagePath, *result.Report.ImagePath)
	assert.Equal(t, 1, result.Report.Summary.SocialSitesFound)
	assert.True(t, result.Report.Summary.HasProfileImage)

	decoded := readReport(t, result.ReportPath)
	social := decoded["social_presence"].(map[string]interface{})
	assert.Len(t, social, 3)
	assert.Equal(t, "timeout", social["medium.com"].(map[string]interface{})["error"])

	assert.True(t, log.HasMessage("Profile image saved"))
}

func TestRunProfileFailureStillWritesReport(t *testing.T) {
	m := newMockInstagramServer(t)
	s, prober, log, _ := newTestScraper(t, m)

	result, err := s.Run(context.Background(), "ghost", Options{SocialSearch: true, ImageDownload: true})
	require.NoError(t, err)

	assert.Nil(t, result.Report.InstagramData)
	assert.Equal(t, 1, prober.calls, "presence probing does not depend on the profile")
	assert.Equal(t, int32(0), atomic.LoadInt32(&m.imageCalls))
	assert.True(t, log.HasMessage("Failed to fetch profile"))

	decoded := readReport(t, result.ReportPath)
	assert.Nil(t, decoded["instagram_data"])
	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, false, summary["account_found"])
	assert.Equal(t, float64(1), summary["social_sites_found"])
}

func TestRunImageFailureLeavesPathEmpty(t *testing.T) {
	m := newMockInstagramServer(t)
	m.failImage = true
	s, _, log, base := newTestScraper(t, m)

	result, err := s.Run(context.Background(), "john", Options{ImageDownload: true})
	require.NoError(t, err)

	assert.Nil(t, result.Report.ImagePath)
	assert.True(t, result.Report.Summary.HasProfileImage)
	assert.True(t, log.HasMessage("Profile image download failed"))

	entries, _ := os.ReadDir(filepath.Join(base, "images"))
	assert.Empty(t, entries)
}

func TestRunSkipsDownloadWithoutImageURL(t *testing.T) {
	m := newMockInstagramServer(t)
	m.omitImage = true
	s, _, _, _ := newTestScraper(t, m)

	result, err := s.Run(context.Background(), "john", Options{ImageDownload: true})
	require.NoError(t, err)

	assert.Nil(t, result.Report.ImagePath)
	assert.False(t, result.Report.Summary.HasProfileImage)
	assert.Equal(t, int32(0), atomic.LoadInt32(&m.imageCalls))
}

func TestRunReportWriteFailure(t *testing.T) {
	m := newMockInstagramServer(t)
	s, _, _, base := newTestScraper(t, m)

	// a file where the reports directory should be
	require.NoError(t, os.WriteFile(filepath.Join(base, "reports"), []byte("x"), 0644))

	result, err := s.Run(context.Background(), "john", Options{})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write report for john")
}

func TestOptionsSteps(t *testing.T) {
	assert.Equal(t, 2, Options{}.steps())
	assert.Equal(t, 3, Options{SocialSearch: true}.steps())
	assert.Equal(t, 4, Options{SocialSearch: true, ImageDownload: true}.steps())
}
