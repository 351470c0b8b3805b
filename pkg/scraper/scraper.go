package scraper

import (
	"context"
	"fmt"
	"time"

	"igosint/pkg/config"
	"igosint/pkg/httpclient"
	"igosint/pkg/instagram"
	"igosint/pkg/logger"
	"igosint/pkg/media"
	"igosint/pkg/presence"
	"igosint/pkg/report"
	"igosint/pkg/storage"
	"igosint/pkg/ui"
)

// Options selects the optional pipeline steps
type Options struct {
	SocialSearch  bool
	ImageDownload bool
}

// steps returns the number of pipeline steps the options enable
func (o Options) steps() int {
	n := 2
	if o.SocialSearch {
		n++
	}
	if o.ImageDownload {
		n++
	}
	return n
}

// Result is the outcome of a run
type Result struct {
	Report     *report.Report
	ReportPath string
}

// Scraper runs the profile analysis pipeline: fetch the profile page,
// optionally probe other sites, optionally download the profile image,
// then write the report. Each data-gathering step degrades to an empty
// result on failure.
type Scraper struct {
	downloader Downloader
	profiles   ProfileFetcher
	prober     PresenceProber
	store      *storage.Manager
	writer     *report.Writer
	config     *config.Config
	logger     logger.Logger
	now        func() time.Time
}

// New creates a Scraper wired from cfg
func New(cfg *config.Config, log logger.Logger) *Scraper {
	if log == nil {
		log = logger.GetLogger()
	}

	client := httpclient.New(cfg.HTTP, log)
	store := storage.NewManager(cfg.Output)

	logger.LogComponentStart(log, "scraper", map[string]interface{}{
		"output_dir":      cfg.Output.BaseDirectory,
		"sites":           len(cfg.Presence.Sites),
		"profile_timeout": cfg.HTTP.ProfileTimeout.String(),
		"markdown":        cfg.Output.Markdown,
	})

	return &Scraper{
		downloader: client,
		profiles:   instagram.NewClient(client, cfg.HTTP.ProfileTimeout, log),
		prober:     presence.NewProber(client, cfg.Presence.Sites, cfg.HTTP.ProbeTimeout, log),
		store:      store,
		writer:     report.NewWriter(store, cfg.Output.Markdown, log),
		config:     cfg,
		logger:     log,
		now:        time.Now,
	}
}

// SetProfileFetcher replaces the profile source
func (s *Scraper) SetProfileFetcher(f ProfileFetcher) {
	s.profiles = f
}

// SetProber replaces the presence prober
func (s *Scraper) SetProber(p PresenceProber) {
	s.prober = p
}

// SetDownloader replaces the image downloader
func (s *Scraper) SetDownloader(d Downloader) {
	s.downloader = d
}

// Run analyzes username. It always writes a report unless writing the
// report itself fails.
func (s *Scraper) Run(ctx context.Context, username string, opts Options) (*Result, error) {
	log := s.logger.WithField("username", username)
	log.InfoWithFields("Starting profile analysis", map[string]interface{}{
		"social_search":  opts.SocialSearch,
		"image_download": opts.ImageDownload,
	})

	steps := ui.NewStepTracker(opts.steps())

	steps.Next("Fetching Instagram profile @" + username)
	record := s.fetchProfile(ctx, username)

	var social *presence.Result
	if opts.SocialSearch {
		steps.Next("Searching social presence")
		social = s.prober.Probe(ctx, username)
		ui.PrintInfo("Sites found", fmt.Sprintf("%d/%d", social.FoundCount(), len(social.Sites)))
	}

	var (
		imagePath *string
		exifTags  []media.Tag
	)
	if opts.ImageDownload {
		steps.Next("Downloading profile image")
		imageURL, ok := "", false
		if record != nil {
			imageURL, ok = record.Get(instagram.FieldProfileImage)
		}
		if ok {
			path, tags, err := s.DownloadImage(ctx, username, imageURL)
			if err == nil {
				imagePath = &path
				exifTags = tags
			}
		} else {
			ui.PrintWarning("No profile image URL found, skipping download")
			log.Debug("No profile image to download")
		}
	}

	steps.Next("Writing report")
	rep := report.New(username, record, social, imagePath, s.now())
	rep.EXIF = exifTags

	path, err := s.writer.Write(rep)
	if err != nil {
		log.WithError(err).Error("Failed to write report")
		return nil, fmt.Errorf("write report for %s: %w", username, err)
	}

	log.InfoWithFields("Profile analysis completed", map[string]interface{}{
		"report":        path,
		"account_found": rep.Summary.AccountFound,
		"sites_found":   rep.Summary.SocialSitesFound,
		"duration_ms":   steps.GetElapsedTime().Milliseconds(),
	})

	return &Result{Report: rep, ReportPath: path}, nil
}

// fetchProfile returns nil when the page cannot be retrieved
func (s *Scraper) fetchProfile(ctx context.Context, username string) *instagram.ProfileRecord {
	record, err := s.profiles.FetchProfile(ctx, username)
	if err != nil {
		s.logger.WithError(err).WithField("username", username).Error("Failed to fetch profile")
		ui.PrintError("Failed to fetch profile", err)
		return nil
	}

	ui.PrintSuccess(fmt.Sprintf("Extracted %d profile fields", record.Len()))
	return record
}

// DownloadImage saves the image at imageURL as the profile image of
// username and reads its EXIF tags. EXIF failures are logged and do not
// fail the download.
func (s *Scraper) DownloadImage(ctx context.Context, username, imageURL string) (string, []media.Tag, error) {
	resp, err := s.downloader.GetOK(ctx, imageURL, s.config.HTTP.ImageTimeout)
	if err != nil {
		logger.LogImageDownload(s.logger, username, "", 0, err)
		ui.PrintError("Failed to download profile image", err)
		return "", nil, err
	}

	path, err := s.store.SaveImage(username, resp.Body)
	if err != nil {
		logger.LogImageDownload(s.logger, username, "", len(resp.Body), err)
		ui.PrintError("Failed to save profile image", err)
		return "", nil, err
	}
	logger.LogImageDownload(s.logger, username, path, len(resp.Body), nil)
	ui.PrintInfo("Image saved", path)

	tags, err := media.ReadEXIF(resp.Body)
	if err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("Failed to read EXIF data")
		return path, nil, nil
	}

	if notable := media.NotableTags(tags); len(notable) > 0 {
		fields := map[string]interface{}{"path": path}
		for _, t := range notable {
			fields[t.Name] = t.Value
		}
		s.logger.WarnWithFields("Profile image carries identifying EXIF tags", fields)
	}

	return path, tags, nil
}
