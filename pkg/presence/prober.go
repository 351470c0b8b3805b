package presence

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"igosint/pkg/httpclient"
	"igosint/pkg/logger"
)

// Getter is the subset of httpclient.Client used for probing
type Getter interface {
	Get(ctx context.Context, url string, timeout time.Duration) (*httpclient.Response, error)
}

// Prober checks whether a username resolves to a page on a list of sites
type Prober struct {
	http    Getter
	sites   []string
	timeout time.Duration
	logger  logger.Logger
}

// NewProber creates a prober over sites. Each request is bounded by timeout.
func NewProber(http Getter, sites []string, timeout time.Duration, log logger.Logger) *Prober {
	if log == nil {
		log = logger.GetLogger()
	}

	s := make([]string, len(sites))
	copy(s, sites)

	return &Prober{
		http:    http,
		sites:   s,
		timeout: timeout,
		logger:  log,
	}
}

// Sites returns the probed domains in order
func (p *Prober) Sites() []string {
	return p.sites
}

// SiteURL returns the candidate profile URL of username on site
func SiteURL(site, username string) string {
	return fmt.Sprintf("https://%s/%s", site, username)
}

// Probe requests every site in order. A failing site is recorded and never
// stops the remaining probes.
func (p *Prober) Probe(ctx context.Context, username string) *Result {
	result := &Result{Sites: make([]SiteResult, 0, len(p.sites))}

	for _, site := range p.sites {
		result.Add(p.probeSite(ctx, site, username))
	}

	p.logger.InfoWithFields("Presence probing finished", map[string]interface{}{
		"username": username,
		"sites":    len(result.Sites),
		"found":    result.FoundCount(),
	})

	return result
}

func (p *Prober) probeSite(ctx context.Context, site, username string) SiteResult {
	url := SiteURL(site, username)

	resp, err := p.http.Get(ctx, url, p.timeout)
	if err != nil {
		logger.LogProbe(p.logger, site, url, false, 0, err)
		return SiteResult{Site: site, URL: url, Error: err.Error()}
	}

	found := resp.StatusCode == http.StatusOK
	logger.LogProbe(p.logger, site, url, found, resp.StatusCode, nil)

	return SiteResult{
		Site:       site,
		Found:      found,
		URL:        url,
		StatusCode: resp.StatusCode,
	}
}
