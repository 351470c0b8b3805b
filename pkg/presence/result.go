package presence

import "igosint/internal/jsonutil"

// SiteResult is the outcome of probing a single site
type SiteResult struct {
	Site       string
	Found      bool
	URL        string
	StatusCode int
	// Error holds the transport error message; when set, StatusCode is unused
	Error string
}

// Failed reports whether the probe ended in a transport error
func (s SiteResult) Failed() bool {
	return s.Error != ""
}

// MarshalJSON writes {found, url, status_code} or {found, url, error}
func (s SiteResult) MarshalJSON() ([]byte, error) {
	obj := jsonutil.Object{
		{Key: "found", Value: s.Found},
		{Key: "url", Value: s.URL},
	}
	if s.Failed() {
		obj.Add("error", s.Error)
	} else {
		obj.Add("status_code", s.StatusCode)
	}
	return obj.MarshalJSON()
}

// Result holds per-site outcomes in probe order
type Result struct {
	Sites []SiteResult
}

// Add appends a site outcome
func (r *Result) Add(s SiteResult) {
	r.Sites = append(r.Sites, s)
}

// Get returns the outcome for site
func (r *Result) Get(site string) (SiteResult, bool) {
	for _, s := range r.Sites {
		if s.Site == site {
			return s, true
		}
	}
	return SiteResult{}, false
}

// FoundCount returns the number of sites where the username was found
func (r *Result) FoundCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, s := range r.Sites {
		if s.Found {
			n++
		}
	}
	return n
}

// MarshalJSON writes a site-keyed object that preserves probe order
func (r *Result) MarshalJSON() ([]byte, error) {
	obj := make(jsonutil.Object, 0, len(r.Sites))
	for _, s := range r.Sites {
		obj.Add(s.Site, s)
	}
	return obj.MarshalJSON()
}
