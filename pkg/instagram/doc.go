// Package instagram fetches a public Instagram profile page and pulls account
// metadata out of the raw HTML with an ordered table of extraction rules.
//
// The rule table (DefaultRules) is evaluated top to bottom. Each rule targets
// one Field; once a field holds a value, later rules for it are skipped. The
// table covers, in order:
//   - the page title, meta description and og:image
//   - account type from keyword indicators
//   - embedded JSON keys (followers, following, posts, biography, full_name)
//   - case-insensitive fallbacks such as "1,234 followers" or "followers_count"
//
// Values are kept exactly as matched, thousand separators included. A field
// no rule matches is simply absent from the ProfileRecord.
//
// Example usage:
//
//	hc := httpclient.New(cfg.HTTP, log)
//	client := instagram.NewClient(hc, cfg.HTTP.ProfileTimeout, log)
//	record, err := client.FetchProfile(ctx, "username")
//	if err != nil {
//	    // network error or non-2xx status
//	}
//	followers, ok := record.Get(instagram.FieldFollowers)
package instagram
