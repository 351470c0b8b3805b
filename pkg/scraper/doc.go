// Package scraper orchestrates a single profile analysis.
//
// A run executes its steps one after another:
//
//  1. fetch https://www.instagram.com/{username}/ and extract profile fields
//  2. optionally probe the configured sites for the same username
//  3. optionally download the profile image (only when one was extracted)
//  4. write the JSON report, plus Markdown when enabled
//
// Failures in steps 1 to 3 are logged and leave the corresponding report
// section empty; only a failure to write the report is returned.
//
// Usage:
//
//	s := scraper.New(cfg, logger.GetLogger())
//	result, err := s.Run(ctx, "instagram_username", scraper.Options{
//	    SocialSearch:  true,
//	    ImageDownload: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.ReportPath)
package scraper
