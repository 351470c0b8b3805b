// Package report assembles and writes the result of a profile analysis.
//
// The JSON report is the primary artifact:
//
//	{
//	  "username": "...",
//	  "timestamp": "...",
//	  "instagram_data": {...} | null,
//	  "social_presence": {...} | null,
//	  "image_path": "..." | null,
//	  "summary": {
//	    "account_found": bool,
//	    "has_profile_image": bool,
//	    "has_description": bool,
//	    "social_sites_found": int
//	  }
//	}
//
// It is written with two-space indentation and without HTML escaping.
// Optionally a Markdown rendering, including EXIF tags of the downloaded
// profile image, is written alongside it.
package report
