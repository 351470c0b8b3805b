package instagram

import (
	"fmt"
	"strings"
)

// BaseURL is the base URL for Instagram
const BaseURL = "https://www.instagram.com"

// ProfilePageURL constructs the public profile page URL for a user
func ProfilePageURL(baseURL, username string) string {
	return fmt.Sprintf("%s/%s/", strings.TrimRight(baseURL, "/"), username)
}

// IsValidUsername checks if a username is valid according to Instagram rules.
// Valid names are also safe to use as a file name prefix.
func IsValidUsername(username string) bool {
	if username == "" || len(username) > 30 {
		return false
	}

	// No leading or trailing period and no consecutive periods
	if strings.HasPrefix(username, ".") || strings.HasSuffix(username, ".") || strings.Contains(username, "..") {
		return false
	}

	// Instagram usernames can only contain letters, numbers, periods, and underscores
	for _, char := range username {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '.' || char == '_') {
			return false
		}
	}

	return true
}

// SanitizeUsername strips a leading @ and trailing slashes or spaces
func SanitizeUsername(username string) string {
	username = strings.TrimSpace(username)
	username = strings.TrimPrefix(username, "@")
	return strings.TrimRight(username, "/ ")
}
