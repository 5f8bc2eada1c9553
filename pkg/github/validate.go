package github

import (
	"errors"
	"regexp"
	"strings"
)

// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen.
var validUsername = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)

// ValidateUsername validates a GitHub username or organization name.
// Leading and trailing whitespace is tolerated (the UI trims before
// triggering), but the trimmed value must be non-empty and well-formed.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username is required")
	}
	if !validUsername.MatchString(username) {
		return errors.New("invalid username: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen")
	}
	return nil
}
