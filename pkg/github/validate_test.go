package github

import "testing"

func TestValidateUsername(t *testing.T) {
	valid := []string{
		"octocat",
		"a",
		"torvalds",
		"user-name",
		"User123",
		"a1b2c3",
		"  octocat  ", // trimmed before validation
	}
	for _, username := range valid {
		if err := ValidateUsername(username); err != nil {
			t.Errorf("ValidateUsername(%q) = %v, want nil", username, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"-leading-hyphen",
		"has space",
		"under_score",
		"dot.ted",
		"waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaytoolong",
	}
	for _, username := range invalid {
		if err := ValidateUsername(username); err == nil {
			t.Errorf("ValidateUsername(%q) = nil, want error", username)
		}
	}
}
