package usecase

// ValidateUsername rejects an empty username. Any other value passes through
// unchanged: no trimming and no case folding.
func ValidateUsername(raw string) (string, error) {
	if raw == "" {
		return "", ErrUsernameRequired
	}
	return raw, nil
}

