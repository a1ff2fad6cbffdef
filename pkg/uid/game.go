package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for a game session
func GenerateGameID() string {
	return uuid.NewString()
}

// ShortID is the first block of a game id, enough to tell sessions apart
// in log lines.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
