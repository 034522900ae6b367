package models

// ScoreEntry is one leaderboard row. Name is a display name, not a foreign
// key; rows submitted before an account rename are updated in bulk.
type ScoreEntry struct {
	Name  string
	Score int64
}
