package domain

// Source identifies where an ingested vacancy posting came from. The
// (Channel, MessageID) pair is unique: a posting already stored under it
// is never inserted twice.
type Source struct {
	Channel   string
	MessageID int64
}
