package domain

// LogEntry is the public shape of one exercise in a user's log.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// FormatLog projects records onto LogEntry, keeping their order. It never
// returns nil, so an empty log encodes as [].
func FormatLog(records []Exercise) []LogEntry {
	entries := make([]LogEntry, len(records))
	for i, rec := range records {
		entries[i] = FormatEntry(rec)
	}
	return entries
}

// FormatEntry projects a single record.
func FormatEntry(rec Exercise) LogEntry {
	return LogEntry{
		Description: rec.Description,
		Duration:    rec.Duration,
		Date:        FormatDate(rec.Date),
	}
}
