package main

type DB interface {
	Close() error
	createMatchTable() error
	getLeagues() ([]string, error)
	getMatches(channelID string) ([]match, error)
	getLastMatch(channelID string) (*match, error)
	insertMatch(m *match) error
	removeMatch(m match) error
	clearLeague(channelID string) error
	// updateLeague replaces every league named in m with the matches in m.
	updateLeague(m []match) error
}

type errNotFound struct{}

func (errNotFound) Error() string { return "not found" }
