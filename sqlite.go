package main

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type sqlite struct {
	db *sqlx.DB
}

func NewSqlite(filename string) (DB, error) {
	db, err := sqlx.Connect("sqlite3", filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", filename)
	}

	s := sqlite{db: db}

	if err := s.createMatchTable(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *sqlite) Close() error {
	return errors.Wrap(s.db.Close(), "unable to close database")
}

func (s *sqlite) createMatchTable() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS matches (
		id INTEGER NOT NULL PRIMARY KEY,
		channel_id TEXT NOT NULL,
		home TEXT NOT NULL,
		away TEXT NOT NULL,
		home_imps INTEGER NOT NULL,
		away_imps INTEGER NOT NULL,
		boards INTEGER NOT NULL,
		played INTEGER NOT NULL
	)`)

	return errors.Wrap(err, "unable to create table matches")
}

func (s *sqlite) getLeagues() ([]string, error) {
	l := []string{}
	err := s.db.Select(&l, `SELECT DISTINCT channel_id FROM matches ORDER BY channel_id`)
	return l, errors.Wrap(err, "unable to get leagues")
}

func (s *sqlite) getMatches(channelID string) ([]match, error) {
	m := []match{}
	err := s.db.Select(&m, `SELECT id, channel_id, home, away, home_imps, away_imps, boards, played FROM matches WHERE channel_id=? ORDER BY id`, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get matches")
	}

	return m, nil
}

func (s *sqlite) getLastMatch(channelID string) (*match, error) {
	m := []match{}
	err := s.db.Select(&m, `SELECT id, channel_id, home, away, home_imps, away_imps, boards, played FROM matches WHERE channel_id=? ORDER BY id DESC LIMIT 1`, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to select from matches")
	}

	if len(m) == 0 {
		return nil, errors.Wrap(errNotFound{}, "unable to get last match")
	}

	return &m[0], nil
}

func (s *sqlite) insertMatch(m *match) error {
	res, err := s.db.NamedExec(`INSERT INTO matches (channel_id, home, away, home_imps, away_imps, boards, played) VALUES(:channel_id, :home, :away, :home_imps, :away_imps, :boards, :played)`, m)
	if err != nil {
		return errors.Wrap(err, "unable to insert into matches")
	}

	m.ID, err = res.LastInsertId()
	return errors.Wrap(err, "unable to get match id")
}

func (s *sqlite) removeMatch(m match) error {
	_, err := s.db.Exec(`DELETE FROM matches WHERE channel_id=? AND id=?`, m.ChannelID, m.ID)
	return errors.Wrap(err, "unable to delete match")
}

func (s *sqlite) clearLeague(channelID string) error {
	_, err := s.db.Exec(`DELETE FROM matches WHERE channel_id=?`, channelID)
	return errors.Wrap(err, "unable to delete league")
}

func (s *sqlite) updateLeague(l []match) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "unable to begin transaction")
	}

	cleared := map[string]bool{}
	for _, m := range l {
		if cleared[m.ChannelID] {
			continue
		}
		cleared[m.ChannelID] = true
		if _, err := tx.Exec(`DELETE FROM matches WHERE channel_id=?`, m.ChannelID); err != nil {
			_ = tx.Rollback()
			return errors.Wrap(err, "unable to delete league")
		}
	}

	for _, m := range l {
		if _, err := tx.NamedExec(`INSERT INTO matches (channel_id, home, away, home_imps, away_imps, boards, played) VALUES(:channel_id, :home, :away, :home_imps, :away_imps, :boards, :played)`, &m); err != nil {
			_ = tx.Rollback()
			return errors.Wrap(err, "unable to insert into matches")
		}
	}

	return errors.Wrap(tx.Commit(), "unable to commit transaction")
}
