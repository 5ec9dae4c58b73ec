package main

import (
	"encoding/binary"
	"encoding/json"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

type boltdb struct {
	db *bolt.DB
}

func NewBoltDB(filename string) (DB, error) {
	db, err := bolt.Open(filename, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", filename)
	}

	return &boltdb{db: db}, nil
}

func (b *boltdb) Close() error {
	return errors.Wrap(b.db.Close(), "unable to close database")
}

func (b *boltdb) createMatchTable() error {
	return nil
}

func matchKey(id int64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

func (b *boltdb) getLeagues() ([]string, error) {
	l := make([]string, 0)
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			l = append(l, string(name))
			return nil
		})
	})

	return l, errors.Wrap(err, "unable to get leagues")
}

func (b *boltdb) getMatches(channelID string) ([]match, error) {
	l := make([]match, 0)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(channelID))
		if bucket == nil {
			return nil
		}

		return errors.Wrap(bucket.ForEach(func(k, v []byte) error {
			var m match
			if err := json.Unmarshal(v, &m); err != nil {
				return errors.Wrap(err, "unable to unmarshal match")
			}
			l = append(l, m)
			return nil
		}), "unable to get bucket contents")
	})

	if err != nil {
		return nil, err
	}

	return l, nil
}

func (b *boltdb) getLastMatch(channelID string) (*match, error) {
	var m *match
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(channelID))
		if bucket == nil {
			return nil
		}

		_, v := bucket.Cursor().Last()
		if v == nil {
			return nil
		}

		m = &match{}
		return errors.Wrap(json.Unmarshal(v, m), "unable to unmarshal match")
	})
	if err != nil {
		return nil, err
	}

	if m == nil {
		return nil, errors.Wrap(errNotFound{}, "unable to get last match")
	}

	return m, nil
}

func (b *boltdb) insert(m *match) func(*bolt.Tx) error {
	return func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(m.ChannelID))
		if err != nil {
			return errors.Wrap(err, "unable to create bucket")
		}

		id, err := bucket.NextSequence()
		if err != nil {
			return errors.Wrap(err, "unable to get next match id")
		}
		m.ID = int64(id)

		data, err := json.Marshal(m)
		if err != nil {
			return errors.Wrap(err, "unable to marshal match into json")
		}

		err = bucket.Put(matchKey(m.ID), data)
		return errors.Wrap(err, "error putting match")
	}
}

func (b *boltdb) insertMatch(m *match) error {
	err := b.db.Update(b.insert(m))
	return errors.Wrap(err, "unable to insert match")
}

func (b *boltdb) removeMatch(m match) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(m.ChannelID))
		if bucket == nil {
			return nil
		}
		return errors.Wrap(bucket.Delete(matchKey(m.ID)), "unable to delete match")
	})

	return errors.Wrap(err, "unable to remove match")
}

func (b *boltdb) clearLeague(channelID string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(channelID)) != nil {
			return errors.Wrap(tx.DeleteBucket([]byte(channelID)), "unable to delete bucket")
		}

		return nil
	})

	return errors.Wrap(err, "unable to clear the league")
}

func (b *boltdb) updateLeague(l []match) error {
	tx, err := b.db.Begin(true)
	if err != nil {
		return errors.Wrap(err, "unable to begin transaction")
	}

	for _, m := range l {
		if tx.Bucket([]byte(m.ChannelID)) == nil {
			continue
		}
		if err := tx.DeleteBucket([]byte(m.ChannelID)); err != nil {
			_ = tx.Rollback()
			return errors.Wrap(err, "unable to delete bucket")
		}
	}

	for i := range l {
		m := l[i]
		if err := b.insert(&m)(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return errors.Wrap(tx.Commit(), "unable to commit transaction")
}
