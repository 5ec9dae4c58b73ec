package main

import (
	"fmt"
	"os"
	"time"

	"github.com/nlopes/slack"
	"github.com/pkg/errors"
)

func transferData(input, output DB) error {
	Debug("transferring data")
	leagues, err := input.getLeagues()
	if err != nil {
		return err
	}

	Debugf("Got leagues: %#v", leagues)
	for _, league := range leagues {
		matches, err := input.getMatches(league)
		if err != nil {
			return err
		}

		Debugf("Got %d matches for %s", len(matches), league)
		if err := output.updateLeague(matches); err != nil {
			return err
		}
	}

	return nil
}

func openDatabase(database, filename string) (DB, error) {
	switch database {
	case "sqlite":
		return NewSqlite(filename)
	case "boltdb":
		return NewBoltDB(filename)
	}

	return nil, errors.Errorf("invalid database argument %q", database)
}

func runBot(c config, db DB) error {
	if c.AccessToken == "" {
		return errors.New("ACCESS_TOKEN is not set")
	}

	api := slack.New(c.AccessToken)

	rtm := api.NewRTM()
	go rtm.ManageConnection()

	auth, err := api.AuthTest()
	if err != nil {
		return errors.Wrap(err, "unable to authenticate")
	}

	b := &bot{
		db:       db,
		out:      slackMessenger{rtm: rtm},
		settings: c.settings(),
		botID:    auth.UserID,
		now:      time.Now,
	}

	logger.Infow("started", "bot", auth.User, "database", c.Database, "maxVP", c.MaxVP, "discrete", c.Discrete)

	for e := range rtm.IncomingEvents {
		switch evt := e.Data.(type) {
		case *slack.MessageEvent:
			Debugf("%#v", evt)
			if err := b.handleMessage(evt); err != nil {
				logger.Errorf("%+v", err)
			}
		case *slack.InvalidAuthEvent:
			return errors.New("invalid slack credentials")
		default:
			Debugf("%#v", evt)
		}
	}

	return nil
}

func main() {
	c, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(c).Execute(); err != nil {
		os.Exit(1)
	}
}
