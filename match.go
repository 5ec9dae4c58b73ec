package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/marcshearer/bridgescore/scoring"
)

type match struct {
	ID        int64  `db:"id" json:"id"`
	ChannelID string `db:"channel_id" json:"channel_id"`
	Home      string `db:"home" json:"home"`
	Away      string `db:"away" json:"away"`
	HomeIMPs  int64  `db:"home_imps" json:"home_imps"`
	AwayIMPs  int64  `db:"away_imps" json:"away_imps"`
	Boards    int64  `db:"boards" json:"boards"`
	Played    int64  `db:"played" json:"played"`
}

func (m match) margin() int {
	return int(m.HomeIMPs - m.AwayIMPs)
}

// settings is the VP scale a league scores on.
type settings struct {
	MaxVP    int
	Places   int
	Discrete bool
}

func (s settings) vp(imps, boards int) (float64, error) {
	if s.Discrete {
		vp, err := scoring.DiscreteVP(imps, boards, s.MaxVP)
		return float64(vp), err
	}

	return scoring.VP(imps, boards, s.MaxVP, s.Places)
}

func (s settings) matchVPs(m match) (home, away float64, err error) {
	home, err = s.vp(m.margin(), int(m.Boards))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "unable to score %s v %s", m.Home, m.Away)
	}

	return home, scoring.Round(float64(s.MaxVP)-home, s.Places), nil
}

func (s settings) format(vp float64) string {
	if s.Discrete {
		return strconv.FormatFloat(vp, 'f', 0, 64)
	}
	return strconv.FormatFloat(vp, 'f', s.Places, 64)
}

type standing struct {
	Team        string
	Played      int
	IMPsFor     int64
	IMPsAgainst int64
	VPs         float64
}

func (s standing) difference() int64 { return s.IMPsFor - s.IMPsAgainst }

type standings []standing

func (s standings) Less(i, j int) bool {
	if s[i].VPs != s[j].VPs {
		return s[i].VPs > s[j].VPs
	}
	if s[i].difference() != s[j].difference() {
		return s[i].difference() > s[j].difference()
	}
	return s[i].Team < s[j].Team
}
func (s standings) Len() int      { return len(s) }
func (s standings) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s settings) table(matches []match) (standings, error) {
	teams := make(map[string]*standing)
	team := func(name string) *standing {
		t, ok := teams[name]
		if !ok {
			t = &standing{Team: name}
			teams[name] = t
		}
		return t
	}

	for _, m := range matches {
		home, away, err := s.matchVPs(m)
		if err != nil {
			return nil, err
		}

		h, a := team(m.Home), team(m.Away)
		h.Played++
		a.Played++
		h.IMPsFor += m.HomeIMPs
		h.IMPsAgainst += m.AwayIMPs
		a.IMPsFor += m.AwayIMPs
		a.IMPsAgainst += m.HomeIMPs
		h.VPs = scoring.Round(h.VPs+home, s.Places)
		a.VPs = scoring.Round(a.VPs+away, s.Places)
	}

	table := make(standings, 0, len(teams))
	for _, t := range teams {
		table = append(table, *t)
	}
	sort.Sort(table)

	return table, nil
}

func parseResult(channelID string, fields []string) (match, error) {
	if len(fields) != 5 {
		return match{}, errors.Errorf("expected 5 arguments, got %d", len(fields))
	}

	m := match{ChannelID: channelID, Home: fields[0], Away: fields[2]}
	if strings.EqualFold(m.Home, m.Away) {
		return match{}, errors.Errorf("%s cannot play itself", m.Home)
	}

	var err error
	if m.HomeIMPs, err = parseCount(fields[1], "home imps"); err != nil {
		return match{}, err
	}
	if m.AwayIMPs, err = parseCount(fields[3], "away imps"); err != nil {
		return match{}, err
	}
	if m.Boards, err = parseCount(fields[4], "boards"); err != nil {
		return match{}, err
	}
	if m.Boards == 0 {
		return match{}, errors.New("boards must be at least 1")
	}

	return m, nil
}

func parseCount(s, name string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, errors.Errorf("%s must be a whole number, got %q", name, s)
	}
	return n, nil
}

func (m match) String() string {
	return fmt.Sprintf("%s %d %s %d (%d boards)", m.Home, m.HomeIMPs, m.Away, m.AwayIMPs, m.Boards)
}
