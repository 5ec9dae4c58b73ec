package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		name     string
		fields   []string
		expected match
		wantErr  bool
	}{{
		"should parse a result",
		[]string{"Sharks", "45", "Jets", "23", "16"},
		match{ChannelID: "C1", Home: "Sharks", Away: "Jets", HomeIMPs: 45, AwayIMPs: 23, Boards: 16},
		false,
	}, {
		"should need five fields",
		[]string{"Sharks", "45", "Jets", "23"},
		match{},
		true,
	}, {
		"should reject negative imps",
		[]string{"Sharks", "-45", "Jets", "23", "16"},
		match{},
		true,
	}, {
		"should reject zero boards",
		[]string{"Sharks", "45", "Jets", "23", "0"},
		match{},
		true,
	}, {
		"should reject a team playing itself",
		[]string{"Sharks", "45", "sharks", "23", "16"},
		match{},
		true,
	}, {
		"should reject words for numbers",
		[]string{"Sharks", "lots", "Jets", "23", "16"},
		match{},
		true,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := parseResult("C1", test.fields)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, m)
		})
	}
}

func TestMatchVPs(t *testing.T) {
	tests := []struct {
		name     string
		settings settings
		m        match
		home     float64
		away     float64
	}{{
		"should be a tie",
		settings{MaxVP: 20, Places: 2},
		match{HomeIMPs: 30, AwayIMPs: 30, Boards: 20},
		10,
		10,
	}, {
		"should be 16.23",
		settings{MaxVP: 20, Places: 2},
		match{HomeIMPs: 42, AwayIMPs: 12, Boards: 20},
		16.23,
		3.77,
	}, {
		"should favour the away team",
		settings{MaxVP: 20, Places: 2},
		match{HomeIMPs: 12, AwayIMPs: 13, Boards: 20},
		9.72,
		10.28,
	}, {
		"should be whole points",
		settings{MaxVP: 20, Places: 2, Discrete: true},
		match{HomeIMPs: 40, AwayIMPs: 34, Boards: 20},
		12,
		8,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			home, away, err := test.settings.matchVPs(test.m)
			require.NoError(t, err)
			assert.Equal(t, test.home, home)
			assert.Equal(t, test.away, away)
		})
	}
}

func TestTable(t *testing.T) {
	s := settings{MaxVP: 20, Places: 2}
	matches := []match{
		{Home: "Sharks", Away: "Jets", HomeIMPs: 42, AwayIMPs: 12, Boards: 20},
		{Home: "Jets", Away: "Owls", HomeIMPs: 13, AwayIMPs: 12, Boards: 20},
		{Home: "Owls", Away: "Sharks", HomeIMPs: 20, AwayIMPs: 20, Boards: 20},
	}

	table, err := s.table(matches)
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.Equal(t, standing{Team: "Sharks", Played: 2, IMPsFor: 62, IMPsAgainst: 32, VPs: 26.23}, table[0])
	assert.Equal(t, standing{Team: "Owls", Played: 2, IMPsFor: 32, IMPsAgainst: 33, VPs: 19.72}, table[1])
	assert.Equal(t, standing{Team: "Jets", Played: 2, IMPsFor: 25, IMPsAgainst: 54, VPs: 14.05}, table[2])
}

func TestTableTies(t *testing.T) {
	s := settings{MaxVP: 20, Places: 2}
	matches := []match{
		{Home: "Owls", Away: "Jets", HomeIMPs: 10, AwayIMPs: 10, Boards: 8},
		{Home: "Bats", Away: "Cats", HomeIMPs: 30, AwayIMPs: 30, Boards: 8},
	}

	table, err := s.table(matches)
	require.NoError(t, err)

	var teams []string
	for _, st := range table {
		teams = append(teams, st.Team)
	}
	assert.Equal(t, []string{"Bats", "Cats", "Jets", "Owls"}, teams)
}

func TestTableInvalidScale(t *testing.T) {
	s := settings{MaxVP: 21, Places: 2}
	_, err := s.table([]match{{Home: "Owls", Away: "Jets", HomeIMPs: 10, AwayIMPs: 2, Boards: 8}})
	assert.Error(t, err)
}
