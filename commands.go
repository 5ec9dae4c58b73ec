package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nlopes/slack"
	"github.com/pkg/errors"

	"github.com/marcshearer/bridgescore/scoring"
)

type command string

const (
	helpCommand      command = "help"
	vpCommand        command = "vp"
	scaleCommand     command = "scale"
	resultCommand    command = "result"
	standingsCommand command = "standings"
	undoCommand      command = "undo"
	clearCommand     command = "clear"
	unknownCommand   command = "unknown"
)

type commands map[command]string

var cmds = commands{
	helpCommand:      "a list of available commands",
	vpCommand:        "`vp <imps> <boards>` convert an imp margin to victory points",
	scaleCommand:     "`scale <boards>` show the discrete victory point scale",
	resultCommand:    "`result <home> <imps> <away> <imps> <boards>` record a match",
	standingsCommand: "show the league table",
	undoCommand:      "remove the last recorded match",
	clearCommand:     "remove every match in this channel",
}

func (c commands) Print() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	out := "Available commands\n"
	for _, k := range keys {
		out += fmt.Sprintf("%q - %v\n", k, c[command(k)])
	}

	return out
}

type messenger interface {
	post(channelID, text string) error
}

type slackMessenger struct {
	rtm *slack.RTM
}

func (s slackMessenger) post(channelID, text string) error {
	_, _, err := s.rtm.PostMessage(channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(true),
	)
	return err
}

type bot struct {
	db       DB
	out      messenger
	settings settings
	botID    string
	now      func() time.Time
}

// checkMessage splits a message into its command and arguments, skipping a
// leading mention of the bot.
func checkMessage(text string) (command, []string) {
	fields := strings.Fields(text)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "<@") {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return unknownCommand, nil
	}

	cmd := command(strings.ToLower(fields[0]))
	if _, ok := cmds[cmd]; !ok {
		return unknownCommand, nil
	}

	return cmd, fields[1:]
}

type usageError struct {
	cmd command
	err error
}

func (e usageError) Error() string {
	return fmt.Sprintf("%v\nusage: %s", e.err, cmds[e.cmd])
}

func usage(cmd command, err error) error {
	return errors.WithStack(usageError{cmd: cmd, err: err})
}

func (b *bot) vp(msg slack.Msg, args []string) error {
	if len(args) != 2 {
		return usage(vpCommand, errors.Errorf("expected 2 arguments, got %d", len(args)))
	}

	imps, err := strconv.Atoi(args[0])
	if err != nil {
		return usage(vpCommand, errors.Errorf("imps must be a whole number, got %q", args[0]))
	}
	boards, err := strconv.Atoi(args[1])
	if err != nil || boards < 1 {
		return usage(vpCommand, errors.Errorf("boards must be at least 1, got %q", args[1]))
	}

	home, away, err := b.settings.matchVPs(match{HomeIMPs: int64(imps), Boards: int64(boards)})
	if err != nil {
		return err
	}

	message := fmt.Sprintf("%d imps over %d boards: %s - %s", imps, boards, b.settings.format(home), b.settings.format(away))
	return b.sendMessage(msg.Channel, message)
}

func (b *bot) scale(msg slack.Msg, args []string) error {
	if len(args) != 1 {
		return usage(scaleCommand, errors.Errorf("expected 1 argument, got %d", len(args)))
	}

	boards, err := strconv.Atoi(args[0])
	if err != nil || boards < 1 {
		return usage(scaleCommand, errors.Errorf("boards must be at least 1, got %q", args[0]))
	}

	var sb strings.Builder
	if err := writeScale(&sb, boards, b.settings.MaxVP); err != nil {
		return err
	}

	return b.sendMessage(msg.Channel, "```\n"+sb.String()+"```")
}

func (b *bot) result(msg slack.Msg, args []string) error {
	m, err := parseResult(msg.Channel, args)
	if err != nil {
		return usage(resultCommand, err)
	}

	home, away, err := b.settings.matchVPs(m)
	if err != nil {
		return err
	}

	m.Played = b.now().Unix()
	if err := b.db.insertMatch(&m); err != nil {
		return err
	}

	message := fmt.Sprintf("%s %s - %s %s", m.Home, b.settings.format(home), b.settings.format(away), m.Away)
	return b.sendMessage(msg.Channel, message)
}

func (b *bot) standings(msg slack.Msg) error {
	matches, err := b.db.getMatches(msg.Channel)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		return b.sendMessage(msg.Channel, "No matches recorded yet")
	}

	table, err := b.settings.table(matches)
	if err != nil {
		return err
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tTeam\tP\tIMPs\tVPs")
	for i, s := range table {
		fmt.Fprintf(w, "%d\t%s\t%d\t%+d\t%s\n", i+1, s.Team, s.Played, s.difference(), b.settings.format(s.VPs))
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "unable to format standings")
	}

	return b.sendMessage(msg.Channel, "```\n"+sb.String()+"```")
}

func (b *bot) undo(msg slack.Msg) error {
	last, err := b.db.getLastMatch(msg.Channel)
	if err != nil {
		if _, ok := errors.Cause(err).(errNotFound); ok {
			return b.sendMessage(msg.Channel, "No matches to remove")
		}
		return err
	}

	if err := b.db.removeMatch(*last); err != nil {
		return err
	}

	return b.sendMessage(msg.Channel, "Removed "+last.String())
}

func (b *bot) clear(msg slack.Msg) error {
	if err := b.db.clearLeague(msg.Channel); err != nil {
		return err
	}

	return b.sendMessage(msg.Channel, "League cleared")
}

func (b *bot) sendMessage(channel, text string) error {
	var err error
	for i := 0; i < 5; i++ {
		err = b.out.post(channel, text)
		if err == nil {
			break
		}
	}

	return errors.Wrap(err, "unable to send message")
}

func (b *bot) runCommand(cmd command, args []string, evt *slack.MessageEvent) error {
	var err error
	switch cmd {
	case vpCommand:
		err = b.vp(evt.Msg, args)
	case scaleCommand:
		err = b.scale(evt.Msg, args)
	case resultCommand:
		err = b.result(evt.Msg, args)
	case standingsCommand:
		err = b.standings(evt.Msg)
	case undoCommand:
		err = b.undo(evt.Msg)
	case clearCommand:
		err = b.clear(evt.Msg)
	case helpCommand:
		err = b.sendMessage(evt.Channel, cmds.Print())
	}

	if reply, ok := userMessage(err); ok {
		return b.sendMessage(evt.Channel, reply)
	}

	return err
}

// userMessage returns the reply for an error caused by what the user asked.
func userMessage(err error) (string, bool) {
	switch cause := errors.Cause(err).(type) {
	case usageError:
		return cause.Error(), true
	case scoring.InvalidArgumentError:
		return cause.Error(), true
	}

	if errors.Cause(err) == scoring.ErrNoConvergence {
		return "unable to build a victory point scale for that match", true
	}

	return "", false
}

func (b *bot) handleMessage(evt *slack.MessageEvent) error {
	if evt.BotID != "" || evt.User == b.botID {
		return nil
	}

	cmd, args := checkMessage(evt.Text)
	if cmd == unknownCommand {
		return nil
	}

	Debugf("running %s %v in %s", cmd, args, evt.Channel)
	return b.runCommand(cmd, args, evt)
}
