// Package command maps text commands onto player operations.
//
// A Dispatcher owns one player session. Each line is one command; its output
// and any failure message go to the same writer, in the order they happen.
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/vidcat/vidcat/constant"
	"github.com/vidcat/vidcat/log"
	"github.com/vidcat/vidcat/player"
	"github.com/vidcat/vidcat/util"
)

// ErrExit is returned by Execute for the EXIT command.
var ErrExit = errors.New("exit")

// InvalidCommand is printed for unknown commands and wrong argument counts.
const InvalidCommand = "Please enter a valid command, type HELP for a list of available commands."

// suggestDistance bounds how far a typo may be from a command to be suggested.
const suggestDistance = 3

// helpWidth is the column HELP text is wrapped at.
const helpWidth = 100

type handler struct {
	// min and max bound the argument count; max < 0 means unbounded.
	min, max int
	run      func(p *player.Player, args []string) error
}

var handlers = map[string]handler{
	"NUMBER_OF_VIDEOS": {0, 0, func(p *player.Player, _ []string) error { return p.NumberOfVideos() }},
	"SHOW_ALL_VIDEOS":  {0, 0, func(p *player.Player, _ []string) error { return p.ShowAllVideos() }},
	"PLAY":             {1, 1, func(p *player.Player, a []string) error { return p.Play(a[0]) }},
	"PLAY_RANDOM":      {0, 0, func(p *player.Player, _ []string) error { return p.PlayRandom() }},
	"STOP":             {0, 0, func(p *player.Player, _ []string) error { return p.Stop() }},
	"PAUSE":            {0, 0, func(p *player.Player, _ []string) error { return p.Pause() }},
	"CONTINUE":         {0, 0, func(p *player.Player, _ []string) error { return p.Continue() }},
	"SHOW_PLAYING":     {0, 0, func(p *player.Player, _ []string) error { return p.ShowPlaying() }},

	"CREATE_PLAYLIST":      {1, 1, func(p *player.Player, a []string) error { return p.CreatePlaylist(a[0]) }},
	"ADD_TO_PLAYLIST":      {2, 2, func(p *player.Player, a []string) error { return p.AddToPlaylist(a[0], a[1]) }},
	"REMOVE_FROM_PLAYLIST": {2, 2, func(p *player.Player, a []string) error { return p.RemoveFromPlaylist(a[0], a[1]) }},
	"CLEAR_PLAYLIST":       {1, 1, func(p *player.Player, a []string) error { return p.ClearPlaylist(a[0]) }},
	"DELETE_PLAYLIST":      {1, 1, func(p *player.Player, a []string) error { return p.DeletePlaylist(a[0]) }},
	"SHOW_PLAYLIST":        {1, 1, func(p *player.Player, a []string) error { return p.ShowPlaylist(a[0]) }},
	"SHOW_ALL_PLAYLISTS":   {0, 0, func(p *player.Player, _ []string) error { return p.ShowAllPlaylists() }},

	"SEARCH_VIDEOS":          {1, 1, func(p *player.Player, a []string) error { return p.SearchVideos(a[0]) }},
	"SEARCH_VIDEOS_WITH_TAG": {1, 1, func(p *player.Player, a []string) error { return p.SearchVideosWithTag(a[0]) }},
	"FLAG_VIDEO": {1, -1, func(p *player.Player, a []string) error {
		return p.FlagVideo(a[0], strings.Join(a[1:], " "))
	}},
	"ALLOW_VIDEO": {1, 1, func(p *player.Player, a []string) error { return p.AllowVideo(a[0]) }},
}

// Names returns every command word the dispatcher accepts.
func Names() []string {
	return append(lo.Keys(handlers), "HELP", "EXIT")
}

// Dispatcher runs command lines against a single player.
type Dispatcher struct {
	player *player.Player
	out    io.Writer
}

// New creates a dispatcher writing to out. p must write to the same writer
// for output ordering to hold.
func New(p *player.Player, out io.Writer) *Dispatcher {
	return &Dispatcher{player: p, out: out}
}

// Player returns the session the dispatcher drives.
func (d *Dispatcher) Player() *player.Player {
	return d.player
}

// Execute runs a single command line. User failures are printed, not
// returned; the only error is ErrExit.
func (d *Dispatcher) Execute(line string) error {
	fields := util.Words(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := strings.ToUpper(fields[0]), fields[1:]
	log.Debugf("command %s %v", name, args)

	switch name {
	case "EXIT":
		return ErrExit
	case "HELP":
		d.println(wordwrap.String(constant.HelpText, helpWidth))
		return nil
	}

	h, ok := handlers[name]
	if !ok {
		d.println(InvalidCommand)
		if closest, ok := closestCommand(name); ok {
			d.println(fmt.Sprintf("Did you mean %s?", closest))
		}
		return nil
	}

	if len(args) < h.min || (h.max >= 0 && len(args) > h.max) {
		d.println(InvalidCommand)
		return nil
	}

	if err := h.run(d.player, args); err != nil {
		var failure *player.Error
		if !errors.As(err, &failure) {
			log.Errorf("%s: %v", name, err)
		}
		d.println(err.Error())
	}

	return nil
}

// IsValid reports whether line would be accepted as a command other than EXIT.
func IsValid(line string) bool {
	fields := util.Words(line)
	if len(fields) == 0 {
		return false
	}

	name, args := strings.ToUpper(fields[0]), fields[1:]
	if name == "HELP" {
		return true
	}

	h, ok := handlers[name]
	return ok && len(args) >= h.min && (h.max < 0 || len(args) <= h.max)
}

func (d *Dispatcher) println(line string) {
	_, _ = fmt.Fprintln(d.out, line)
}

func closestCommand(name string) (string, bool) {
	closest := lo.MinBy(Names(), func(a, b string) bool {
		da, db := levenshtein.Distance(name, a), levenshtein.Distance(name, b)
		if da != db {
			return da < db
		}
		return a < b
	})
	return closest, levenshtein.Distance(name, closest) <= suggestDistance
}
