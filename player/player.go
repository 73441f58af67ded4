// Package player implements the playback state machine and the playlist
// collection of a single catalog session.
//
// Successful operations write their notification lines to the configured
// output. Failures are returned as *Error values whose message is the line to
// show; the caller decides where it goes.
package player

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/samber/mo"
	"github.com/vidcat/vidcat/library"
	"github.com/vidcat/vidcat/log"
)

// State is the playback state.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Options configures a Player.
type Options struct {
	// Out receives notification lines. Defaults to os.Stdout.
	Out io.Writer
	// Rand picks videos for PlayRandom. Defaults to a time-seeded source.
	Rand *rand.Rand
}

// Player owns the playback state and the playlists of one session.
// It is not safe for concurrent use.
type Player struct {
	library *library.Library
	out     io.Writer
	rand    *rand.Rand

	// current is a back-reference into the library; attributes are re-resolved on every use.
	current mo.Option[string]
	paused  bool

	playlists []*Playlist
}

// New creates a stopped player with no playlists.
func New(lib *library.Library, options Options) *Player {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Player{
		library: lib,
		out:     options.Out,
		rand:    options.Rand,
		current: mo.None[string](),
	}
}

// Library returns the catalog the player resolves videos against.
func (p *Player) Library() *library.Library {
	return p.library
}

// State reports the playback state.
func (p *Player) State() State {
	switch {
	case p.current.IsAbsent():
		return Stopped
	case p.paused:
		return Paused
	default:
		return Playing
	}
}

// Current resolves the current video from the library.
func (p *Player) Current() mo.Option[*library.Video] {
	id, ok := p.current.Get()
	if !ok {
		return mo.None[*library.Video]()
	}
	return p.library.Get(id)
}

func (p *Player) emit(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Player) reject(err *Error) error {
	log.Infof("%s rejected: %s", err.Op, err.Err)
	return err
}
