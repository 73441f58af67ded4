package player

import (
	"github.com/samber/mo"
	"github.com/vidcat/vidcat/library"
	"github.com/vidcat/vidcat/log"
)

// Play starts the video with the given id. A current video is stopped first,
// and the new one always starts unpaused.
func (p *Player) Play(id string) error {
	video, ok := p.library.Get(id).Get()
	if !ok {
		return p.reject(failure("play", ErrVideoNotFound, "Cannot play video: Video does not exist"))
	}

	p.start(video)
	return nil
}

// PlayRandom plays a video chosen uniformly among the whole library,
// including the one currently playing.
func (p *Player) PlayRandom() error {
	videos := p.library.All()
	if len(videos) == 0 {
		return p.reject(failure("play_random", ErrEmptyLibrary, "No videos available"))
	}

	p.start(videos[p.rand.Intn(len(videos))])
	return nil
}

func (p *Player) start(video *library.Video) {
	if current, ok := p.Current().Get(); ok {
		p.emit("Stopping video: %s", current.Title)
	}

	p.current = mo.Some(video.ID)
	p.paused = false
	log.Debugf("playing %s", video.ID)
	p.emit("Playing video: %s", video.Title)
}

// Stop ends playback of the current video.
func (p *Player) Stop() error {
	current, ok := p.Current().Get()
	if !ok {
		return p.reject(failure("stop", ErrNoVideoPlaying, "Cannot stop video: No video is currently playing"))
	}

	p.current = mo.None[string]()
	p.paused = false
	log.Debugf("stopped %s", current.ID)
	p.emit("Stopping video: %s", current.Title)
	return nil
}

// Pause pauses the current video. Pausing twice is rejected and leaves the state unchanged.
func (p *Player) Pause() error {
	current, ok := p.Current().Get()
	switch {
	case !ok:
		return p.reject(failure("pause", ErrNoVideoPlaying, "Cannot pause video: No video is currently playing"))
	case p.paused:
		return p.reject(failure("pause", ErrAlreadyPaused, "Video already paused: %s", current.Title))
	}

	p.paused = true
	log.Debugf("paused %s", current.ID)
	p.emit("Pausing video: %s", current.Title)
	return nil
}

// Continue resumes a paused video.
func (p *Player) Continue() error {
	current, ok := p.Current().Get()
	switch {
	case !ok:
		return p.reject(failure("continue", ErrNoVideoPlaying, "Cannot continue video: No video is currently playing"))
	case !p.paused:
		return p.reject(failure("continue", ErrNotPaused, "Cannot continue video: Video is not paused"))
	}

	p.paused = false
	log.Debugf("resumed %s", current.ID)
	p.emit("Continuing video: %s", current.Title)
	return nil
}

// ShowPlaying prints the current video as found in the library, with a
// PAUSED suffix when paused.
func (p *Player) ShowPlaying() error {
	current, ok := p.Current().Get()
	if !ok {
		return p.reject(failure("show_playing", ErrNoVideoPlaying, "No video is currently playing"))
	}

	if p.paused {
		p.emit("Currently playing: %s - PAUSED", current)
	} else {
		p.emit("Currently playing: %s", current)
	}
	return nil
}
