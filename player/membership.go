package player

import "github.com/vidcat/vidcat/log"

// AddToPlaylist appends a video to a playlist. The video is checked before
// the playlist, so an unknown video wins when both are missing.
func (p *Player) AddToPlaylist(name, id string) error {
	video, ok := p.library.Get(id).Get()
	if !ok {
		return p.reject(failure("add_to_playlist", ErrVideoNotFound,
			"Cannot add video to %s: Video does not exist", name))
	}

	_, pl := p.find(name)
	if pl == nil {
		return p.reject(failure("add_to_playlist", ErrPlaylistNotFound,
			"Cannot add video to %s: Playlist does not exist", name))
	}

	if pl.Contains(id) {
		return p.reject(failure("add_to_playlist", ErrDuplicateMembership,
			"Cannot add video to %s: Video already added", name))
	}

	pl.add(id)
	log.Debugf("added %s to %q", id, pl.name)
	p.emit("Added video to %s: %s", name, video.Title)
	return nil
}

// RemoveFromPlaylist removes a member video. When the video is not a member
// the failure tells an unknown video apart from one that is just absent here.
func (p *Player) RemoveFromPlaylist(name, id string) error {
	_, pl := p.find(name)
	if pl == nil {
		return p.reject(failure("remove_from_playlist", ErrPlaylistNotFound,
			"Cannot remove video from %s: Playlist does not exist", name))
	}

	video, ok := p.library.Get(id).Get()
	switch {
	case !ok:
		return p.reject(failure("remove_from_playlist", ErrVideoNotFound,
			"Cannot remove video from %s: Video does not exist", name))
	case !pl.remove(id):
		return p.reject(failure("remove_from_playlist", ErrNotInPlaylist,
			"Cannot remove video from %s: Video is not in playlist", name))
	}

	log.Debugf("removed %s from %q", id, pl.name)
	p.emit("Removed video from %s: %s", name, video.Title)
	return nil
}

// ClearPlaylist empties a playlist but keeps it.
func (p *Player) ClearPlaylist(name string) error {
	_, pl := p.find(name)
	if pl == nil {
		return p.reject(failure("clear_playlist", ErrPlaylistNotFound,
			"Cannot clear playlist %s: Playlist does not exist", name))
	}

	log.Debugf("cleared %d videos from %q", pl.Len(), pl.name)
	pl.clear()
	p.emit("Successfully removed all videos from %s", name)
	return nil
}
