package player

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidcat/vidcat/log"
	"golang.org/x/exp/slices"
)

// find is the only place playlist names are compared.
func (p *Player) find(name string) (int, *Playlist) {
	key := normalize(name)
	for i, pl := range p.playlists {
		if normalize(pl.name) == key {
			return i, pl
		}
	}
	return -1, nil
}

// Playlist looks a playlist up by case-insensitive name.
func (p *Player) Playlist(name string) mo.Option[*Playlist] {
	if _, pl := p.find(name); pl != nil {
		return mo.Some(pl)
	}
	return mo.None[*Playlist]()
}

// PlaylistNames returns playlist names sorted case-insensitively.
func (p *Player) PlaylistNames() []string {
	names := lo.Map(p.playlists, func(pl *Playlist, _ int) string {
		return pl.name
	})
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(normalize(a), normalize(b))
	})
	return names
}

// CreatePlaylist adds an empty playlist. Names are unique regardless of case,
// and an underscore matches a space, so "my_list" and "My List" collide.
func (p *Player) CreatePlaylist(name string) error {
	if _, existing := p.find(name); existing != nil {
		return p.reject(failure("create_playlist", ErrDuplicatePlaylist,
			"Cannot create playlist: A playlist with the same name already exists"))
	}

	p.playlists = append(p.playlists, newPlaylist(name))
	log.Debugf("created playlist %q", name)
	p.emit("Successfully created new playlist: %s", name)
	return nil
}

// DeletePlaylist removes a playlist entirely.
func (p *Player) DeletePlaylist(name string) error {
	i, pl := p.find(name)
	if pl == nil {
		return p.reject(failure("delete_playlist", ErrPlaylistNotFound,
			"Cannot delete playlist %s: Playlist does not exist", name))
	}

	p.playlists = slices.Delete(p.playlists, i, i+1)
	log.Debugf("deleted playlist %q", pl.name)
	p.emit("Deleted playlist: %s", name)
	return nil
}

// ShowAllPlaylists prints every playlist name, sorted case-insensitively.
func (p *Player) ShowAllPlaylists() error {
	if len(p.playlists) == 0 {
		p.emit("No playlists exist yet")
		return nil
	}

	p.emit("Showing all playlists:")
	for _, name := range p.PlaylistNames() {
		p.emit("%s", name)
	}
	return nil
}

// ShowPlaylist prints the members of a playlist in insertion order.
func (p *Player) ShowPlaylist(name string) error {
	_, pl := p.find(name)
	if pl == nil {
		return p.reject(failure("show_playlist", ErrPlaylistNotFound,
			"Cannot show playlist %s: Playlist does not exist", name))
	}

	p.emit("Showing playlist: %s", name)
	if pl.Len() == 0 {
		p.emit("No videos here yet")
		return nil
	}

	for _, id := range pl.videos {
		if video, ok := p.library.Get(id).Get(); ok {
			p.emit("%s", video)
		}
	}
	return nil
}
