package player

import (
	"strings"

	"github.com/samber/lo"
)

// Playlist is a named, ordered list of video ids without duplicates.
type Playlist struct {
	name   string
	videos []string
}

func newPlaylist(name string) *Playlist {
	return &Playlist{name: name}
}

// Name returns the name with the casing it was created with.
func (pl *Playlist) Name() string {
	return pl.name
}

// Videos returns the member ids in insertion order.
func (pl *Playlist) Videos() []string {
	return append([]string(nil), pl.videos...)
}

// Len returns the number of members.
func (pl *Playlist) Len() int {
	return len(pl.videos)
}

// Contains reports whether id is a member.
func (pl *Playlist) Contains(id string) bool {
	return lo.Contains(pl.videos, id)
}

func (pl *Playlist) add(id string) {
	pl.videos = append(pl.videos, id)
}

func (pl *Playlist) remove(id string) bool {
	i := lo.IndexOf(pl.videos, id)
	if i < 0 {
		return false
	}
	pl.videos = append(pl.videos[:i], pl.videos[i+1:]...)
	return true
}

func (pl *Playlist) clear() {
	pl.videos = nil
}

// nameKey folds case and treats underscores as spaces, so a name created
// with spaces can still be typed as a single shell word.
var nameKey = strings.NewReplacer("_", " ")

// normalize is the comparison and sort key for playlist names.
func normalize(name string) string {
	return nameKey.Replace(strings.ToLower(name))
}
