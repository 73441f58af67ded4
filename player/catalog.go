package player

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vidcat/vidcat/library"
	"golang.org/x/exp/slices"
)

// NumberOfVideos prints the library size.
func (p *Player) NumberOfVideos() error {
	p.emit("%d videos in the library", p.library.Len())
	return nil
}

// ShowAllVideos prints every library video, sorted by the whole rendered line.
func (p *Player) ShowAllVideos() error {
	p.emit("Here's a list of all available videos:")
	for _, line := range CatalogLines(p.library) {
		p.emit("%s", line)
	}
	return nil
}

// CatalogLines renders every video of lib as "title (id) [tags]", sorted
// lexicographically by the rendered line rather than by title alone.
func CatalogLines(lib *library.Library) []string {
	lines := lo.Map(lib.All(), func(v *library.Video, _ int) string {
		return v.String()
	})
	slices.SortFunc(lines, strings.Compare)
	return lines
}
