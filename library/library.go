package library

import (
	"fmt"

	"github.com/samber/mo"
)

// Library is an ordered, immutable set of videos keyed by identifier.
type Library struct {
	videos []*Video
	byID   map[string]*Video
}

// New builds a library from videos in the given order. Duplicate or empty identifiers are rejected.
func New(videos ...*Video) (*Library, error) {
	l := &Library{
		videos: make([]*Video, 0, len(videos)),
		byID:   make(map[string]*Video, len(videos)),
	}

	for i, v := range videos {
		if v == nil {
			return nil, fmt.Errorf("video %d is nil", i)
		}
		if v.ID == "" {
			return nil, fmt.Errorf("video %q has an empty id", v.Title)
		}
		if _, exists := l.byID[v.ID]; exists {
			return nil, fmt.Errorf("duplicate video id %q", v.ID)
		}
		l.videos = append(l.videos, v)
		l.byID[v.ID] = v
	}

	return l, nil
}

// Get looks a video up by identifier.
func (l *Library) Get(id string) mo.Option[*Video] {
	if v, ok := l.byID[id]; ok {
		return mo.Some(v)
	}
	return mo.None[*Video]()
}

// Has reports whether id names a video in the library.
func (l *Library) Has(id string) bool {
	_, ok := l.byID[id]
	return ok
}

// All returns every video in load order. The slice is a copy.
func (l *Library) All() []*Video {
	out := make([]*Video, len(l.videos))
	copy(out, l.videos)
	return out
}

// Len returns the number of videos.
func (l *Library) Len() int {
	return len(l.videos)
}
