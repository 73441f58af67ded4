package player

import (
	"bytes"
	"math/rand"
	"strings"

	"github.com/samber/lo"
	"github.com/vidcat/vidcat/library"
)

func testLibrary() *library.Library {
	return lo.Must(library.New(
		&library.Video{ID: "amazing_cats_video_id", Title: "Amazing Cats", Tags: []string{"#cat", "#funny"}},
		&library.Video{ID: "another_cat_video_id", Title: "Another Cat Video", Tags: []string{"#cat", "#animal"}},
		&library.Video{ID: "nothing_video_id", Title: "Video about nothing"},
	))
}

func newTestPlayer(lib *library.Library) (*Player, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(lib, Options{Out: out, Rand: rand.New(rand.NewSource(1))}), out
}

// drain returns the lines written since the last call.
func drain(out *bytes.Buffer) []string {
	text := strings.TrimRight(out.String(), "\n")
	out.Reset()
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
