package player

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidcat/vidcat/library"
)

func TestPlay(t *testing.T) {
	Convey("Given a stopped player", t, func() {
		p, out := newTestPlayer(testLibrary())
		So(p.State(), ShouldEqual, Stopped)

		Convey("Playing an unknown video fails without a state change", func() {
			err := p.Play("missing")
			So(errors.Is(err, ErrVideoNotFound), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "Cannot play video: Video does not exist")
			So(KindOf(err), ShouldEqual, KindNotFound)
			So(p.State(), ShouldEqual, Stopped)
			So(drain(out), ShouldBeEmpty)
		})

		Convey("Playing a video starts it", func() {
			So(p.Play("amazing_cats_video_id"), ShouldBeNil)
			So(drain(out), ShouldResemble, []string{"Playing video: Amazing Cats"})
			So(p.State(), ShouldEqual, Playing)

			Convey("Playing another stops the first and starts unpaused", func() {
				So(p.Pause(), ShouldBeNil)
				drain(out)

				So(p.Play("another_cat_video_id"), ShouldBeNil)
				So(drain(out), ShouldResemble, []string{
					"Stopping video: Amazing Cats",
					"Playing video: Another Cat Video",
				})
				So(p.State(), ShouldEqual, Playing)
				So(p.Current().MustGet().ID, ShouldEqual, "another_cat_video_id")
			})

			Convey("Replaying the same video restarts it", func() {
				So(p.Play("amazing_cats_video_id"), ShouldBeNil)
				So(drain(out), ShouldResemble, []string{
					"Stopping video: Amazing Cats",
					"Playing video: Amazing Cats",
				})
			})

			Convey("An unknown video leaves the current one playing", func() {
				So(p.Play("missing"), ShouldNotBeNil)
				So(p.Current().MustGet().ID, ShouldEqual, "amazing_cats_video_id")
			})
		})
	})
}

func TestStop(t *testing.T) {
	Convey("Given a stopped player", t, func() {
		p, out := newTestPlayer(testLibrary())

		Convey("Stopping fails", func() {
			err := p.Stop()
			So(errors.Is(err, ErrNoVideoPlaying), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "Cannot stop video: No video is currently playing")
			So(KindOf(err), ShouldEqual, KindInvalidState)
		})

		Convey("Stopping a paused video returns to Stopped", func() {
			So(p.Play("nothing_video_id"), ShouldBeNil)
			So(p.Pause(), ShouldBeNil)
			drain(out)

			So(p.Stop(), ShouldBeNil)
			So(drain(out), ShouldResemble, []string{"Stopping video: Video about nothing"})
			So(p.State(), ShouldEqual, Stopped)
			So(p.Current().IsAbsent(), ShouldBeTrue)

			Convey("And a second stop fails", func() {
				So(errors.Is(p.Stop(), ErrNoVideoPlaying), ShouldBeTrue)
			})
		})
	})
}

func TestPlayRandom(t *testing.T) {
	Convey("Given an empty library", t, func() {
		p, out := newTestPlayer(lo.Must(library.New()))

		Convey("Random playback fails and stays stopped", func() {
			err := p.PlayRandom()
			So(errors.Is(err, ErrEmptyLibrary), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "No videos available")
			So(KindOf(err), ShouldEqual, KindEmptyCollection)
			So(p.State(), ShouldEqual, Stopped)
			So(drain(out), ShouldBeEmpty)
		})
	})

	Convey("Given a single-video library", t, func() {
		lib := lo.Must(library.New(&library.Video{ID: "only", Title: "Only One"}))
		p, out := newTestPlayer(lib)

		Convey("Random playback plays it", func() {
			So(p.PlayRandom(), ShouldBeNil)
			So(drain(out), ShouldResemble, []string{"Playing video: Only One"})

			Convey("And may pick the current video again, stopping it first", func() {
				So(p.Pause(), ShouldBeNil)
				drain(out)
				So(p.PlayRandom(), ShouldBeNil)
				So(drain(out), ShouldResemble, []string{"Stopping video: Only One", "Playing video: Only One"})
				So(p.State(), ShouldEqual, Playing)
			})
		})
	})

	Convey("Given a larger library", t, func() {
		p, _ := newTestPlayer(testLibrary())

		Convey("Every pick is a library video", func() {
			for i := 0; i < 20; i++ {
				So(p.PlayRandom(), ShouldBeNil)
				So(p.Library().Has(p.Current().MustGet().ID), ShouldBeTrue)
			}
		})
	})
}

func TestPauseAndContinue(t *testing.T) {
	Convey("Given a stopped player", t, func() {
		p, _ := newTestPlayer(testLibrary())

		Convey("Pause and continue both fail", func() {
			err := p.Pause()
			So(errors.Is(err, ErrNoVideoPlaying), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "Cannot pause video: No video is currently playing")

			err = p.Continue()
			So(errors.Is(err, ErrNoVideoPlaying), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "Cannot continue video: No video is currently playing")
		})
	})

	Convey("Given a playing video", t, func() {
		p, out := newTestPlayer(testLibrary())
		So(p.Play("amazing_cats_video_id"), ShouldBeNil)
		drain(out)

		Convey("Continue fails because it is not paused", func() {
			err := p.Continue()
			So(errors.Is(err, ErrNotPaused), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "Cannot continue video: Video is not paused")
			So(p.State(), ShouldEqual, Playing)
		})

		Convey("Pause pauses it", func() {
			So(p.Pause(), ShouldBeNil)
			So(drain(out), ShouldResemble, []string{"Pausing video: Amazing Cats"})
			So(p.State(), ShouldEqual, Paused)

			Convey("A second pause is rejected and changes nothing", func() {
				err := p.Pause()
				So(errors.Is(err, ErrAlreadyPaused), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "Video already paused: Amazing Cats")
				So(p.State(), ShouldEqual, Paused)
				So(drain(out), ShouldBeEmpty)
			})

			Convey("Continue resumes it", func() {
				So(p.Continue(), ShouldBeNil)
				So(drain(out), ShouldResemble, []string{"Continuing video: Amazing Cats"})
				So(p.State(), ShouldEqual, Playing)
			})
		})
	})
}

func TestShowPlaying(t *testing.T) {
	Convey("Given a player", t, func() {
		p, out := newTestPlayer(testLibrary())

		Convey("Nothing is shown when stopped", func() {
			err := p.ShowPlaying()
			So(errors.Is(err, ErrNoVideoPlaying), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "No video is currently playing")
		})

		Convey("The current video is shown with its tags", func() {
			So(p.Play("amazing_cats_video_id"), ShouldBeNil)
			drain(out)

			So(p.ShowPlaying(), ShouldBeNil)
			So(drain(out), ShouldResemble, []string{"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #funny]"})

			Convey("With a suffix when paused", func() {
				So(p.Pause(), ShouldBeNil)
				drain(out)
				So(p.ShowPlaying(), ShouldBeNil)
				So(drain(out), ShouldResemble, []string{"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #funny] - PAUSED"})
			})
		})

		Convey("A video without tags shows empty brackets", func() {
			So(p.Play("nothing_video_id"), ShouldBeNil)
			drain(out)
			So(p.ShowPlaying(), ShouldBeNil)
			So(drain(out), ShouldResemble, []string{"Currently playing: Video about nothing (nothing_video_id) []"})
		})
	})
}

func TestState(t *testing.T) {
	Convey("States have readable names", t, func() {
		So(Stopped.String(), ShouldEqual, "Stopped")
		So(Playing.String(), ShouldEqual, "Playing")
		So(Paused.String(), ShouldEqual, "Paused")
		So(State(42).String(), ShouldEqual, "Unknown")
	})
}
