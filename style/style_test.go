package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorBox(t *testing.T) {
	Convey("ErrorBox keeps every part of the message", t, func() {
		out := ErrorBox("Error: Invalid Library", "line 3: expected a title", "vidcat library schema")
		So(out, ShouldContainSubstring, "Invalid Library")
		So(out, ShouldContainSubstring, "line 3: expected a title")
		So(out, ShouldContainSubstring, "vidcat library schema")
	})

	Convey("Fg keeps the text", t, func() {
		So(Fg(Green)("ok"), ShouldContainSubstring, "ok")
	})
}
