package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("ReadFile reads through the active backend", func() {
			SetMemMapFs()
			So(API().WriteFile("/scripts/a.txt", []byte("PLAY x"), 0o644), ShouldBeNil)

			data, err := ReadFile("/scripts/a.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "PLAY x")

			_, err = ReadFile("/scripts/missing.txt")
			So(err, ShouldNotBeNil)
		})
	})
}
