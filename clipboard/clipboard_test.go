package clipboard

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func fake(err error) (calls *[]string, restore func()) {
	var got []string
	old := writeAll
	writeAll = func(text string) error {
		got = append(got, text)
		return err
	}
	return &got, func() { writeAll = old }
}

func TestCopy(t *testing.T) {
	Convey("Given a working clipboard", t, func() {
		calls, restore := fake(nil)
		defer restore()

		Convey("Write makes exactly one call with the literal text", func() {
			So(Write("https://vidrock.net/movie/533535"), ShouldBeNil)
			So(*calls, ShouldResemble, []string{"https://vidrock.net/movie/533535"})
		})

		Convey("Copy emits CopiedMsg for its target", func() {
			msg := Copy("url", "https://vidrock.net/tv/94997/1/1")()
			So(msg, ShouldResemble, CopiedMsg{Target: "url"})
			So(*calls, ShouldResemble, []string{"https://vidrock.net/tv/94997/1/1"})
		})

		Convey("Text is passed without trimming", func() {
			_ = Copy("snippet", "  <iframe>\n")()
			So(*calls, ShouldResemble, []string{"  <iframe>\n"})
		})
	})

	Convey("Given a clipboard that refuses writes", t, func() {
		calls, restore := fake(errors.New("permission denied"))
		defer restore()

		Convey("Copy swallows the failure", func() {
			So(Copy("url", "x")(), ShouldBeNil)
			So(len(*calls), ShouldEqual, 1)
		})
	})
}
