package open

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("Accepts embed URLs", func() {
			So(Validate("https://vidrock.net/movie/533535"), ShouldBeNil)
			So(Validate("http://localhost:8080/?mode=tv"), ShouldBeNil)
		})

		Convey("Rejects anything else", func() {
			for _, input := range []string{"", "vidrock.net/movie/1", "file:///etc/passwd", "javascript:alert(1)", "https://"} {
				So(errors.Is(Validate(input), ErrNotWebURL), ShouldBeTrue)
			}
		})
	})
}
