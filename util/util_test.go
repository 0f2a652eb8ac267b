package util

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/vidrock-cli/vidrock/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "entry", "entries"), ShouldEqual, "1 entry")
		So(Quantify(2, "entry", "entries"), ShouldEqual, "2 entries")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("embedding"), ShouldEqual, "Embedding")
		So(Capitalize("ünicode"), ShouldEqual, "Ünicode")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestClampWrap(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 0, 3), ShouldEqual, 3)
		So(Clamp(-1, 0, 3), ShouldEqual, 0)
		So(Clamp(2, 0, 3), ShouldEqual, 2)
	})

	Convey("Wrap", t, func() {
		So(Wrap(2, 1, 3), ShouldEqual, 0)
		So(Wrap(0, -1, 3), ShouldEqual, 2)
		So(Wrap(1, 1, 0), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Should remove a file", func() {
			lo.Must0(afero.WriteFile(fs, "/tmp/recent.json", []byte("{}"), 0o644))
			So(Delete("/tmp/recent.json"), ShouldBeNil)
			So(lo.Must(afero.Exists(fs, "/tmp/recent.json")), ShouldBeFalse)
		})

		Convey("Should remove a directory tree", func() {
			lo.Must0(fs.MkdirAll("/tmp/cache/nested", 0o755))
			So(Delete("/tmp/cache"), ShouldBeNil)
			So(lo.Must(afero.Exists(fs, "/tmp/cache")), ShouldBeFalse)
		})

		Convey("Should fail on a missing path", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
