package filesystem

import (
	"testing"
	"testing/fstest"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestAssets(t *testing.T) {
	Convey("Given a bundled asset tree", t, func() {
		bundle := fstest.MapFS{
			"static/app.css": {Data: []byte("body{}")},
		}

		Convey("Assets roots the tree at the given directory", func() {
			fsys := Assets(bundle, "static")
			data, err := afero.ReadFile(fsys, "app.css")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "body{}")
		})

		Convey("Assets refuses writes", func() {
			fsys := Assets(bundle, "")
			So(afero.WriteFile(fsys, "static/new.css", []byte("x"), 0o644), ShouldNotBeNil)
		})

		Convey("HTTP serves the same files", func() {
			f := lo.Must(HTTP(Assets(bundle, "static")).Open("/app.css"))
			defer f.Close()
			So(lo.Must(f.Stat()).Size(), ShouldEqual, 6)
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("GacheFs delegates to the active backend", t, func() {
		SetMemMapFs()
		So(GacheFs{}.MkdirAll("/cache/vidrock", 0o755), ShouldBeNil)
		So(lo.Must(API().IsDir("/cache/vidrock")), ShouldBeTrue)
	})
}
