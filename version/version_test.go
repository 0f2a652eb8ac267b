package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidrock-cli/vidrock/constant"
	"github.com/vidrock-cli/vidrock/filesystem"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		So(lo.Must(Compare("1.2.3", "1.2.3")), ShouldEqual, 0)
		So(lo.Must(Compare("v1.3.0", "1.2.9")), ShouldEqual, 1)
		So(lo.Must(Compare("0.1.0", "0.10.0")), ShouldEqual, -1)

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		filesystem.SetMemMapFs()

		var hits int
		var agent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			agent = r.UserAgent()
			_, _ = w.Write([]byte(`{"tag_name":"v0.2.0"}`))
		}))
		defer server.Close()

		old := releasesURL
		releasesURL = server.URL
		defer func() { releasesURL = old }()

		Convey("Latest strips the tag prefix and caches the result", func() {
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "0.2.0")
			So(agent, ShouldEqual, constant.UserAgent)

			ver, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "0.2.0")
			So(hits, ShouldEqual, 1)
		})
	})
}

func TestCompareLoose(t *testing.T) {
	Convey("Compare tolerates short and pre-release versions", t, func() {
		So(lo.Must(Compare("1.2", "1.2.0")), ShouldEqual, 0)
		So(lo.Must(Compare("1.3.0-rc1", "1.2.0")), ShouldEqual, 1)
	})
}
