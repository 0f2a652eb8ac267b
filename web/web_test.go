package web

import (
	"context"
	"encoding/json"
	"html"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/docs"
	vembed "github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/key"
)

func configure() {
	viper.Set(key.EmbedBase, vembed.DefaultBase)
	viper.Set(key.DocsBase, docs.DefaultBase)
	viper.Set(key.DocsDefaultTab, "embedding")
	viper.Set(key.PlayerDefaultMode, "movie")
	viper.Set(key.PlayerMovieID, "533535")
	viper.Set(key.PlayerTVID, "94997")
	viper.Set(key.PlayerSeason, "1")
	viper.Set(key.PlayerEpisode, "1")
	viper.Set(key.ClipboardAckSeconds, 2)
	viper.Set(key.ServerH2C, false)
	viper.Set(key.ServerShutdownTimeout, 1)
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndex(t *testing.T) {
	Convey("Given the landing page", t, func() {
		configure()
		h := New().Handler()

		Convey("The defaults render the movie preview", func() {
			rec := get(h, "/")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldStartWith, "text/html")

			body := rec.Body.String()
			So(body, ShouldContainSubstring, `<iframe id="preview" src="https://vidrock.net/movie/533535" allowfullscreen>`)
			So(body, ShouldContainSubstring, `value="https://vidrock.net/movie/533535" readonly`)
			So(body, ShouldContainSubstring, "Movie Embed URL")
			for _, f := range docs.Features() {
				So(body, ShouldContainSubstring, f.Title)
			}
		})

		Convey("Series parameters render the episode preview", func() {
			body := get(h, "/?mode=tv&tv=94997&season=1&episode=1").Body.String()
			So(body, ShouldContainSubstring, `src="https://vidrock.net/tv/94997/1/1"`)
			So(body, ShouldContainSubstring, `name="season" value="1"`)

			Convey("The movie id travels as a hidden field", func() {
				So(body, ShouldContainSubstring, `<input type="hidden" name="movie" value="533535">`)
			})
		})

		Convey("Identifiers are interpolated without validation", func() {
			body := get(h, "/?movie=not-an-id").Body.String()
			So(body, ShouldContainSubstring, `src="https://vidrock.net/movie/not-an-id"`)
		})

		Convey("An unknown mode falls back to the default", func() {
			rec := get(h, "/?mode=anime&movie=550")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `src="https://vidrock.net/movie/550"`)
		})

		Convey("The customization tab lists every parameter", func() {
			body := get(h, "/?tab=customization").Body.String()
			for _, p := range vembed.Parameters() {
				So(body, ShouldContainSubstring, `<span class="badge param">`+p.Name+`</span>`)
			}
			So(body, ShouldContainSubstring, "Try it")
			So(body, ShouldNotContainSubstring, "Hide Preview")
		})

		Convey("Try it shows the multiple parameters preview", func() {
			body := get(h, "/?tab=customization&try=1").Body.String()
			So(body, ShouldContainSubstring, "Hide Preview")
			So(body, ShouldContainSubstring, `<iframe src="https://vidrock.net/tv/1399/1/1?autoplay=true&amp;autonext=true&amp;theme=00ff00&amp;download=false" allowfullscreen>`)
		})

		Convey("The watch progress tab is a placeholder", func() {
			body := get(h, "/?tab=watch-progress").Body.String()
			So(body, ShouldContainSubstring, "not supported via API")
		})
	})
}

func TestAPI(t *testing.T) {
	Convey("Given the JSON API", t, func() {
		configure()
		h := New().Handler()

		Convey("/api/url derives the default movie", func() {
			rec := get(h, "/api/url")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var link vembed.Link
			So(json.Unmarshal(rec.Body.Bytes(), &link), ShouldBeNil)
			So(link.URL, ShouldEqual, "https://vidrock.net/movie/533535")
		})

		Convey("/api/url appends documented parameters", func() {
			rec := get(h, "/api/url?mode=tv&tv=1399&season=1&episode=1&download=false&theme=00ff00&autonext=true&autoplay=true")
			var link vembed.Link
			So(json.Unmarshal(rec.Body.Bytes(), &link), ShouldBeNil)
			So(link.URL, ShouldEqual, "https://vidrock.net/tv/1399/1/1?autoplay=true&autonext=true&theme=00ff00&download=false")
			So(link.Selection.Mode, ShouldEqual, vembed.TV)
		})

		Convey("/api/url rejects invalid values", func() {
			for _, target := range []string{"/api/url?autoplay=maybe", "/api/url?mode=anime", "/api/url?theme=red"} {
				rec := get(h, target)
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Header().Get("Content-Type"), ShouldEqual, "application/json")

				var body errorResponse
				So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
				So(body.Error, ShouldNotBeEmpty)
			}
		})

		Convey("/api/parameters returns the registry", func() {
			var params []vembed.Parameter
			So(json.Unmarshal(get(h, "/api/parameters").Body.Bytes(), &params), ShouldBeNil)
			So(params, ShouldResemble, vembed.Parameters())
		})

		Convey("/healthz answers ok", func() {
			So(get(h, "/healthz").Body.String(), ShouldEqual, "ok")
		})

		Convey("Static assets are served", func() {
			rec := get(h, "/static/app.js")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "navigator.clipboard.writeText")
		})

		Convey("Unknown routes are 404", func() {
			So(get(h, "/nope").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

var previewSrc = regexp.MustCompile(`<iframe id="preview" src="([^"]*)"`)

func TestLivePreview(t *testing.T) {
	Convey("Given the landing page and the JSON API", t, func() {
		configure()
		h := New().Handler()

		Convey("The API answers the URL the page previews for the same query", func() {
			for _, query := range []string{
				"",
				"movie=5",
				"movie=55",
				"movie=550",
				"movie=TT0111161",
				"mode=tv&tv=1399&season=2&episode=7",
				"mode=tv&tv=1399&season=1&episode=1&autoplay=true&theme=00ff00&download=false",
			} {
				var link vembed.Link
				So(json.Unmarshal(get(h, "/api/url?"+query).Body.Bytes(), &link), ShouldBeNil)

				m := previewSrc.FindStringSubmatch(get(h, "/?"+query).Body.String())
				So(m, ShouldHaveLength, 2)
				So(html.UnescapeString(m[1]), ShouldEqual, link.URL)
			}
		})

		Convey("The page script ignores responses to superseded edits", func() {
			script := get(h, "/static/app.js").Body.String()
			So(script, ShouldContainSubstring, "seq !== latest")
			So(script, ShouldContainSubstring, "AbortController")
		})
	})
}

func TestServe(t *testing.T) {
	Convey("Given a running server", t, func() {
		configure()
		viper.Set(key.ServerH2C, true)
		defer viper.Set(key.ServerH2C, false)

		ln := lo.Must(net.Listen("tcp", "127.0.0.1:0"))
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- New().Serve(ctx, ln) }()
		Reset(cancel)

		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		So(err, ShouldBeNil)
		body := lo.Must(io.ReadAll(resp.Body))
		_ = resp.Body.Close()
		So(strings.TrimSpace(string(body)), ShouldEqual, "ok")

		Convey("Cancelling the context shuts it down", func() {
			cancel()
			select {
			case err := <-done:
				So(err, ShouldBeNil)
			case <-time.After(3 * time.Second):
				So("shutdown timed out", ShouldBeEmpty)
			}
		})
	})
}

func TestReadState(t *testing.T) {
	Convey("readState", t, func() {
		configure()
		defaults := vembed.FromConfig()

		Convey("Empty values are kept", func() {
			st := readState(map[string][]string{"movie": {""}}, defaults)
			So(st.Selection.MovieID, ShouldBeEmpty)
		})

		Convey("Tabs accept positions and fall back", func() {
			So(readState(map[string][]string{"tab": {"2"}}, defaults).Tab, ShouldEqual, docs.Customization)
			So(readState(map[string][]string{"tab": {"faq"}}, defaults).Tab, ShouldEqual, docs.Embedding)
		})

		Convey("values round-trips through the query string", func() {
			st := state{Selection: defaults.WithMode(vembed.TV), Tab: docs.WatchProgress, TryIt: true}
			So(readState(st.values(), defaults), ShouldResemble, st)
		})
	})
}
