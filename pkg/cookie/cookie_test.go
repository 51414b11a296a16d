package cookie_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/headerkit/pkg/cookie"
	"github.com/dmitrymomot/headerkit/pkg/headers"
	"github.com/dmitrymomot/headerkit/pkg/logger"
)

func newFactory(t *testing.T, opts ...cookie.Option) (*cookie.Factory, *headers.Sink) {
	t.Helper()
	sink := headers.NewSink()
	opts = append([]cookie.Option{cookie.WithClock(cookie.FixedClock(fixedNow))}, opts...)
	return cookie.NewFactory(sink, opts...), sink
}

func sent(sink *headers.Sink) []string {
	return sink.Values().Values(headers.SetCookieHeader)
}

func TestFactory_Presets(t *testing.T) {
	t.Parallel()

	t.Run("standard", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Reset(cookie.WithExpires(fixedNow.Add(7200 * time.Second))).Cookie("name")
		require.NoError(t, err)
		require.NoError(t, c.Send("value"))

		assert.Equal(t, []string{"name=value; Path=/; Expires=Tuesday, 01-May-2018 02:00:00 UTC; MaxAge=7200"}, sent(sink))
	})

	t.Run("permanent overrides expires", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Reset(cookie.WithExpires(fixedNow.Add(7200 * time.Second))).PermanentCookie("name")
		require.NoError(t, err)
		require.NoError(t, c.Send("value"))

		assert.Equal(t, []string{"name=value; Path=/; Expires=Sunday, 30-Apr-2023 00:00:00 UTC; MaxAge=157680000"}, sent(sink))
	})

	t.Run("session", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.SessionCookie("SessionId")
		require.NoError(t, err)
		require.NoError(t, c.Send("1234567890"))

		assert.Equal(t, []string{"SessionId=1234567890; Path=/; HttpOnly; SameSite=Lax"}, sent(sink))
	})

	t.Run("session keeps other directives", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Domain("example.com").SameSite("Strict").Secure().SessionCookie("sid")
		require.NoError(t, err)
		require.NoError(t, c.Send("1"))

		assert.Equal(t, []string{"sid=1; Domain=example.com; Path=/; Secure; HttpOnly; SameSite=Lax"}, sent(sink))
	})
}

func TestFactory_ResetOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cookieName string
		overrides  []cookie.Directive
		value      string
		revoke     bool
		want       string
	}{
		{
			name:       "revoke",
			cookieName: "myCookie",
			revoke:     true,
			want:       "myCookie=; Path=/; Expires=Thursday, 01-Jan-1970 00:00:00 UTC; MaxAge=-1525132800",
		},
		{
			name:       "max age",
			cookieName: "fullCookie",
			value:      "foo",
			overrides: []cookie.Directive{
				cookie.WithSecure(),
				cookie.WithMaxAge(3600),
				cookie.WithHTTPOnly(),
				cookie.WithDomain("example.com"),
				cookie.WithPath("/directory/"),
				cookie.WithSameSite(""),
			},
			want: "fullCookie=foo; Domain=example.com; Path=/directory/; Expires=Tuesday, 01-May-2018 01:00:00 UTC; MaxAge=3600; Secure; HttpOnly; SameSite=Lax",
		},
		{
			name:       "expires",
			cookieName: "fullCookie",
			value:      "foo",
			overrides: []cookie.Directive{
				cookie.WithSecure(),
				cookie.WithExpires(fixedNow.Add(time.Hour)),
				cookie.WithHTTPOnly(),
				cookie.WithDomain("example.com"),
				cookie.WithPath("/directory/"),
				cookie.WithSameSite("Lax"),
			},
			want: "fullCookie=foo; Domain=example.com; Path=/directory/; Expires=Tuesday, 01-May-2018 01:00:00 UTC; MaxAge=3600; Secure; HttpOnly; SameSite=Lax",
		},
		{
			name:       "max age wins over expires",
			cookieName: "name",
			value:      "value",
			overrides: []cookie.Directive{
				cookie.WithMaxAge(100),
				cookie.WithExpires(fixedNow.Add(time.Hour)),
			},
			want: "name=value; Path=/; Expires=Tuesday, 01-May-2018 00:01:40 UTC; MaxAge=100",
		},
		{
			name:       "empty path is omitted",
			cookieName: "name",
			value:      "value",
			overrides:  []cookie.Directive{cookie.WithPath("")},
			want:       "name=value",
		},
		{
			name:       "nil override ignored",
			cookieName: "name",
			value:      "value",
			overrides:  []cookie.Directive{nil},
			want:       "name=value; Path=/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, sink := newFactory(t)
			c, err := f.Reset(tt.overrides...).Cookie(tt.cookieName)
			require.NoError(t, err)

			if tt.revoke {
				require.NoError(t, c.Revoke())
			} else {
				require.NoError(t, c.Send(tt.value))
			}
			assert.Equal(t, []string{tt.want}, sent(sink))
		})
	}
}

func TestFactory_ResetIsIdempotent(t *testing.T) {
	t.Parallel()

	f, sink := newFactory(t)
	f.Domain("example.com").Secure().HTTPOnly().MaxAge(10).SameSite("Strict")

	first, err := f.Reset().Cookie("name")
	require.NoError(t, err)
	second, err := f.Reset().Cookie("name")
	require.NoError(t, err)

	require.NoError(t, first.Send("value"))
	require.NoError(t, second.Send("value"))

	got := sent(sink)
	require.Len(t, got, 2)
	assert.Equal(t, got[0], got[1])
	assert.Equal(t, "name=value; Path=/", got[0])
	assert.Equal(t, cookie.DefaultDirectives(), f.Directives())
}

func TestFactory_CookieGetsSnapshot(t *testing.T) {
	t.Parallel()

	f, sink := newFactory(t)
	c, err := f.Path("/a").Cookie("name")
	require.NoError(t, err)

	f.Path("/b").Domain("example.com").Secure()
	assert.Equal(t, "/a", c.Directives().Path)

	require.NoError(t, c.Send("value"))
	assert.Equal(t, []string{"name=value; Path=/a"}, sent(sink))
}

func TestFactory_SameSiteNormalization(t *testing.T) {
	t.Parallel()

	f, _ := newFactory(t)
	assert.Equal(t, cookie.SameSiteStrict, f.SameSite("Strict").Directives().SameSite)
	assert.Equal(t, cookie.SameSiteLax, f.SameSite("None").Directives().SameSite)
	assert.Equal(t, cookie.SameSiteLax, f.SameSite("STRICT").Directives().SameSite)
}

func TestFactory_PrefixedNames(t *testing.T) {
	t.Parallel()

	t.Run("secure prefix", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Reset(cookie.WithDomain("example.com"), cookie.WithPath("/test")).Cookie("__SECURE-name")
		require.NoError(t, err)
		require.NoError(t, c.Send("test"))

		assert.Equal(t, []string{"__SECURE-name=test; Domain=example.com; Path=/test; Secure"}, sent(sink))
	})

	t.Run("host prefix", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Reset(cookie.WithDomain("example.com"), cookie.WithPath("/test")).Cookie("__host-name")
		require.NoError(t, err)
		require.NoError(t, c.Send("test"))

		assert.Equal(t, []string{"__host-name=test; Path=/; Secure"}, sent(sink))
	})
}

func TestFactory_IllegalName(t *testing.T) {
	t.Parallel()

	f, sink := newFactory(t)
	for _, name := range []string{"foo=bar", "żółty", "foo{bar}"} {
		c, err := f.Cookie(name)
		assert.ErrorIs(t, err, cookie.ErrIllegalCharacters)
		assert.Nil(t, c)
	}
	assert.Equal(t, 0, sink.Len())
}

func TestCookie_Send(t *testing.T) {
	t.Parallel()

	t.Run("illegal value leaves cookie pending", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Cookie("testValue")
		require.NoError(t, err)

		for _, value := range []string{`foo\bar`, "żółty", "foo;bar"} {
			assert.ErrorIs(t, c.Send(value), cookie.ErrIllegalCharacters)
		}
		assert.False(t, c.Sent())
		assert.Equal(t, 0, sink.Len())

		require.NoError(t, c.Send("ok"))
		assert.True(t, c.Sent())
	})

	t.Run("second send fails without touching sink", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Cookie("name")
		require.NoError(t, err)

		require.NoError(t, c.Send("value"))
		err = c.Send("other")
		require.ErrorIs(t, err, cookie.ErrAlreadySent)
		assert.Contains(t, err.Error(), `"name"`)

		assert.ErrorIs(t, c.Revoke(), cookie.ErrAlreadySent)
		assert.Equal(t, []string{"name=value; Path=/"}, sent(sink))
	})

	t.Run("send after revoke fails", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Cookie("name")
		require.NoError(t, err)

		require.NoError(t, c.Revoke())
		assert.ErrorIs(t, c.Send("value"), cookie.ErrAlreadySent)
		assert.Equal(t, 1, sink.Len())
	})

	t.Run("headers from several cookies accumulate", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		session, err := f.SessionCookie("cookie1")
		require.NoError(t, err)
		plain, err := f.Reset().Cookie("cookie2")
		require.NoError(t, err)

		require.NoError(t, session.Send("session"))
		require.NoError(t, plain.Send("value"))
		assert.Equal(t, []string{
			"cookie1=session; Path=/; HttpOnly; SameSite=Lax",
			"cookie2=value; Path=/",
		}, sent(sink))
	})
}

func TestCookie_Revoke(t *testing.T) {
	t.Parallel()

	t.Run("permanent cookie revokes into the past", func(t *testing.T) {
		t.Parallel()
		f, sink := newFactory(t)
		c, err := f.Secure().PermanentCookie("remember")
		require.NoError(t, err)
		require.NoError(t, c.Revoke())

		assert.Equal(t, []string{"remember=; Path=/; Expires=Thursday, 01-Jan-1970 00:00:00 UTC; MaxAge=-1525132800; Secure"}, sent(sink))
		assert.Equal(t, cookie.PermanentMaxAge, c.Directives().MaxAge)
	})

	t.Run("revoked value bypasses codec", func(t *testing.T) {
		t.Parallel()
		codec, err := cookie.NewSecureCodec([]byte(strings.Repeat("h", 32)), nil)
		require.NoError(t, err)
		f, sink := newFactory(t, cookie.WithCodec(codec))
		c, err := f.Cookie("token")
		require.NoError(t, err)

		require.NoError(t, c.Revoke())
		assert.True(t, strings.HasPrefix(sent(sink)[0], "token=; "))
	})
}

func TestCookie_WithName(t *testing.T) {
	t.Parallel()

	f, sink := newFactory(t)
	c, err := f.Domain("example.com").Cookie("name")
	require.NoError(t, err)
	assert.Equal(t, "name", c.Name())

	same, err := c.WithName("name")
	require.NoError(t, err)
	assert.Same(t, c, same)

	require.NoError(t, c.Send("value"))
	renamed, err := c.WithName("other")
	require.NoError(t, err)
	assert.NotSame(t, c, renamed)
	assert.Equal(t, "other", renamed.Name())
	assert.False(t, renamed.Sent())
	assert.True(t, c.Sent())
	assert.Equal(t, c.Directives(), renamed.Directives())

	require.NoError(t, renamed.Send("v2"))
	assert.Equal(t, []string{
		"name=value; Domain=example.com; Path=/",
		"other=v2; Domain=example.com; Path=/",
	}, sent(sink))

	_, err = c.WithName("bad name")
	assert.ErrorIs(t, err, cookie.ErrIllegalCharacters)
}

func TestCookie_UsesClockAtSendTime(t *testing.T) {
	t.Parallel()

	now := fixedNow
	sink := headers.NewSink()
	f := cookie.NewFactory(sink, cookie.WithClock(cookie.ClockFunc(func() time.Time { return now })))
	c, err := f.MaxAge(60).Cookie("name")
	require.NoError(t, err)

	now = fixedNow.Add(time.Hour)
	require.NoError(t, c.Send("v"))
	assert.Equal(t, []string{"name=v; Path=/; Expires=Tuesday, 01-May-2018 01:01:00 UTC; MaxAge=60"}, sent(sink))
}

func TestCookie_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText), logger.WithLevel(slog.LevelDebug))
	f, _ := newFactory(t, cookie.WithLogger(log))
	c, err := f.Cookie("name")
	require.NoError(t, err)

	require.NoError(t, c.Send("v"))
	require.Error(t, c.Send("v"))

	out := buf.String()
	assert.Contains(t, out, `msg="cookie emitted"`)
	assert.Contains(t, out, `msg="cookie rejected"`)
	assert.Contains(t, out, "component=cookie")
	assert.Contains(t, out, "cookie=name")
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("without sink", func(t *testing.T) {
		t.Parallel()
		f, err := cookie.FromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
		assert.ErrorIs(t, err, cookie.ErrNoSink)
		assert.Nil(t, f)
	})

	t.Run("through response headers middleware", func(t *testing.T) {
		t.Parallel()
		rh := headers.New()
		handler := rh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f, err := cookie.FromContext(r.Context(), cookie.WithClock(cookie.FixedClock(fixedNow)))
			require.NoError(t, err)

			session, err := f.SessionCookie("SessionId")
			require.NoError(t, err)
			require.NoError(t, session.Send("1234567890"))

			old, err := f.Reset().Cookie("legacy")
			require.NoError(t, err)
			require.NoError(t, old.Revoke())

			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{
			"SessionId=1234567890; Path=/; HttpOnly; SameSite=Lax",
			"legacy=; Path=/; Expires=Thursday, 01-Jan-1970 00:00:00 UTC; MaxAge=-1525132800",
		}, rec.Result().Header.Values(headers.SetCookieHeader))
	})

	t.Run("through process", func(t *testing.T) {
		t.Parallel()
		rh := headers.New(headers.WithDefaults(headers.SetCookie("default=value")))
		resp := rh.Process(httptest.NewRequest(http.MethodGet, "/", nil), func(r *http.Request) *http.Response {
			f, err := cookie.FromContext(r.Context(), cookie.WithClock(cookie.FixedClock(fixedNow)))
			require.NoError(t, err)
			c, err := f.Cookie("name")
			require.NoError(t, err)
			require.NoError(t, c.Send("value"))
			return &http.Response{StatusCode: http.StatusOK}
		})

		assert.Equal(t, []string{"default=value", "name=value; Path=/"}, resp.Header.Values(headers.SetCookieHeader))
	})
}
