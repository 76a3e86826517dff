package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"guesthouse/internal/config"
	"guesthouse/internal/http/handlers"
	"guesthouse/internal/http/server"
	applog "guesthouse/internal/log"
	"guesthouse/internal/mail"
	"guesthouse/internal/media"
	"guesthouse/internal/repos"
	"guesthouse/web"
)

const (
	adminEmail    = "admin@guesthouse.test"
	adminPassword = "Passw0rd!"
)

type captureTransport struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (c *captureTransport) Name() string { return "capture" }

func (c *captureTransport) Send(_ context.Context, m mail.Message) (mail.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return mail.Receipt{}, c.err
	}
	c.sent = append(c.sent, m)
	return mail.Receipt{Transport: "capture", MessageID: "test-1"}, nil
}

type testApp struct {
	app  *fiber.App
	db   *sqlx.DB
	mail *captureTransport
}

type appOpts struct {
	loginLimit int
	pageLimit  int
	mailErr    error

	// mailPerMinute, when set, wraps the capture transport in the throttle
	mailPerMinute int
}

func newTestApp(t *testing.T, o appOpts) *testApp {
	t.Helper()
	cfg := config.Config{
		DBDriver:    "sqlite",
		DBDSN:       ":memory:",
		DefaultLang: "nl",
		Mail:        config.MailConfig{From: "site@guesthouse.test", To: "owner@guesthouse.test"},
	}
	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := repos.Seed(context.Background(), db, repos.SeedOptions{AdminEmail: adminEmail, AdminPassword: adminPassword}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tr := &captureTransport{err: o.mailErr}
	gallery := media.StaticGallery{Images: []string{"/static/img/a.svg", "/static/img/b.svg", "/static/img/c.svg", "/static/img/d.svg", "/static/img/e.svg"}}
	if o.pageLimit == 0 {
		o.pageLimit = 1000
	}
	var transport mail.Transport = tr
	if o.mailPerMinute > 0 {
		transport = mail.NewThrottled(tr, o.mailPerMinute)
	}
	deps := handlers.NewDeps(db, cfg, nil, transport, gallery)
	app := server.New(cfg, deps, server.Options{
		Views:      web.Views(false, ""),
		Static:     web.Static(),
		LoginLimit: o.loginLimit,
		PageLimit:  o.pageLimit,
	})
	return &testApp{app: app, db: db, mail: tr}
}

func (a *testApp) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	return resp
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

// session carries the cookies of one browser.
type session struct {
	csrf string
	sid  string
}

func (s *session) addCookies(req *http.Request) {
	if s.csrf != "" {
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: s.csrf})
	}
	if s.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.sid})
	}
}

func (a *testApp) get(t *testing.T, s *session, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.addCookies(req)
	resp := a.do(t, req)
	if tok := cookieValue(resp, "csrf_"); tok != "" {
		s.csrf = tok
	}
	return resp
}

func (a *testApp) post(t *testing.T, s *session, path string, form url.Values) *http.Response {
	t.Helper()
	if s.csrf == "" {
		a.get(t, s, "/login")
		if s.csrf == "" {
			t.Fatal("csrf token missing")
		}
	}
	form.Set("csrf", s.csrf)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.addCookies(req)
	return a.do(t, req)
}

// login signs the admin in and returns the browser session.
func (a *testApp) login(t *testing.T) *session {
	t.Helper()
	s := &session{}
	resp := a.post(t, s, "/login", url.Values{"email": {adminEmail}, "password": {adminPassword}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login: expected 302, got %d", resp.StatusCode)
	}
	s.sid = cookieValue(resp, "sid")
	if s.sid == "" {
		t.Fatal("login: no sid cookie")
	}
	return s
}

type logEntry struct {
	Level    string         `json:"level"`
	Action   string         `json:"action"`
	Err      string         `json:"err"`
	Audit    bool           `json:"audit"`
	Security bool           `json:"security"`
	Fields   map[string]any `json:"fields"`
}

type lockedWriter struct {
	mu sync.Mutex
	w  bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// captureLogs swaps the process logger while fn runs and returns the decoded events.
func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var lw lockedWriter
	prev := *applog.L()
	applog.SetLogger(zerolog.New(&lw))
	defer applog.SetLogger(prev)

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(lw.w.String()), "\n") {
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}

var errSMTPDown = errors.New("dial tcp: connection refused")
