package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"ffinfo/internal/access"
	"ffinfo/internal/cooldown"
	"ffinfo/internal/ffapi"
	"ffinfo/internal/imaging"
	"ffinfo/internal/storage"
)

type testEnv struct {
	pipeline *Pipeline
	storage  *storage.Storage
	requests *int64
	now      *time.Time
}

func newTestEnv(t *testing.T, handler http.HandlerFunc) *testEnv {
	t.Helper()

	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	store, err := storage.New(filepath.Join(t.TempDir(), "info_channels.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	client := ffapi.NewClient(srv.Client(), srv.URL+"/info", srv.URL+"/outfit", srv.URL+"/card")
	p := New(access.New(store, cooldown.NewTracker()), client, imaging.PassThrough{})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	return &testEnv{pipeline: p, storage: store, requests: &requests, now: &now}
}

func request(uid string) Request {
	return Request{GuildID: "guild1", ChannelID: "chan1", UserID: "user1", UID: uid}
}

func TestValidUID(t *testing.T) {
	cases := []struct {
		uid  string
		want bool
	}{
		{"123456", true},
		{"1234567890", true},
		{"12345", false},
		{"", false},
		{"12345a", false},
		{"123 456", false},
		{"-123456", false},
	}
	for _, c := range cases {
		if got := ValidUID(c.uid); got != c.want {
			t.Errorf("ValidUID(%q) = %v, want %v", c.uid, got, c.want)
		}
	}
}

func TestRun_InvalidUIDMakesNoRequests(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {})

	res := env.pipeline.Run(context.Background(), request("12ab"))
	if res.Reply != "Invalid UID! It must be numbers only and at least 6 digits." {
		t.Errorf("unexpected reply %q", res.Reply)
	}
	if res.Response != nil {
		t.Error("invalid uid should not produce a rendered response")
	}
	if got := atomic.LoadInt64(env.requests); got != 0 {
		t.Errorf("invalid uid must not reach upstream, saw %d requests", got)
	}
}

func TestRun_DisallowedChannelIsEphemeral(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {})
	env.storage.AddInfoChannel("guild1", "other-channel")

	res := env.pipeline.Run(context.Background(), request("123456"))
	if res.Reply != "This command is not allowed in this channel." {
		t.Errorf("unexpected reply %q", res.Reply)
	}
	if !res.Ephemeral {
		t.Error("channel denial should be ephemeral")
	}
	if got := atomic.LoadInt64(env.requests); got != 0 {
		t.Errorf("denied invocation must not reach upstream, saw %d requests", got)
	}
}

func TestRun_CooldownDenialReportsRemaining(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	env.pipeline.Run(context.Background(), request("123456"))

	*env.now = env.now.Add(5 * time.Second)
	res := env.pipeline.Run(context.Background(), request("123456"))
	if res.Reply != "Please wait 25s before using this command again" {
		t.Errorf("unexpected reply %q", res.Reply)
	}
	if !res.Ephemeral {
		t.Error("cooldown denial should be ephemeral")
	}
}

func TestRun_PlayerNotFound(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	res := env.pipeline.Run(context.Background(), request("123456"))
	if res.Reply != "Player with UID `123456` not found." {
		t.Errorf("unexpected reply %q", res.Reply)
	}
	if res.Response != nil {
		t.Error("not-found must not produce a rendered response")
	}
}

func TestRun_UpstreamErrorIsGeneric(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := env.pipeline.Run(context.Background(), request("123456"))
	if res.Reply != "API error. Try again later." {
		t.Errorf("unexpected reply %q", res.Reply)
	}
}

func TestRun_ImageFailuresDegradeGracefully(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/info" {
			w.Write([]byte(`{"basicInfo": {"nickname": "Alice"}}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := env.pipeline.Run(context.Background(), request("123456"))
	if res.Reply != "" {
		t.Fatalf("expected a rendered response, got reply %q", res.Reply)
	}
	if res.Response == nil {
		t.Fatal("expected a rendered response")
	}
	if len(res.Response.Attachments) != 0 {
		t.Errorf("failed image fetches should yield no attachments, got %d", len(res.Response.Attachments))
	}
	if got := res.Response.Blocks[0].Lines[0].Value; got != "Alice" {
		t.Errorf("expected player name Alice in the first block, got %q", got)
	}
}

func TestRun_SuccessCarriesImages(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/info":
			w.Write([]byte(`{"basicInfo": {"nickname": "Alice"}}`))
		case "/card":
			w.Write([]byte{1, 1, 1})
		case "/outfit":
			w.Write([]byte{2, 2, 2})
		}
	})

	res := env.pipeline.Run(context.Background(), request("123456"))
	if res.Response == nil {
		t.Fatalf("expected a rendered response, got reply %q", res.Reply)
	}
	if len(res.Response.Attachments) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(res.Response.Attachments))
	}
	if res.Response.InlineAttachment() == nil {
		t.Error("expected the profile card as inline attachment")
	}
}

func TestRun_OnAdmittedFiresOnlyAfterAuthorization(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	env.storage.AddInfoChannel("guild1", "other-channel")

	admitted := false
	req := request("123456")
	req.OnAdmitted = func() { admitted = true }

	env.pipeline.Run(context.Background(), req)
	if admitted {
		t.Error("OnAdmitted must not fire on a denied invocation")
	}

	env.storage.AddInfoChannel("guild1", "chan1")
	env.pipeline.Run(context.Background(), req)
	if !admitted {
		t.Error("OnAdmitted should fire once the invocation is admitted")
	}
}
