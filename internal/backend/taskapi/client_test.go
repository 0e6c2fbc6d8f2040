package taskapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maiitrapatel-code/Task-Management-System/internal/backend/taskapi"
	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/session"
)

type env struct {
	client *taskapi.Client
	sess   *session.Store
	path   string
}

func newEnv(t *testing.T, handler http.Handler) *env {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	cfg := &config.Config{
		Dir:     dir,
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
	}
	path := filepath.Join(dir, "session.json")
	sess := session.New(path)
	return &env{
		client: taskapi.New(cfg, sess),
		sess:   sess,
		path:   path,
	}
}

func TestLogin_SendsFormEncodedCredentials(t *testing.T) {
	var gotContentType, gotUsername, gotPassword string
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotUsername = r.PostFormValue("username")
		gotPassword = r.PostFormValue("password")
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-abc",
			"token_type":   "bearer",
		})
	}))

	token, err := e.client.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("expected token tok-abc, got %q", token)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("expected form-encoded login, got %q", gotContentType)
	}
	if gotUsername != "alice" || gotPassword != "secret123" {
		t.Errorf("credentials not sent: username=%q password=%q", gotUsername, gotPassword)
	}
}

func TestLogin_InvalidCredentialsSurfaceDetailVerbatim(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid username or password."})
	}))

	_, err := e.client.Login(context.Background(), "alice", "wrong")
	var re *service.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", re.Status)
	}
	if re.Detail != "Invalid username or password." {
		t.Errorf("expected server detail verbatim, got %q", re.Detail)
	}
}

func TestTokenAttachment(t *testing.T) {
	var gotAuth string
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))

	if err := e.sess.Login("tok-abc", "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.client.ListTasks(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestNoTokenMeansNoAuthHeader(t *testing.T) {
	var gotAuth string
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))

	if _, err := e.client.ListTasks(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected unauthenticated request, got %q", gotAuth)
	}
}

func TestRequestIDHeaderAttached(t *testing.T) {
	var gotID string
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte("[]"))
	}))

	if _, err := e.client.ListTasks(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if gotID == "" {
		t.Error("expected X-Request-ID header on every request")
	}
}

func TestAuthRejection_InvalidatesSessionAndPropagates(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate user."})
	}))

	if err := e.sess.Login("stale-token", "alice"); err != nil {
		t.Fatal(err)
	}

	_, err := e.client.ListTasks(context.Background())
	if !service.IsAuthRejected(err) {
		t.Fatalf("expected auth rejection, got %v", err)
	}
	// Session invalidation is global policy, even when the operation was a read.
	if e.sess.Authenticated() {
		t.Error("session should be cleared after 401")
	}
	if _, statErr := os.Stat(e.path); !os.IsNotExist(statErr) {
		t.Error("session file should be removed after 401")
	}
}

func TestListTasks_DecodesPayload(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id":7,"title":"Buy milk","description":"Corner shop","priority":2,"complete":false},
			{"id":9,"title":"File taxes","description":"Before deadline","priority":5,"complete":true}
		]`))
	}))

	tasks, err := e.client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 7 || tasks[0].Title != "Buy milk" || tasks[0].Priority != 2 {
		t.Errorf("first task decoded wrong: %+v", tasks[0])
	}
	if tasks[1].ID != 9 || !tasks[1].Complete {
		t.Errorf("second task decoded wrong: %+v", tasks[1])
	}
}

func TestMutations_MethodsAndPaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		switch r.Method {
		case http.MethodPost:
			// Created with empty body, like the real API.
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	ctx := context.Background()
	draft := service.TaskDraft{Title: "abc", Description: "def", Priority: 3}
	if err := e.client.CreateTask(ctx, draft); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := e.client.UpdateTask(ctx, 7, draft); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := e.client.DeleteTask(ctx, 7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	want := []call{
		{http.MethodPost, "/tasks/"},
		{http.MethodPut, "/tasks/7"},
		{http.MethodDelete, "/tasks/7"},
	}
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(calls))
	}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d: expected %v, got %v", i, w, calls[i])
		}
	}
}

func TestSignup_SendsJSONBody(t *testing.T) {
	var got map[string]string
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/signup" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "User created successfully"})
	}))

	msg, err := e.client.Signup(context.Background(), "alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if msg != "User created successfully" {
		t.Errorf("expected server message, got %q", msg)
	}
	if got["username"] != "alice" || got["email"] != "alice@example.com" || got["password"] != "secret123" {
		t.Errorf("signup body wrong: %v", got)
	}
}

func TestErrorDetail_FallsBackToGenericMessage(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := e.client.ListTasks(context.Background())
	var re *service.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Status != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", re.Status)
	}
	if re.Detail != "request failed" {
		t.Errorf("expected generic detail, got %q", re.Detail)
	}
}

func TestTransportFailure_ReportedAsRequestError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	dir := t.TempDir()
	cfg := &config.Config{Dir: dir, BaseURL: url, Timeout: time.Second}
	sess := session.New(filepath.Join(dir, "session.json"))
	client := taskapi.New(cfg, sess)

	_, err := client.ListTasks(context.Background())
	var re *service.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Status != 0 {
		t.Errorf("transport failure should carry status 0, got %d", re.Status)
	}
	if service.IsAuthRejected(err) {
		t.Error("transport failure must not count as auth rejection")
	}
}
