package restclient

import (
	"context"
	"net/http"
	"testing"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestTypedGet_BodyMode(t *testing.T) {
	srv, _ := recordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"widget"}`))
	})
	c := newTestClient(t, Config{BaseURL: srv.URL})

	res, err := Get[item](context.Background(), c, "/items/7", nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if res.Body.ID != 7 || res.Body.Name != "widget" {
		t.Errorf("body = %+v", res.Body)
	}
	// Body mode strips the envelope.
	if res.Status != 0 {
		t.Errorf("status should be zero in body mode, got %d", res.Status)
	}
	if res.Headers != nil {
		t.Errorf("headers should be nil in body mode, got %v", res.Headers)
	}
}

func TestTypedGet_FullMode(t *testing.T) {
	srv, _ := recordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Etag", "v3")
		_, _ = w.Write([]byte(`{"id":7,"name":"widget"}`))
	})
	c := newTestClient(t, Config{BaseURL: srv.URL})

	res, err := Get[item](context.Background(), c, "/items/7", &RequestOptions{Mode: ModeFull})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if res.Status != http.StatusOK {
		t.Errorf("status = %d", res.Status)
	}
	if res.Headers["Etag"] != "v3" {
		t.Errorf("headers = %v", res.Headers)
	}
	if res.Body.ID != 7 {
		t.Errorf("body = %+v", res.Body)
	}
}

func TestTypedPost(t *testing.T) {
	srv, recorded := recordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"widget"}`))
	})
	c := newTestClient(t, Config{BaseURL: srv.URL})

	res, err := Post[item](context.Background(), c, "/items", item{Name: "widget"}, &RequestOptions{Mode: ModeFull})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if res.Status != http.StatusCreated {
		t.Errorf("status = %d", res.Status)
	}
	if res.Body.ID != 1 {
		t.Errorf("body = %+v", res.Body)
	}
	if recorded()[0].Method != http.MethodPost {
		t.Errorf("method = %s", recorded()[0].Method)
	}
}

func TestTypedDelete_EmptyBody(t *testing.T) {
	srv, _ := recordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, Config{BaseURL: srv.URL})

	res, err := Delete[item](context.Background(), c, "/items/7", nil)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// No payload leaves the zero value.
	if res.Body != (item{}) {
		t.Errorf("body = %+v", res.Body)
	}
}

func TestTypedGet_DecodeError(t *testing.T) {
	srv, _ := recordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	c := newTestClient(t, Config{BaseURL: srv.URL})

	if _, err := Get[item](context.Background(), c, "/items/7", nil); err == nil {
		t.Fatal("expected a decode error")
	}
}
