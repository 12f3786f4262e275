package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// Test Helpers
// =============================================================================

func siteHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, "<!DOCTYPE html><title>Home</title>")
	})
	mux.HandleFunc("GET /category/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<!DOCTYPE html><title>Category %s</title>", r.PathValue("id"))
	})
	mux.HandleFunc("GET /boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "partial")
	})
	return mux
}

type memoryPublisher struct {
	mu      sync.Mutex
	objects map[string]string
	fail    error
}

func (m *memoryPublisher) Publish(_ context.Context, key string, body []byte, _ string) error {
	if m.fail != nil {
		return m.fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = make(map[string]string)
	}
	m.objects[key] = string(body)
	return nil
}

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

// =============================================================================
// Key Tests
// =============================================================================

func TestKey(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"/", "index.html", false},
		{"/category/1", "category/1/index.html", false},
		{"/category/1/", "category/1/index.html", false},
		{"/cart", "cart/index.html", false},
		{"/robots.txt", "robots.txt", false},
		{"/static/app.css", "static/app.css", false},
		{"", "", true},
		{"category", "", true},
		{"/../etc/passwd", "", true},
		{"/a/./b", "", true},
		{"//evil.example/x", "", true},
		{"http://example.com/", "", true},
		{"/search?q=x", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Key(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Fatalf("Key(%q) error = %v, want ErrInvalidPath", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Key(%q): %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Exporter Tests
// =============================================================================

func TestExport(t *testing.T) {
	pub := &memoryPublisher{}
	res, err := New(siteHandler()).Export(context.Background(), []string{"/", "/category/1", "/"}, pub)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	want := map[string]string{
		"index.html":            "<!DOCTYPE html><title>Home</title>",
		"category/1/index.html": "<!DOCTYPE html><title>Category 1</title>",
	}
	if diff := cmp.Diff(want, pub.objects); diff != "" {
		t.Errorf("published objects mismatch (-want +got):\n%s", diff)
	}
	if len(res.Pages) != 2 {
		t.Errorf("result pages = %d, want 2", len(res.Pages))
	}
	if res.Bytes != len(want["index.html"])+len(want["category/1/index.html"]) {
		t.Errorf("result bytes = %d", res.Bytes)
	}
	if res.Pages[0].ContentType != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", res.Pages[0].ContentType)
	}
}

func TestExportPublishesNothingOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		paths  []string
		target any
	}{
		{"server error", []string{"/", "/boom"}, new(*PageError)},
		{"not found", []string{"/", "/missing/page"}, new(*PageError)},
		{"bad path", []string{"/", "../x"}, &ErrInvalidPath},
		{"no paths", nil, &ErrNoPaths},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &memoryPublisher{}
			_, err := New(siteHandler()).Export(context.Background(), tt.paths, pub)
			if err == nil {
				t.Fatal("Export succeeded")
			}
			switch target := tt.target.(type) {
			case **PageError:
				if !errors.As(err, target) {
					t.Errorf("error = %v, want *PageError", err)
				}
			case *error:
				if !errors.Is(err, *target) {
					t.Errorf("error = %v, want %v", err, *target)
				}
			}
			if len(pub.objects) != 0 {
				t.Errorf("published %d objects after failure", len(pub.objects))
			}
		})
	}
}

func TestExportPageErrorStatus(t *testing.T) {
	_, err := New(siteHandler()).Render(context.Background(), []string{"/boom"})
	var pe *PageError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *PageError", err)
	}
	if pe.Path != "/boom" || pe.Status != http.StatusInternalServerError {
		t.Errorf("PageError = %+v", pe)
	}
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(siteHandler()).Render(ctx, []string{"/"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestExportPublishError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := New(siteHandler()).Export(context.Background(), []string{"/"}, &memoryPublisher{fail: boom})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
}

// =============================================================================
// Publisher Tests
// =============================================================================

func TestDirPublisher(t *testing.T) {
	root := t.TempDir()
	pub := NewDirPublisher(root)

	if _, err := New(siteHandler()).Export(context.Background(), []string{"/", "/category/2"}, pub); err != nil {
		t.Fatalf("Export: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, "category", "2", "index.html"))
	if err != nil {
		t.Fatalf("read exported page: %v", err)
	}
	if string(got) != "<!DOCTYPE html><title>Category 2</title>" {
		t.Errorf("page = %q", got)
	}

	if err := pub.Publish(context.Background(), "../outside.html", nil, ""); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("escaping key error = %v, want ErrInvalidPath", err)
	}
}

func TestS3Publisher(t *testing.T) {
	client := &fakeS3{}
	pub := NewS3Publisher(client, "site-bucket", "preview")

	if err := pub.Publish(context.Background(), "category/1/index.html", []byte("<p>hi</p>"), "text/html; charset=utf-8"); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("PutObject calls = %d, want 1", len(client.inputs))
	}

	in := client.inputs[0]
	got := map[string]string{
		"bucket":        aws.ToString(in.Bucket),
		"key":           aws.ToString(in.Key),
		"content-type":  aws.ToString(in.ContentType),
		"cache-control": aws.ToString(in.CacheControl),
		"body":          client.bodies[0],
	}
	want := map[string]string{
		"bucket":        "site-bucket",
		"key":           "preview/category/1/index.html",
		"content-type":  "text/html; charset=utf-8",
		"cache-control": "public, max-age=300",
		"body":          "<p>hi</p>",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PutObject input mismatch (-want +got):\n%s", diff)
	}

	client.err = errors.New("access denied")
	if err := pub.Publish(context.Background(), "index.html", nil, "text/html"); !errors.Is(err, client.err) {
		t.Errorf("error = %v, want wrapped %v", err, client.err)
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	if _, err := EnvCredentials().Retrieve(context.Background()); !errors.Is(err, ErrNoCredentials) {
		t.Errorf("error = %v, want ErrNoCredentials", err)
	}

	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := EnvCredentials().Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if creds.AccessKeyID != "AKIDEXAMPLE" || creds.SecretAccessKey != "secret" {
		t.Errorf("credentials = %+v", creds)
	}

	if client := NewS3Client("eu-west-1"); client.Options().Region != "eu-west-1" {
		t.Errorf("client region = %q", client.Options().Region)
	}
}
