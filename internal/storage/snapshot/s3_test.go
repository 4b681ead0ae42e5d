// internal/storage/snapshot/s3_test.go
package snapshot

import (
	"strings"
	"testing"
)

func TestS3Source_ImplementsSource(t *testing.T) {
	var _ Source = (*S3Source)(nil)
}

func TestNewS3_RequiresBucket(t *testing.T) {
	if _, err := NewS3(S3Config{Region: "us-east-1"}); err == nil {
		t.Error("expected error without bucket")
	}

	src, err := NewS3(S3Config{Bucket: "snapshots", Region: "us-east-1", Endpoint: "http://localhost:9000"})
	if err != nil {
		t.Fatalf("NewS3: %v", err)
	}
	if src.bucket != "snapshots" {
		t.Errorf("bucket = %s", src.bucket)
	}
}

func TestS3Source_Key(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		want   string
	}{
		{"", "yes.json", "yes.json"},
		{"history", "yes.json", "history/yes.json"},
		{"history/", "yes.json", "history/yes.json"},
	}

	for _, tt := range tests {
		s := &S3Source{prefix: strings.TrimSuffix(tt.prefix, "/")}
		got := s.key(tt.path)
		if got != tt.want {
			t.Errorf("key(%q) with prefix %q = %q, want %q", tt.path, tt.prefix, got, tt.want)
		}
		if rel := s.relative(got); rel != tt.path {
			t.Errorf("relative(%q) = %q, want %q", got, rel, tt.path)
		}
	}
}
