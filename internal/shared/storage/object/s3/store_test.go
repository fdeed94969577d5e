package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/resume.pdf", want: "user/resume.pdf"},
		{name: "simple prefix", prefix: "uploads", key: "user/resume.pdf", want: "uploads/user/resume.pdf"},
		{name: "prefix trailing slash", prefix: "uploads/", key: "user/resume.pdf", want: "uploads/user/resume.pdf"},
		{name: "prefix and key slashes", prefix: "/uploads/", key: "/user/resume.pdf", want: "uploads/user/resume.pdf"},
		{name: "nested prefix", prefix: "uploads/resumes", key: "user/resume.pdf", want: "uploads/resumes/user/resume.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
