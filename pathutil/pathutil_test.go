package pathutil

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain name unchanged",
			raw:  "reports",
			want: "reports",
		},
		{
			name: "spaces become underscores",
			raw:  "my project",
			want: "my_project",
		},
		{
			name: "reserved characters stripped",
			raw:  `a<b>c:d"e/f\g|h?i*j`,
			want: "abcdefghij",
		},
		{
			name: "control characters stripped",
			raw:  "a\x00b\x1fc\td",
			want: "abcd",
		},
		{
			name: "empty input yields empty output",
			raw:  "",
			want: "",
		},
		{
			name: "mixed quoting and separators",
			raw:  `my project: "test" folder/sub`,
			want: "my_project_test_foldersub",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sanitize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSanitize_LengthBound(t *testing.T) {
	long := strings.Repeat("x", 1000)
	got := Sanitize(long)
	if len(got) != 255 {
		t.Errorf("Sanitize() length = %d, want 255", len(got))
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"reports",
		"my project",
		`a<b>c:d"e/f\g|h?i*j`,
		"a\x00b\x1fc",
		strings.Repeat("long name ", 100),
		"",
	}

	for _, raw := range inputs {
		once := Sanitize(raw)
		twice := Sanitize(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Sanitize(%q) not idempotent (-once +twice):\n%s", raw, diff)
		}
	}
}

func TestAppendTimestamp(t *testing.T) {
	got := AppendTimestamp("report")

	if !strings.HasPrefix(got, "report_") {
		t.Errorf("AppendTimestamp() = %q, want report_ prefix", got)
	}

	pattern := regexp.MustCompile(`^report_\d{8}_\d{6}$`)
	if !pattern.MatchString(got) {
		t.Errorf("AppendTimestamp() = %q, want name_YYYYMMDD_HHMMSS format", got)
	}
}

func TestSplitChain(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "bare name",
			path: "data",
			want: []string{"data"},
		},
		{
			name: "forward slashes",
			path: "data/raw/2024",
			want: []string{"data", "raw", "2024"},
		},
		{
			name: "backslashes",
			path: `data\raw`,
			want: []string{"data", "raw"},
		},
		{
			name: "empty segments dropped",
			path: "/data//raw/",
			want: []string{"data", "raw"},
		},
		{
			name: "empty path yields no segments",
			path: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitChain(tt.path)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitChain() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
