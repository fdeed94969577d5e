package llm

import "testing"

func TestStripFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain json untouched", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "whitespace only", raw: "  \n\t ", want: ""},
		{name: "fence marker inside string survives", raw: "{\"note\":\"use ``` for code\"}", want: "{\"note\":\"use  for code\"}"},
		{name: "json tag inside fence body", raw: "```json{\"lang\":\"```json\"}```", want: "{\"lang\":\"\"}"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripFences(tt.raw); got != tt.want {
				t.Fatalf("StripFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"```json\n{\"a\":1}\n```",
		"{\"a\":1}",
		"```\nplain text\n```",
	}
	for _, in := range inputs {
		once := StripFences(in)
		twice := StripFences(once)
		if once != twice {
			t.Fatalf("StripFences not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
