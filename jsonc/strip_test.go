package jsonc

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "line comment",
			in:   "{\n\t\"a\": 1 // trailing\n}",
			want: "{\n\t\"a\": 1 \n}",
		},
		{
			name: "full line comment keeps newline",
			in:   "// header\n{\"a\": 1}",
			want: "\n{\"a\": 1}",
		},
		{
			name: "block comment single line",
			in:   "{/* gone */\"a\": 1}",
			want: "{\"a\": 1}",
		},
		{
			name: "block comment spans lines",
			in:   "{/* one\ntwo */\"a\": 1}",
			want: "{\"a\": 1}",
		},
		{
			name: "non greedy block",
			in:   "/* a */ x /* b */",
			want: " x ",
		},
		{
			name: "no comments untouched",
			in:   "{\n  \"a\": [1, 2]\n}",
			want: "{\n  \"a\": [1, 2]\n}",
		},
		{
			// marker scanning does not track quoting context: this is
			// long-standing behavior, see package doc
			name: "marker inside string is stripped too",
			in:   `{"url": "http://x"}`,
			want: `{"url": "http:`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := string(Strip([]byte(tc.in)))
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if s := StripString(tc.in); s != tc.want {
				t.Errorf("StripString: got %q, want %q", s, tc.want)
			}
		})
	}
}
