package sanitize

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "New headphones", "New headphones"},
		{"empty", "", ""},
		{"csi sequence", "evil\x1b[31mred\x1b[0m", "evilred"},
		{"osc sequence", "x\x1b]0;title\x07y", "xy"},
		{"bare escape", "a\x1bZb", "ab"},
		{"control chars", "a\x00b\x07c", "abc"},
		{"newlines to spaces", "two\nlines\tplus", "two lines plus"},
		{"collapses runs", "a  \n  b", "a b"},
		{"unicode kept", "цветы 💐", "цветы 💐"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.in); got != tc.want {
				t.Fatalf("Text(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTextIsIdempotent(t *testing.T) {
	in := "a\x1b[1m b \x1b[0m\nc"
	once := Text(in)
	if twice := Text(once); twice != once {
		t.Fatalf("Text not idempotent: %q then %q", once, twice)
	}
}

func TestURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/path", "https://example.com/path"},
		{"https://example.com/a b", "https://example.com/a%20b"},
		{"  https://example.com  ", "https://example.com"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := URL(tc.in); got != tc.want {
			t.Errorf("URL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
