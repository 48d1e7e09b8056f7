package prompt

import "testing"

func TestValidators(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) error
		ok   []string
		bad  []string
	}{
		{"connections", ValidateConnections, []string{"1", "5", "16"}, []string{"", "0", "17", "x", "2.5"}},
		{"audio", ValidateAudioQuality, []string{"0", "9", "128K", "192k"}, []string{"", "10", "-1", "K", "0K", "fast"}},
		{"height", ValidateMaxHeight, []string{"", "720", "1080"}, []string{"0", "-720", "720p"}},
		{"url", requireURL, []string{"u"}, []string{"", "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.ok {
				if err := tt.fn(v); err != nil {
					t.Errorf("%q: unexpected error %v", v, err)
				}
			}
			for _, v := range tt.bad {
				if err := tt.fn(v); err == nil {
					t.Errorf("%q: expected error", v)
				}
			}
		})
	}
}

func TestJoinOr(t *testing.T) {
	cases := map[string][]string{
		"":          nil,
		"1":         {"1"},
		"1 or 2":    {"1", "2"},
		"1, 2 or 3": {"1", "2", "3"},
	}
	for want, items := range cases {
		if got := joinOr(items); got != want {
			t.Fatalf("joinOr(%v) = %q, want %q", items, got, want)
		}
	}
}
