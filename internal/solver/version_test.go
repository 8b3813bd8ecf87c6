package solver

import "testing"

func TestExtractVersion(t *testing.T) {
	cases := []struct {
		name   string
		banner string
		want   Version
		ok     bool
	}{
		{"full", "Ipopt 3.14.16 (x86_64-pc-linux-gnu), ASL(20190605)", Version{3, 14, 16}, true},
		{"two part", "Ipopt 3.12", Version{3, 12, 0}, true},
		{"leading noise", "No options file: Ipopt 3.11.1\n", Version{3, 11, 1}, true},
		{"no version", "command not understood", Version{}, false},
		{"empty", "", Version{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractVersion(tc.banner)
			if ok != tc.ok || got != tc.want {
				t.Errorf("ExtractVersion(%q) = %v %v, want %v %v", tc.banner, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	if s := (Version{3, 14, 16}).String(); s != "3.14.16" {
		t.Errorf("String() = %q", s)
	}
}
