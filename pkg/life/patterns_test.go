package life

import "testing"

func TestPatternLibrary(t *testing.T) {
	names := PatternNames()
	if len(names) == 0 {
		t.Fatal("pattern library is empty")
	}
	for _, name := range names {
		p, ok := LookupPattern(name)
		if !ok {
			t.Fatalf("PatternNames lists %q but lookup fails", name)
		}
		if p.Cells() == 0 {
			t.Errorf("pattern %q has no alive cells", name)
		}
		if p.Width() == 0 || p.Height() == 0 {
			t.Errorf("pattern %q has degenerate size %dx%d", name, p.Width(), p.Height())
		}
	}
}

func TestLookupUnknownPattern(t *testing.T) {
	if _, ok := LookupPattern("no-such-shape"); ok {
		t.Fatal("lookup of unknown pattern succeeded")
	}
}

func TestRegisterPatternIgnoresInvalid(t *testing.T) {
	before := len(PatternNames())
	RegisterPattern(Pattern{Name: "", Rows: []string{"#"}})
	RegisterPattern(Pattern{Name: "empty"})
	if len(PatternNames()) != before {
		t.Fatal("invalid pattern registrations changed the library")
	}
}

func TestStampedPopulationMatchesCells(t *testing.T) {
	for _, name := range PatternNames() {
		p, _ := LookupPattern(name)
		l := mustLife(t, 64, 64)
		l.InsertPattern(2, 2, p.Rows)
		if l.Population() != p.Cells() {
			t.Errorf("pattern %q stamped %d cells, Cells() reports %d", name, l.Population(), p.Cells())
		}
	}
}

func TestKnownPatternSizes(t *testing.T) {
	cases := map[string]int{
		"block":   4,
		"blinker": 3,
		"glider":  5,
		"toad":    6,
		"beacon":  8,
	}
	for name, want := range cases {
		p, ok := LookupPattern(name)
		if !ok {
			t.Fatalf("pattern %q missing", name)
		}
		if p.Cells() != want {
			t.Errorf("pattern %q has %d cells, want %d", name, p.Cells(), want)
		}
	}
}
