package tree

import "testing"

func TestPositionAdvance(t *testing.T) {
	cases := []struct {
		name string
		p    Position
		text string
		want Position
	}{
		{"same line", Position{1, 0}, "abc", Position{1, 3}},
		{"one newline", Position{1, 5}, "ab\ncd", Position{2, 2}},
		{"trailing newline", Position{1, 0}, "abc\n", Position{2, 0}},
		{"multi newline", Position{3, 1}, "a\nbb\nccc", Position{5, 3}},
		{"empty", Position{2, 4}, "", Position{2, 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.p.Advance(c.text)
			if got != c.want {
				t.Errorf("Advance(%q) = %+v, want %+v", c.text, got, c.want)
			}
		})
	}
}

func TestPositionShift(t *testing.T) {
	cases := []struct {
		name  string
		p     Position
		start Position
		want  Position
	}{
		{"first line shifts by column", Position{1, 4}, Position{10, 2}, Position{10, 6}},
		{"later line only inherits line offset", Position{3, 4}, Position{10, 2}, Position{12, 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.p.Shift(c.start)
			if got != c.want {
				t.Errorf("Shift() = %+v, want %+v", got, c.want)
			}
		})
	}
}
