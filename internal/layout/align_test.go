package layout

import "testing"

func TestAlignBox(t *testing.T) {
	type tc struct {
		h, v     Align
		content  Size
		expected Rect
	}

	region := NewRect(10, 20, 100, 50)
	tests := map[string]tc{
		"stretch fills region": {
			h: AlignStretch, v: AlignStretch,
			content:  Sz(10, 10),
			expected: region,
		},
		"start sizes to content": {
			h: AlignStart, v: AlignStart,
			content:  Sz(30, 10),
			expected: NewRect(10, 20, 30, 10),
		},
		"center": {
			h: AlignCenter, v: AlignCenter,
			content:  Sz(30, 10),
			expected: NewRect(45, 40, 30, 10),
		},
		"end": {
			h: AlignEnd, v: AlignEnd,
			content:  Sz(30, 10),
			expected: NewRect(80, 60, 30, 10),
		},
		"content larger than region is capped": {
			h: AlignCenter, v: AlignStart,
			content:  Sz(300, 80),
			expected: NewRect(10, 20, 100, 50),
		},
		"mixed axes": {
			h: AlignStretch, v: AlignEnd,
			content:  Sz(30, 10),
			expected: NewRect(10, 60, 100, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := AlignBox(region, tt.content, tt.h, tt.v)
			if got != tt.expected {
				t.Errorf("AlignBox() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestAlign_String(t *testing.T) {
	tests := map[Align]string{
		AlignStretch: "stretch",
		AlignStart:   "start",
		AlignCenter:  "center",
		AlignEnd:     "end",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Align(%d).String() = %q, want %q", a, got, want)
		}
	}
}
