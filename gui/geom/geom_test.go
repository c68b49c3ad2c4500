package geom

import "testing"

func TestClipCommutes(t *testing.T) {
	areas := []Area{
		{0, 0, 9, 9},
		{5, 5, 14, 14},
		{10, 10, 19, 19},
		{-4, 3, 2, 20},
		{3, 3, 3, 3},
		{8, -2, 4, 6}, // empty
		Max,
	}
	for _, a := range areas {
		for _, b := range areas {
			ab, okAB := Clip(a, b)
			ba, okBA := Clip(b, a)
			if okAB != okBA {
				t.Fatalf("Clip(%v,%v) ok=%v, reversed ok=%v", a, b, okAB, okBA)
			}
			if okAB && ab != ba {
				t.Errorf("Clip(%v,%v) = %v, reversed = %v", a, b, ab, ba)
			}
		}
	}
}

func TestClipAssociative(t *testing.T) {
	a := Area{0, 0, 20, 20}
	b := Area{5, -5, 30, 12}
	c := Area{-3, 4, 9, 40}

	ab, _ := Clip(a, b)
	left, okL := Clip(ab, c)
	bc, _ := Clip(b, c)
	right, okR := Clip(a, bc)
	if !okL || !okR || left != right {
		t.Fatalf("(a∩b)∩c = %v,%v; a∩(b∩c) = %v,%v", left, okL, right, okR)
	}
	want := Area{5, 4, 9, 12}
	if left != want {
		t.Errorf("triple clip = %v, want %v", left, want)
	}
}

func TestClipDisjoint(t *testing.T) {
	if _, ok := Clip(Area{0, 0, 4, 4}, Area{5, 0, 9, 4}); ok {
		t.Fatal("adjacent areas must not intersect")
	}
	if _, ok := Clip(Area{0, 0, 4, 4}, Area{4, 4, 9, 9}); !ok {
		t.Fatal("areas sharing a corner pixel must intersect")
	}
}

func TestSelfClip(t *testing.T) {
	clip := Area{0, 0, 19, 19}
	if !SelfClip(&clip, Area{5, 5, 30, 14}) {
		t.Fatal("SelfClip reported empty")
	}
	if want := (Area{5, 5, 19, 14}); clip != want {
		t.Errorf("clip = %v, want %v", clip, want)
	}
	if SelfClip(&clip, Area{40, 40, 50, 50}) {
		t.Fatal("SelfClip with disjoint rect reported non-empty")
	}
	if !clip.Empty() {
		t.Errorf("clip = %v, want empty", clip)
	}
}

func TestUnionIgnoresEmpty(t *testing.T) {
	a := Area{2, 3, 4, 5}
	if got := Union(Invalid, a); got != a {
		t.Errorf("Union(Invalid, a) = %v, want %v", got, a)
	}
	if got := Union(a, Area{10, 0, 11, 1}); got != (Area{2, 0, 11, 5}) {
		t.Errorf("Union = %v", got)
	}
}

func TestSize(t *testing.T) {
	a := Rect(5, 5, 10, 10)
	if a != (Area{5, 5, 14, 14}) {
		t.Fatalf("Rect = %v", a)
	}
	if a.Width() != 10 || a.Height() != 10 || a.Pixels() != 100 {
		t.Errorf("size = %dx%d (%d)", a.Width(), a.Height(), a.Pixels())
	}
	if Invalid.Width() != 0 || Invalid.Pixels() != 0 {
		t.Errorf("Invalid has size %dx%d", Invalid.Width(), Invalid.Height())
	}
}

func TestAlignPos(t *testing.T) {
	parent := Area{0, 0, 99, 49}
	tests := []struct {
		align Align
		want  Pos
	}{
		{AlignCenter, Pos{40, 20}},
		{AlignTopLeft, Pos{0, 0}},
		{AlignTopRight, Pos{80, 0}},
		{AlignBotMid, Pos{40, 40}},
		{AlignRightMid, Pos{80, 20}},
	}
	for _, tt := range tests {
		if got := AlignPos(parent, 20, 10, tt.align); got != tt.want {
			t.Errorf("AlignPos(%d) = %v, want %v", tt.align, got, tt.want)
		}
	}
}
