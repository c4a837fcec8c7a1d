package world

import "testing"

func TestNearWaterMargin(t *testing.T) {
	cases := []struct {
		name string
		p    Vec
		want bool
	}{
		{"center of the main pond", Vec{600, 200}, true},
		{"on the main pond waterline", Vec{600 + 425, 200}, true},
		{"within cast range of the pond", Vec{600 + 425 + 40, 200}, true},
		{"just past cast range", Vec{600 - 425 - 51, 200}, false},
		{"beside the river", Vec{1060 - 30, 400}, true},
		{"middle of the grass", Vec{500, 600}, false},
		{"map corner", Vec{0, 900}, false},
	}
	for _, c := range cases {
		if got := NearWater(c.p); got != c.want {
			t.Fatalf("%s: NearWater(%v) = %v, want %v", c.name, c.p, got, c.want)
		}
	}
}

func TestInsideWater(t *testing.T) {
	cases := []struct {
		name string
		p    Vec
		want bool
	}{
		{"main pond center", Vec{600, 200}, true},
		{"small pond center", Vec{150, 700}, true},
		{"river interior", Vec{1100, 400}, true},
		{"near but dry", Vec{600 + 425 + 20, 200}, false},
		{"grass", Vec{500, 600}, false},
	}
	for _, c := range cases {
		if got := InsideWater(c.p); got != c.want {
			t.Fatalf("%s: InsideWater(%v) = %v, want %v", c.name, c.p, got, c.want)
		}
	}
}

func TestPushOutLeavesWater(t *testing.T) {
	wet := []Vec{
		{600, 200},   // main pond, dead center pushes along some radius
		{700, 250},   // main pond, off-center
		{150, 700},   // small pond
		{1070, 160},  // river, near the left edge
		{1130, 640},  // river, near the bottom-right
	}
	for _, p := range wet {
		out := PushOut(p)
		if InsideWater(out) {
			t.Fatalf("PushOut(%v) = %v, still in water", p, out)
		}
		if !NearWater(out) {
			t.Fatalf("PushOut(%v) = %v, landed far from the waterline", p, out)
		}
	}
}

func TestPushOutDryLandIsNoOp(t *testing.T) {
	p := Vec{500, 600}
	if out := PushOut(p); out != p {
		t.Fatalf("PushOut moved a dry player from %v to %v", p, out)
	}
}

func TestPushOutRectUsesNearestEdge(t *testing.T) {
	// Just inside the river's left edge: the push must exit left, not across.
	p := Vec{1062, 400}
	out := PushOut(p)
	if out.X >= 1060 {
		t.Fatalf("PushOut(%v) = %v, want west of the river", p, out)
	}
	if out.Y != p.Y {
		t.Fatalf("edge push changed Y: %v", out)
	}
}

func TestCastPoint(t *testing.T) {
	p := Vec{100, 100}
	cases := []struct {
		f    Facing
		want Vec
	}{
		{FaceUp, Vec{100, 40}},
		{FaceDown, Vec{100, 160}},
		{FaceLeft, Vec{40, 100}},
		{FaceRight, Vec{160, 100}},
	}
	for _, c := range cases {
		if got := CastPoint(p, c.f, 60); got != c.want {
			t.Fatalf("CastPoint(%v, %v, 60) = %v, want %v", p, c.f, got, c.want)
		}
	}
}

func TestClampToMap(t *testing.T) {
	cases := []struct {
		in, want Vec
	}{
		{Vec{-10, 50}, Vec{0, 50}},
		{Vec{50, -10}, Vec{50, 0}},
		{Vec{MapWidth + 5, 50}, Vec{MapWidth, 50}},
		{Vec{50, MapHeight + 5}, Vec{50, MapHeight}},
		{Vec{600, 450}, Vec{600, 450}},
	}
	for _, c := range cases {
		if got := ClampToMap(c.in); got != c.want {
			t.Fatalf("ClampToMap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
