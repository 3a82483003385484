package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsFloor(t *testing.T) {
	m := New(5, 5)
	// all walls initially
	if m.IsFloor(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	m.Set(2, 2, Floor)
	if !m.IsFloor(2, 2) {
		t.Error("floor tile should be walkable")
	}
	// out of bounds
	if m.IsFloor(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
	if m.At(7, 7) != Wall {
		t.Error("out-of-bounds should read as wall")
	}
}

func TestNewSimple(t *testing.T) {
	m := NewSimple(10, 10)
	if m.At(0, 0) != Wall || m.At(9, 9) != Wall {
		t.Error("border should be wall")
	}
	if m.At(5, 5) != Floor {
		t.Error("interior should be floor")
	}
	if len(m.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(m.Rooms))
	}
	r := m.Rooms[0]
	if r.Width != 8 || r.Height != 8 {
		t.Errorf("room size = %dx%d, want 8x8", r.Width, r.Height)
	}
	if cx, cy := r.Center(); cx != 5 || cy != 5 {
		t.Errorf("room center = (%d,%d), want (5,5)", cx, cy)
	}
}

func TestFlattenRowMajor(t *testing.T) {
	m := New(3, 2)
	m.Set(2, 0, Floor)
	m.Set(0, 1, Floor)
	flat := m.Flatten()
	if len(flat) != 6 {
		t.Fatalf("len = %d, want 6", len(flat))
	}
	want := []int{Wall, Wall, Floor, Floor, Wall, Wall}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("flat[%d] = %d, want %d", i, flat[i], want[i])
		}
	}
}

func TestRoomContains(t *testing.T) {
	r := NewRoom(4, 4, 16, 16)
	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 4, 4, true},
		{"center", 12, 12, true},
		{"last column", 19, 10, true},
		{"right edge exclusive", 20, 10, false},
		{"above", 10, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestSameRoom(t *testing.T) {
	m := New(40, 20)
	m.Rooms = []Room{NewRoom(0, 0, 20, 20), NewRoom(20, 0, 20, 20)}
	if !m.SameRoom(2, 2, 18, 18) {
		t.Error("points in the first room should share it")
	}
	if m.SameRoom(2, 2, 22, 2) {
		t.Error("points in different rooms should not share one")
	}
	if m.SameRoom(45, 5, 45, 5) {
		t.Error("off-map points belong to no room")
	}
}
