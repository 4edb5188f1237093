package battleship_test

import (
	"reflect"
	"testing"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

func TestShipDots(t *testing.T) {
	tests := []struct {
		name     string
		ship     *mb.Ship
		expected []mb.Dot
	}{
		{
			name:     "horizontal advances x",
			ship:     mb.NewShip(mb.NewDot(1, 4), 3, mb.Horizontal),
			expected: []mb.Dot{{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}},
		},
		{
			name:     "vertical advances y",
			ship:     mb.NewShip(mb.NewDot(5, 0), 2, mb.Vertical),
			expected: []mb.Dot{{X: 5, Y: 0}, {X: 5, Y: 1}},
		},
		{
			name:     "single dot",
			ship:     mb.NewShip(mb.NewDot(0, 0), 1, mb.Vertical),
			expected: []mb.Dot{{X: 0, Y: 0}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.ship.Dots()
			if !reflect.DeepEqual(got, test.expected) {
				t.Fatalf("expected dots: %v\tgot: %v", test.expected, got)
			}
			if !reflect.DeepEqual(test.ship.Dots(), got) {
				t.Fatal("dots are not deterministic")
			}
		})
	}
}

func TestShipRegisterHit(t *testing.T) {
	ship := mb.NewShip(mb.NewDot(0, 0), 2, mb.Horizontal)

	ship.RegisterHit()
	if ship.IsDestroyed() {
		t.Fatal("ship destroyed after one hit of two")
	}
	ship.RegisterHit()
	if !ship.IsDestroyed() {
		t.Fatal("expected ship to be destroyed")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when hitting a destroyed ship")
		}
	}()
	ship.RegisterHit()
}
