package encode_test

import (
	"testing"

	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/encode"
)

func TestMovability(t *testing.T) {
	cases := []struct {
		axes [3]bool
		want map[string]any
	}{
		{[3]bool{true, true, true}, map[string]any{"movable": true}},
		{[3]bool{false, false, false}, map[string]any{"movable": false}},
		{[3]bool{true, false, true}, map[string]any{"movableX": true, "movableY": false, "movableZ": true}},
		{[3]bool{false, true, false}, map[string]any{"movableX": false, "movableY": true, "movableZ": false}},
	}
	for _, c := range cases {
		got := encode.Movability(c.axes)
		if len(got) != len(c.want) {
			t.Fatalf("Movability(%v) = %v, want %v", c.axes, got, c.want)
		}
		for k, v := range c.want {
			if got[k] != v {
				t.Fatalf("Movability(%v) = %v, want %v", c.axes, got, c.want)
			}
		}
	}
}

func TestMovabilityVec_Arity(t *testing.T) {
	v, err := encode.MovabilityVec([]bool{true, false, true})
	if err != nil || v != [3]bool{true, false, true} {
		t.Fatalf("unexpected: v=%v err=%v", v, err)
	}
	_, err = encode.MovabilityVec([]bool{true, false})
	iss, ok := spxinput.AsIssues(err)
	if !ok || iss[0].Code != spxinput.CodeInvalidType {
		t.Fatalf("expected invalid_type for wrong arity, got %v", err)
	}
}
