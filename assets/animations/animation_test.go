package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1, true)
	var frames []int
	for i := 0; i < 8; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	want := []int{0, 1, 1, 2, 2, 0, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if !a.Looped || a.Done() {
		t.Error("looping clip should report Looped but never Done")
	}
}

func TestAnimationFreezesOnLastFrame(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0, false)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != 3 || !a.Done() {
		t.Errorf("frame = %d done = %v, want 3 and done", a.Frame(), a.Done())
	}
	a.Restart()
	if a.Frame() != 0 || a.Done() {
		t.Error("restart should rewind and clear Looped")
	}
}
