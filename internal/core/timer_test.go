package core

import (
	"testing"
	"time"
)

func TestFixedStepRate(t *testing.T) {
	fs := NewFixedStep(20)
	if fs.step != time.Second/20 {
		t.Fatalf("step = %v, want %v", fs.step, time.Second/20)
	}
	fs.SetRate(60)
	if fs.step != time.Second/60 {
		t.Fatalf("after SetRate step = %v, want %v", fs.step, time.Second/60)
	}
}

func TestFixedStepRateFallback(t *testing.T) {
	want := time.Second / DefaultRate
	for _, rate := range []int{0, -5} {
		if fs := NewFixedStep(rate); fs.step != want {
			t.Errorf("NewFixedStep(%d) step = %v, want %v", rate, fs.step, want)
		}
		fs := NewFixedStep(30)
		fs.SetRate(rate)
		if fs.step != want {
			t.Errorf("SetRate(%d) step = %v, want %v", rate, fs.step, want)
		}
	}
}

func TestFixedStepFirstPollSteps(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first poll did not step")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped twice within one interval")
	}
}
