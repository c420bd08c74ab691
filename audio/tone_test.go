package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
				t.Fatalf("Sample %d out of range: %f", total-n+i, buf[i][0])
			}
		}
		if !ok {
			return total
		}
	}
}

// TestToneDuration verifies the streamer produces exactly the requested
// number of samples and then stops
func TestToneDuration(t *testing.T) {
	dur := 50 * time.Millisecond
	s := NewTone(440, dur, WaveSine, testRate)

	got := drain(t, s)
	want := testRate.N(dur)
	if got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}

	// Finished streamer stays finished
	n, ok := s.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Expected drained streamer to report done, got n=%d ok=%v", n, ok)
	}
}

// TestToneFadeOut verifies the tail samples are attenuated toward zero
func TestToneFadeOut(t *testing.T) {
	dur := 100 * time.Millisecond
	s := NewTone(440, dur, WaveSquare, testRate)

	total := testRate.N(dur)
	buf := make([][2]float64, total)
	s.Stream(buf)

	// Square wave body sits at full scale; the final sample must not
	last := buf[total-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("Expected faded tail near zero, got %f", last)
	}
}

// TestToneStereo verifies both channels carry the same signal
func TestToneStereo(t *testing.T) {
	s := NewTone(220, 10*time.Millisecond, WaveSine, testRate)

	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != buf[i][1] {
			t.Fatalf("Sample %d: channels differ (%f vs %f)", i, buf[i][0], buf[i][1])
		}
	}
}
