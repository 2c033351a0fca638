package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// PopGenerator generates a short burst of noise over a falling low thump.
type PopGenerator struct {
	sr    beep.SampleRate
	pos   int
	state uint32
	decay float64
}

// NewPopGenerator creates a pop generator. The seed selects the noise pattern.
func NewPopGenerator(sr beep.SampleRate, seed uint32) *PopGenerator {
	if seed == 0 {
		seed = 1
	}
	return &PopGenerator{
		sr:    sr,
		state: seed,
		// the envelope drops to about 1% after 40ms
		decay: math.Log(100) / (0.04 * float64(sr)),
	}
}

func (g *PopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-g.decay * float64(g.pos))

		noise := g.nextNoise()
		freq := 180 - 100*math.Min(t/0.05, 1)
		thump := math.Sin(2 * math.Pi * freq * t)

		v := envelope * (0.55*noise + 0.35*thump)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *PopGenerator) Err() error {
	return nil
}

// nextNoise returns white noise in [-1, 1] from a xorshift sequence.
func (g *PopGenerator) nextNoise() float64 {
	g.state ^= g.state << 13
	g.state ^= g.state >> 17
	g.state ^= g.state << 5
	return float64(g.state)/float64(math.MaxUint32)*2 - 1
}

// Elapsed returns how much audio has been generated.
func (g *PopGenerator) Elapsed() time.Duration {
	return g.sr.D(g.pos)
}
