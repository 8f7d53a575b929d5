package core

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of tick cost and a ticks-per-second counter.
// Each engine owns one; nothing here is global.
type Metrics struct {
	tickAVGCounter    uint8
	msTimes           [AVG_COUNT]float64
	msAvg             float64
	ticks             int32
	accumulatedTickMS float64
	tps               float64
	total             uint64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records one tick that took tickElapsedTime seconds of simulated time.
func (m *Metrics) Update(tickElapsedTime float64) {
	// Calculate tick ms average
	tickMS := tickElapsedTime * 1000.0
	m.msTimes[m.tickAVGCounter] = tickMS
	if m.tickAVGCounter == AVG_COUNT-1 {
		m.msAvg = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			m.msAvg += m.msTimes[i]
		}

		m.msAvg /= float64(AVG_COUNT)
	}
	m.tickAVGCounter++
	m.tickAVGCounter %= AVG_COUNT

	// Calculate ticks per second.
	m.accumulatedTickMS += tickMS
	m.ticks++
	if m.accumulatedTickMS >= 1000 {
		m.tps = float64(m.ticks)
		m.accumulatedTickMS -= 1000
		m.ticks = 0
	}

	m.total++
}

func (m *Metrics) TPS() float64 {
	return m.tps
}

func (m *Metrics) TickTime() float64 {
	return m.msAvg
}

func (m *Metrics) Total() uint64 {
	return m.total
}
