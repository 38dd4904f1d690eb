package system

// TickContext создаётся в начале тика и передаётся всем системам, чтобы все
// приращения шли с одной скоростью.
type TickContext struct {
	Timescale float64
}

// Scaled возвращает приращение за тик для базовой величины.
func (tc TickContext) Scaled(perTick float64) float64 {
	return perTick * tc.Timescale
}
