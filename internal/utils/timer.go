package utils

import "math"

// TimerMode определяет, перезапускается ли таймер после срабатывания.
type TimerMode int

const (
	Once TimerMode = iota
	Repeating
)

// Timer отсчитывает время в секундах. Срабатывание видно ровно один тик
// через JustFinished.
type Timer struct {
	duration      float64
	elapsed       float64
	mode          TimerMode
	finished      bool
	timesFinished int
}

// NewTimer создаёт таймер на duration секунд.
func NewTimer(duration float64, mode TimerMode) *Timer {
	return &Timer{duration: duration, mode: mode}
}

// Tick продвигает таймер на deltaTime секунд.
func (t *Timer) Tick(deltaTime float64) {
	if t.mode == Once && t.finished {
		t.timesFinished = 0
		return
	}

	t.elapsed += deltaTime
	if t.elapsed < t.duration {
		t.finished = false
		t.timesFinished = 0
		return
	}

	t.finished = true
	if t.mode == Once {
		t.elapsed = t.duration
		t.timesFinished = 1
		return
	}
	if t.duration <= 0 {
		t.elapsed = 0
		t.timesFinished = 1
		return
	}
	t.timesFinished = int(math.Floor(t.elapsed / t.duration))
	t.elapsed = math.Mod(t.elapsed, t.duration)
}

// JustFinished сообщает, сработал ли таймер на последнем Tick.
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick — сколько раз таймер сработал на последнем Tick.
// Больше единицы, если deltaTime длиннее периода.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Finished остаётся true у одноразового таймера после срабатывания.
func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) Elapsed() float64  { return t.elapsed }
func (t *Timer) Duration() float64 { return t.duration }
