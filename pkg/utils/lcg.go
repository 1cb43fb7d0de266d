package utils

// Параметры линейного конгруэнтного генератора (Numerical Recipes).
// Модуль 2^32 получается бесплатно за счет переполнения uint32.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

// SeededRandom - детерминированный ГПСЧ для генерации раскладов.
// Один и тот же сид дает одну и ту же бесконечную последовательность
// на любой платформе: вся арифметика идет в uint32, без float-умножений.
//
// Не потокобезопасен: один экземпляр на один проход генерации.
type SeededRandom struct {
	state uint32
}

// NewSeededRandom создает генератор. Сид усекается до младших 32 бит.
func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{state: uint32(seed)}
}

// Next продвигает состояние и возвращает значение в [0, 1).
func (r *SeededRandom) Next() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / lcgModulus
}

// Intn возвращает целое в [0, n). При n <= 0 возвращает 0, но шаг все равно делается,
// чтобы поток значений не зависел от размеров входных данных.
func (r *SeededRandom) Intn(n int) int {
	v := r.Next()
	if n <= 0 {
		return 0
	}
	return int(v * float64(n))
}

// Chance возвращает true с вероятностью p.
func (r *SeededRandom) Chance(p float64) bool {
	return r.Next() < p
}
