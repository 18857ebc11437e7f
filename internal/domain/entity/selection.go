package entity

// Selection выбранное лицо и пара глаз внутри него.
// LeftEye всегда левее RightEye по координате X.
type Selection struct {
	Face     Rect
	LeftEye  Rect
	RightEye Rect
}

// EyeRadii возвращает радиусы левого и правого глаза (половина ширины)
func (s Selection) EyeRadii() (left, right int) {
	return s.LeftEye.Width / 2, s.RightEye.Width / 2
}
