package entity

// Frame система координат, построенная по паре глаз.
type Frame struct {
	LeftEyeCenter    Point   // центр левого глаза
	RightEyeCenter   Point   // центр правого глаза
	EyeCenter        Point   // середина отрезка между центрами глаз
	RollAngle        float64 // наклон линии глаз в градусах
	LengthAxis       Point   // точка на перпендикуляре к линии глаз, центр рта
	EyeDistance      int     // rx - lx
	EyeVerticalDelta int     // ly - ry
}
