package toon

import "toon-face/internal/domain/entity"

// eyesPerFace количество глаз, при котором пара считается пригодной
const eyesPerFace = 2

// LargestFace возвращает кандидата с наибольшей площадью.
// При равных площадях побеждает первый по порядку.
func LargestFace(faces entity.CandidateSet) (entity.Rect, bool) {
	if len(faces) == 0 {
		return entity.Rect{}, false
	}

	best := faces[0]
	for _, f := range faces[1:] {
		if f.Area() > best.Area() {
			best = f
		}
	}
	return best, true
}

// EyesInFace возвращает новый список глаз, чьи центры лежат внутри лица.
// Исходный список не изменяется.
func EyesInFace(face entity.Rect, eyes entity.CandidateSet) entity.CandidateSet {
	inside := make(entity.CandidateSet, 0, len(eyes))
	for _, e := range eyes {
		if face.ContainsCenterOf(e) {
			inside = append(inside, e)
		}
	}
	return inside
}

// Select выбирает самое крупное лицо и ровно два глаза внутри него.
// Вторым значением возвращаются глаза, попавшие в лицо, даже если выбора нет.
// Пара глаз с одинаковым X не различается на левый и правый и отбрасывается.
func Select(faces, eyes entity.CandidateSet) (entity.Selection, entity.CandidateSet, bool) {
	face, ok := LargestFace(faces)
	if !ok {
		return entity.Selection{}, nil, false
	}

	inside := EyesInFace(face, eyes)
	if len(inside) != eyesPerFace {
		return entity.Selection{Face: face}, inside, false
	}

	left, right := inside[0], inside[1]
	if right.X < left.X {
		left, right = right, left
	}
	if left.X == right.X {
		return entity.Selection{Face: face}, inside, false
	}

	return entity.Selection{Face: face, LeftEye: left, RightEye: right}, inside, true
}
