package entity

// CandidateSet упорядоченный список прямоугольников одного класса признаков.
// Дубликаты и пересечения допустимы.
type CandidateSet []Rect

// Candidates хранит выход всех четырёх детекторов для одного изображения.
type Candidates struct {
	Face    CandidateSet // основной детектор лиц
	Eye     CandidateSet // основной детектор глаз
	AltFace CandidateSet // альтернативный детектор лиц
	AltEye  CandidateSet // альтернативный детектор глаз
}

// FeatureClass класс признака, который ищет детектор
type FeatureClass string

const (
	FeatureFace    FeatureClass = "face"
	FeatureEye     FeatureClass = "eye"
	FeatureAltFace FeatureClass = "alt_face"
	FeatureAltEye  FeatureClass = "alt_eye"
)

// FeatureClasses перечисляет классы в порядке запуска детекторов.
var FeatureClasses = []FeatureClass{FeatureFace, FeatureAltFace, FeatureEye, FeatureAltEye}

// Set возвращает список кандидатов указанного класса
func (c *Candidates) Set(class FeatureClass) CandidateSet {
	switch class {
	case FeatureFace:
		return c.Face
	case FeatureEye:
		return c.Eye
	case FeatureAltFace:
		return c.AltFace
	case FeatureAltEye:
		return c.AltEye
	default:
		return nil
	}
}

// Put сохраняет список кандидатов указанного класса
func (c *Candidates) Put(class FeatureClass, rects CandidateSet) {
	switch class {
	case FeatureFace:
		c.Face = rects
	case FeatureEye:
		c.Eye = rects
	case FeatureAltFace:
		c.AltFace = rects
	case FeatureAltEye:
		c.AltEye = rects
	}
}

// Total возвращает общее количество кандидатов всех классов
func (c *Candidates) Total() int {
	return len(c.Face) + len(c.Eye) + len(c.AltFace) + len(c.AltEye)
}
