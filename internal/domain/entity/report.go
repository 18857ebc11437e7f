package entity

// Reason причина, по которой канал ничего не нарисовал
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonNoFace         Reason = "no_face"
	ReasonEyeCount       Reason = "eye_count"
	ReasonDegenerateEyes Reason = "degenerate_eyes"
)

// ChannelOutcome итог работы одного канала
type ChannelOutcome struct {
	Name      string // имя канала: primary или alternate
	Drawn     bool   // оверлей нарисован
	Reason    Reason // почему не нарисован
	FaceCount int    // количество кандидатов лиц
	EyeCount  int    // количество глаз внутри выбранного лица
	Face      Rect   // выбранное лицо, если было
	Frame     Frame  // система координат нарисованного оверлея
}

// Report итог обработки одного изображения
type Report struct {
	Channels []ChannelOutcome
}

// Success возвращает true, если хотя бы один канал нарисовал оверлей.
func (r Report) Success() bool {
	for _, ch := range r.Channels {
		if ch.Drawn {
			return true
		}
	}
	return false
}

// ToonResult хранит итог генерации картинки.
type ToonResult struct {
	ImageWidth  int        // ширина нормализованного изображения
	ImageHeight int        // высота нормализованного изображения
	Candidates  Candidates // кандидаты всех детекторов
	Report      Report     // итоги каналов
}

// HasFace флаг пригодного результата
func (r *ToonResult) HasFace() bool {
	return r.Report.Success()
}
