package toon

import (
	"toon-face/internal/domain/entity"
	"toon-face/internal/domain/port"
)

const (
	ChannelPrimary   = "primary"
	ChannelAlternate = "alternate"
)

// Channel набор кандидатов одного детектора лиц и глаз
type Channel struct {
	Name  string
	Faces entity.CandidateSet
	Eyes  entity.CandidateSet
}

// Channels возвращает основной и альтернативный каналы в порядке рисования.
func Channels(c *entity.Candidates) []Channel {
	return []Channel{
		{Name: ChannelPrimary, Faces: c.Face, Eyes: c.Eye},
		{Name: ChannelAlternate, Faces: c.AltFace, Eyes: c.AltEye},
	}
}

// Run выполняет выбор, построение системы координат и рисование для канала.
func (ch Channel) Run(canvas port.Canvas, rng port.RandomSource) entity.ChannelOutcome {
	out := entity.ChannelOutcome{Name: ch.Name, FaceCount: len(ch.Faces)}

	sel, inside, ok := Select(ch.Faces, ch.Eyes)
	out.EyeCount = len(inside)
	if !ok {
		switch {
		case len(ch.Faces) == 0:
			out.Reason = entity.ReasonNoFace
		case len(inside) == eyesPerFace:
			out.Face = sel.Face
			out.Reason = entity.ReasonDegenerateEyes
		default:
			out.Face = sel.Face
			out.Reason = entity.ReasonEyeCount
		}
		return out
	}
	out.Face = sel.Face

	frame, err := Derive(sel)
	if err != nil {
		out.Reason = entity.ReasonDegenerateEyes
		return out
	}

	Compose(canvas, frame, sel, rng)
	out.Frame = frame
	out.Drawn = true
	return out
}

// RunChannel рисует оверлей для одного канала и сообщает, удалось ли это.
func RunChannel(faces, eyes entity.CandidateSet, canvas port.Canvas, rng port.RandomSource) bool {
	return Channel{Faces: faces, Eyes: eyes}.Run(canvas, rng).Drawn
}

// Generate прогоняет основной, затем альтернативный канал на одном холсте.
// Оба канала могут нарисовать свой оверлей.
func Generate(canvas port.Canvas, candidates *entity.Candidates, rng port.RandomSource) entity.Report {
	channels := Channels(candidates)
	report := entity.Report{Channels: make([]entity.ChannelOutcome, 0, len(channels))}
	for _, ch := range channels {
		report.Channels = append(report.Channels, ch.Run(canvas, rng))
	}
	return report
}
