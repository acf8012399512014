package models

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// UpdateSettingsRequest изменение настроек.
// null снимает значение, отсутствующий ключ не меняется
type UpdateSettingsRequest struct {
	Values map[string]*int
}

// EffectiveSettings значения, которые применяет движок
type EffectiveSettings struct {
	BookingStepMin          int `json:"bookingStepMin"`
	PhysicalDurationMin     int `json:"physicalDurationMin"`
	VisioDurationMin        int `json:"visioDurationMin"`
	PhysicalBufferBeforeMin int `json:"physicalBufferBeforeMin"`
	PhysicalBufferAfterMin  int `json:"physicalBufferAfterMin"`
	VisioBufferBeforeMin    int `json:"visioBufferBeforeMin"`
	VisioBufferAfterMin     int `json:"visioBufferAfterMin"`
	NoticeMin               int `json:"noticeMin"`
	WindowDays              int `json:"windowDays"`
	VisioMinGapMin          int `json:"visioMinGapMin"`
	PhysicalSecondGapMin    int `json:"physicalSecondGapMin"`
	HalfDayBoundaryHour     int `json:"halfDayBoundaryHour"`
	PhysicalHalfDayCapacity int `json:"physicalHalfDayCapacity"`
}

// SettingsResponse сохраненные и действующие настройки
type SettingsResponse struct {
	Values    map[string]*int    `json:"values"`
	Effective *EffectiveSettings `json:"effective"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует настройки в DTO
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	resp := &SettingsResponse{
		Values: s.Values(),
		Effective: &EffectiveSettings{
			BookingStepMin:          s.Step(),
			PhysicalDurationMin:     s.DurationFor(domain.ModePhysical),
			VisioDurationMin:        s.DurationFor(domain.ModeVisio),
			PhysicalBufferBeforeMin: s.BufferBeforeFor(domain.ModePhysical),
			PhysicalBufferAfterMin:  s.BufferAfterFor(domain.ModePhysical),
			VisioBufferBeforeMin:    s.BufferBeforeFor(domain.ModeVisio),
			VisioBufferAfterMin:     s.BufferAfterFor(domain.ModeVisio),
			NoticeMin:               s.Notice(),
			WindowDays:              s.Window(),
			VisioMinGapMin:          s.VisioGap(),
			PhysicalSecondGapMin:    s.PhysicalSecondGap(),
			HalfDayBoundaryHour:     s.HalfDayBoundary(),
			PhysicalHalfDayCapacity: s.PhysicalCapacity(),
		},
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
