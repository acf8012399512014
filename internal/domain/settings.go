package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Setting keys as stored in the settings table
const (
	KeyBookingStep             = "booking_step_min"
	KeyDefaultDuration         = "default_duration_min"
	KeyBufferBefore            = "buffer_before_min"
	KeyBufferAfter             = "buffer_after_min"
	KeyNotice                  = "notice_min"
	KeyWindowDays              = "window_days"
	KeyVisioDuration           = "demo_visio_duration_min"
	KeyVisioBufferBefore       = "demo_visio_buffer_before_min"
	KeyVisioBufferAfter        = "demo_visio_buffer_after_min"
	KeyPhysicalDuration        = "demo_physique_duration_min"
	KeyVisioMinGap             = "demo_visio_min_gap_min"
	KeyPhysicalSecondGap       = "demo_physique_second_min_gap_min"
	KeyHalfDayBoundaryHour     = "half_day_boundary_hour"
	KeyPhysicalHalfDayCapacity = "physical_half_day_capacity"
)

var (
	// ErrUnknownSetting the key is not part of Settings
	ErrUnknownSetting = fmt.Errorf("%w: unknown setting", ErrValidation)

	// ErrSettingOutOfRange the value is outside the accepted bounds
	ErrSettingOutOfRange = fmt.Errorf("%w: setting out of range", ErrValidation)
)

// Settings holds the tunable booking parameters. Optional (pointer) fields are
// mode-specific overrides; accessors resolve them through the fallback chain
// mode-specific value -> generic value -> hard default.
type Settings struct {
	BookingStepMin     *int
	DefaultDurationMin *int
	BufferBeforeMin    *int
	BufferAfterMin     *int
	NoticeMin          *int
	WindowDays         *int

	VisioDurationMin     *int
	VisioBufferBeforeMin *int
	VisioBufferAfterMin  *int
	PhysicalDurationMin  *int

	VisioMinGapMin          *int
	PhysicalSecondGapMin    *int
	HalfDayBoundaryHour     *int
	PhysicalHalfDayCapacity *int

	UpdatedAt time.Time
}

type settingDef struct {
	field    func(s *Settings) **int
	min, max int
}

var settingDefs = map[string]settingDef{
	KeyBookingStep:             {func(s *Settings) **int { return &s.BookingStepMin }, MinStepMinutes, MaxStepMinutes},
	KeyDefaultDuration:         {func(s *Settings) **int { return &s.DefaultDurationMin }, MinDurationMinutes, MaxDurationMinutes},
	KeyBufferBefore:            {func(s *Settings) **int { return &s.BufferBeforeMin }, 0, MaxBufferMinutes},
	KeyBufferAfter:             {func(s *Settings) **int { return &s.BufferAfterMin }, 0, MaxBufferMinutes},
	KeyNotice:                  {func(s *Settings) **int { return &s.NoticeMin }, 0, MaxNoticeMinutes},
	KeyWindowDays:              {func(s *Settings) **int { return &s.WindowDays }, MinWindowDays, MaxWindowDays},
	KeyVisioDuration:           {func(s *Settings) **int { return &s.VisioDurationMin }, MinDurationMinutes, MaxDurationMinutes},
	KeyVisioBufferBefore:       {func(s *Settings) **int { return &s.VisioBufferBeforeMin }, 0, MaxBufferMinutes},
	KeyVisioBufferAfter:        {func(s *Settings) **int { return &s.VisioBufferAfterMin }, 0, MaxBufferMinutes},
	KeyPhysicalDuration:        {func(s *Settings) **int { return &s.PhysicalDurationMin }, MinDurationMinutes, MaxDurationMinutes},
	KeyVisioMinGap:             {func(s *Settings) **int { return &s.VisioMinGapMin }, 0, MaxGapMinutes},
	KeyPhysicalSecondGap:       {func(s *Settings) **int { return &s.PhysicalSecondGapMin }, 0, MaxGapMinutes},
	KeyHalfDayBoundaryHour:     {func(s *Settings) **int { return &s.HalfDayBoundaryHour }, 1, 23},
	KeyPhysicalHalfDayCapacity: {func(s *Settings) **int { return &s.PhysicalHalfDayCapacity }, 1, MaxHalfDayCapacity},
}

// SettingKeys returns all known keys in a stable order
func SettingKeys() []string {
	keys := make([]string, 0, len(settingDefs))
	for k := range settingDefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns a value to a key; nil clears an override
func (s *Settings) Set(key string, value *int) error {
	def, ok := settingDefs[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	if value != nil && (*value < def.min || *value > def.max) {
		return fmt.Errorf("%w: %s=%d, allowed %d..%d", ErrSettingOutOfRange, key, *value, def.min, def.max)
	}
	*def.field(s) = value
	return nil
}

// Values returns the explicitly stored values keyed by setting name
func (s *Settings) Values() map[string]*int {
	out := make(map[string]*int, len(settingDefs))
	for key, def := range settingDefs {
		out[key] = *def.field(s)
	}
	return out
}

// Validate checks every stored value against its bounds
func (s *Settings) Validate() error {
	var errs []error
	for _, key := range SettingKeys() {
		value := *settingDefs[key].field(s)
		if value == nil {
			continue
		}
		clone := Settings{}
		if err := clone.Set(key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func pick(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Step returns the slot grid step in minutes
func (s *Settings) Step() int {
	step := orDefault(s.BookingStepMin, DefaultBookingStepMinutes)
	if step <= 0 {
		return DefaultBookingStepMinutes
	}
	return step
}

// DurationFor returns the meeting duration for the mode
func (s *Settings) DurationFor(mode MeetingMode) int {
	switch mode {
	case ModeVisio:
		return orDefault(pick(s.VisioDurationMin, s.DefaultDurationMin), DefaultDurationMinutes)
	default:
		return orDefault(pick(s.PhysicalDurationMin, s.DefaultDurationMin), DefaultDurationMinutes)
	}
}

// BufferBeforeFor returns the free time required before a meeting of the mode
func (s *Settings) BufferBeforeFor(mode MeetingMode) int {
	if mode == ModeVisio {
		return orDefault(pick(s.VisioBufferBeforeMin, s.BufferBeforeMin), DefaultBufferBeforeMinutes)
	}
	return orDefault(s.BufferBeforeMin, DefaultBufferBeforeMinutes)
}

// BufferAfterFor returns the free time required after a meeting of the mode
func (s *Settings) BufferAfterFor(mode MeetingMode) int {
	if mode == ModeVisio {
		return orDefault(pick(s.VisioBufferAfterMin, s.BufferAfterMin), DefaultBufferAfterMinutes)
	}
	return orDefault(s.BufferAfterMin, DefaultBufferAfterMinutes)
}

// Notice returns the minimum lead time in minutes
func (s *Settings) Notice() int {
	return orDefault(s.NoticeMin, DefaultNoticeMinutes)
}

// Window returns how many days ahead may be booked
func (s *Settings) Window() int {
	return orDefault(s.WindowDays, DefaultWindowDays)
}

// VisioGap returns the minimum gap after a prior appointment before a visio meeting.
// The generic buffer_after is not part of this chain.
func (s *Settings) VisioGap() int {
	return orDefault(pick(s.VisioMinGapMin, s.VisioBufferAfterMin), DefaultVisioGapMinutes)
}

// PhysicalSecondGap returns the gap required before a second in-person meeting of a half-day
func (s *Settings) PhysicalSecondGap() int {
	return orDefault(s.PhysicalSecondGapMin, DefaultPhysicalSecondGapMin)
}

// HalfDayBoundary returns the local hour at which the afternoon starts
func (s *Settings) HalfDayBoundary() int {
	return orDefault(s.HalfDayBoundaryHour, DefaultHalfDayBoundaryHour)
}

// PhysicalCapacity returns the maximum in-person meetings per staff member per half-day
func (s *Settings) PhysicalCapacity() int {
	return orDefault(s.PhysicalHalfDayCapacity, DefaultPhysicalHalfDayCapacity)
}
