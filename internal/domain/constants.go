package domain

// Default settings values (used when a key is absent from the settings store)
const (
	DefaultBookingStepMinutes      = 15
	DefaultDurationMinutes         = 30
	DefaultBufferBeforeMinutes     = 0
	DefaultBufferAfterMinutes      = 0
	DefaultNoticeMinutes           = 0
	DefaultWindowDays              = 30
	DefaultVisioGapMinutes         = 15
	DefaultPhysicalSecondGapMin    = 90
	DefaultHalfDayBoundaryHour     = 13
	DefaultPhysicalHalfDayCapacity = 2
)

// Business validation constants
const (
	MinStepMinutes        = 5
	MaxStepMinutes        = 240
	MinDurationMinutes    = 5
	MaxDurationMinutes    = 480 // 8 hours
	MaxBufferMinutes      = 240
	MaxNoticeMinutes      = 10080 // 1 week
	MinWindowDays         = 1
	MaxWindowDays         = 365
	MaxGapMinutes         = 480
	MaxHalfDayCapacity    = 20
	MaxClientNameLength   = 200
	MaxNotesLength        = 2000
	MaxAttendees          = 20
	MaxIdempotencyKeyLen  = 128
	MaxZoneNameLength     = 100
	MaxQueryRangeDays     = 62
	MaxBulkGenerationDays = 366
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// VisioZoneName is the reserved name of the zone used for remote meetings
const VisioZoneName = "visio"

// DefaultTimezone is the local time zone of schedules and half-day boundaries
const DefaultTimezone = "Europe/Paris"
