package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeStringLayout = "15:04"

	// EndOfDay конец суток, 1440 минут от полуночи
	EndOfDay TimeString = "24:00"

	minutesPerDay = 24 * 60
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM (без даты и часового пояса)
type TimeString string

// NewTimeString создаёт TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит строку HH:MM или HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	// Postgres отдаёт TIME в формате HH:MM:SS
	if len(s) == len("15:04:05") {
		s = s[:len(timeStringLayout)]
	}
	if err := TimeString(s).Validate(); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	if t == EndOfDay {
		return nil
	}
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	if t == EndOfDay {
		return minutesPerDay
	}
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes прибавляет минуты, не выходя за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.Minutes() + minutes
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min is out of day bounds", ErrInvalidTimeString, t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore строго раньше
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter строго позже
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// On возвращает момент времени в указанную календарную дату в часовом поясе loc.
// EndOfDay дает полночь следующего дня
func (t TimeString) On(date time.Time, loc *time.Location) time.Time {
	m := t.Minutes()
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, loc)
}

func (t TimeString) String() string {
	return string(t)
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
