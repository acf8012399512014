package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/pkg/types"
)

var (
	// ErrInvalidWeekday день недели вне диапазона 0..6
	ErrInvalidWeekday = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")

	// ErrInvalidTimeRange время начала не раньше времени окончания
	ErrInvalidTimeRange = errors.New("startTime must be before endTime")

	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)

// Request модели

// ListRequest фильтр списков расписания
type ListRequest struct {
	ZoneID  *int64
	StaffID *int64
	From    *time.Time // включительно
	To      *time.Time // включительно
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() domain.ScheduleFilter {
	return domain.ScheduleFilter{ZoneID: r.ZoneID, StaffID: r.StaffID, From: r.From, To: r.To}
}

// ZoneRequest создание и изменение зоны
type ZoneRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

// RuleRequest недельное правило зоны
type RuleRequest struct {
	ZoneID    int64  `json:"zoneId"`
	Weekday   int    `json:"weekday"`   // 0 = воскресенье
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ToDomain конвертирует request в domain модель
func (r *RuleRequest) ToDomain() (*domain.WeeklyRule, error) {
	weekday, start, end, err := parseWeekdayRange(r.Weekday, r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return &domain.WeeklyRule{ZoneID: r.ZoneID, Weekday: weekday, StartTime: start, EndTime: end}, nil
}

// ExceptionRequest исключение зоны на дату
type ExceptionRequest struct {
	ZoneID    int64   `json:"zoneId"`
	Date      string  `json:"date"` // "2025-10-15"
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Note      *string `json:"note,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *ExceptionRequest) ToDomain() (*domain.DateException, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	start, end, err := ParseTimeRange(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return &domain.DateException{ZoneID: r.ZoneID, Date: date, StartTime: start, EndTime: end, Note: r.Note}, nil
}

// AssignmentRequest назначение сотрудника на зону
type AssignmentRequest struct {
	StaffID   int64  `json:"staffId"`
	ZoneID    int64  `json:"zoneId"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToDomain конвертирует request в domain модель
func (r *AssignmentRequest) ToDomain() (*domain.StaffZoneAssignment, error) {
	weekday, start, end, err := parseWeekdayRange(r.Weekday, r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return &domain.StaffZoneAssignment{StaffID: r.StaffID, ZoneID: r.ZoneID, Weekday: weekday, StartTime: start, EndTime: end}, nil
}

// StaffRequest создание сотрудника
type StaffRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// SelectionRequest выбор зоны сотрудника на день
type SelectionRequest struct {
	StaffID int64  `json:"staffId"`
	Date    string `json:"date"`
	ZoneID  int64  `json:"zoneId"`
}

// GenerateWeeklyRulesRequest массовое создание недельных правил
type GenerateWeeklyRulesRequest struct {
	ZoneID    int64  `json:"zoneId"`
	Weekdays  []int  `json:"weekdays"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Replace   bool   `json:"replace"` // удалить прежние правила этих дней
}

// GenerateExceptionsRangeRequest массовое создание исключений на период
type GenerateExceptionsRangeRequest struct {
	ZoneID    int64   `json:"zoneId"`
	FromDate  string  `json:"fromDate"`
	ToDate    string  `json:"toDate"`   // включительно
	Weekdays  []int   `json:"weekdays"` // пусто = все дни
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Note      *string `json:"note,omitempty"`
	Replace   bool    `json:"replace"` // удалить прежние исключения этих дат
}

// Response модели

// ZoneResponse зона
type ZoneResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color,omitempty"`
	IsVisio   bool      `json:"isVisio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RuleResponse недельное правило
type RuleResponse struct {
	ID        int64  `json:"id"`
	ZoneID    int64  `json:"zoneId"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ExceptionResponse исключение на дату
type ExceptionResponse struct {
	ID        int64   `json:"id"`
	ZoneID    int64   `json:"zoneId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Note      *string `json:"note,omitempty"`
}

// AssignmentResponse назначение сотрудника
type AssignmentResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	ZoneID    int64  `json:"zoneId"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// StaffResponse сотрудник
type StaffResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// SelectionResponse выбор зоны на день
type SelectionResponse struct {
	StaffID   int64     `json:"staffId"`
	Date      string    `json:"date"`
	ZoneID    int64     `json:"zoneId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainZone конвертирует зону в DTO
func FromDomainZone(z *domain.Zone) *ZoneResponse {
	return &ZoneResponse{ID: z.ID, Name: z.Name, Color: z.Color, IsVisio: z.IsVisio(), CreatedAt: z.CreatedAt, UpdatedAt: z.UpdatedAt}
}

// FromDomainRule конвертирует правило в DTO
func FromDomainRule(r *domain.WeeklyRule) *RuleResponse {
	return &RuleResponse{ID: r.ID, ZoneID: r.ZoneID, Weekday: int(r.Weekday), StartTime: r.StartTime.String(), EndTime: r.EndTime.String()}
}

// FromDomainException конвертирует исключение в DTO
func FromDomainException(e *domain.DateException) *ExceptionResponse {
	return &ExceptionResponse{
		ID:        e.ID,
		ZoneID:    e.ZoneID,
		Date:      e.Date.Format(domain.DateFormat),
		StartTime: e.StartTime.String(),
		EndTime:   e.EndTime.String(),
		Note:      e.Note,
	}
}

// FromDomainAssignment конвертирует назначение в DTO
func FromDomainAssignment(a *domain.StaffZoneAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:        a.ID,
		StaffID:   a.StaffID,
		ZoneID:    a.ZoneID,
		Weekday:   int(a.Weekday),
		StartTime: a.StartTime.String(),
		EndTime:   a.EndTime.String(),
	}
}

// FromDomainStaff конвертирует сотрудника в DTO
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	return &StaffResponse{ID: s.ID, Name: s.Name, Email: s.Email}
}

// FromDomainSelection конвертирует выбор зоны в DTO
func FromDomainSelection(s *domain.ZoneSelection) *SelectionResponse {
	return &SelectionResponse{StaffID: s.StaffID, Date: s.Date.Format(domain.DateFormat), ZoneID: s.ZoneID, UpdatedAt: s.UpdatedAt}
}

// ParseDate разбирает дату YYYY-MM-DD в полночь UTC
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseWeekday проверяет день недели
func ParseWeekday(w int) (time.Weekday, error) {
	if w < int(time.Sunday) || w > int(time.Saturday) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, w)
	}
	return time.Weekday(w), nil
}

// ParseTimeRange разбирает и проверяет интервал времени
func ParseTimeRange(startRaw, endRaw string) (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(startRaw)
	if err != nil {
		return "", "", err
	}
	end, err := types.NewTimeStringFromString(endRaw)
	if err != nil {
		return "", "", err
	}
	if !domain.TimeRangeValid(start, end) {
		return "", "", fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}
	return start, end, nil
}

func parseWeekdayRange(w int, startRaw, endRaw string) (time.Weekday, types.TimeString, types.TimeString, error) {
	weekday, err := ParseWeekday(w)
	if err != nil {
		return 0, "", "", err
	}
	start, end, err := ParseTimeRange(startRaw, endRaw)
	if err != nil {
		return 0, "", "", err
	}
	return weekday, start, end, nil
}

// GenerateRulesResponse результат массового создания правил
type GenerateRulesResponse struct {
	Deleted int64           `json:"deleted"`
	Rules   []*RuleResponse `json:"rules"`
}

// GenerateExceptionsResponse результат массового создания исключений
type GenerateExceptionsResponse struct {
	Deleted    int64                `json:"deleted"`
	Exceptions []*ExceptionResponse `json:"exceptions"`
}
