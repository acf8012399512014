package schedule

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// GenerateWeeklyRules создает одинаковые правила зоны на несколько дней недели.
// При Replace прежние правила этих дней удаляются в той же транзакции
func (s *Service) GenerateWeeklyRules(ctx context.Context, req *models.GenerateWeeklyRulesRequest) (*models.GenerateRulesResponse, error) {
	s.logger.Info("GenerateWeeklyRules: zone=%d, weekdays=%v, %s-%s, replace=%t",
		req.ZoneID, req.Weekdays, req.StartTime, req.EndTime, req.Replace)

	// 1. Валидация входных данных
	if len(req.Weekdays) == 0 {
		return nil, fmt.Errorf("%w: weekdays are required", ErrInvalidInput)
	}
	weekdays, err := parseWeekdays(req.Weekdays)
	if err != nil {
		return nil, invalid(err)
	}
	start, end, err := models.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, invalid(err)
	}

	resp := &models.GenerateRulesResponse{Rules: make([]*models.RuleResponse, 0, len(weekdays))}

	// 2. Удаление и создание в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.scheduleRepo.GetZone(txCtx, req.ZoneID); err != nil {
			return s.repoError("GenerateWeeklyRules", err, ErrZoneNotFound)
		}

		if req.Replace {
			deleted, err := s.scheduleRepo.DeleteRulesForWeekdays(txCtx, req.ZoneID, weekdays)
			if err != nil {
				return s.repoError("GenerateWeeklyRules", err, ErrRuleNotFound)
			}
			resp.Deleted = deleted
		}

		for _, wd := range weekdays {
			rule, err := s.scheduleRepo.CreateRule(txCtx, &domain.WeeklyRule{
				ZoneID: req.ZoneID, Weekday: wd, StartTime: start, EndTime: end,
			})
			if err != nil {
				return s.repoError("GenerateWeeklyRules", err, ErrRuleNotFound)
			}
			resp.Rules = append(resp.Rules, models.FromDomainRule(rule))
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("GenerateWeeklyRules: failed: %v", err)
		return nil, err
	}

	s.logger.Info("GenerateWeeklyRules: created %d rules, deleted %d", len(resp.Rules), resp.Deleted)
	return resp, nil
}

// GenerateExceptionsRange создает исключения зоны на каждую подходящую дату периода
// [FromDate, ToDate]. Пустой список дней недели означает все дни
func (s *Service) GenerateExceptionsRange(ctx context.Context, req *models.GenerateExceptionsRangeRequest) (*models.GenerateExceptionsResponse, error) {
	s.logger.Info("GenerateExceptionsRange: zone=%d, %s..%s, weekdays=%v, %s-%s, replace=%t",
		req.ZoneID, req.FromDate, req.ToDate, req.Weekdays, req.StartTime, req.EndTime, req.Replace)

	// 1. Валидация входных данных
	from, err := models.ParseDate(req.FromDate)
	if err != nil {
		return nil, invalid(err)
	}
	to, err := models.ParseDate(req.ToDate)
	if err != nil {
		return nil, invalid(err)
	}
	if to.Before(from) {
		return nil, invalidRange()
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > domain.MaxBulkGenerationDays {
		return nil, fmt.Errorf("%w: %d days, max %d", ErrRangeTooLong, days, domain.MaxBulkGenerationDays)
	}
	weekdays, err := parseWeekdays(req.Weekdays)
	if err != nil {
		return nil, invalid(err)
	}
	start, end, err := models.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, invalid(err)
	}

	// 2. Даты периода с подходящим днем недели
	dates := matchingDates(from, to, weekdays)
	resp := &models.GenerateExceptionsResponse{Exceptions: make([]*models.ExceptionResponse, 0, len(dates))}

	// 3. Удаление и создание в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.scheduleRepo.GetZone(txCtx, req.ZoneID); err != nil {
			return s.repoError("GenerateExceptionsRange", err, ErrZoneNotFound)
		}

		if req.Replace {
			existing, err := s.scheduleRepo.ListExceptions(txCtx, domain.ScheduleFilter{ZoneID: &req.ZoneID, From: &from, To: &to})
			if err != nil {
				return s.repoError("GenerateExceptionsRange", err, ErrExceptionNotFound)
			}
			for _, exc := range existing {
				if !containsDate(dates, exc.Date) {
					continue
				}
				if err := s.scheduleRepo.DeleteException(txCtx, exc.ID); err != nil {
					return s.repoError("GenerateExceptionsRange", err, ErrExceptionNotFound)
				}
				resp.Deleted++
			}
		}

		for _, date := range dates {
			exc, err := s.scheduleRepo.CreateException(txCtx, &domain.DateException{
				ZoneID: req.ZoneID, Date: date, StartTime: start, EndTime: end, Note: req.Note,
			})
			if err != nil {
				return s.repoError("GenerateExceptionsRange", err, ErrExceptionNotFound)
			}
			resp.Exceptions = append(resp.Exceptions, models.FromDomainException(exc))
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("GenerateExceptionsRange: failed: %v", err)
		return nil, err
	}

	s.logger.Info("GenerateExceptionsRange: created %d exceptions, deleted %d", len(resp.Exceptions), resp.Deleted)
	return resp, nil
}

// parseWeekdays проверяет дни недели и убирает повторы
func parseWeekdays(raw []int) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool, len(raw))
	result := make([]time.Weekday, 0, len(raw))
	for _, w := range raw {
		wd, err := models.ParseWeekday(w)
		if err != nil {
			return nil, err
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		result = append(result, wd)
	}
	return result, nil
}

func matchingDates(from, to time.Time, weekdays []time.Weekday) []time.Time {
	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if len(weekdays) == 0 || slices.Contains(weekdays, d.Weekday()) {
			dates = append(dates, d)
		}
	}
	return dates
}

func containsDate(dates []time.Time, date time.Time) bool {
	for _, d := range dates {
		if d.Equal(date) {
			return true
		}
	}
	return false
}

func invalidRange() error {
	return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
}
