package schedule

import (
	"context"

	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListRules возвращает недельные правила зон
func (s *Service) ListRules(ctx context.Context, req *models.ListRequest) ([]*models.RuleResponse, error) {
	rules, err := s.scheduleRepo.ListRules(ctx, req.ToDomainFilter())
	if err != nil {
		return nil, s.repoError("ListRules", err, ErrRuleNotFound)
	}

	result := make([]*models.RuleResponse, 0, len(rules))
	for _, r := range rules {
		result = append(result, models.FromDomainRule(r))
	}
	return result, nil
}

// GetRule возвращает правило по ID
func (s *Service) GetRule(ctx context.Context, id int64) (*models.RuleResponse, error) {
	rule, err := s.scheduleRepo.GetRule(ctx, id)
	if err != nil {
		return nil, s.repoError("GetRule", err, ErrRuleNotFound)
	}
	return models.FromDomainRule(rule), nil
}

// CreateRule создает недельное правило
func (s *Service) CreateRule(ctx context.Context, req *models.RuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("CreateRule: zone=%d, weekday=%d, %s-%s", req.ZoneID, req.Weekday, req.StartTime, req.EndTime)

	rule, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	created, err := s.scheduleRepo.CreateRule(ctx, rule)
	if err != nil {
		return nil, s.repoError("CreateRule", err, ErrRuleNotFound)
	}
	return models.FromDomainRule(created), nil
}

// UpdateRule изменяет правило
func (s *Service) UpdateRule(ctx context.Context, id int64, req *models.RuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("UpdateRule: id=%d", id)

	rule, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}
	rule.ID = id

	updated, err := s.scheduleRepo.UpdateRule(ctx, rule)
	if err != nil {
		return nil, s.repoError("UpdateRule", err, ErrRuleNotFound)
	}
	return models.FromDomainRule(updated), nil
}

// DeleteRule удаляет правило
func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRule: id=%d", id)

	if err := s.scheduleRepo.DeleteRule(ctx, id); err != nil {
		return s.repoError("DeleteRule", err, ErrRuleNotFound)
	}
	return nil
}
