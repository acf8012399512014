package admin_schedule

import (
	"context"

	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	ListZones(ctx context.Context) ([]*models.ZoneResponse, error)
	GetZone(ctx context.Context, id int64) (*models.ZoneResponse, error)
	CreateZone(ctx context.Context, req *models.ZoneRequest) (*models.ZoneResponse, error)
	UpdateZone(ctx context.Context, id int64, req *models.ZoneRequest) (*models.ZoneResponse, error)
	DeleteZone(ctx context.Context, id int64) error

	ListRules(ctx context.Context, req *models.ListRequest) ([]*models.RuleResponse, error)
	GetRule(ctx context.Context, id int64) (*models.RuleResponse, error)
	CreateRule(ctx context.Context, req *models.RuleRequest) (*models.RuleResponse, error)
	UpdateRule(ctx context.Context, id int64, req *models.RuleRequest) (*models.RuleResponse, error)
	DeleteRule(ctx context.Context, id int64) error

	ListExceptions(ctx context.Context, req *models.ListRequest) ([]*models.ExceptionResponse, error)
	GetException(ctx context.Context, id int64) (*models.ExceptionResponse, error)
	CreateException(ctx context.Context, req *models.ExceptionRequest) (*models.ExceptionResponse, error)
	UpdateException(ctx context.Context, id int64, req *models.ExceptionRequest) (*models.ExceptionResponse, error)
	DeleteException(ctx context.Context, id int64) error

	ListAssignments(ctx context.Context, req *models.ListRequest) ([]*models.AssignmentResponse, error)
	GetAssignment(ctx context.Context, id int64) (*models.AssignmentResponse, error)
	CreateAssignment(ctx context.Context, req *models.AssignmentRequest) (*models.AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, id int64, req *models.AssignmentRequest) (*models.AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id int64) error

	ListStaff(ctx context.Context) ([]*models.StaffResponse, error)
	CreateStaff(ctx context.Context, req *models.StaffRequest) (*models.StaffResponse, error)

	ListSelections(ctx context.Context, req *models.ListRequest) ([]*models.SelectionResponse, error)
	GetSelection(ctx context.Context, staffID int64, date string) (*models.SelectionResponse, error)
	SetSelection(ctx context.Context, req *models.SelectionRequest) (*models.SelectionResponse, error)
	DeleteSelection(ctx context.Context, staffID int64, date string) error

	GenerateWeeklyRules(ctx context.Context, req *models.GenerateWeeklyRulesRequest) (*models.GenerateRulesResponse, error)
	GenerateExceptionsRange(ctx context.Context, req *models.GenerateExceptionsRangeRequest) (*models.GenerateExceptionsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
