package leave

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/metrics"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	clock clock.Clock
}

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, identity user.Identity, req leave.ApplyRequest) (leave.Leave, error) {
	now := l.clock.Now()

	start, end, err := req.Validate(clock.StartOfDay(now))
	if err != nil {
		return leave.Leave{}, err
	}

	profile, err := l.EmployeeRepository.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return leave.Leave{}, err
	}

	return l.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: profile.ID,
		LeaveType:  req.LeaveType,
		Department: req.Department,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Days:       leave.CountDays(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		CreatedAt:  now,
	})
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context, identity user.Identity) ([]leave.Leave, error) {
	profile, err := l.EmployeeRepository.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	return l.LeaveRepository.ListByEmployee(ctx, profile.ID)
}

// ListAll implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAll(ctx context.Context, filter leave.Filter) ([]leave.Record, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return l.LeaveRepository.List(ctx, filter)
}

// SetStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) SetStatus(ctx context.Context, id string, req leave.SetStatusRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	decided, err := l.Decide(ctx, id, req.Status, l.clock.Now())
	if err != nil {
		return leave.Leave{}, err
	}

	metrics.LeaveDecisions.WithLabelValues(string(decided.Status)).Inc()
	return decided, nil
}

// Delete implements leave.LeaveService.
// Admins may remove any application; employees only their own pending ones.
func (l *LeaveServiceImpl) Delete(ctx context.Context, identity user.Identity, id string) error {
	var (
		deleted bool
		err     error
	)

	if user.HasPermission(identity.Role, user.PermissionLeaveDeleteAny) {
		deleted, err = l.LeaveRepository.Delete(ctx, id)
	} else {
		var profile employee.Employee
		profile, err = l.EmployeeRepository.GetByUserID(ctx, identity.UserID)
		if errors.Is(err, employee.ErrProfileNotFound) {
			return leave.ErrLeaveNotDeletable
		}
		if err != nil {
			return err
		}
		deleted, err = l.DeletePendingOwned(ctx, id, profile.ID)
	}

	if err != nil {
		return err
	}
	if !deleted {
		return leave.ErrLeaveNotDeletable
	}
	return nil
}

// Stats implements leave.LeaveService.
func (l *LeaveServiceImpl) Stats(ctx context.Context) (leave.Stats, error) {
	return l.LeaveRepository.Stats(ctx)
}

func NewLeaveService(
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
		clock:              clk,
	}
}
