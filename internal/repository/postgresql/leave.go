package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `id, employee_id, leave_type, department, to_char(start_date, 'YYYY-MM-DD'),
	to_char(end_date, 'YYYY-MM-DD'), days, reason, status, created_at, updated_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.Department,
		&l.StartDate,
		&l.EndDate,
		&l.Days,
		&l.Reason,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (employee_id, leave_type, department, start_date, end_date, days, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4::date, $5::date, $6, $7, $8, $9, $9)
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query,
		newLeave.EmployeeID,
		newLeave.LeaveType,
		newLeave.Department,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.Days,
		newLeave.Reason,
		newLeave.Status,
		newLeave.CreatedAt,
	))
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave application: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_applications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave application with id %s: %w", id, err)
	}
	return found, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_applications WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave applications: %w", err)
	}
	return leaves, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	var where []string
	var args []interface{}
	i := 1
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("la.status = $%d", i))
		args = append(args, filter.Status)
		i++
	}
	if filter.UserID != "" {
		where = append(where, fmt.Sprintf("u.id = $%d", i))
		args = append(args, filter.UserID)
		i++
	}
	if filter.Name != "" {
		where = append(where, fmt.Sprintf("(u.first_name ILIKE $%d OR u.last_name ILIKE $%d)", i, i))
		args = append(args, "%"+escapeLike(filter.Name)+"%")
		i++
	}

	query := `
		SELECT la.id, la.employee_id, la.leave_type, la.department,
			   to_char(la.start_date, 'YYYY-MM-DD'), to_char(la.end_date, 'YYYY-MM-DD'),
			   la.days, la.reason, la.status, la.created_at, la.updated_at,
			   u.id, u.first_name, u.last_name, u.email
		FROM leave_applications la
		JOIN employees e ON e.id = la.employee_id
		JOIN users u ON u.id = e.user_id
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY la.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	records := make([]leave.Record, 0)
	for rows.Next() {
		var rec leave.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID,
			&rec.LeaveType,
			&rec.Department,
			&rec.StartDate,
			&rec.EndDate,
			&rec.Days,
			&rec.Reason,
			&rec.Status,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.UserID,
			&rec.FirstName,
			&rec.LastName,
			&rec.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave applications: %w", err)
	}
	return records, nil
}

// Decide implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Decide(ctx context.Context, id string, status leave.Status, at time.Time) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications SET status = $1, updated_at = $2
		WHERE id = $3 AND status = 'pending'
		RETURNING ` + leaveColumns

	updated, err := scanLeave(q.QueryRow(ctx, query, status, at, id))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.Leave{}, fmt.Errorf("failed to update leave application %s: %w", id, err)
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return leave.Leave{}, err
	}
	return leave.Leave{}, leave.ErrLeaveAlreadyProcessed
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_applications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete leave application %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeletePendingOwned implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) DeletePendingOwned(ctx context.Context, id, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM leave_applications WHERE id = $1 AND employee_id = $2 AND status = 'pending'`,
		id, employeeID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete leave application %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Stats implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Stats(ctx context.Context) (leave.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*)
		FROM leave_applications
	`

	var stats leave.Stats
	if err := q.QueryRow(ctx, query).Scan(&stats.Pending, &stats.Approved, &stats.Rejected, &stats.Total); err != nil {
		return leave.Stats{}, fmt.Errorf("failed to get leave stats: %w", err)
	}
	return stats, nil
}

// escapeLike quotes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
