package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const salaryColumns = `id, employee_id, month, year, base_salary, incentives, deductions, amount,
	status, paid_at, created_at, updated_at`

const salaryRecordQuery = `
	SELECT s.id, s.employee_id, s.month, s.year, s.base_salary, s.incentives, s.deductions, s.amount,
		   s.status, s.paid_at, s.created_at, s.updated_at,
		   u.id, u.first_name, u.last_name, u.email, e.position, e.department
	FROM salaries s
	JOIN employees e ON e.id = s.employee_id
	JOIN users u ON u.id = e.user_id
`

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

func scanSalary(row pgx.Row) (salary.Salary, error) {
	var s salary.Salary
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.Month,
		&s.Year,
		&s.BaseSalary,
		&s.Incentives,
		&s.Deductions,
		&s.Amount,
		&s.Status,
		&s.PaidAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

func scanSalaryRecord(row pgx.Row) (salary.Record, error) {
	var rec salary.Record
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Month,
		&rec.Year,
		&rec.BaseSalary,
		&rec.Incentives,
		&rec.Deductions,
		&rec.Amount,
		&rec.Status,
		&rec.PaidAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.UserID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Email,
		&rec.Position,
		&rec.Department,
	)
	return rec, err
}

// Create implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, newSalary salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (employee_id, month, year, base_salary, incentives, deductions, amount, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + salaryColumns

	created, err := scanSalary(q.QueryRow(ctx, query,
		newSalary.EmployeeID,
		newSalary.Month,
		newSalary.Year,
		newSalary.BaseSalary,
		newSalary.Incentives,
		newSalary.Deductions,
		newSalary.Amount,
		newSalary.Status,
		newSalary.PaidAt,
	))
	if err != nil {
		if isUniqueViolation(err, "salaries_employee_period_key") {
			return salary.Salary{}, salary.ErrSalaryExists
		}
		return salary.Salary{}, fmt.Errorf("failed to create salary record: %w", err)
	}
	return created, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanSalary(q.QueryRow(ctx, `SELECT `+salaryColumns+` FROM salaries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary record with id %s: %w", id, err)
	}
	return found, nil
}

// GetByPeriod implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByPeriod(ctx context.Context, employeeID string, month, year int) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE employee_id = $1 AND month = $2 AND year = $3`

	found, err := scanSalary(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary record for %d/%d: %w", month, year, err)
	}
	return found, nil
}

// Update implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Update(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salaries
		SET base_salary = $1, incentives = $2, deductions = $3, amount = $4,
			status = $5, paid_at = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + salaryColumns

	updated, err := scanSalary(q.QueryRow(ctx, query,
		s.BaseSalary,
		s.Incentives,
		s.Deductions,
		s.Amount,
		s.Status,
		s.PaidAt,
		s.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to update salary record %s: %w", s.ID, err)
	}
	return updated, nil
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

// GetRecord implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetRecord(ctx context.Context, id string) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanSalaryRecord(q.QueryRow(ctx, salaryRecordQuery+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record with id %s: %w", id, err)
	}
	return rec, nil
}

// List implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) List(ctx context.Context, employeeID *string) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := salaryRecordQuery + `
		WHERE ($1::uuid IS NULL OR s.employee_id = $1::uuid)
		ORDER BY s.year DESC, s.month DESC, s.paid_at DESC NULLS LAST
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	records := make([]salary.Record, 0)
	for rows.Next() {
		rec, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary records: %w", err)
	}
	return records, nil
}

// Stats implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Stats(ctx context.Context, employeeID *string) (salary.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
			COALESCE(ROUND(AVG(amount) FILTER (WHERE status = 'paid'), 2), 0),
			COUNT(*)
		FROM salaries
		WHERE ($1::uuid IS NULL OR employee_id = $1::uuid)
	`

	var stats salary.Stats
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&stats.TotalPaid,
		&stats.TotalPending,
		&stats.AverageSalary,
		&stats.TotalRecords,
	)
	if err != nil {
		return salary.Stats{}, fmt.Errorf("failed to get salary stats: %w", err)
	}
	return stats, nil
}
