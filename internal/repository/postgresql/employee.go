package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, user_id, phone, position, department, to_char(hire_date, 'YYYY-MM-DD'),
	salary, status, created_at, updated_at`

// entryQuery joins account, profile and the newest salary record.
const entryQuery = `
	SELECT u.id, e.id, u.first_name, u.last_name, u.email, u.role,
		   e.phone, e.position, e.department, to_char(e.hire_date, 'YYYY-MM-DD'),
		   e.salary, e.status, s.amount, s.month, s.year, u.created_at
	FROM users u
	JOIN employees e ON e.user_id = u.id
	LEFT JOIN LATERAL (
		SELECT amount, month, year
		FROM salaries
		WHERE employee_id = e.id
		ORDER BY year DESC, month DESC, paid_at DESC NULLS LAST
		LIMIT 1
	) s ON TRUE
`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Phone,
		&e.Position,
		&e.Department,
		&e.HireDate,
		&e.Salary,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func scanEntry(row pgx.Row) (employee.Entry, error) {
	var entry employee.Entry
	err := row.Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.FirstName,
		&entry.LastName,
		&entry.Email,
		&entry.Role,
		&entry.Phone,
		&entry.Position,
		&entry.Department,
		&entry.HireDate,
		&entry.Salary,
		&entry.Status,
		&entry.CurrentSalary,
		&entry.SalaryMonth,
		&entry.SalaryYear,
		&entry.CreatedAt,
	)
	return entry, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, phone, position, department, hire_date, salary, status)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.Phone,
		newEmployee.Position,
		newEmployee.Department,
		newEmployee.HireDate,
		newEmployee.Salary,
		newEmployee.Status,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee profile: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return found, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrProfileNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee for user %s: %w", userID, err)
	}
	return found, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, userID string, req employee.UpdateProfileFields) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.HireDate != nil {
		if *req.HireDate == "" {
			updates["hire_date"] = nil
		} else {
			updates["hire_date"] = *req.HireDate
		}
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		if col == "hire_date" {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d::date", col, i))
		} else {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		}
		args = append(args, val)
		i++
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	sql := fmt.Sprintf("UPDATE employees SET %s WHERE user_id = $%d", strings.Join(setClauses, ", "), i)
	args = append(args, userID)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, entryQuery+` ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	entries := make([]employee.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return entries, nil
}

// GetEntry implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetEntry(ctx context.Context, userID string) (employee.Entry, error) {
	q := GetQuerier(ctx, r.db)

	entry, err := scanEntry(q.QueryRow(ctx, entryQuery+` WHERE u.id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Entry{}, employee.ErrEmployeeNotFound
		}
		return employee.Entry{}, fmt.Errorf("failed to get employee for user %s: %w", userID, err)
	}
	return entry, nil
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountActive(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = 'active'`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}
