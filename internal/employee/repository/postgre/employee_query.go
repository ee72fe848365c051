package postgre

const (
	countEmployeesQuery = `SELECT COUNT(*) FROM employees`

	listEmployeesQuery = `
		SELECT id, title, created_at
		FROM employees
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`

	detailEmployeeQuery = `
		SELECT id, title, created_at
		FROM employees
		WHERE id = $1
	`

	insertEmployeeQuery = `INSERT INTO employees (title, created_at) VALUES ($1, $2)`
)
