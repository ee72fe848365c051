package repository

type ListEmployeesOptions struct {
	Offset int
	Limit  int
}

type CreateEmployeeOptions struct {
	Title string
}
