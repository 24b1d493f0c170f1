package dashboard

import "github.com/shopspring/decimal"

// StatsResponse is the admin dashboard payload
type StatsResponse struct {
	TotalEmployees     int                `json:"totalEmployees"`
	PresentToday       int                `json:"presentToday"`
	TotalSalaryPaid    decimal.Decimal    `json:"totalSalaryPaid"`
	DocumentsUploaded  int                `json:"documentsUploaded"`
	AttendanceRate     int                `json:"attendanceRate"` // percent, rounded
	AvgSalary          decimal.Decimal    `json:"avgSalary"`
	ApprovedLeaves     int                `json:"approvedLeaves"`
	PendingLeaves      int                `json:"pendingLeaves"`
	AttendanceOverview AttendanceOverview `json:"attendanceOverview"`
	SalaryDistribution SalaryDistribution `json:"salaryDistribution"`
	LeaveStatus        LeaveStatus        `json:"leaveStatus"`
}

type AttendanceOverview struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}

// SalaryDistribution counts salary records by status
type SalaryDistribution struct {
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
}

type LeaveStatus struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
