package events

import "time"

const (
	PayslipUpdatedTopic     = "hr.payroll.payslip.updated.v1"
	PayslipUpdatedEventType = "payslip.updated"
)

type PayslipUpdatedEvent struct {
	EventType      string    `json:"event_type"`
	PayslipID      string    `json:"payslip_id"`
	CompanyID      string    `json:"company_id"`
	EmployeeID     string    `json:"employee_id"`
	UpdatedBy      string    `json:"updated_by"`
	NetSalary      int64     `json:"net_salary"`
	NotifyEmployee bool      `json:"notify_employee"`
	OccurredAt     time.Time `json:"occurred_at"`
}
