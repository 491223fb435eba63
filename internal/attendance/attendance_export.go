package attendance

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

var exportHeaders = []string{
	"Date", "Employee Number", "Employee", "Status", "Clock In", "Clock Out",
	"Address", "Latitude", "Longitude", "Distance (m)", "Within Radius", "Source", "Notes",
}

func buildAttendanceWorkbook(rows []Attendance, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err := f.SetCellStyle(exportSheet, "A1", lastCol+"1", bold); err != nil {
		return nil, err
	}

	for i, a := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, exportRow(a, loc)); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", lastCol, 18); err != nil {
		return nil, err
	}
	if err := f.SetPanes(exportSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(a Attendance, loc *time.Location) *[]any {
	clock := func(t *time.Time) any {
		if t == nil {
			return ""
		}
		return t.In(loc).Format("15:04:05")
	}

	var employeeNumber, employeeName string
	if a.Employee != nil {
		employeeNumber = a.Employee.EmployeeNumber
		employeeName = a.Employee.FullName
	}

	row := []any{
		a.AttendanceDate.Format(time.DateOnly),
		employeeNumber,
		employeeName,
		a.Status,
		clock(a.ClockIn),
		clock(a.ClockOut),
		stringValue(a.Address),
		"", "", "", "",
		a.Source,
		stringValue(a.Notes),
	}
	if a.Latitude != nil && a.Longitude != nil {
		row[7] = *a.Latitude
		row[8] = *a.Longitude
	}
	if a.DistanceMeters != nil {
		row[9] = *a.DistanceMeters
	}
	if a.WithinRadius != nil {
		row[10] = "No"
		if *a.WithinRadius {
			row[10] = "Yes"
		}
	}
	return &row
}
