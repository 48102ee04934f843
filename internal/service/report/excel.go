package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/stitchline/garment-erp-go/internal/domain/report"
)

func buildWorkerEarningsWorkbook(data report.WorkerEarningsReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Worker Earnings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Worker", "Total Pieces", "Total Amount", "Paid"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range data.Rows {
		values := []interface{}{row.WorkerName, row.TotalPieces, row.TotalAmount.InexactFloat64(), row.Paid}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	totalRow := len(data.Rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), data.TotalPieces)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), data.TotalAmount.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow+2), fmt.Sprintf("Period: %s (%s)", data.Period, data.ReferenceDate))
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow+3), fmt.Sprintf("Efficiency: %d%%", data.Efficiency))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildOperationExpenseWorkbook(data report.OperationExpenseReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Operation Expenses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Operation", "Pieces", "Cost"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range data.Rows {
		values := []interface{}{row.OperationName, row.Pieces, row.Cost.InexactFloat64()}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	totalRow := len(data.Rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), data.TotalCost.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow+2), fmt.Sprintf("Period: %s (%s)", data.Period, data.ReferenceDate))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildSalaryWorkbook(data report.SalaryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Salaries " + data.SalaryMonth
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee", "Code", "Gross", "Advance", "Net", "Paid"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range data.Rows {
		values := []interface{}{
			row.EmployeeName, row.EmployeeCode,
			row.GrossSalary.InexactFloat64(), row.Advance.InexactFloat64(),
			row.NetSalary.InexactFloat64(), row.Paid,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	totalRow := len(data.Rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), data.TotalGross.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), data.TotalNet.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow+2),
		fmt.Sprintf("Paid: %d, Unpaid: %d", data.PaidCount, data.UnpaidCount))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
