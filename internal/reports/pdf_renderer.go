package reports

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
)

// renderPDF lays the report out as a paginated document: headline summary,
// method and status distribution tables, a top-IP bar chart, and endpoint
// plus time-series tables.
func renderPDF(report *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, report.ReportName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s (%s)",
		report.Period.StartDate, report.Period.EndDate, report.Period.Granularity), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSummary(pdf, report)
	writeMethodUsage(pdf, report)
	writeStatusCodes(pdf, report)
	writeTopIPs(pdf, report)
	writeEndpointStats(pdf, report)
	writeTimeSeries(pdf, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func writeSummary(pdf *fpdf.Fpdf, report *Report) {
	sectionTitle(pdf, "Summary")
	s := report.Dashboard.Summary

	lines := []string{
		fmt.Sprintf("Total requests: %d", s.TotalRequests),
		fmt.Sprintf("Unique IPs: %d", s.UniqueIPs),
		fmt.Sprintf("Error rate: %.2f%%", s.ErrorRate),
	}
	if s.MinResponseTime != nil && s.AvgResponseTime != nil && s.MaxResponseTime != nil {
		lines = append(lines, fmt.Sprintf("Response time (ms): min %.2f / avg %.2f / max %.2f",
			*s.MinResponseTime, *s.AvgResponseTime, *s.MaxResponseTime))
	}
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeMethodUsage(pdf *fpdf.Fpdf, report *Report) {
	sectionTitle(pdf, "Requests by method")

	methods := make([]string, 0, len(report.Dashboard.MethodUsage))
	for method := range report.Dashboard.MethodUsage {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	for _, method := range methods {
		pdf.CellFormat(40, 6, method, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", report.Dashboard.MethodUsage[method]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func writeStatusCodes(pdf *fpdf.Fpdf, report *Report) {
	sectionTitle(pdf, "Requests by status code")

	statuses := make([]int, 0, len(report.Dashboard.StatusCodes))
	for status := range report.Dashboard.StatusCodes {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)

	for _, status := range statuses {
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", report.Dashboard.StatusCodes[status]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

// writeTopIPs renders the ranking as horizontal bars scaled to the busiest IP.
func writeTopIPs(pdf *fpdf.Fpdf, report *Report) {
	sectionTitle(pdf, "Top IPs")

	var maxRequests int64
	for _, entry := range report.Dashboard.TopIPs {
		if entry.Requests > maxRequests {
			maxRequests = entry.Requests
		}
	}

	const barMaxWidth = 100.0
	pdf.SetFillColor(66, 133, 244)
	for _, entry := range report.Dashboard.TopIPs {
		pdf.CellFormat(60, 6, entry.IP, "", 0, "L", false, 0, "")
		width := barMaxWidth * float64(entry.Requests) / float64(maxRequests)
		x, y := pdf.GetXY()
		pdf.Rect(x, y+1, width, 4, "F")
		pdf.SetXY(x+width+2, y)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d", entry.Requests), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeEndpointStats(pdf *fpdf.Fpdf, report *Report) {
	sectionTitle(pdf, "Top endpoints")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 6, "Endpoint", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Requests", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Avg ms", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Errors", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	for _, entry := range report.Dashboard.EndpointStats {
		pdf.CellFormat(80, 6, entry.Endpoint, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", entry.Requests), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", entry.AvgTime), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", entry.ErrorsCount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func writeTimeSeries(pdf *fpdf.Fpdf, report *Report) {
	sectionTitle(pdf, "Time series")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 6, "Bucket", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Requests", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Avg ms", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "Error rate %", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	for _, entry := range report.Dashboard.TimeSeries {
		pdf.CellFormat(50, 6, entry.Timestamp, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", entry.Requests), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", entry.AvgTime), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", entry.ErrorRate), "1", 1, "R", false, 0, "")
	}
}
