package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/sethrock/AppointmentManager/models"
)

// GetAppointmentSummaryPDF handles GET /api/appointments/:id/summary.pdf
// and renders a printable one-page summary sheet.
func (ac *AppointmentController) GetAppointmentSummaryPDF(c *gin.Context) {
	id := c.Param("id")

	a, err := ac.lookup(c.Request.Context(), id)
	if err != nil {
		ac.renderReadError(c, err)
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Appointment not found"})
		return
	}

	pdfBytes, err := generateSummaryPDF(*a)
	if err != nil {
		ac.log.Error().Err(err).Str("appointment_id", id).Msg("pdf generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to generate PDF summary"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=appointment-%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func generateSummaryPDF(a models.Appointment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(46, 45, 86)
	pdf.CellFormat(0, 10, "Appointment Summary", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Reference: %s", a.ID), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Client", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Name", a.ClientName, true)
	addDetail(pdf, "Phone", a.ClientPhone, false)
	addDetail(pdf, "Email", a.ClientEmail, false)

	pdf.CellFormat(0, 10, "Schedule", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Set By", a.SetBy, false)
	addDetail(pdf, "Provider", a.Provider, false)
	addDetail(pdf, "Call Type", a.CallType, false)
	addDetail(pdf, "Start", fmt.Sprintf("%s %s", a.StartDate, a.StartTime), false)
	addDetail(pdf, "End", fmt.Sprintf("%s %s", a.EndDate, a.EndTime), false)
	if a.CallType == "Out Call" {
		addDetail(pdf, "Address", fmt.Sprintf("%s, %s, %s %s", a.StreetAddress, a.City, a.State, a.ZipCode), false)
	}
	addDetail(pdf, "Status", a.DispositionStatus, true)

	pdf.CellFormat(0, 10, "Financials", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Gross Revenue", money(a.GrossRevenue), false)
	addDetail(pdf, "Deposit", money(a.DepositAmount), false)
	addDetail(pdf, "Deposit Via", a.DepositReceivedBy, false)
	addDetail(pdf, "Due To Provider", money(a.DueToProvider), false)
	if a.DispositionStatus == models.StatusComplete {
		pdf.SetFont("Arial", "B", 13)
		addDetail(pdf, "Total Collected", money(a.TotalCollected), true)
	}

	if a.ClientNotes != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, "Notes: "+a.ClientNotes, "", "L", false)
	}

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 10, "This is a computer generated summary", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}

func money(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
