package services

import (
	"bytes"
	"fmt"
	"strings"

	"tourops/internal/domain/models"
	"tourops/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// VoucherService renders a printable booking voucher for the customer.
type VoucherService struct {
	RequestID string
}

// GenerateVoucher returns the PDF bytes plus a suggested filename.
func (s VoucherService) GenerateVoucher(b models.Booking, tourTitle string) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "voucher", "generate", fmt.Sprintf("booking_id=%d", b.ID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ref    : TOUR-%d", b.ID),
		fmt.Sprintf("Tour           : %s", orDash(tourTitle)),
		fmt.Sprintf("Customer       : %s", orDash(b.CustomerName)),
		fmt.Sprintf("Phone          : %s", orDash(b.CustomerPhone)),
		fmt.Sprintf("Travel date    : %s", orDash(b.TravelDate)),
		fmt.Sprintf("Party size     : %d", b.NumberOfPeople),
		fmt.Sprintf("Total          : %s", b.TotalPrice.StringFixed(2)),
		fmt.Sprintf("Status         : %s / %s", b.Status, b.PaymentStatus),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(b.SpecialRequests) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Special requests: "+b.SpecialRequests, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher at departure. Prices include all listed services.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("VOUCHER_%d.pdf", b.ID), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
