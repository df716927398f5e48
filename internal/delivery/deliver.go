package delivery

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/jonathan/personality-quiz/internal/types"
)

// Reporter turns a finished analysis into an emailed PDF report. It renders
// the HTML report, prints it to PDF, and hands the encoded document to the
// email sender.
type Reporter struct {
	sender     *Sender
	pdfTimeout time.Duration
}

// NewReporter creates a reporter backed by the given sender.
func NewReporter(sender *Sender) *Reporter {
	return &Reporter{
		sender:     sender,
		pdfTimeout: DefaultPDFTimeout,
	}
}

// Deliver renders, exports, and emails the report.
func (r *Reporter) Deliver(ctx context.Context, profile types.UserProfile, analysis *types.PersonalityAnalysis) error {
	html, err := RenderReport(analysis, profile)
	if err != nil {
		return &DeliveryError{Stage: "render", Cause: err}
	}

	pdf, err := ExportPDF(ctx, html, r.pdfTimeout)
	if err != nil {
		return &DeliveryError{Stage: "export", Cause: err}
	}

	return r.sender.SendReport(ctx, profile, analysis, base64.StdEncoding.EncodeToString(pdf))
}
