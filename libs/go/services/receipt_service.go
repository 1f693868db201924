package services

import (
	"context"
	"fmt"

	"github.com/wkcda/crm-gateway/libs/go/logger"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ReceiptService sends donation acknowledgment emails through Resend.
type ReceiptService struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

// NewReceiptService creates a receipt sender. An empty apiKey returns a
// disabled sender that logs instead of sending, so local and test
// stages run without email credentials.
func NewReceiptService(apiKey, fromAddress string) *ReceiptService {
	s := &ReceiptService{
		from:   fromAddress,
		logger: logger.Log,
	}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

// SendDonationReceipt emails a donation acknowledgment to the donor.
func (s *ReceiptService) SendDonationReceipt(ctx context.Context, toEmail, donorName, campaignName string, amount float64) error {
	if s.client == nil {
		s.logger.Info("Receipt sending disabled, skipping",
			zap.String("to", toEmail),
			zap.String("campaign", campaignName))
		return nil
	}

	greeting := "Dear Supporter"
	if donorName != "" {
		greeting = "Dear " + donorName
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Thank you for your donation to %s", campaignName),
		Html: fmt.Sprintf(
			"<p>%s,</p><p>Thank you for your generous donation of HK$%.2f to %s.</p><p>This email serves as your donation acknowledgment.</p>",
			greeting, amount, campaignName),
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("send donation receipt: %w", err)
	}

	s.logger.Info("Donation receipt sent",
		zap.String("to", toEmail),
		zap.String("email_id", sent.Id))
	return nil
}
