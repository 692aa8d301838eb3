package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"wordrush/internal/models"
)

// ReportService emails parents a progress summary via Amazon SES
type ReportService struct {
	client    *sesv2.Client
	fromEmail string
	toEmail   string
	enabled   bool
	debug     bool
}

// NewReportService creates a new report service. When no sender address is
// configured the service is disabled and report requests become no-ops.
func NewReportService(awsRegion, fromEmail, toEmail string, debug bool) (*ReportService, error) {
	if fromEmail == "" || toEmail == "" {
		log.Println("Report service disabled: REPORT_FROM_EMAIL or REPORT_TO_EMAIL not configured")
		return &ReportService{enabled: false, debug: debug}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Report service enabled: from=%s, region=%s", fromEmail, awsRegion)
	return &ReportService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		toEmail:   toEmail,
		enabled:   true,
		debug:     debug,
	}, nil
}

// IsEnabled returns whether the report service is enabled
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport emails a summary of every profile's progress
func (s *ReportService) SendProgressReport(ctx context.Context, profiles []*models.Profile) error {
	if !s.enabled {
		log.Println("Skipping progress report (service disabled)")
		return nil
	}

	subject := "WordRush Progress Report"
	textBody := buildReportText(profiles)
	htmlBody := buildReportHTML(profiles)

	if s.debug {
		log.Printf("[DEBUG] Sending progress report: to=%s, %d profiles", s.toEmail, len(profiles))
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{s.toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send progress report: %w", err)
	}

	log.Printf("Progress report sent to %s", s.toEmail)
	return nil
}

func buildReportText(profiles []*models.Profile) string {
	var b strings.Builder
	b.WriteString("WordRush progress report\n\n")
	for _, p := range profiles {
		fmt.Fprintf(&b, "%s (age %d)\n", p.Name, p.Age)
		fmt.Fprintf(&b, "  Coins: %d\n", p.Coins)
		fmt.Fprintf(&b, "  Activities completed: %d\n", len(p.ActivityHistory))
		fmt.Fprintf(&b, "  Current word set: %d (mastered %d)\n", p.CurrentWordSet, len(p.CompletedWordSets))
		fmt.Fprintf(&b, "  Badges: %d\n", len(p.UnlockedBadges))
		fmt.Fprintf(&b, "  Streak: %d day(s)\n\n", p.StreakDays)
	}
	return b.String()
}

func buildReportHTML(profiles []*models.Profile) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
<h1>WordRush Progress Report</h1>
`)
	for _, p := range profiles {
		fmt.Fprintf(&b, "<h2>%s (age %d)</h2>\n<ul>\n", p.Name, p.Age)
		fmt.Fprintf(&b, "<li>Coins: %d</li>\n", p.Coins)
		fmt.Fprintf(&b, "<li>Activities completed: %d</li>\n", len(p.ActivityHistory))
		fmt.Fprintf(&b, "<li>Current word set: %d (mastered %d)</li>\n", p.CurrentWordSet, len(p.CompletedWordSets))
		fmt.Fprintf(&b, "<li>Badges: %d</li>\n", len(p.UnlockedBadges))
		fmt.Fprintf(&b, "<li>Streak: %d day(s)</li>\n", p.StreakDays)
		b.WriteString("</ul>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
