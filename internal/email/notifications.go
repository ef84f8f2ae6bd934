package email

import (
	"strings"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/config"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// Notifier sends email alerts for analysis events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// NotifyAnalysisDegraded alerts the configured recipients that an analysis
// run fell back to simulated data.
func (n *Notifier) NotifyAnalysisDegraded(project *models.Project, run *models.AnalysisRun) {
	if !n.service.IsEnabled() {
		return
	}

	recipients := splitRecipients(n.cfg.AlertRecipients)
	if len(recipients) == 0 {
		return
	}

	subject, htmlBody, textBody := n.templates.AnalysisDegraded(project, run)
	n.service.SendAsync(recipients, subject, htmlBody, textBody)
}

func splitRecipients(raw string) []string {
	var recipients []string
	for _, addr := range strings.Split(raw, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}
