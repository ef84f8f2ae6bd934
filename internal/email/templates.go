package email

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/config"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
        .warning { color: #d97706; }
        code { background: #e5e7eb; padding: 2px 6px; border-radius: 4px; font-family: monospace; }
    </style>
</head>
<body>
    <div class="header">
        <h1>PosiFinder</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), content, t.cfg.BaseURL, t.cfg.BaseURL)
}

// AnalysisDegraded generates the alert sent when an analysis run falls back
// to simulated data.
func (t *Templates) AnalysisDegraded(project *models.Project, run *models.AnalysisRun) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[PosiFinder] %s degraded to simulated data for %s", run.Kind, project.Domain)

	content := fmt.Sprintf(`
        <p class="warning">An analysis run could not reach the search API and finished on simulated data.</p>

        <div class="info-box">
            <p><span class="label">Project:</span> %s (<code>%s</code>)</p>
            <p><span class="label">Operation:</span> <code>%s</code></p>
            <p><span class="label">Upstream error:</span> %s</p>
            <p><span class="label">Counts:</span> %s</p>
        </div>

        <p>Dashboard numbers for this project are placeholders until a live run succeeds.</p>
    `,
		html.EscapeString(project.Name),
		html.EscapeString(project.Domain),
		html.EscapeString(run.Kind),
		html.EscapeString(run.Error),
		html.EscapeString(formatCounts(run.Counts)),
	)

	htmlBody = t.baseHTML(subject, content)
	textBody = fmt.Sprintf(
		"Analysis run %s for %s (%s) degraded to simulated data.\nUpstream error: %s\nCounts: %s\n",
		run.Kind, project.Name, project.Domain, run.Error, formatCounts(run.Counts),
	)
	return subject, htmlBody, textBody
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ", ")
}
