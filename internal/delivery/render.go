// Package delivery renders the user-facing report and ships it: HTML
// rendering, PDF export through a headless browser, and email dispatch.
// Delivery failures are soft: they are logged by the caller and never fail
// the session.
package delivery

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/personality-quiz/internal/types"
)

// reportTemplate lays out the report the way the results page does: header,
// personality type, strengths, careers, books, courses, summary.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Your Personality Profile</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #222; }
h1 { text-align: center; }
.subtitle { text-align: center; font-size: 14px; margin-bottom: 30px; }
.personality-type { text-align: center; font-size: 22px; font-weight: bold; }
.description { text-align: center; margin: 20px 60px; }
section { margin-top: 30px; }
h2 { font-size: 16px; }
.item { margin: 10px 0; }
.item .why { color: #555; font-size: 13px; }
.summary { margin-top: 30px; font-style: italic; }
</style>
</head>
<body>
<h1>Your Personality Profile</h1>
<p class="subtitle">For {{.Name}}</p>
<p class="personality-type">{{.Analysis.PersonalityType}}</p>
<p class="description">{{.Analysis.Description}}</p>
<section id="strengths">
<h2>Your Strengths</h2>
<ul>
{{range .Analysis.Strengths}}<li>{{.}}</li>
{{end}}</ul>
</section>
<section id="careers">
<h2>Career Paths For You</h2>
{{range .Analysis.CareerPaths}}<div class="item"><strong>{{.Title}}</strong> &mdash; {{.Description}}<div class="why">{{.WhyGoodFit}}</div></div>
{{end}}</section>
<section id="books">
<h2>Books To Read</h2>
{{range .Analysis.BookRecommendations}}<div class="item"><strong>{{.Title}}</strong> by {{.Author}}<div class="why">{{.Reason}}</div></div>
{{end}}</section>
<section id="courses">
<h2>Courses To Take</h2>
{{range .Analysis.CourseRecommendations}}<div class="item"><strong>{{.Title}}</strong> ({{.Platform}}, {{.Level}}) &mdash; {{.Description}}</div>
{{end}}</section>
<p class="summary">{{.Analysis.Summary}}</p>
</body>
</html>
`))

// RenderReport renders the analysis into a self-contained HTML document.
func RenderReport(analysis *types.PersonalityAnalysis, profile types.UserProfile) (string, error) {
	var sb strings.Builder
	data := struct {
		Name     string
		Analysis *types.PersonalityAnalysis
	}{
		Name:     profile.Name,
		Analysis: analysis,
	}
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return sb.String(), nil
}
