package delivery

import (
	"fmt"
	"strings"
)

// Performance bands for the inlined score badge. Six bands, distinct from
// the four gamification tiers.
func performanceLevel(score int) string {
	switch {
	case score >= 90:
		return "Exceptional"
	case score >= 80:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 40:
		return "Below Average"
	default:
		return "Needs Attention"
	}
}

const emailStyles = `body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    line-height: 1.6;
    color: #333;
    max-width: 800px;
    margin: 0 auto;
    padding: 20px;
    background-color: #f8f9fa;
}
.container {
    background: white;
    border-radius: 12px;
    box-shadow: 0 4px 6px rgba(0,0,0,0.1);
    overflow: hidden;
}
.header {
    background: linear-gradient(135deg, #000 0%, #006400 100%);
    color: white;
    text-align: center;
    padding: 40px 20px;
}
.logo {
    font-size: 36px;
    font-weight: bold;
    margin-bottom: 10px;
    letter-spacing: 2px;
}
.score-section {
    background: linear-gradient(135deg, #f8f9fa 0%, #e9ecef 100%);
    padding: 40px;
    text-align: center;
    border-bottom: 3px solid #006400;
}
.score {
    font-size: 64px;
    font-weight: bold;
    color: #006400;
    margin-bottom: 10px;
    text-shadow: 2px 2px 4px rgba(0,0,0,0.1);
}
.performance-level {
    font-size: 24px;
    font-weight: 600;
    color: #495057;
    margin-bottom: 10px;
}
.content {
    padding: 40px;
    white-space: pre-line;
    font-size: 16px;
}
.footer {
    background: #006400;
    color: white;
    text-align: center;
    padding: 30px;
    font-size: 14px;
}
.footer-logo {
    font-size: 24px;
    font-weight: bold;
    margin-bottom: 15px;
    letter-spacing: 1px;
}
strong {
    color: #006400;
}`

// renderEmailHTML wraps the report text in the branded email shell with
// the score badge and performance label inlined.
func renderEmailHTML(name, content string, score int) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Your NBLK Diagnostic Report</title>\n<style>\n")
	b.WriteString(emailStyles)
	b.WriteString("\n</style>\n</head>\n<body>\n<div class=\"container\">\n")

	b.WriteString("<div class=\"header\">\n<div class=\"logo\">nblk</div>\n")
	b.WriteString("<h2 style=\"margin: 0; font-weight: 300;\">Business Diagnostic Report</h2>\n")
	b.WriteString("<p style=\"margin: 10px 0 0 0; opacity: 0.9;\">Small Business Solutions by NBLK</p>\n</div>\n")

	fmt.Fprintf(&b, "<div class=\"score-section\">\n<div class=\"score\">%d<span style=\"font-size: 32px; color: #666;\">/100</span></div>\n", score)
	fmt.Fprintf(&b, "<div class=\"performance-level\">%s Performance</div>\n", performanceLevel(score))
	fmt.Fprintf(&b, "<p style=\"margin: 15px 0 0 0; color: #666; font-size: 16px;\">Prepared for %s</p>\n</div>\n", name)

	fmt.Fprintf(&b, "<div class=\"content\">\n%s\n</div>\n", htmlizeReport(content))

	b.WriteString("<div class=\"footer\">\n<div class=\"footer-logo\">NBLK CONSULTING</div>\n")
	b.WriteString("<p style=\"margin: 10px 0;\">442 5th Avenue, #2304, New York, NY 10018</p>\n")
	b.WriteString("<p style=\"margin: 10px 0;\">Email: awashington@nblkconsulting.com | Phone: (212) 598-3030</p>\n")
	b.WriteString("<p style=\"margin: 20px 0 0 0; font-style: italic; opacity: 0.8;\">Small Business Solutions by NBLK</p>\n</div>\n")

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

// htmlizeReport converts the report's markdown-ish bold markers to
// <strong> and newlines to <br>.
func htmlizeReport(content string) string {
	var b strings.Builder
	rest := content
	open := false
	for {
		idx := strings.Index(rest, "**")
		if idx < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:idx])
		if open {
			b.WriteString("</strong>")
		} else {
			b.WriteString("<strong>")
		}
		open = !open
		rest = rest[idx+2:]
	}
	return strings.ReplaceAll(b.String(), "\n", "<br>")
}
