// Package report renders an analysis result as a paginated PDF document.
// Section content and ordering are fixed: title page, table of contents,
// executive summary, contract overview, detailed risk analysis, compliance
// analysis, negotiation strategy, strategic recommendations, technical
// details.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/clausecheck/clausecheck/internal/analyzer"
)

// Metadata identifies the analysis a report was generated from.
type Metadata struct {
	AnalysisID string
	Filename   string
	Timestamp  time.Time
}

// Generator renders analysis results as PDF reports.
type Generator struct {
	title    string
	subtitle string
}

func NewGenerator(title, subtitle string) *Generator {
	return &Generator{title: title, subtitle: subtitle}
}

// Generate renders the full report and returns the PDF bytes.
func (g *Generator) Generate(result analyzer.Result, meta Metadata) ([]byte, error) {
	doc := &document{pdf: gofpdf.New("P", "mm", "A4", "")}
	doc.pdf.SetMargins(18, 18, 18)
	doc.pdf.SetAutoPageBreak(true, 20)

	g.titlePage(doc, result, meta)
	g.tableOfContents(doc)
	g.executiveSummary(doc, result)
	g.contractOverview(doc, result, meta)
	g.detailedRiskAnalysis(doc, result)
	g.complianceAnalysis(doc, result)
	g.negotiationStrategy(doc, result)
	g.recommendations(doc, result)
	g.technicalDetails(doc, result, meta)

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// document wraps the pdf handle with small layout helpers shared by the
// section builders.
type document struct {
	pdf *gofpdf.Fpdf
}

func (d *document) sectionHeader(title string) {
	d.pdf.SetFillColor(219, 234, 254)
	d.pdf.SetTextColor(20, 50, 120)
	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.CellFormat(0, 11, title, "1", 1, "L", true, 0, "")
	d.pdf.Ln(4)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *document) subHeader(title string) {
	d.pdf.SetTextColor(20, 50, 120)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	d.pdf.Ln(1)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *document) paragraph(text string) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.MultiCell(0, 5.5, text, "", "L", false)
	d.pdf.Ln(2)
}

func (d *document) warning(text string) {
	d.pdf.SetTextColor(190, 30, 30)
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.MultiCell(0, 5.5, text, "", "L", false)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(1)
}

func (d *document) success(text string) {
	d.pdf.SetTextColor(30, 140, 60)
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.MultiCell(0, 5.5, text, "", "L", false)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(1)
}

// labelValueTable renders two-column rows with a shaded label column.
func (d *document) labelValueTable(rows [][2]string) {
	for _, row := range rows {
		d.pdf.SetFont("Helvetica", "B", 11)
		d.pdf.SetFillColor(235, 235, 235)
		d.pdf.CellFormat(60, 9, row[0], "1", 0, "L", true, 0, "")
		d.pdf.SetFont("Helvetica", "", 11)
		d.pdf.CellFormat(0, 9, row[1], "1", 1, "L", false, 0, "")
	}
}

func riskColor(level string) (int, int, int) {
	switch level {
	case "CRITICAL":
		return 200, 30, 30
	case "HIGH":
		return 230, 120, 20
	case "MEDIUM":
		return 200, 170, 20
	case "LOW":
		return 30, 140, 60
	case "MINIMAL":
		return 30, 90, 190
	default:
		return 0, 0, 0
	}
}

func (g *Generator) titlePage(d *document, result analyzer.Result, meta Metadata) {
	d.pdf.AddPage()
	d.pdf.Ln(20)

	d.pdf.SetTextColor(20, 50, 120)
	d.pdf.SetFont("Helvetica", "B", 24)
	d.pdf.MultiCell(0, 11, g.title, "", "C", false)
	d.pdf.Ln(4)

	d.pdf.SetTextColor(110, 110, 110)
	d.pdf.SetFont("Helvetica", "", 13)
	d.pdf.MultiCell(0, 7, g.subtitle, "", "C", false)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(14)

	d.labelValueTable([][2]string{
		{"Document Analyzed:", meta.Filename},
		{"Analysis Date:", meta.Timestamp.Format("January 2, 2006 at 3:04 PM")},
		{"Analysis ID:", meta.AnalysisID},
		{"Risk Level:", result.RiskLevel},
		{"Risk Score:", fmt.Sprintf("%d/%d", result.RiskScore, analyzer.ScoreDenominator)},
		{"Total Risks Found:", fmt.Sprintf("%d", len(result.Risks))},
		{"Compliance Issues:", fmt.Sprintf("%d", len(result.Compliance))},
	})
	d.pdf.Ln(12)

	r, gg, b := riskColor(result.RiskLevel)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(58, 7, "Overall Risk Assessment:", "", 0, "L", false, 0, "")
	d.pdf.SetTextColor(r, gg, b)
	d.pdf.CellFormat(0, 7, result.RiskLevel, "", 1, "L", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont("Helvetica", "I", 11)
	d.pdf.MultiCell(0, 6, riskDescription(result.RiskLevel), "", "L", false)
}

var tocItems = []string{
	"Executive Summary",
	"Contract Overview",
	"Detailed Risk Analysis",
	"Compliance Analysis",
	"Negotiation Strategy",
	"Recommendations",
	"Technical Details",
}

func (g *Generator) tableOfContents(d *document) {
	d.pdf.AddPage()
	d.sectionHeader("Table of Contents")
	d.pdf.SetFont("Helvetica", "", 12)
	for i, item := range tocItems {
		d.pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s", i+1, item), "", 1, "L", false, 0, "")
	}
}

func (g *Generator) executiveSummary(d *document, result analyzer.Result) {
	d.pdf.AddPage()
	d.sectionHeader("Executive Summary")

	d.paragraph(fmt.Sprintf(
		"This comprehensive contract analysis reveals a %s risk profile with a risk score of %d/%d. "+
			"The analysis identified %d risk factors and %d compliance considerations.",
		result.RiskLevel, result.RiskScore, analyzer.ScoreDenominator,
		len(result.Risks), len(result.Compliance)))

	d.subHeader("Key Findings")

	high, medium, low := severityCounts(result.Risks)
	d.findingsTable([][4]string{
		{"Risk Category", "Count", "Priority", "Action Required"},
		{"High Risk Items", fmt.Sprintf("%d", high), "Critical", "Immediate Review"},
		{"Medium Risk Items", fmt.Sprintf("%d", medium), "Moderate", "Negotiate"},
		{"Low Risk Items", fmt.Sprintf("%d", low), "Minor", "Monitor"},
		{"Compliance Issues", fmt.Sprintf("%d", len(result.Compliance)), "Review", "Verify"},
	})
	d.pdf.Ln(5)

	d.subHeader("Top Recommendations")
	if high > 0 {
		d.warning(fmt.Sprintf("Critical: Address %d high-risk items before signing", high))
	}
	if medium > 0 {
		d.paragraph(fmt.Sprintf("Negotiate: Review %d medium-risk terms", medium))
	}
	if result.RiskScore < 10 {
		d.success("Positive: Contract appears to have reasonable terms")
	}
}

func (d *document) findingsTable(rows [][4]string) {
	widths := []float64{60, 22, 32, 60}
	rowFills := [][3]int{
		{225, 225, 225},
		{245, 160, 150},
		{250, 235, 160},
		{190, 230, 190},
		{255, 255, 255},
	}
	for i, row := range rows {
		fill := rowFills[i%len(rowFills)]
		d.pdf.SetFillColor(fill[0], fill[1], fill[2])
		if i == 0 {
			d.pdf.SetFont("Helvetica", "B", 10)
		} else {
			d.pdf.SetFont("Helvetica", "", 10)
		}
		for col, cell := range row {
			d.pdf.CellFormat(widths[col], 8, cell, "1", 0, "C", true, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func (g *Generator) contractOverview(d *document, result analyzer.Result, meta Metadata) {
	d.pdf.AddPage()
	d.sectionHeader("Contract Overview")

	d.paragraph(fmt.Sprintf("Document: %s", meta.Filename))
	d.paragraph(fmt.Sprintf("Analysis Date: %s", meta.Timestamp.Format("January 2, 2006")))
	d.paragraph(fmt.Sprintf("Risk Profile: %s (%d/%d)", result.RiskLevel, result.RiskScore, analyzer.ScoreDenominator))
	d.paragraph("Analysis Scope: Legal risk assessment, compliance review, and negotiation strategy")

	categories, counts := severityByCategory(result.Risks)
	if len(categories) == 0 {
		return
	}

	d.subHeader("Risk Distribution")
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.SetFillColor(225, 225, 225)
	widths := []float64{64, 27, 27, 27, 27}
	for col, h := range []string{"Category", "High", "Medium", "Low", "Total"} {
		d.pdf.CellFormat(widths[col], 8, h, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont("Helvetica", "", 10)
	for _, cat := range categories {
		c := counts[cat]
		d.pdf.CellFormat(widths[0], 8, cat, "1", 0, "L", false, 0, "")
		d.pdf.CellFormat(widths[1], 8, fmt.Sprintf("%d", c.high), "1", 0, "C", false, 0, "")
		d.pdf.CellFormat(widths[2], 8, fmt.Sprintf("%d", c.medium), "1", 0, "C", false, 0, "")
		d.pdf.CellFormat(widths[3], 8, fmt.Sprintf("%d", c.low), "1", 0, "C", false, 0, "")
		d.pdf.CellFormat(widths[4], 8, fmt.Sprintf("%d", c.high+c.medium+c.low), "1", 1, "C", false, 0, "")
	}
}

func (g *Generator) detailedRiskAnalysis(d *document, result analyzer.Result) {
	d.pdf.AddPage()
	d.sectionHeader("Detailed Risk Analysis")

	if len(result.Risks) == 0 {
		d.success("No significant risks detected in this contract.")
		return
	}

	categories, grouped := groupByCategory(result.Risks)
	for _, cat := range categories {
		d.subHeader(fmt.Sprintf("%s Analysis", cat))

		info, hasGuidance := negotiationGuidance[cat]
		if hasGuidance {
			d.paragraph(fmt.Sprintf("What this means: %s", info.Explanation))
		}

		for i, risk := range grouped[cat] {
			d.pdf.SetFont("Helvetica", "B", 11)
			d.pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s (%s)", i+1, risk.Category, upper(risk.Severity)), "", 1, "L", false, 0, "")
			d.pdf.SetFont("Helvetica", "", 10)
			d.pdf.MultiCell(0, 5, fmt.Sprintf("Issue: %s", risk.Description), "", "L", false)
			d.pdf.MultiCell(0, 5, fmt.Sprintf("Location: %s", risk.Clause), "", "L", false)
			d.pdf.MultiCell(0, 5, fmt.Sprintf("Current Recommendation: %s", risk.Recommendation), "", "L", false)
			d.pdf.Ln(2)

			if hasGuidance {
				if flags := detectedRedFlags(info.RedFlags, risk.Clause); len(flags) > 0 {
					d.warning("Red Flags Detected:")
					for _, f := range flags {
						d.pdf.SetFont("Helvetica", "", 10)
						d.pdf.MultiCell(0, 5, "- "+f, "", "L", false)
					}
					d.pdf.Ln(1)
				}

				d.pdf.SetFont("Helvetica", "B", 10)
				d.pdf.CellFormat(0, 5.5, "Negotiation Points:", "", 1, "L", false, 0, "")
				d.pdf.SetFont("Helvetica", "", 10)
				points := info.NegotiationPoints
				if len(points) > 3 {
					points = points[:3]
				}
				for _, p := range points {
					d.pdf.MultiCell(0, 5, "- "+p, "", "L", false)
				}
				d.paragraph(fmt.Sprintf("Market Standard: %s", info.MarketStandard))
			}
			d.pdf.Ln(3)
		}
	}
}

func (g *Generator) complianceAnalysis(d *document, result analyzer.Result) {
	d.pdf.AddPage()
	d.sectionHeader("Compliance Analysis")

	if len(result.Compliance) == 0 {
		d.success("No specific compliance issues identified.")
		return
	}

	regulations, grouped := groupByRegulation(result.Compliance)
	for _, reg := range regulations {
		d.subHeader(fmt.Sprintf("%s Compliance", reg))
		for i, comp := range grouped[reg] {
			d.pdf.SetFont("Helvetica", "B", 11)
			d.pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, comp.Description), "", "L", false)
			d.pdf.SetFont("Helvetica", "", 10)
			d.pdf.MultiCell(0, 5, fmt.Sprintf("Status: %s", upper(comp.Status)), "", "L", false)
			d.pdf.MultiCell(0, 5, fmt.Sprintf("Location: %s", comp.Clause), "", "L", false)
			d.pdf.MultiCell(0, 5, fmt.Sprintf("Action: %s", comp.Recommendation), "", "L", false)
			d.pdf.Ln(3)
		}
	}
}

func (g *Generator) negotiationStrategy(d *document, result analyzer.Result) {
	d.pdf.AddPage()
	d.sectionHeader("Negotiation Strategy")

	switch result.RiskLevel {
	case "CRITICAL", "HIGH":
		d.warning("High-Risk Contract - Aggressive Negotiation Required")
		d.paragraph("This contract contains significant risks that require immediate attention. " +
			"Consider requesting substantial modifications or walking away if terms cannot be improved.")
	case "MEDIUM":
		d.subHeader("Medium-Risk Contract - Balanced Negotiation Approach")
		d.paragraph("This contract has some concerning terms but is generally negotiable. " +
			"Focus on the highest-risk items while accepting reasonable terms on others.")
	default:
		d.success("Low-Risk Contract - Standard Negotiation")
		d.paragraph("This contract appears to have reasonable terms. Focus on minor improvements " +
			"and ensuring all terms are clearly understood.")
	}

	var highRisks, mediumRisks []analyzer.Finding
	for _, r := range result.Risks {
		switch r.Severity {
		case "high":
			highRisks = append(highRisks, r)
		case "medium":
			mediumRisks = append(mediumRisks, r)
		}
	}

	if len(highRisks) > 0 {
		d.subHeader("High Priority Negotiation Items")
		for i, r := range highRisks {
			d.warning(fmt.Sprintf("%d. %s: %s", i+1, r.Category, r.Recommendation))
		}
	}
	if len(mediumRisks) > 0 {
		d.subHeader("Medium Priority Negotiation Items")
		for i, r := range mediumRisks {
			d.paragraph(fmt.Sprintf("%d. %s: %s", i+1, r.Category, r.Recommendation))
		}
	}
}

var specificActions = []string{
	"Review all high-risk items with legal counsel",
	"Negotiate liability caps and indemnification terms",
	"Ensure payment terms are reasonable and achievable",
	"Verify compliance with applicable regulations",
	"Request clarification on ambiguous terms",
	"Consider insurance requirements for high-risk contracts",
	"Document all negotiations and changes",
}

func (g *Generator) recommendations(d *document, result analyzer.Result) {
	d.pdf.AddPage()
	d.sectionHeader("Strategic Recommendations")

	var nextSteps []string
	switch result.RiskLevel {
	case "CRITICAL", "HIGH":
		d.warning("IMMEDIATE ACTION REQUIRED")
		d.paragraph("This contract presents significant legal and financial risks. " +
			"We strongly recommend extensive negotiations or reconsideration of the agreement.")
		nextSteps = []string{
			"Schedule immediate legal review",
			"Prepare negotiation strategy",
			"Identify deal-breaker terms",
			"Consider alternative suppliers/vendors",
		}
	case "MEDIUM":
		d.subHeader("NEGOTIATION RECOMMENDED")
		d.paragraph("This contract has some concerning terms that should be addressed " +
			"before signing. Focus on the highest-risk items.")
		nextSteps = []string{
			"Prioritize high-risk items for negotiation",
			"Prepare counter-proposals",
			"Set negotiation timeline",
			"Identify acceptable compromises",
		}
	default:
		d.success("GENERALLY ACCEPTABLE")
		d.paragraph("This contract appears to have reasonable terms. " +
			"Minor negotiations may be beneficial but are not critical.")
		nextSteps = []string{
			"Review terms with stakeholders",
			"Prepare minor negotiation requests",
			"Set signing timeline",
			"Plan implementation",
		}
	}

	d.subHeader("Specific Actions")
	for i, action := range specificActions {
		d.paragraph(fmt.Sprintf("%d. %s", i+1, action))
	}

	d.subHeader("Next Steps")
	for i, step := range nextSteps {
		d.paragraph(fmt.Sprintf("%d. %s", i+1, step))
	}
}

func (g *Generator) technicalDetails(d *document, result analyzer.Result, meta Metadata) {
	d.pdf.AddPage()
	d.sectionHeader("Technical Details")

	d.labelValueTable([][2]string{
		{"Analysis ID", meta.AnalysisID},
		{"Analysis Date", meta.Timestamp.Format("2006-01-02 15:04:05")},
		{"Risk Algorithm Version", "2.0 (Enhanced)"},
		{"AI Model Used", "HuggingFace + Pattern Matching"},
		{"Confidence Level", "High"},
		{"Analysis Scope", "Legal Risk + Compliance + Negotiation Strategy"},
	})
	d.pdf.Ln(8)

	d.paragraph("Disclaimer: This analysis is provided for informational purposes only and does not constitute " +
		"legal advice. Always consult with qualified legal counsel before making decisions based on this " +
		"analysis. The analysis is based on automated review and may not capture all nuances of complex " +
		"legal documents.")
}
