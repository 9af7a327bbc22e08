package generate

import (
	"strings"
	"text/template"

	"github.com/fwojciec/coverletter"
)

// Placeholders substituted for empty prompt inputs.
const (
	NotSpecified     = "Not specified"
	NoCompanyContext = "No additional company information available."
	UnknownCompany   = "Unknown"
)

const styleRules = `CRITICAL WRITING STYLE REQUIREMENTS (MUST FOLLOW):

1. NEVER use em dashes. Use commas, periods, or parentheses instead.
2. Keep sentences SHORT. Average 15-20 words maximum per sentence.
3. Use ACTIVE voice. Be direct. First person is encouraged.
4. AVOID these telltale words and phrases:
   - "delve", "leverage", "spearhead", "synergy", "utilize"
   - "passionate about", "excited to", "thrilled"
   - "cutting-edge", "innovative" (overused)
   - "I believe", "I feel" (be direct instead)
5. Sound CONFIDENT but APPROACHABLE. Not arrogant, not humble-bragging.
6. Use industry-specific biotech/pharma terminology naturally.
7. Write like a senior professional, not a fresh graduate.
8. No fluff. Every sentence must add value.
9. Use specific metrics and results where possible.
10. Vary sentence structure. Mix short punchy sentences with medium ones.`

var coverLetterTmpl = template.Must(template.New("cover-letter").Parse(`You are a senior biotech/pharma professional with excellent writing skills. You write in a confident, direct, and approachable manner. Your writing sounds unmistakably human.

` + styleRules + `

COVER LETTER STRUCTURE (approximately 400 words total):

PARAGRAPH 1 - Hook (3-4 sentences):
- Open with something specific about the company (from the research provided)
- Connect to the role naturally
- State your interest clearly without being generic

PARAGRAPH 2 - Relevant Experience (4-5 sentences):
- Highlight 2-3 experiences directly relevant to the job requirements
- Use specific metrics and outcomes
- Show understanding of what the role actually requires

PARAGRAPH 3 - Value Proposition (3-4 sentences):
- What unique perspective or skill do you bring?
- Connect your background to company goals
- Show you understand the industry challenges

PARAGRAPH 4 - Close (2-3 sentences):
- Clear call to action
- Express genuine interest
- Keep it professional, not desperate

IMPORTANT:
- Personalize heavily to the specific company and role
- Reference specific company products, mission, or recent developments
- Mirror key terminology from the job description naturally
- Do NOT use generic phrases like "I am writing to apply for..."

---

CANDIDATE'S RESUME:
{{.ResumeText}}

---

JOB DESCRIPTION:
Role: {{.RoleTitle}}
Company: {{.CompanyName}}

{{.JobText}}

---

COMPANY RESEARCH:
{{.CompanyText}}

---

Generate a professional cover letter following all the requirements above. The letter should feel personal and specific to this exact opportunity, not generic.

Output ONLY the cover letter text. No headers, no "Dear Hiring Manager," alternatives, no signature block. Start directly with the opening paragraph. End with a professional closing sentiment.`))

var bulletsTmpl = template.Must(template.New("bullets").Parse(`You are an ATS optimization expert and senior biotech/pharma hiring manager. You understand what makes bullet points stand out in applicant tracking systems while still reading naturally to human recruiters.

` + styleRules + `

BULLET POINT REQUIREMENTS:

1. FORMAT: Start with a strong action verb. Include metrics where possible.
2. LENGTH: Each bullet should be 1-2 lines (15-25 words).
3. ATS OPTIMIZATION: Naturally incorporate keywords from the job description.
4. RELEVANCE: Focus on skills and experiences most relevant to this specific role.
5. IMPACT: Show results, not just responsibilities.

GOOD EXAMPLE:
"Reduced validation cycle time by 30% through test optimization framework, maintaining full ISO 14971 compliance."

BAD EXAMPLE:
"Responsible for validation testing and ensuring compliance with various regulatory standards."

---

CANDIDATE'S CURRENT RESUME:
{{.ResumeText}}

---

TARGET JOB DESCRIPTION:
Role: {{.RoleTitle}}
Company: {{.CompanyName}}

{{.JobText}}

---

Generate 6-8 ATS-optimized resume bullet points that the candidate can use to tailor their resume for this specific role.

CRITICAL: Base each bullet on the candidate's ACTUAL experiences shown in their resume. Do not invent new experiences.

Format your response as a simple list:
• [Bullet 1]
• [Bullet 2]
• [Bullet 3]
...etc

Output ONLY the bullet points. No explanations, no categories, no headers.`))

var companyAnalysisTmpl = template.Must(template.New("company-analysis").Parse(`Analyze this company information and extract key points useful for a job application cover letter.

Company: {{.CompanyName}}

Scraped Website Content:
{{.CompanyText}}

---

Provide a brief summary (5-7 sentences) covering:
1. What the company does (therapeutic area, technology platform)
2. Their mission or values
3. Key products or pipeline
4. Recent developments or focus areas
5. Company culture indicators

Be specific. Use information from the scraped content only. Do not make up facts.`))

// CoverLetterPrompt builds the cover letter prompt for req.
func CoverLetterPrompt(req *coverletter.GenerateRequest) (string, error) {
	return render(coverLetterTmpl, withPlaceholders(req))
}

// BulletsPrompt builds the resume bullets prompt for req.
// Company research is not part of this prompt.
func BulletsPrompt(req *coverletter.GenerateRequest) (string, error) {
	return render(bulletsTmpl, withPlaceholders(req))
}

// CompanyAnalysisPrompt builds a prompt asking for a short summary of
// scraped company content.
func CompanyAnalysisPrompt(companyText, companyName string) (string, error) {
	return render(companyAnalysisTmpl, coverletter.GenerateRequest{
		CompanyText: companyText,
		CompanyName: orPlaceholder(companyName, UnknownCompany),
	})
}

func withPlaceholders(req *coverletter.GenerateRequest) coverletter.GenerateRequest {
	r := *req
	r.RoleTitle = orPlaceholder(r.RoleTitle, NotSpecified)
	r.CompanyName = orPlaceholder(r.CompanyName, NotSpecified)
	r.CompanyText = orPlaceholder(r.CompanyText, NoCompanyContext)
	return r
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", coverletter.Errorf(coverletter.EINTERNAL, "render %s prompt: %v", t.Name(), err)
	}
	return b.String(), nil
}
