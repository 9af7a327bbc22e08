package fiber

import (
	"mime"

	"github.com/fwojciec/coverletter"
	"github.com/gofiber/fiber/v2"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type scrapeRequest struct {
	URL string `json:"url" validate:"required"`
}

type generateRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
	CompanyInfo    string `json:"companyInfo"`
	RoleTitle      string `json:"roleTitle"`
	CompanyName    string `json:"companyName"`
}

type generateResponse struct {
	Success     bool   `json:"success"`
	SessionID   string `json:"sessionId"`
	CoverLetter string `json:"coverLetter"`
	Bullets     string `json:"bullets"`
}

type companyResponse struct {
	*coverletter.CompanyCrawlResult
	Summary string `json:"summary,omitempty"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "message": "Cover Letter Generator is running"})
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	configured := s.cfg.Generation != nil
	message := "API key not configured on server"
	if configured {
		message = "Ready to generate"
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"apiConfigured": configured,
		"message":       message,
	})
}

func (s *Server) handleResume(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    s.cfg.Profile,
		"text":    s.cfg.Profile.Text(),
	})
}

func (s *Server) handleScrapeJob(c *fiber.Ctx) error {
	var req scrapeRequest
	if err := s.parse(c, &req); err != nil {
		return writeError(c, err)
	}
	return c.JSON(s.cfg.JobScraper.Scrape(c.UserContext(), req.URL))
}

func (s *Server) handleScrapeCompany(c *fiber.Ctx) error {
	var req scrapeRequest
	if err := s.parse(c, &req); err != nil {
		return writeError(c, err)
	}

	result := s.cfg.CompanyCrawler.Crawl(c.UserContext(), req.URL)
	resp := companyResponse{CompanyCrawlResult: result}
	if result.Success {
		resp.Summary = coverletter.SummarizeCompany(result.Data)
	}
	return c.JSON(resp)
}

func (s *Server) handleGenerate(c *fiber.Ctx) error {
	if s.cfg.Generation == nil {
		return writeError(c, coverletter.Errorf(coverletter.EINTERNAL,
			"Server API key not configured. Please set GEMINI_API_KEY or ANTHROPIC_API_KEY environment variable."))
	}

	var req generateRequest
	if err := s.parse(c, &req); err != nil {
		return writeError(c, err)
	}

	session, err := s.cfg.Generation.Generate(c.UserContext(), &coverletter.GenerateRequest{
		ResumeText:  s.cfg.Profile.Text(),
		JobText:     req.JobDescription,
		CompanyText: req.CompanyInfo,
		RoleTitle:   req.RoleTitle,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(generateResponse{
		Success:     true,
		SessionID:   session.ID,
		CoverLetter: session.CoverLetter,
		Bullets:     session.Bullets,
	})
}

func (s *Server) handleDownloadCoverLetter(c *fiber.Ctx) error {
	session, err := s.cfg.Sessions.Get(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return writeError(c, err)
	}

	name := s.cfg.Profile.Name
	data, err := s.cfg.Renderer.RenderCoverLetter(session.CoverLetter, name, session.RoleTitle, session.CompanyName)
	if err != nil {
		return writeError(c, coverletter.Errorf(coverletter.EINTERNAL, "Failed to generate document"))
	}
	return sendDocx(c, coverletter.CoverLetterFilename(session.CompanyName, name), data)
}

func (s *Server) handleDownloadBullets(c *fiber.Ctx) error {
	session, err := s.cfg.Sessions.Get(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return writeError(c, err)
	}

	data, err := s.cfg.Renderer.RenderBullets(session.Bullets, session.RoleTitle, session.CompanyName)
	if err != nil {
		return writeError(c, coverletter.Errorf(coverletter.EINTERNAL, "Failed to generate document"))
	}
	return sendDocx(c, coverletter.BulletsFilename(session.CompanyName, s.cfg.Profile.Name), data)
}

// parse decodes the JSON body into req and validates it.
func (s *Server) parse(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return coverletter.Errorf(coverletter.EINVALID, "Invalid request payload")
	}
	return s.validateRequest(req)
}

func sendDocx(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, docxContentType)
	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	return c.Send(data)
}
