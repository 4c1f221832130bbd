package server

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	errx "github.com/loanassist-poc/server/internal/core/error"
	"github.com/loanassist-poc/server/internal/loan/model"
	logx "github.com/loanassist-poc/server/pkg/logger"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "loan-assistant",
		"status":  "running",
		"endpoints": gin.H{
			"chat":     "/api/chat (POST)",
			"health":   "/api/health",
			"download": "/api/download/{filename}",
			"mock":     "/api/mock/",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "loan-assistant"})
}

func (s *Server) handleChat(c *gin.Context) {
	var req model.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	resp := s.orch.Turn(c.Request.Context(), req)
	if resp.Metadata == nil {
		resp.Metadata = map[string]any{}
	}
	resp.Metadata["session_id"] = req.SessionID

	c.JSON(http.StatusOK, resp)
}

type salarySlipRequest struct {
	SessionID string  `json:"session_id" binding:"required"`
	Salary    float64 `json:"salary" binding:"required"`
}

// handleSalarySlipUpload is the explicit document-verification step: it is
// the only writer of the salary-slip flags on a session.
func (s *Server) handleSalarySlipUpload(c *gin.Context) {
	var req salarySlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Salary < s.cfg.Policy.MinVerifiedSalary {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Salary slip verification failed - minimum salary requirement not met",
		})
		return
	}

	ctx := c.Request.Context()
	state, err := s.sessions.Load(ctx, req.SessionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	state.SalarySlipVerified = true
	state.VerifiedSalary = &req.Salary
	if err := s.sessions.Save(ctx, req.SessionID, state); err != nil {
		abortWithError(c, err)
		return
	}

	logx.Info().Str("session_id", req.SessionID).Float64("verified_salary", req.Salary).Msg("salary slip verified")
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Salary slip verified",
		"verified_salary": req.Salary,
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	// Base strips any path traversal from the client-supplied name.
	name := filepath.Base(c.Param("filename"))
	c.FileAttachment(filepath.Join(s.cfg.SanctionDir, name), name)
}

func (s *Server) handleCustomerByPhone(c *gin.Context) {
	cust, err := s.customers.FindByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"verified":    cust.KYCVerified,
		"customer_id": cust.CustomerID,
		"name":        cust.Name,
		"address":     cust.Address,
		"city":        cust.City,
		"email":       cust.Email,
	})
}

func (s *Server) handleCreditScore(c *gin.Context) {
	customerID := c.Param("customer_id")
	cust, err := s.customers.FindByID(c.Request.Context(), customerID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Bureau scores drift between pulls; jitter the seed score a little.
	score := cust.CreditScore + rand.IntN(41) - 20
	if score < 300 {
		score = 300
	}
	if score > 900 {
		score = 900
	}

	risk := "HIGH"
	switch {
	case score >= 750:
		risk = "LOW"
	case score >= 650:
		risk = "MEDIUM"
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id":   customerID,
		"credit_score":  score,
		"risk_category": risk,
	})
}

func (s *Server) handlePreapprovedOffer(c *gin.Context) {
	customerID := c.Param("customer_id")
	offer, err := s.offers.FindByCustomer(c.Request.Context(), customerID)
	if errors.Is(err, errx.ErrCustomerNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"customer_id":       customerID,
			"preapproved_limit": 100000,
			"interest_rate":     15.0,
			"tenure_options":    []int{12, 24},
			"processing_fee":    2.5,
			"special_offer":     false,
		})
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customer_id":       customerID,
		"preapproved_limit": offer.MaxAmount,
		"interest_rate":     offer.InterestRate,
		"tenure_options":    offer.TenureOptions,
		"processing_fee":    offer.ProcessingFee,
		"special_offer":     true,
	})
}

func abortWithError(c *gin.Context, err error) {
	if errors.Is(err, errx.ErrCustomerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	var appErr *errx.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}
	logx.Error().Err(err).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": errx.SystemErrorMessage})
}
