package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	chargedomain "github.com/stayloop/leasebill/internal/charge/domain"
)

type depositPreviewRequest struct {
	SecurityDepositCents  int64 `json:"security_deposit_cents" binding:"min=0"`
	PetCount              int   `json:"pet_count" binding:"min=0"`
	PetDepositPerPetCents int64 `json:"pet_deposit_per_pet_cents" binding:"min=0"`
	IncludeCardFee        bool  `json:"include_card_fee"`
	CardFeePreviewOnly    bool  `json:"card_fee_preview_only"`
}

func (s *Server) PreviewDepositCharges(c *gin.Context) {
	var req depositPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	breakdown := s.calc.BuildDepositCharges(chargedomain.DepositParams{
		SecurityDepositCents:  req.SecurityDepositCents,
		PetCount:              req.PetCount,
		PetDepositPerPetCents: req.PetDepositPerPetCents,
		IncludeCardFee:        req.IncludeCardFee,
		CardFeePreviewOnly:    req.CardFeePreviewOnly,
	})

	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

type prorationRequest struct {
	DaysInMonth  int `json:"days_in_month" binding:"required,min=28,max=31"`
	DaysToCharge int `json:"days_to_charge" binding:"required,min=1,max=31"`
}

type rentPreviewRequest struct {
	BaseRentCents      int64             `json:"base_rent_cents" binding:"required,min=1"`
	PetCount           int               `json:"pet_count" binding:"min=0"`
	PetRentPerPetCents int64             `json:"pet_rent_per_pet_cents" binding:"min=0"`
	DurationMonths     int               `json:"duration_months" binding:"required,min=1"`
	IncludeCardFee     bool              `json:"include_card_fee"`
	CardFeePreviewOnly bool              `json:"card_fee_preview_only"`
	Proration          *prorationRequest `json:"proration"`
}

func (s *Server) PreviewMonthlyRentCharges(c *gin.Context) {
	var req rentPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	params := chargedomain.MonthlyRentParams{
		BaseRentCents:      req.BaseRentCents,
		PetCount:           req.PetCount,
		PetRentPerPetCents: req.PetRentPerPetCents,
		DurationMonths:     req.DurationMonths,
		IncludeCardFee:     req.IncludeCardFee,
		CardFeePreviewOnly: req.CardFeePreviewOnly,
	}
	if req.Proration != nil {
		if req.Proration.DaysToCharge > req.Proration.DaysInMonth {
			AbortWithError(c, newValidationError("proration.days_to_charge", "out_of_range", "days_to_charge cannot exceed days_in_month"))
			return
		}
		params.Proration = &chargedomain.ProrationInfo{
			DaysInMonth:  req.Proration.DaysInMonth,
			DaysToCharge: req.Proration.DaysToCharge,
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": s.calc.BuildMonthlyRentCharges(params)})
}

type validateRequest struct {
	Charges            []chargedomain.Charge `json:"charges" binding:"required"`
	ExpectedTotalCents int64                 `json:"expected_total_cents"`
}

func (s *Server) ValidateCharges(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result := chargedomain.ValidateBreakdown(req.Charges, req.ExpectedTotalCents)
	c.JSON(http.StatusOK, gin.H{"data": result})
}
