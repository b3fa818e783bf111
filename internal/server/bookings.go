package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	bookingdomain "github.com/stayloop/leasebill/internal/booking/domain"
)

type createBookingRequest struct {
	ListingID             int64  `json:"listing_id,string" binding:"required"`
	TenantID              int64  `json:"tenant_id,string" binding:"required"`
	StartDate             string `json:"start_date" binding:"required"`
	EndDate               string `json:"end_date" binding:"required"`
	MonthlyRentCents      int64  `json:"monthly_rent_cents" binding:"required,min=1"`
	SecurityDepositCents  int64  `json:"security_deposit_cents" binding:"min=0"`
	PetCount              int    `json:"pet_count" binding:"min=0"`
	PetRentPerPetCents    int64  `json:"pet_rent_per_pet_cents" binding:"min=0"`
	PetDepositPerPetCents int64  `json:"pet_deposit_per_pet_cents" binding:"min=0"`
	UsingCard             bool   `json:"using_card"`
	StripePaymentMethodID string `json:"stripe_payment_method_id" binding:"required"`
}

func (s *Server) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		AbortWithError(c, newValidationError("start_date", "invalid_date", "start_date must be YYYY-MM-DD"))
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		AbortWithError(c, newValidationError("end_date", "invalid_date", "end_date must be YYYY-MM-DD"))
		return
	}

	result, err := s.bookingSvc.CreateBooking(c.Request.Context(), bookingdomain.CreateBookingRequest{
		ListingID:             snowflake.ID(req.ListingID),
		TenantID:              snowflake.ID(req.TenantID),
		StartDate:             startDate,
		EndDate:               endDate,
		MonthlyRentCents:      req.MonthlyRentCents,
		SecurityDepositCents:  req.SecurityDepositCents,
		PetCount:              req.PetCount,
		PetRentPerPetCents:    req.PetRentPerPetCents,
		PetDepositPerPetCents: req.PetDepositPerPetCents,
		UsingCard:             req.UsingCard,
		StripePaymentMethodID: req.StripePaymentMethodID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"booking":  result.Booking,
		"deposit":  result.Deposit,
		"monthly":  result.Monthly,
		"payments": result.Payments,
	}})
}

func (s *Server) GetBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := s.bookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": booking})
}

func (s *Server) ListBookingCharges(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	scope := bookingdomain.ChargeScope(c.Query("scope"))
	switch scope {
	case "", bookingdomain.ChargeScopeDeposit, bookingdomain.ChargeScopeMonthlyRent:
	default:
		AbortWithError(c, newValidationError("scope", "invalid_scope", "scope must be deposit or monthly_rent"))
		return
	}

	charges, err := s.bookingSvc.ListCharges(c.Request.Context(), id, scope)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": charges})
}

func (s *Server) ListBookingPayments(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if payments, hit := s.paymentsCache.Get(int64(id)); hit {
		c.JSON(http.StatusOK, gin.H{"data": payments})
		return
	}

	payments, err := s.scheduleSvc.ListByBooking(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.paymentsCache.Set(int64(id), payments, paymentsCacheTTL)
	c.JSON(http.StatusOK, gin.H{"data": payments})
}

func bookingIDParam(c *gin.Context) (snowflake.ID, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "id must be a numeric booking id"))
		return 0, false
	}
	return snowflake.ID(id), true
}
