package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	chargedomain "github.com/stayloop/leasebill/internal/charge/domain"
	"go.uber.org/zap"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := NewServer(ServerParam{
		Log:  zap.NewNop(),
		Calc: chargedomain.NewCalculator(chargedomain.FeeConfig{}),
	})
	engine := gin.New()
	s.RegisterAPIRoutes(engine)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestPreviewDepositCharges(t *testing.T) {
	engine := setupTestServer(t)

	w := postJSON(t, engine, "/api/charges/deposit/preview", map[string]any{
		"security_deposit_cents": 100000,
		"include_card_fee":       true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data chargedomain.ChargeBreakdown `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// 100000 deposit + 700 transfer, card fee self-inclusive on 100700.
	if resp.Data.BaseAmountCents != 100000 {
		t.Fatalf("expected base 100000, got %d", resp.Data.BaseAmountCents)
	}
	if resp.Data.TotalAmountCents != 103814 {
		t.Fatalf("expected total 103814, got %d", resp.Data.TotalAmountCents)
	}
	card, ok := chargedomain.FindChargeByCategory(resp.Data.Charges, chargedomain.ChargeCategoryCreditCardFee)
	if !ok || card.AmountCents != 3114 {
		t.Fatalf("expected card fee 3114, got %+v", card)
	}
}

func TestPreviewDepositCardFeePreviewOnly(t *testing.T) {
	engine := setupTestServer(t)

	w := postJSON(t, engine, "/api/charges/deposit/preview", map[string]any{
		"security_deposit_cents": 100000,
		"include_card_fee":       true,
		"card_fee_preview_only":  true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data chargedomain.ChargeBreakdown `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// The fee row is listed but excluded from the collected total.
	if resp.Data.TotalAmountCents != 100700 {
		t.Fatalf("expected total 100700, got %d", resp.Data.TotalAmountCents)
	}
	card, ok := chargedomain.FindChargeByCategory(resp.Data.Charges, chargedomain.ChargeCategoryCreditCardFee)
	if !ok || card.AmountCents != 3114 || card.IsApplied {
		t.Fatalf("expected unapplied card fee of 3114, got %+v", card)
	}
}

func TestPreviewMonthlyRentCharges(t *testing.T) {
	engine := setupTestServer(t)

	w := postJSON(t, engine, "/api/charges/rent/preview", map[string]any{
		"base_rent_cents":  100000,
		"duration_months":  3,
		"include_card_fee": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data chargedomain.ChargeBreakdown `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.TotalAmountCents != 106186 {
		t.Fatalf("expected total 106186, got %d", resp.Data.TotalAmountCents)
	}

	platform, ok := chargedomain.FindChargeByCategory(resp.Data.Charges, chargedomain.ChargeCategoryPlatformFee)
	if !ok || platform.AmountCents != 3000 {
		t.Fatalf("expected platform fee 3000, got %+v", platform)
	}
}

func TestPreviewMonthlyRentLongTermTier(t *testing.T) {
	engine := setupTestServer(t)

	w := postJSON(t, engine, "/api/charges/rent/preview", map[string]any{
		"base_rent_cents": 100000,
		"duration_months": 6,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data chargedomain.ChargeBreakdown `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	platform, ok := chargedomain.FindChargeByCategory(resp.Data.Charges, chargedomain.ChargeCategoryPlatformFee)
	if !ok || platform.AmountCents != 1500 {
		t.Fatalf("expected long-term platform fee 1500, got %+v", platform)
	}
}

func TestPreviewMonthlyRentRejectsBadProration(t *testing.T) {
	engine := setupTestServer(t)

	w := postJSON(t, engine, "/api/charges/rent/preview", map[string]any{
		"base_rent_cents": 100000,
		"duration_months": 1,
		"proration": map[string]any{
			"days_in_month":  30,
			"days_to_charge": 31,
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestValidateCharges(t *testing.T) {
	engine := setupTestServer(t)

	charges := []map[string]any{
		{"category": "BASE_RENT", "amount_cents": 100000, "is_applied": true},
		{"category": "PLATFORM_FEE", "amount_cents": 3000, "is_applied": true},
	}

	w := postJSON(t, engine, "/api/charges/validate", map[string]any{
		"charges":              charges,
		"expected_total_cents": 103001,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data chargedomain.ValidationResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.Valid {
		t.Fatalf("expected 1-cent difference to pass, got %+v", resp.Data)
	}

	w = postJSON(t, engine, "/api/charges/validate", map[string]any{
		"charges":              charges,
		"expected_total_cents": 103005,
	})
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Valid {
		t.Fatalf("expected 5-cent difference to fail, got %+v", resp.Data)
	}
}

func TestInvalidBookingIDParam(t *testing.T) {
	engine := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-number/payments", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	engine := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
