package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machikasa/machikasa-api/internal/domain"
)

type stubRentalService struct {
	borrowResult        domain.BorrowResult
	returnResult        domain.ReturnResult
	partnerReturnResult domain.PartnerReturnResult
}

func (s *stubRentalService) BorrowUmbrella(_ context.Context, _, _ string) domain.BorrowResult {
	return s.borrowResult
}

func (s *stubRentalService) ReturnUmbrella(_ context.Context, _, _ string) domain.ReturnResult {
	return s.returnResult
}

func (s *stubRentalService) ReturnUmbrellaToPartnerStore(_ context.Context, _, _, _ string) domain.PartnerReturnResult {
	return s.partnerReturnResult
}

func newRentalRouter(svc *stubRentalService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewRentalHandler(svc)
	router := gin.New()
	router.POST("/rentals/borrow", handler.HandleBorrow)
	router.POST("/rentals/return", handler.HandleReturn)
	router.POST("/rentals/return-to-partner", handler.HandleReturnToPartner)

	return router
}

func TestHandleBorrow(t *testing.T) {
	router := newRentalRouter(&stubRentalService{
		borrowResult: domain.BorrowResult{Success: true, Message: "umbrella borrowed, enjoy your day"},
	})

	body := `{"umbrella_id":"umb-001","user_id":"user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/rentals/borrow", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.BorrowResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
}

func TestHandleBorrowRejectedStillOK(t *testing.T) {
	router := newRentalRouter(&stubRentalService{
		borrowResult: domain.BorrowResult{Message: "this umbrella is already in use"},
	})

	body := `{"umbrella_id":"umb-006","user_id":"user-2"}`
	req := httptest.NewRequest(http.MethodPost, "/rentals/borrow", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.BorrowResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "already in use")
}

func TestHandleBorrowMissingFields(t *testing.T) {
	router := newRentalRouter(&stubRentalService{})

	req := httptest.NewRequest(http.MethodPost, "/rentals/borrow", strings.NewReader(`{"umbrella_id":"umb-001"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleBorrowInvalidJSON(t *testing.T) {
	router := newRentalRouter(&stubRentalService{})

	req := httptest.NewRequest(http.MethodPost, "/rentals/borrow", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleReturn(t *testing.T) {
	router := newRentalRouter(&stubRentalService{
		returnResult: domain.ReturnResult{Success: true, Points: 1, Cheer: "ご利用ありがとうございました🙏"},
	})

	body := `{"umbrella_id":"umb-006","user_id":"user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/rentals/return", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.ReturnResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Points)
	assert.NotEmpty(t, result.Cheer)
}

func TestHandleReturnToPartner(t *testing.T) {
	router := newRentalRouter(&stubRentalService{
		partnerReturnResult: domain.PartnerReturnResult{Success: true, Points: 2, DealApplied: "bonus deal"},
	})

	body := `{"umbrella_id":"umb-006","user_id":"user-1","partner_store_id":"partner-1"}`
	req := httptest.NewRequest(http.MethodPost, "/rentals/return-to-partner", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.PartnerReturnResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "bonus deal", result.DealApplied)
}

func TestHandleReturnToPartnerMissingStore(t *testing.T) {
	router := newRentalRouter(&stubRentalService{})

	body := `{"umbrella_id":"umb-006","user_id":"user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/rentals/return-to-partner", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
