package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zoomboom/internal/model"
	"zoomboom/internal/service"
	serviceMocks "zoomboom/internal/service/mocks"
)

func TestCreatePaymentIntent(t *testing.T) {
	mockSvc := new(serviceMocks.MockPaymentService)
	app := newTestApp()
	app.Post("/create-payment-intent", asActor(member), CreatePaymentIntent(mockSvc))

	t.Run("success", func(t *testing.T) {
		req := service.IntentRequest{Price: 260, ParcelID: parcelID}
		intent := model.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret", Amount: 26000, Currency: "bdt"}
		mockSvc.On("CreateIntent", mock.Anything, member, req).Return(intent, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/create-payment-intent", req))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "pi_123_secret", body["clientSecret"])
		assert.Equal(t, float64(26000), body["amount"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("price mismatch", func(t *testing.T) {
		req := service.IntentRequest{Price: 10, ParcelID: parcelID}
		mockSvc.On("CreateIntent", mock.Anything, member, req).
			Return(model.PaymentIntent{}, service.ErrPriceMismatch).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/create-payment-intent", req))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "PRICE_MISMATCH", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestRecordPayment(t *testing.T) {
	mockSvc := new(serviceMocks.MockPaymentService)
	app := newTestApp()
	app.Post("/payments", asActor(member), RecordPayment(mockSvc))

	req := service.PaymentRequest{TransactionID: "pi_123", Price: 260, ParcelID: parcelID}

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Record", mock.Anything, member, req).
			Return(&service.PaymentReceipt{PaymentID: "pay-1", ParcelsModified: 1}, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/payments", req))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body paymentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "pay-1", body.PaymentResult.InsertedID)
		assert.Equal(t, int64(1), body.ParcelResult.ModifiedCount)
		mockSvc.AssertExpectations(t)
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate transaction", service.ErrPaymentExists, http.StatusConflict, "PAYMENT_EXISTS"},
		{"already paid", service.ErrParcelNotPending, http.StatusConflict, "PARCEL_NOT_PENDING"},
		{"intent not succeeded", service.ErrPaymentNotSucceeded, http.StatusPaymentRequired, "PAYMENT_NOT_SUCCEEDED"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc.On("Record", mock.Anything, member, req).Return(nil, tc.err).Once()

			resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/payments", req))

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantCode, decodeError(t, resp).Error.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestPaymentHistory(t *testing.T) {
	mockSvc := new(serviceMocks.MockPaymentService)
	app := newTestApp()
	app.Get("/payments", asActor(admin), PaymentHistory(mockSvc))

	paidAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mockSvc.On("History", mock.Anything, admin, "").Return([]model.Payment{
		{ID: "pay-2", Email: member.Email, Price: 260, Status: model.PaymentStatusPaid, Date: paidAt},
		{ID: "pay-1", Email: "karim@example.com", Price: 60, Status: model.PaymentStatusPaid, Date: paidAt.Add(-time.Hour)},
	}, nil).Once()

	resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/payments", ""))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var payments []model.Payment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payments))
	require.Len(t, payments, 2)
	assert.Equal(t, "pay-2", payments[0].ID)
	mockSvc.AssertExpectations(t)
}
