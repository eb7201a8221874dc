package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zoomboom/internal/model"
	"zoomboom/internal/pricing"
	"zoomboom/internal/service"
	serviceMocks "zoomboom/internal/service/mocks"
	"zoomboom/internal/validation"
)

const parcelID = "5f0f8a4e-9a3b-4c2e-8f1d-2b7c6d5e4a31"

func sampleDraft() model.ParcelDraft {
	return model.ParcelDraft{
		ParcelType:       model.ParcelTypeNonDocument,
		ParcelName:       "Books",
		ParcelWeight:     4.5,
		SenderName:       "Rahim",
		SenderPhone:      "01712345678",
		SenderDistrict:   "Dhaka",
		SenderArea:       "Uttara",
		SenderAddress:    "House 12, Road 7",
		ReceiverName:     "Karim",
		ReceiverPhone:    "01812345678",
		ReceiverDistrict: "Sylhet",
		ReceiverArea:     "Zindabazar",
		ReceiverAddress:  "Shop 3",
	}
}

func TestQuoteParcel(t *testing.T) {
	mockSvc := new(serviceMocks.MockParcelService)
	app := newTestApp()
	app.Post("/parcels/quote", QuoteParcel(mockSvc))

	t.Run("partial draft", func(t *testing.T) {
		d := model.ParcelDraft{ParcelType: model.ParcelTypeDocument, SenderDistrict: "Dhaka"}
		mockSvc.On("Quote", d).Return(pricing.Quote{}).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/parcels/quote", d))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var q pricing.Quote
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&q))
		assert.False(t, q.Computable)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/parcels/quote", "{"))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestBookParcel(t *testing.T) {
	mockSvc := new(serviceMocks.MockParcelService)
	app := newTestApp()
	app.Post("/parcels", asActor(member), BookParcel(mockSvc))

	t.Run("success", func(t *testing.T) {
		d := sampleDraft()
		booked := &model.Parcel{ParcelDraft: d, ID: parcelID, TrackingID: "PRCL-1740823200000-042", UserEmail: member.Email, TotalCost: 260, Status: model.ParcelStatusPending}
		mockSvc.On("Book", mock.Anything, member, d).Return(booked, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/parcels", d))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body struct {
			InsertedID string       `json:"insertedId"`
			Parcel     model.Parcel `json:"parcel"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, parcelID, body.InsertedID)
		assert.Equal(t, 260, body.Parcel.TotalCost)
		assert.Equal(t, "PRCL-1740823200000-042", body.Parcel.TrackingID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("same area", func(t *testing.T) {
		d := sampleDraft()
		d.ReceiverDistrict, d.ReceiverArea = "Dhaka", "Uttara"
		mockSvc.On("Book", mock.Anything, member, d).Return(nil, service.ErrSameArea).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/parcels", d))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "SAME_LOCATION", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		d := model.ParcelDraft{ParcelName: "Books"}
		mockSvc.On("Book", mock.Anything, member, d).
			Return(nil, validation.Fail("parcelType", "is required")).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/parcels", d))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "parcelType", body.Error.Fields[0].Field)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		d := sampleDraft()
		d.ParcelName = "Laptop"
		mockSvc.On("Book", mock.Anything, member, d).Return(nil, errors.New("insert failed")).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/parcels", d))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListParcels(t *testing.T) {
	mockSvc := new(serviceMocks.MockParcelService)
	app := newTestApp()
	app.Get("/parcels", asActor(member), ListParcels(mockSvc))

	t.Run("own parcels", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, member, member.Email).
			Return([]model.Parcel{{ID: parcelID, UserEmail: member.Email}}, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/parcels?email="+member.Email, ""))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var parcels []model.Parcel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parcels))
		assert.Len(t, parcels, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("someone else", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, member, "karim@example.com").Return(nil, service.ErrForbidden).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/parcels?email=karim@example.com", ""))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetParcel(t *testing.T) {
	mockSvc := new(serviceMocks.MockParcelService)
	app := newTestApp()
	app.Get("/parcels/:id", asActor(admin), GetParcel(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, admin, parcelID).Return(&model.Parcel{ID: parcelID}, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/parcels/"+parcelID, ""))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, admin, "missing").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/parcels/missing", ""))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateParcel(t *testing.T) {
	mockSvc := new(serviceMocks.MockParcelService)
	app := newTestApp()
	app.Patch("/parcels/:id", asActor(member), UpdateParcel(mockSvc))

	t.Run("identity fields are dropped", func(t *testing.T) {
		body := map[string]any{
			"_id":          "other",
			"userEmail":    "karim@example.com",
			"parcelId":     "PRCL-1-001",
			"parcelWeight": 6.0,
		}
		mockSvc.On("Update", mock.Anything, member, parcelID, mock.MatchedBy(func(p model.ParcelPatch) bool {
			return p.ParcelWeight != nil && *p.ParcelWeight == 6.0 && p.ParcelName == nil && p.SenderDistrict == nil
		})).Return(int64(1), nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPatch, "/parcels/"+parcelID, body))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res modifiedResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, int64(1), res.ModifiedCount)
		mockSvc.AssertExpectations(t)
	})

	t.Run("already paid", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, member, parcelID, mock.Anything).
			Return(int64(0), service.ErrParcelNotPending).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPatch, "/parcels/"+parcelID, map[string]any{"parcelName": "x"}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "PARCEL_NOT_PENDING", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestCancelParcel(t *testing.T) {
	mockSvc := new(serviceMocks.MockParcelService)
	app := newTestApp()
	app.Delete("/parcels/:id", asActor(member), CancelParcel(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Cancel", mock.Anything, member, parcelID).Return(int64(1), nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodDelete, "/parcels/"+parcelID, ""))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res deletedResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, int64(1), res.DeletedCount)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not pending", func(t *testing.T) {
		mockSvc.On("Cancel", mock.Anything, member, "paid-one").Return(int64(0), service.ErrParcelNotPending).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodDelete, "/parcels/paid-one", ""))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
