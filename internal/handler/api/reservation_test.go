//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-reservations/internal/handler/api"
	resdto "hotel-reservations/internal/handler/dto/response"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase/commands"
	"hotel-reservations/internal/usecase/queries"
	"hotel-reservations/internal/usecase/shared"
	"hotel-reservations/tests/common/builder"
	"hotel-reservations/tests/common/httptest"
	"hotel-reservations/tests/common/testutil"
	commandsmock "hotel-reservations/tests/mock/commands"
	queriesmock "hotel-reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Setup routes
	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.ListReservations)
	s.router.GET("/reservations/report", s.handler.GetReport)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.PATCH("/reservations/:id", s.handler.ModifyReservation)
	s.router.DELETE("/reservations/:id", s.handler.CancelReservation)
	s.router.POST("/reservations/:id/confirm", s.handler.ConfirmReservation)
	s.router.POST("/reservations/:id/check-in", s.handler.CheckInReservation)
	s.router.POST("/reservations/:id/check-out", s.handler.CheckOutReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("PENDING", response.Status)
		s.InDelta(360.00, response.TotalAmount, 1e-9)
	})

	s.Run("error: 400 Bad Request on malformed payloads", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: client_id (required)", mutate: testutil.Field("client_id", nil)},
			{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil)},
			{name: "missing field: start_date (required)", mutate: testutil.Field("start_date", nil)},
			{name: "missing field: end_date (required)", mutate: testutil.Field("end_date", nil)},
			{name: "start_date not a date", mutate: testutil.Field("start_date", "not-a-date")},
			{name: "end_date with time component", mutate: testutil.Field("end_date", "2026-09-13T10:00:00Z")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "room conflict",
				commandsError:  errs.Mark(&commands.RoomUnavailableError{RoomID: 101}, errs.ErrRoomUnavailable),
				expectedStatus: http.StatusConflict,
				expectedCode:   "ROOM_UNAVAILABLE",
			},
			{
				name:           "client unknown to authority",
				commandsError:  shared.ErrClientInvalid,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "CLIENT_INVALID",
			},
			{
				name:           "client has unpaid fees",
				commandsError:  errs.ErrClientUnpaidFees,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "CLIENT_HAS_UNPAID_FEES",
			},
			{
				name:           "dates rejected by domain",
				commandsError:  errs.ErrDatesInvalid,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "DATES_INVALID",
			},
			{
				name:           "remarks rejected by domain",
				commandsError:  errs.ErrRemarksInvalid,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "REMARKS_INVALID",
			},
			{
				name:           "internal failure",
				commandsError:  errs.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "INTERNAL_ERROR",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	returnView := builder.NewReservationBuilder().WithID(reservationID).BuildView()

	s.Run("success: returns 200 OK with enriched view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
		s.Equal(returnView.ClientName, response.ClientName)
		s.Equal(returnView.RoomNumber, response.RoomNumber)
	})

	s.Run("error: 404 when reservation does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RESERVATION_NOT_FOUND")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().BuildListItem(),
		builder.NewReservationBuilder().AsConfirmed().BuildListItem(),
	}

	s.Run("success: no filter returns everything", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)

		var response []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: status filter is forwarded", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Cond(func(f queries.ListFilter) bool {
			return f.Status != nil && f.Status.String() == "CONFIRMED" && f.ClientID == nil
		})).Return(items[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=CONFIRMED", nil)

		var response []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: clientId filter is forwarded", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Cond(func(f queries.ListFilter) bool {
			return f.ClientID != nil && *f.ClientID == 1
		})).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?clientId=1", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=SLEEPING", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: 400 on non-numeric clientId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?clientId=abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestTransitions() {
	reservationID := uuid.New()

	cases := []struct {
		name         string
		method       string
		path         string
		expect       func() *gomock.Call
		guardError   error
		expectedCode string
	}{
		{
			name:   "confirm",
			method: http.MethodPost,
			path:   "/reservations/" + reservationID.String() + "/confirm",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Confirm(gomock.Any(), reservationID)
			},
			guardError:   errs.ErrConfirmImpossible,
			expectedCode: "CONFIRM_IMPOSSIBLE",
		},
		{
			name:   "check-in",
			method: http.MethodPost,
			path:   "/reservations/" + reservationID.String() + "/check-in",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().CheckIn(gomock.Any(), reservationID)
			},
			guardError:   errs.ErrCheckInImpossible,
			expectedCode: "CHECKIN_IMPOSSIBLE",
		},
		{
			name:   "check-out",
			method: http.MethodPost,
			path:   "/reservations/" + reservationID.String() + "/check-out",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().CheckOut(gomock.Any(), reservationID)
			},
			guardError:   errs.ErrCheckOutImpossible,
			expectedCode: "CHECKOUT_IMPOSSIBLE",
		},
		{
			name:   "cancel",
			method: http.MethodDelete,
			path:   "/reservations/" + reservationID.String(),
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID)
			},
			guardError:   errs.ErrCancelImpossible,
			expectedCode: "CANCEL_IMPOSSIBLE",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name+" success", func() {
			returnView := builder.NewReservationBuilder().WithID(reservationID).BuildView()
			tc.expect().Return(returnView, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, tc.method, tc.path, nil)

			var response resdto.ReservationResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(reservationID, response.ID)
		})

		s.Run(tc.name+" rejected in current status", func() {
			tc.expect().Return(nil, tc.guardError).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, tc.method, tc.path, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedCode)
		})

		s.Run(tc.name+" on missing reservation", func() {
			tc.expect().Return(nil, errs.ErrReservationNotFound).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, tc.method, tc.path, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RESERVATION_NOT_FOUND")
		})
	}
}

// ================================================================================
// TestModify
// ================================================================================

func (s *ReservationHandlerTestSuite) TestModify() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()
	reqBody := builder.NewReservationBuilder().BuildModifyRequestDTO()

	s.Run("success: returns 200 OK with updated view", func() {
		returnView := builder.NewReservationBuilder().WithID(reservationID).BuildView()
		s.mockCommands.EXPECT().Modify(gomock.Any(), reservationID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
	})

	s.Run("error: 400 when reservation is no longer modifiable", func() {
		s.mockCommands.EXPECT().Modify(gomock.Any(), reservationID, gomock.Any()).
			Return(nil, errs.ErrModificationImpossible).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "MODIFICATION_IMPOSSIBLE")
	})

	s.Run("error: 409 on concurrent modification", func() {
		s.mockCommands.EXPECT().Modify(gomock.Any(), reservationID, gomock.Any()).
			Return(nil, errs.ErrConcurrentModification).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "CONCURRENT_MODIFICATION")
	})

	s.Run("error: 400 on malformed patch dates", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("start_date", "13/09/2026"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "DATES_INVALID")
	})
}

// ================================================================================
// TestReport
// ================================================================================

func (s *ReservationHandlerTestSuite) TestReport() {
	s.Run("success: returns aggregated report", func() {
		occupied := builder.NewReservationBuilder().AsCheckedIn().BuildListItem()
		upcoming := builder.NewReservationBuilder().BuildListItem()
		report := &queries.ReservationReport{
			TotalReservations: 3,
			CurrentOccupancy:  1,
			OccupancyList:     []*queries.ReservationListItem{occupied},
			Upcoming:          1,
			UpcomingList:      []*queries.ReservationListItem{upcoming},
			Cancelled:         1,
			GeneratedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		}

		s.mockQueries.EXPECT().Report(gomock.Any()).
			Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/report", nil)

		var response resdto.ReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.TotalReservations)
		s.Equal(1, response.CurrentOccupancy)
		s.Len(response.OccupancyList, 1)
		s.Equal(1, response.Cancelled)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().Report(gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/report", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	})
}
