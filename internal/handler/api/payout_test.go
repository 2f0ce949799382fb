//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/handler/api"
	resdto "grocery-admin/internal/handler/dto/response"
	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/usecase/commands"
	"grocery-admin/internal/usecase/queries"
	"grocery-admin/tests/common/builder"
	"grocery-admin/tests/common/httptest"
	commandsmock "grocery-admin/tests/mock/commands"
	queriesmock "grocery-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PayoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPayoutCommands
	mockQueries  *queriesmock.MockPayoutQueries
	handler      *api.PayoutHandler
	actorID      uuid.UUID
}

func (s *PayoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPayoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPayoutQueries(s.mockCtrl)
	s.handler = api.NewPayoutHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authenticated := func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Next()
	}

	g := s.router.Group("/payouts", authenticated)
	g.GET("", s.handler.List)
	g.POST("", s.handler.Create)
	g.GET("/summary", s.handler.Summary)
	g.GET("/:id", s.handler.Get)
	g.POST("/:id/approve", s.handler.Approve)
	g.POST("/:id/reject", s.handler.Reject)
	g.POST("/:id/processing", s.handler.MarkProcessing)
	g.POST("/:id/transfer", s.handler.InitiateTransfer)
	g.POST("/:id/complete", s.handler.Complete)
}

func (s *PayoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPayoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(PayoutHandlerTestSuite))
}

func (s *PayoutHandlerTestSuite) TestCreate() {
	requesterID := uuid.New()
	newID := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreatePayoutInput) (uuid.UUID, error) {
				s.Equal(requesterID, in.RequesterID)
				s.Equal("vendor", in.RequesterType)
				s.True(decimal.RequireFromString("2500.50").Equal(in.Amount))
				return newID, nil
			}).Times(1)

		body := map[string]any{"requester_id": requesterID, "requester_type": "vendor", "amount": "2500.50"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts", body, "")

		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal(newID.String(), created.ID)
	})

	s.Run("error: unknown requester type", func() {
		body := map[string]any{"requester_id": requesterID, "requester_type": "customer", "amount": "10"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "over balance", err: errs.Mark(payout.ErrInsufficientBalance, errs.ErrDomainValidation), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "no wallet", err: errs.ErrWalletNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Wallet not found"},
			{name: "database", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err).Times(1)

				body := map[string]any{"requester_id": requesterID, "amount": "10"}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts", body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PayoutHandlerTestSuite) TestList() {
	s.Run("success: parses ranges", func() {
		view := builder.NewPayoutBuilder().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p queries.PayoutListParams) (*queries.PayoutListResult, error) {
				s.Equal("pending", p.Status)
				s.Equal("ramesh", p.Search)
				s.Require().NotNil(p.MinAmount)
				s.Equal("100", p.MinAmount.String())
				s.Nil(p.MaxAmount)
				s.Require().NotNil(p.CreatedTo)
				s.Equal(time.Date(2025, 6, 1, 23, 59, 59, 999999999, time.UTC), *p.CreatedTo)
				return &queries.PayoutListResult{
					Items: []*queries.PayoutView{view},
					Page:  queries.Page{Page: 1, PageSize: 20, TotalCount: 1, TotalPages: 1},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/payouts?status=pending&search=ramesh&min_amount=100&created_to=2025-06-01", nil, "")

		var body resdto.PayoutListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(view.AvailableActions, body.Items[0].AvailableActions)
	})

	s.Run("error: malformed amount bound", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts?min_amount=lots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unknown status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(payout.ErrInvalidStatus, errs.ErrInvalidListFilter)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts?status=paid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *PayoutHandlerTestSuite) TestSummary() {
	s.mockQueries.EXPECT().Summary(gomock.Any()).Return(&queries.PayoutSummary{
		Statuses: []queries.PayoutStatusTotal{
			{Status: "pending", Count: 3, TotalAmount: decimal.RequireFromString("4200")},
		},
		TotalCount:  3,
		TotalAmount: decimal.RequireFromString("4200"),
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/summary", nil, "")

	var body resdto.PayoutSummaryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(3, body.TotalCount)
	s.Require().Len(body.Statuses, 1)
	s.Equal("pending", body.Statuses[0].Status)
}

func (s *PayoutHandlerTestSuite) TestGet() {
	s.Run("success: exposes available actions", func() {
		view := builder.NewPayoutBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/"+view.ID.String(), nil, "")

		var body resdto.PayoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.ElementsMatch([]string{"approve", "reject"}, body.AvailableActions)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrPayoutNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payout request not found")
	})
}

func (s *PayoutHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	approved := builder.NewPayoutBuilder().WithID(id).WithStatus("approved").BuildView()

	routes := []struct {
		name   string
		path   string
		body   any
		action payout.Action
		reason string
		ref    string
	}{
		{name: "approve", path: "/approve", action: payout.ActionApprove},
		{name: "reject", path: "/reject", body: map[string]any{"reason": "Bank details mismatch"}, action: payout.ActionReject, reason: "Bank details mismatch"},
		{name: "processing", path: "/processing", action: payout.ActionMarkProcessing},
		{name: "transfer", path: "/transfer", body: map[string]any{"transaction_ref": "UTR123456"}, action: payout.ActionInitiateTransfer, ref: "UTR123456"},
		{name: "complete", path: "/complete", action: payout.ActionComplete},
	}

	for _, r := range routes {
		s.Run("success: "+r.name, func() {
			s.mockCommands.EXPECT().Transition(gomock.Any(), commands.TransitionInput{
				PayoutID:       id,
				Action:         r.action,
				Reason:         r.reason,
				TransactionRef: r.ref,
				ActorID:        s.actorID,
			}).Return(nil).Times(1)
			s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(approved, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts/"+id.String()+r.path, r.body, "")

			var body resdto.PayoutResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(id, body.ID)
		})
	}

	s.Run("error: maps transition failures", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "missing reason", err: s.transitionErr(builder.NewPayoutBuilder(), func(r *payout.Request, now time.Time) error {
				return r.Reject(" ", now)
			}), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "missing transaction ref", err: s.transitionErr(builder.NewPayoutBuilder().WithStatus("approved"), func(r *payout.Request, now time.Time) error {
				return r.InitiateTransfer("", now)
			}), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "bank not verified", err: s.transitionErr(builder.NewPayoutBuilder().AsUnverified(), func(r *payout.Request, now time.Time) error {
				return r.Approve(now)
			}), expectedStatus: http.StatusConflict, expectedMsg: "Action unavailable"},
			{name: "wrong status", err: s.transitionErr(builder.NewPayoutBuilder(), func(r *payout.Request, now time.Time) error {
				return r.Complete(now)
			}), expectedStatus: http.StatusConflict, expectedMsg: "Action unavailable"},
			{name: "repeat complete", err: s.transitionErr(builder.NewPayoutBuilder().WithStatus("completed"), func(r *payout.Request, now time.Time) error {
				return r.Complete(now)
			}), expectedStatus: http.StatusConflict, expectedMsg: "Action unavailable"},
			{name: "review lock held", err: errs.ErrReviewInProgress, expectedStatus: http.StatusConflict, expectedMsg: "being reviewed"},
			{name: "lost the race", err: errs.ErrConcurrentReview, expectedStatus: http.StatusConflict, expectedMsg: "reload and retry"},
			{name: "unknown payout", err: errs.ErrPayoutNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Payout request not found"},
			{name: "database", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts/"+id.String()+"/approve", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: reject without a body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payouts/"+id.String()+"/reject", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// transitionErr returns the error the domain produces for a blocked action.
func (s *PayoutHandlerTestSuite) transitionErr(b *builder.PayoutBuilder, apply func(r *payout.Request, now time.Time) error) error {
	r, err := b.BuildStored()
	s.Require().NoError(err)
	err = apply(r, b.Now)
	s.Require().Error(err)
	return err
}
