//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"dungji-market/internal/handler/api"
	resdto "dungji-market/internal/handler/dto/response"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/queries"
	"dungji-market/tests/common/builder"
	commonhttp "dungji-market/tests/common/httptest"
	commandsmock "dungji-market/tests/mock/commands"
	queriesmock "dungji-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GroupBuyHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockGroupBuyCommands
	mockDecisions *commandsmock.MockDecisionCommands
	mockQueries   *queriesmock.MockGroupBuyQueries
	handler       *api.GroupBuyHandler
	userID        uuid.UUID
}

func (s *GroupBuyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGroupBuyCommands(s.mockCtrl)
	s.mockDecisions = commandsmock.NewMockDecisionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGroupBuyQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.handler = api.NewGroupBuyHandler(s.mockCommands, s.mockDecisions, s.mockQueries)

	// Mock middleware behavior: any bearer token authenticates as s.userID.
	withAuth := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			next(c)
		}
	}

	s.router.GET("/groupbuys", s.handler.List)
	s.router.GET("/groupbuys/:id", withAuth(s.handler.Get))
	s.router.POST("/groupbuys", withAuth(s.handler.Create))
	s.router.POST("/groupbuys/:id/join", withAuth(s.handler.Join))
	s.router.POST("/groupbuys/:id/leave", withAuth(s.handler.Leave))
	s.router.POST("/groupbuys/:id/decision", withAuth(s.handler.BuyerDecide))
	s.router.POST("/groupbuys/:id/seller-confirm", withAuth(s.handler.SellerConfirm))
}

func (s *GroupBuyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGroupBuyHandlerSuite(t *testing.T) {
	suite.Run(t, new(GroupBuyHandlerTestSuite))
}

func (s *GroupBuyHandlerTestSuite) TestCreate() {
	url := "/groupbuys"
	reqBody := map[string]any{
		"title":            "갤럭시 S25 공동구매",
		"description":      "같이 사요",
		"product_name":     "Galaxy S25",
		"product_type":     "support",
		"starting_amount":  100000,
		"min_participants": 2,
		"max_participants": 10,
		"region":           "서울",
		"end_time":         time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns 201 with the new id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.userID, gomock.Any()).
			Return(newID, nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.CreatedResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(newID, resp.ID)
	})

	s.Run("error: returns 401 without auth", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: returns 400 for zero min participants", func() {
		bad := map[string]any{}
		for k, v := range reqBody {
			bad[k] = v
		}
		bad["min_participants"] = 0

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *GroupBuyHandlerTestSuite) TestList() {
	s.Run("success: returns filtered group buys", func() {
		views := []queries.GroupBuyView{
			builder.NewGroupBuyBuilder().WithRegion("서울").BuildView(),
			builder.NewGroupBuyBuilder().WithRegion("서울").BuildView(),
		}
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.GroupBuyFilter{Status: "recruiting", Region: "서울", Limit: 10}).
			Return(views, nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/groupbuys?status=recruiting&region=서울&limit=10", nil, "")

		var resp struct {
			GroupBuys []queries.GroupBuyView `json:"groupbuys"`
		}
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp.GroupBuys, 2)
	})
}

func (s *GroupBuyHandlerTestSuite) TestGet() {
	gb := builder.NewGroupBuyBuilder()

	s.Run("success: anonymous viewer gets masked detail", func() {
		detail := gb.BuildDetailView(queries.BidView{
			ID:       uuid.New(),
			SellerID: uuid.New(),
			Amount:   "1*****",
			Masked:   true,
			Status:   "pending",
		})
		s.mockQueries.EXPECT().
			Get(gomock.Any(), gb.ID, uuid.Nil).
			Return(detail, nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/groupbuys/"+gb.ID.String(), nil, "")

		var resp queries.GroupBuyDetailView
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp.Bids, 1)
		s.True(resp.Bids[0].Masked)
	})

	s.Run("success: authenticated viewer id reaches the query layer", func() {
		s.mockQueries.EXPECT().
			Get(gomock.Any(), gb.ID, s.userID).
			Return(gb.BuildDetailView(), nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/groupbuys/"+gb.ID.String(), nil, "token")

		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("error: returns 404 for unknown id", func() {
		unknown := uuid.New()
		s.mockQueries.EXPECT().
			Get(gomock.Any(), unknown, uuid.Nil).
			Return(nil, errs.ErrGroupBuyNotFound).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/groupbuys/"+unknown.String(), nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Group buy not found")
	})

	s.Run("error: returns 400 for a malformed id", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/groupbuys/not-a-uuid", nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

func (s *GroupBuyHandlerTestSuite) TestJoin() {
	gbID := uuid.New()
	url := "/groupbuys/" + gbID.String() + "/join"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), gbID, s.userID).
			Return(nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("error: returns 409 when already joined", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), gbID, s.userID).
			Return(errs.ErrAlreadyJoined).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Already participating")
	})

	s.Run("error: returns 409 when the participant limit is reached", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), gbID, s.userID).
			Return(errs.ErrParticipantLimit).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Participant limit reached")
	})

	s.Run("error: returns 403 while under penalty", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), gbID, s.userID).
			Return(errs.ErrPenaltyActive).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Account is under penalty")
	})
}

func (s *GroupBuyHandlerTestSuite) TestLeave() {
	gbID := uuid.New()
	url := "/groupbuys/" + gbID.String() + "/leave"

	s.Run("error: returns 409 once recruiting has closed", func() {
		s.mockCommands.EXPECT().
			Leave(gomock.Any(), gbID, s.userID).
			Return(errs.ErrGroupBuyNotRecruiting).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not recruiting")
	})
}

func (s *GroupBuyHandlerTestSuite) TestBuyerDecide() {
	gbID := uuid.New()
	url := "/groupbuys/" + gbID.String() + "/decision"

	s.Run("success: explicit false is a valid decision", func() {
		s.mockDecisions.EXPECT().
			BuyerDecide(gomock.Any(), gbID, s.userID, false).
			Return(nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"confirmed": false}, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("error: returns 400 when the field is missing", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: returns 409 after the window closed", func() {
		s.mockDecisions.EXPECT().
			BuyerDecide(gomock.Any(), gbID, s.userID, true).
			Return(errs.ErrDecisionWindowOver).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"confirmed": true}, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "window has ended")
	})
}

func (s *GroupBuyHandlerTestSuite) TestSellerConfirm() {
	gbID := uuid.New()
	url := "/groupbuys/" + gbID.String() + "/seller-confirm"

	s.Run("error: returns 409 when the bid was not selected", func() {
		s.mockDecisions.EXPECT().
			SellerConfirm(gomock.Any(), gbID, s.userID).
			Return(errs.ErrBidNotSelected).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not the selected bid")
	})
}
