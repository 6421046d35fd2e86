//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"dungji-market/internal/domain/user"
	"dungji-market/internal/handler/api"
	resdto "dungji-market/internal/handler/dto/response"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/commands"
	"dungji-market/internal/usecase/queries"
	commonhttp "dungji-market/tests/common/httptest"
	commandsmock "dungji-market/tests/mock/commands"
	queriesmock "dungji-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NoShowHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNoShowCommands
	mockQueries  *queriesmock.MockNoShowQueries
	handler      *api.NoShowHandler
	userID       uuid.UUID
	asAdmin      bool
}

func (s *NoShowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNoShowCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNoShowQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.asAdmin = false
	s.handler = api.NewNoShowHandler(s.mockCommands, s.mockQueries)

	withAuth := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
				if s.asAdmin {
					c.Set("user_role", user.RoleAdmin)
				} else {
					c.Set("user_role", user.RoleBuyer)
				}
			}
			next(c)
		}
	}

	s.router.POST("/noshow-reports", withAuth(s.handler.Report))
	s.router.GET("/noshow-reports/:id", withAuth(s.handler.Get))
	s.router.PATCH("/noshow-reports/:id", withAuth(s.handler.Edit))
	s.router.DELETE("/noshow-reports/:id", withAuth(s.handler.Withdraw))
	s.router.POST("/admin/noshow-reports/:id/confirm", withAuth(s.handler.AdminConfirm))
	s.router.POST("/admin/noshow-reports/:id/hold", withAuth(s.handler.AdminHold))
}

func (s *NoShowHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNoShowHandlerSuite(t *testing.T) {
	suite.Run(t, new(NoShowHandlerTestSuite))
}

func (s *NoShowHandlerTestSuite) TestReport() {
	url := "/noshow-reports"
	gbID := uuid.New()
	reportedID := uuid.New()
	reqBody := map[string]any{
		"groupbuy_id": gbID,
		"reported_id": reportedID,
		"type":        "seller_noshow",
		"content":     "판매자가 약속 장소에 나타나지 않았습니다",
	}

	s.Run("success: returns 201", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().
			Report(gomock.Any(), s.userID, commands.ReportNoShowInput{
				GroupBuyID: gbID,
				ReportedID: reportedID,
				Type:       "seller_noshow",
				Content:    "판매자가 약속 장소에 나타나지 않았습니다",
			}).
			Return(newID, nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.CreatedResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(newID, resp.ID)
	})

	s.Run("error: returns 409 for a duplicate report", func() {
		s.mockCommands.EXPECT().
			Report(gomock.Any(), s.userID, gomock.Any()).
			Return(uuid.Nil, errs.ErrDuplicateNoShowReport).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Report already filed")
	})

	s.Run("error: returns 400 for an unknown report type", func() {
		bad := map[string]any{
			"groupbuy_id": gbID,
			"reported_id": reportedID,
			"type":        "ghosted",
			"content":     "x",
		}

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *NoShowHandlerTestSuite) TestGet() {
	reportID := uuid.New()
	url := "/noshow-reports/" + reportID.String()

	s.Run("success: party fetches the report", func() {
		s.mockQueries.EXPECT().
			Get(gomock.Any(), reportID, s.userID, false).
			Return(&queries.NoShowReportView{ID: reportID, ReporterID: s.userID, Status: "pending"}, nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var resp queries.NoShowReportView
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(reportID, resp.ID)
	})

	s.Run("success: admin role is passed through", func() {
		s.asAdmin = true
		defer func() { s.asAdmin = false }()

		s.mockQueries.EXPECT().
			Get(gomock.Any(), reportID, s.userID, true).
			Return(&queries.NoShowReportView{ID: reportID, Status: "pending"}, nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("error: returns 404 for a stranger", func() {
		s.mockQueries.EXPECT().
			Get(gomock.Any(), reportID, s.userID, false).
			Return(nil, errs.ErrNoShowReportNotFound).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Report not found")
	})
}

func (s *NoShowHandlerTestSuite) TestEdit() {
	reportID := uuid.New()
	url := "/noshow-reports/" + reportID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			Edit(gomock.Any(), reportID, s.userID, "수정된 내용").
			Return(nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"content": "수정된 내용"}, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("error: returns 409 after the single edit is used", func() {
		s.mockCommands.EXPECT().
			Edit(gomock.Any(), reportID, s.userID, "또 수정").
			Return(errs.ErrNoShowEditExhausted).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"content": "또 수정"}, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "edited once")
	})
}

func (s *NoShowHandlerTestSuite) TestWithdraw() {
	reportID := uuid.New()
	url := "/noshow-reports/" + reportID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			Withdraw(gomock.Any(), reportID, s.userID).
			Return(nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("error: returns 409 when no longer pending", func() {
		s.mockCommands.EXPECT().
			Withdraw(gomock.Any(), reportID, s.userID).
			Return(errs.ErrNoShowNotPending).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not pending")
	})
}

func (s *NoShowHandlerTestSuite) TestAdminDecisions() {
	reportID := uuid.New()

	s.Run("success: confirm with a note", func() {
		s.mockCommands.EXPECT().
			AdminConfirm(gomock.Any(), reportID, "증빙 확인됨").
			Return(nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/noshow-reports/"+reportID.String()+"/confirm",
			map[string]any{"note": "증빙 확인됨"}, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("success: hold without a body", func() {
		s.mockCommands.EXPECT().
			AdminHold(gomock.Any(), reportID, "").
			Return(nil).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/noshow-reports/"+reportID.String()+"/hold", nil, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("error: returns 409 when already processed", func() {
		s.mockCommands.EXPECT().
			AdminConfirm(gomock.Any(), reportID, "").
			Return(errs.ErrNoShowNotPending).Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/noshow-reports/"+reportID.String()+"/confirm", nil, "token")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not pending")
	})
}
