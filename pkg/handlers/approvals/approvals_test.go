package approvals

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finsuite/erp-approvals/pkg/api"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/storage/mocks"
	"github.com/finsuite/erp-approvals/pkg/workflow"
	wfmocks "github.com/finsuite/erp-approvals/pkg/workflow/mocks"
	"github.com/finsuite/erp-approvals/pkg/workflow/sideeffect"
)

type handlerMocks struct {
	entities      *mocks.EntityStore
	routing       *mocks.RoutingStore
	signatures    *mocks.SignatureStore
	notifications *mocks.NotificationStore
	notifier      *wfmocks.Notifier
}

func newTestRouter() (*chi.Mux, *handlerMocks) {
	m := &handlerMocks{
		entities:      new(mocks.EntityStore),
		routing:       new(mocks.RoutingStore),
		signatures:    new(mocks.SignatureStore),
		notifications: new(mocks.NotificationStore),
		notifier:      new(wfmocks.Notifier),
	}
	registry := workflow.Registry{
		models.EntityTypeAccountGroup: {
			WorkflowID: workflow.WorkflowAccountGroup,
			Validate: func(e models.Approvable) error {
				if e.(*models.AccountGroup).Name == "" {
					return apperrors.Validation("group name is required")
				}
				return nil
			},
			SideEffect: sideeffect.None{},
			Message: func(e models.Approvable) string {
				return "awaiting verification"
			},
		},
	}
	engine := workflow.NewEngine(m.entities, m.routing, m.signatures, m.notifications, m.notifier, registry)

	router := chi.NewRouter()
	NewHandler(engine).Routes(router)
	return router, m
}

func routingTable() []models.RoutingLevel {
	return []models.RoutingLevel{
		{WorkflowID: workflow.WorkflowAccountGroup, LevelID: 1, RoleID: 10, PathID: 1},
		{WorkflowID: workflow.WorkflowAccountGroup, LevelID: 2, RoleID: 20, PathID: 1},
	}
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) api.Envelope {
	t.Helper()
	var envelope api.Envelope
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func TestCreateEndpoint(t *testing.T) {
	actor := api.Actor{ID: "u1", RoleID: 10, DisplayName: "Asha"}

	t.Run("Created", func(t *testing.T) {
		router, m := newTestRouter()

		m.routing.On("GetRouting", mock.Anything, workflow.WorkflowAccountGroup).Return(routingTable(), nil)
		m.entities.On("CreateEntity", mock.Anything, mock.Anything).Return(nil)
		m.notifier.On("Open", mock.Anything, mock.Anything).Return(nil)

		entity, _ := json.Marshal(api.NewAccountGroup{Name: "Fixed Assets", Nature: "Asset"})
		body, _ := json.Marshal(api.CreateRequest{Actor: actor, Entity: entity})
		req := httptest.NewRequest(http.MethodPost, "/account-groups/", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.True(t, envelope.Success)
		m.entities.AssertExpectations(t)
	})

	t.Run("Validation Failure Is 400", func(t *testing.T) {
		router, m := newTestRouter()

		entity, _ := json.Marshal(api.NewAccountGroup{Nature: "Asset"})
		body, _ := json.Marshal(api.CreateRequest{Actor: actor, Entity: entity})
		req := httptest.NewRequest(http.MethodPost, "/account-groups/", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.False(t, envelope.Success)
		assert.Contains(t, envelope.Message, "group name")
		m.entities.AssertNotCalled(t, "CreateEntity")
	})

	t.Run("Unknown Entity Type Is 404", func(t *testing.T) {
		router, _ := newTestRouter()

		entity, _ := json.Marshal(api.NewAccountGroup{Name: "x"})
		body, _ := json.Marshal(api.CreateRequest{Actor: actor, Entity: entity})
		req := httptest.NewRequest(http.MethodPost, "/widgets/", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Malformed Body Is 400", func(t *testing.T) {
		router, _ := newTestRouter()

		req := httptest.NewRequest(http.MethodPost, "/account-groups/", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVerifyEndpoint(t *testing.T) {
	actor := api.Actor{ID: "u2", RoleID: 10, DisplayName: "Ravi"}
	pending := &models.AccountGroup{
		ApprovalState: models.ApprovalState{ID: "g1", WorkflowID: workflow.WorkflowAccountGroup, Status: models.StatusVerification, LevelID: 1},
		Name:          "Fixed Assets",
	}

	t.Run("Advanced", func(t *testing.T) {
		router, m := newTestRouter()

		m.entities.On("GetForVerification", mock.Anything, models.EntityTypeAccountGroup, "g1").Return(pending, nil)
		m.routing.On("GetRouting", mock.Anything, workflow.WorkflowAccountGroup).Return(routingTable(), nil)
		m.entities.On("AdvanceLevel", mock.Anything, models.EntityTypeAccountGroup, "g1", 1).Return(nil)
		m.notifier.On("Retarget", mock.Anything, "g1", 2, 20, 1).Return(nil)
		m.signatures.On("AppendSignature", mock.Anything, mock.Anything).Return(nil)

		body, _ := json.Marshal(api.ActionRequest{Actor: actor, Remarks: "checked"})
		req := httptest.NewRequest(http.MethodPost, "/account-groups/g1/verify", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.True(t, envelope.Success)
	})

	t.Run("Missing Remarks Is 400", func(t *testing.T) {
		router, m := newTestRouter()

		body, _ := json.Marshal(api.ActionRequest{Actor: actor})
		req := httptest.NewRequest(http.MethodPost, "/account-groups/g1/verify", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		m.entities.AssertNotCalled(t, "GetForVerification")
	})

	t.Run("Already Processed Is 404", func(t *testing.T) {
		router, m := newTestRouter()

		m.entities.On("GetForVerification", mock.Anything, models.EntityTypeAccountGroup, "g1").Return(nil, apperrors.NotFound("account-groups", "g1"))

		body, _ := json.Marshal(api.ActionRequest{Actor: actor, Remarks: "late"})
		req := httptest.NewRequest(http.MethodPost, "/account-groups/g1/verify", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.False(t, envelope.Success)
	})
}

func TestListForVerificationEndpoint(t *testing.T) {
	t.Run("Empty Work List Is 200", func(t *testing.T) {
		router, m := newTestRouter()

		m.routing.On("GetRouting", mock.Anything, workflow.WorkflowAccountGroup).Return(routingTable(), nil)
		m.notifications.On("ListOpenForRole", mock.Anything, 10).Return([]models.PendingNotification{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/account-groups/verification?role_id=10", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.True(t, envelope.Success)
	})

	t.Run("Missing Role Is 400", func(t *testing.T) {
		router, _ := newTestRouter()

		req := httptest.NewRequest(http.MethodGet, "/account-groups/verification", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRejectEndpoint(t *testing.T) {
	actor := api.Actor{ID: "u3", RoleID: 10, DisplayName: "Meera"}
	pending := &models.AccountGroup{
		ApprovalState: models.ApprovalState{ID: "g1", WorkflowID: workflow.WorkflowAccountGroup, Status: models.StatusVerification, LevelID: 1},
		Name:          "Fixed Assets",
	}

	router, m := newTestRouter()

	m.entities.On("GetForVerification", mock.Anything, models.EntityTypeAccountGroup, "g1").Return(pending, nil)
	m.entities.On("CommitTerminal", mock.Anything, models.EntityTypeAccountGroup, "g1", 1, models.StatusRejected).Return(nil)
	m.signatures.On("AppendSignature", mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(api.ActionRequest{Actor: actor, Remarks: "wrong nature"})
	req := httptest.NewRequest(http.MethodPost, "/account-groups/g1/reject", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.entities.AssertExpectations(t)
}

func TestHistoryEndpoint(t *testing.T) {
	router, m := newTestRouter()

	pending := &models.AccountGroup{
		ApprovalState: models.ApprovalState{ID: "g1", WorkflowID: workflow.WorkflowAccountGroup, Status: models.StatusVerification, LevelID: 1},
		Name:          "Fixed Assets",
	}
	m.entities.On("GetEntity", mock.Anything, models.EntityTypeAccountGroup, "g1").Return(pending, nil)
	m.signatures.On("ListSignatures", mock.Anything, "g1").Return([]models.Signature{{EntityID: "g1", Action: "verified"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/account-groups/g1/history", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.True(t, envelope.Success)
}
