package handler

import (
	"net/http"
	"testing"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	mockUsecase "adcopy/internal/mocks/usecase"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTemplateTestEcho(t *testing.T) (*echo.Echo, uuid.UUID, *mockUsecase.MockPromptTemplateUsecase) {
	userID := uuid.New()
	templates := mockUsecase.NewMockPromptTemplateUsecase(t)
	h := NewTemplateHandler(TemplateHandlerParams{Templates: templates})

	e := newTestEcho(userID)
	e.GET("/templates", h.ListTemplates)
	e.POST("/templates", h.CreateTemplate)
	e.GET("/templates/default", h.DefaultTemplate)
	e.PUT("/templates/:id", h.UpdateTemplate)
	e.DELETE("/templates/:id", h.DeleteTemplate)

	return e, userID, templates
}

func TestTemplateHandler_DefaultTemplate(t *testing.T) {
	e, _, templates := newTemplateTestEcho(t)

	templates.EXPECT().
		GetDefaultTemplate(mock.Anything, entity.PlatformGoogle, entity.PromptTypeAdCopy).
		Return(&entity.PromptTemplate{
			ID:        uuid.New(),
			IsDefault: true,
			Template:  entity.TemplateBody{Platform: entity.PlatformGoogle},
		}, nil)

	rec := doRequest(e, http.MethodGet, "/templates/default?platform=google", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"platform":"google"`)

	rec = doRequest(e, http.MethodGet, "/templates/default", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemplateHandler_ListTemplates_UnknownPlatform(t *testing.T) {
	e, _, _ := newTemplateTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/templates?platform=myspace", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemplateHandler_CreateTemplate(t *testing.T) {
	e, userID, templates := newTemplateTestEcho(t)

	templates.EXPECT().
		CreateTemplate(mock.Anything, userID, mock.MatchedBy(func(in *usecase.TemplateInput) bool {
			return in.Name == "Mine" && len(in.Sections) == 1 && in.Sections[0].Content == "Write {{platform}} copy."
		})).
		Return(&entity.PromptTemplate{ID: uuid.New(), Name: "Mine"}, nil)

	rec := doRequest(e, http.MethodPost, "/templates",
		`{"name":"Mine","platform":"facebook","sections":[{"id":"s1","name":"Intro","content":"Write {{platform}} copy.","order":1}]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, "/templates", `{"name":"Mine","platform":"facebook","sections":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemplateHandler_DeleteDefaultIsForbidden(t *testing.T) {
	e, userID, templates := newTemplateTestEcho(t)

	templateID := uuid.New()
	templates.EXPECT().
		DeleteTemplate(mock.Anything, userID, templateID).
		Return(domainerrors.ErrDefaultTemplateImmutable)

	rec := doRequest(e, http.MethodDelete, "/templates/"+templateID.String(), "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "DEFAULT_TEMPLATE_IMMUTABLE", decodeError(t, rec).Code)
}
