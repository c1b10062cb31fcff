package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/golinks/internal/models"
	"github.com/fsdevblog/golinks/internal/services"
	"github.com/fsdevblog/golinks/internal/services/smocks"
)

type CType string

const (
	JSONCType   CType = "json"
	URLEncCType CType = "urlencoded"
)

type requestFields struct {
	Method      string
	URL         string
	Body        io.Reader
	ContentType string
}

type LinksControllerSuite struct {
	suite.Suite
	linkServMock *smocks.LinkServiceMock
	router       *gin.Engine
}

func (s *LinksControllerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.linkServMock = new(smocks.LinkServiceMock)
	s.router = SetupRouter(RouterParams{
		LinkService: s.linkServMock,
		BaseURL:     &url.URL{Scheme: "http", Host: "test.com:8080"},
		JWTSecret:   []byte("test-secret"),
		Logger:      logrus.New(),
	})
}

func (s *LinksControllerSuite) makeRequest(f requestFields) *httptest.ResponseRecorder {
	req := httptest.NewRequest(f.Method, f.URL, f.Body)
	if f.ContentType != "" {
		req.Header.Set("Content-Type", f.ContentType)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func formBody(rawURL, customSlug string) io.Reader {
	form := url.Values{}
	form.Set("url", rawURL)
	if customSlug != "" {
		form.Set("customSlug", customSlug)
	}
	return strings.NewReader(form.Encode())
}

func jsonBody(rawURL, customSlug string) io.Reader {
	body, _ := json.Marshal(map[string]string{"url": rawURL, "customSlug": customSlug})
	return strings.NewReader(string(body))
}

//nolint:gocognit
func (s *LinksControllerSuite) TestLinksController_Create() {
	validURL := "https://test.com/valid"

	s.linkServMock.On("Create", mock.Anything, mock.AnythingOfType("string"), validURL, "").
		Return(&models.Link{ShortCode: "Ab12Cd", OriginalURL: validURL}, nil)
	s.linkServMock.On("Create", mock.Anything, mock.AnythingOfType("string"), validURL, "my-link").
		Return(&models.Link{ShortCode: "my-link", OriginalURL: validURL}, nil)
	s.linkServMock.On("Create", mock.Anything, mock.AnythingOfType("string"), "not-a-url", "").
		Return(nil, services.ErrInvalidURL)
	s.linkServMock.On("Create", mock.Anything, mock.AnythingOfType("string"), validURL, "taken").
		Return(nil, services.ErrSlugTaken)

	tests := []struct {
		name          string
		rawURL        string
		slug          string
		wantStatus    int
		wantShortCode string
		wantError     string
	}{
		{name: "auto code", rawURL: validURL, wantStatus: http.StatusCreated, wantShortCode: "Ab12Cd"},
		{name: "custom slug", rawURL: validURL, slug: "my-link", wantStatus: http.StatusCreated, wantShortCode: "my-link"},
		{name: "invalid url", rawURL: "not-a-url", wantStatus: http.StatusUnprocessableEntity, wantError: "Invalid URL format"},
		{name: "slug taken", rawURL: validURL, slug: "taken", wantStatus: http.StatusConflict, wantError: "This custom slug is already taken"},
	}

	for _, ct := range []CType{JSONCType, URLEncCType} {
		for _, tt := range tests {
			s.Run(fmt.Sprintf("%s %s", ct, tt.name), func() {
				var f requestFields
				if ct == JSONCType {
					f = requestFields{
						Method:      http.MethodPost,
						URL:         "/api/links",
						Body:        jsonBody(tt.rawURL, tt.slug),
						ContentType: "application/json",
					}
				} else {
					f = requestFields{
						Method:      http.MethodPost,
						URL:         "/api/links",
						Body:        formBody(tt.rawURL, tt.slug),
						ContentType: "application/x-www-form-urlencoded",
					}
				}
				res := s.makeRequest(f)

				s.Equal(tt.wantStatus, res.Code)

				var resp mutationResponse
				s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &resp))

				if tt.wantError == "" {
					s.True(resp.Success)
					s.Equal(tt.wantShortCode, resp.ShortCode)
				} else {
					s.False(resp.Success)
					s.Equal(tt.wantError, resp.Error)
				}
			})
		}
	}
}

func (s *LinksControllerSuite) TestLinksController_Create_StorageFailure() {
	s.linkServMock.On("Create", mock.Anything, mock.AnythingOfType("string"), "https://test.com/boom", "").
		Return(nil, services.ErrUnknown)

	res := s.makeRequest(requestFields{
		Method:      http.MethodPost,
		URL:         "/api/links",
		Body:        formBody("https://test.com/boom", ""),
		ContentType: "application/x-www-form-urlencoded",
	})

	s.Equal(http.StatusInternalServerError, res.Code)

	var resp mutationResponse
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &resp))
	// внутренние детали наружу не уходят
	s.Equal("Failed to create link", resp.Error)
}

func (s *LinksControllerSuite) TestLinksController_Create_AllocationFailed() {
	s.linkServMock.On("Create", mock.Anything, mock.AnythingOfType("string"), "https://test.com/alloc", "").
		Return(nil, services.ErrAllocationFailed)

	res := s.makeRequest(requestFields{
		Method:      http.MethodPost,
		URL:         "/api/links",
		Body:        formBody("https://test.com/alloc", ""),
		ContentType: "application/x-www-form-urlencoded",
	})

	s.Equal(http.StatusInternalServerError, res.Code)

	var resp mutationResponse
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &resp))
	// это бизнес-ошибка, её текст отдаем как есть
	s.False(resp.Success)
	s.Equal("Failed to generate unique short code", resp.Error)
}

func (s *LinksControllerSuite) TestLinksController_Update() {
	validURL := "https://test.com/updated"

	s.linkServMock.On("Update", mock.Anything, mock.AnythingOfType("string"), uint(3), validURL, "my-link").
		Return(&models.Link{ID: 3, ShortCode: "my-link", OriginalURL: validURL}, nil)
	s.linkServMock.On("Update", mock.Anything, mock.AnythingOfType("string"), uint(7), validURL, "").
		Return(nil, services.ErrUnauthorized)

	tests := []struct {
		name       string
		uri        string
		slug       string
		wantStatus int
		wantError  string
	}{
		{name: "valid", uri: "/api/links/3", slug: "my-link", wantStatus: http.StatusOK},
		{name: "foreign link", uri: "/api/links/7", wantStatus: http.StatusUnauthorized, wantError: "Unauthorized"},
		{name: "garbage id", uri: "/api/links/abc", wantStatus: http.StatusNotFound, wantError: "Link not found"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeRequest(requestFields{
				Method:      http.MethodPut,
				URL:         tt.uri,
				Body:        formBody(validURL, tt.slug),
				ContentType: "application/x-www-form-urlencoded",
			})

			s.Equal(tt.wantStatus, res.Code)

			var resp mutationResponse
			s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &resp))
			if tt.wantError == "" {
				s.True(resp.Success)
				s.Equal("my-link", resp.ShortCode)
			} else {
				s.False(resp.Success)
				s.Equal(tt.wantError, resp.Error)
			}
		})
	}

	// для нечислового id сервис вызывался только валидным запросом
	s.linkServMock.AssertNumberOfCalls(s.T(), "Update", 2)
}

func (s *LinksControllerSuite) TestLinksController_Delete() {
	s.linkServMock.On("Delete", mock.Anything, mock.AnythingOfType("string"), uint(3)).
		Return(nil)
	s.linkServMock.On("Delete", mock.Anything, mock.AnythingOfType("string"), uint(404)).
		Return(services.ErrLinkNotFound)

	tests := []struct {
		name       string
		uri        string
		wantStatus int
		wantError  string
	}{
		{name: "valid", uri: "/api/links/3", wantStatus: http.StatusOK},
		{name: "missing", uri: "/api/links/404", wantStatus: http.StatusNotFound, wantError: "Link not found"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeRequest(requestFields{Method: http.MethodDelete, URL: tt.uri})

			s.Equal(tt.wantStatus, res.Code)

			var resp mutationResponse
			s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &resp))
			if tt.wantError == "" {
				s.True(resp.Success)
			} else {
				s.Equal(tt.wantError, resp.Error)
			}
		})
	}
}

func (s *LinksControllerSuite) TestLinksController_List() {
	now := time.Now()
	s.linkServMock.On("GetAllByUserID", mock.Anything, mock.AnythingOfType("string")).
		Return([]models.Link{
			{ID: 2, ShortCode: "second", OriginalURL: "https://test.com/2", Clicks: 3, CreatedAt: now},
			{ID: 1, ShortCode: "first1", OriginalURL: "https://test.com/1", CreatedAt: now.Add(-time.Hour)},
		}, nil)

	res := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/api/links"})

	s.Equal(http.StatusOK, res.Code)

	var resp listResponse
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Require().Len(resp.Links, 2)
	s.Equal("second", resp.Links[0].ShortCode)
	s.Equal("http://test.com:8080/second", resp.Links[0].ShortURL)
	s.Equal(uint(3), resp.Links[0].Clicks)
}

func TestLinksControllerSuite(t *testing.T) {
	suite.Run(t, new(LinksControllerSuite))
}
