package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"passbook/internal/domain/entity"
	"passbook/internal/domain/service"
	mockRepo "passbook/internal/mocks/repository"
	mockService "passbook/internal/mocks/service"
	"passbook/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPassContext(e *echo.Echo, ifModifiedSince string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ifModifiedSince != "" {
		req.Header.Set("If-Modified-Since", ifModifiedSince)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("passTypeIdentifier", "serialNumber")
	c.SetParamValues("pass.com.example.loyalty", "SN-001")

	return c, rec
}

func newPassHandlerWithStaleClient(t *testing.T, pass *entity.Pass, payload []byte) *PassHandler {
	t.Helper()

	passRepo := mockRepo.NewMockPassRepository(t)
	passRepo.EXPECT().
		FindPassByTypeAndSerial(mock.Anything, pass.PassTypeIdentifier, pass.SerialNumber).
		Return(pass, nil)

	renderer := mockService.NewMockPassRenderer(t)
	renderer.EXPECT().RenderPass(mock.Anything, pass).Return(payload, nil)

	registry := service.NewRendererRegistry()
	registry.Register(pass.PassTypeIdentifier, renderer)

	return &PassHandler{
		passUC: impl.NewPassService(impl.PassServiceParams{
			PassRepo:      passRepo,
			Renderers:     registry,
			QRCodeService: mockService.NewMockQRCodeService(t),
			Logger:        newTestLogger(),
		}),
		logger: newTestLogger(),
	}
}

func TestPassHandler_GetPass_Integration(t *testing.T) {
	modified := time.Unix(1700000200, 0)
	pass := &entity.Pass{
		PassTypeIdentifier: "pass.com.example.loyalty",
		SerialNumber:       "SN-001",
		Modified:           &modified,
	}
	payload := []byte("pkpass-bytes")

	handler := newPassHandlerWithStaleClient(t, pass, payload)

	e := newTestEcho()
	c, rec := newPassContext(e, "1700000100")

	require.NoError(t, handler.GetPass(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.apple.pkpass", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "1700000200", rec.Header().Get("Last-Modified"))
	assert.Equal(t, payload, rec.Body.Bytes())
}

func TestPassHandler_GetPass_NotModified_Integration(t *testing.T) {
	modified := time.Unix(1700000200, 0)
	pass := &entity.Pass{
		PassTypeIdentifier: "pass.com.example.loyalty",
		SerialNumber:       "SN-001",
		Modified:           &modified,
	}

	passRepo := mockRepo.NewMockPassRepository(t)
	passRepo.EXPECT().
		FindPassByTypeAndSerial(mock.Anything, pass.PassTypeIdentifier, pass.SerialNumber).
		Return(pass, nil)

	handler := &PassHandler{
		passUC: impl.NewPassService(impl.PassServiceParams{
			PassRepo:      passRepo,
			Renderers:     service.NewRendererRegistry(),
			QRCodeService: mockService.NewMockQRCodeService(t),
			Logger:        newTestLogger(),
		}),
		logger: newTestLogger(),
	}

	e := newTestEcho()
	c, rec := newPassContext(e, "1700000200")

	require.NoError(t, handler.GetPass(c))
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

// A malformed If-Modified-Since is treated as absent, so the device always
// receives a pass rather than an error.
func TestPassHandler_GetPass_MalformedHeader_Integration(t *testing.T) {
	modified := time.Unix(1700000200, 0)
	pass := &entity.Pass{
		PassTypeIdentifier: "pass.com.example.loyalty",
		SerialNumber:       "SN-001",
		Modified:           &modified,
	}

	handler := newPassHandlerWithStaleClient(t, pass, []byte("pkpass-bytes"))

	e := newTestEcho()
	c, rec := newPassContext(e, "Thu, 01 Jan 1970 00:00:00 GMT")

	require.NoError(t, handler.GetPass(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPassHandler_DistributionQR_Integration(t *testing.T) {
	passRepo := mockRepo.NewMockPassRepository(t)
	passRepo.EXPECT().
		FindPassByTypeAndSerial(mock.Anything, "pass.com.example.loyalty", "SN-001").
		Return(&entity.Pass{PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-001"}, nil)

	qrcodeSvc := mockService.NewMockQRCodeService(t)
	qrcodeSvc.EXPECT().
		GeneratePassQR("pass.com.example.loyalty", "SN-001").
		Return([]byte("png-bytes"), nil)

	handler := &PassHandler{
		passUC: impl.NewPassService(impl.PassServiceParams{
			PassRepo:      passRepo,
			Renderers:     service.NewRendererRegistry(),
			QRCodeService: qrcodeSvc,
			Logger:        newTestLogger(),
		}),
		logger: newTestLogger(),
	}

	e := newTestEcho()
	c, rec := newPassContext(e, "")

	require.NoError(t, handler.DistributionQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
