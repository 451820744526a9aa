package impl

import (
	"context"
	"testing"
	"time"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	"passbook/internal/domain/repository"
	"passbook/internal/domain/service"
	mockRepo "passbook/internal/mocks/repository"
	mockSvc "passbook/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPassService(t *testing.T) (*passService, *mockRepo.MockPassRepository, *service.RendererRegistry, *mockSvc.MockQRCodeService) {
	mockPassRepo := mockRepo.NewMockPassRepository(t)
	registry := service.NewRendererRegistry()
	mockQRService := mockSvc.NewMockQRCodeService(t)

	svc := NewPassService(PassServiceParams{
		PassRepo:      mockPassRepo,
		Renderers:     registry,
		QRCodeService: mockQRService,
		Logger:        newTestLogger(),
	})

	return svc.(*passService), mockPassRepo, registry, mockQRService
}

func TestPassService_LatestPass_StaleCopy(t *testing.T) {
	svc, mockPassRepo, registry, _ := newPassService(t)

	ctx := context.Background()
	modified := time.Unix(1700000100, 0).UTC()
	pass := &entity.Pass{PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-1", Modified: &modified}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	renderer := mockSvc.NewMockPassRenderer(t)
	renderer.EXPECT().
		RenderPass(ctx, pass).
		Return([]byte("pkpass-bytes"), nil)
	registry.Register("pass.com.example.loyalty", renderer)

	bundle, err := svc.LatestPass(ctx, "pass.com.example.loyalty", "SN-1", 1700000099)
	require.NoError(t, err)
	assert.Equal(t, []byte("pkpass-bytes"), bundle.Data)
	assert.True(t, bundle.Modified.Equal(modified))
}

func TestPassService_LatestPass_EqualTimestampNotModified(t *testing.T) {
	svc, mockPassRepo, _, _ := newPassService(t)

	ctx := context.Background()
	modified := time.Unix(1700000100, 0).UTC()
	pass := &entity.Pass{PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-1", Modified: &modified}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	// Equal means unchanged; only strictly newer content is served.
	bundle, err := svc.LatestPass(ctx, "pass.com.example.loyalty", "SN-1", 1700000100)
	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, ErrPassNotModified)
}

func TestPassService_LatestPass_NeverStampedNotModified(t *testing.T) {
	svc, mockPassRepo, _, _ := newPassService(t)

	ctx := context.Background()
	pass := &entity.Pass{PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-1"}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	bundle, err := svc.LatestPass(ctx, "pass.com.example.loyalty", "SN-1", 0)
	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, ErrPassNotModified)
}

func TestPassService_LatestPass_PassNotFound(t *testing.T) {
	svc, mockPassRepo, _, _ := newPassService(t)

	ctx := context.Background()

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "missing").
		Return(nil, repository.ErrPassNotFound)

	bundle, err := svc.LatestPass(ctx, "pass.com.example.loyalty", "missing", 0)
	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, domainerrors.ErrPassNotFound)
}

func TestPassService_LatestPass_NoRendererRegistered(t *testing.T) {
	svc, mockPassRepo, _, _ := newPassService(t)

	ctx := context.Background()
	modified := time.Unix(1700000100, 0).UTC()
	pass := &entity.Pass{PassTypeIdentifier: "pass.com.example.unknown", SerialNumber: "SN-1", Modified: &modified}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.unknown", "SN-1").
		Return(pass, nil)

	bundle, err := svc.LatestPass(ctx, "pass.com.example.unknown", "SN-1", 0)
	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, domainerrors.ErrRendererNotRegistered)
}

func TestPassService_LatestPass_RendererFailure(t *testing.T) {
	svc, mockPassRepo, registry, _ := newPassService(t)

	ctx := context.Background()
	modified := time.Unix(1700000100, 0).UTC()
	pass := &entity.Pass{PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-1", Modified: &modified}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	renderer := mockSvc.NewMockPassRenderer(t)
	renderer.EXPECT().
		RenderPass(ctx, pass).
		Return(nil, errors.New("template missing"))
	registry.Register("pass.com.example.loyalty", renderer)

	bundle, err := svc.LatestPass(ctx, "pass.com.example.loyalty", "SN-1", 0)
	assert.Nil(t, bundle)
	assert.Error(t, err)
}

func TestPassService_CreatePass(t *testing.T) {
	svc, mockPassRepo, _, _ := newPassService(t)

	ctx := context.Background()

	mockPassRepo.EXPECT().
		CreatePass(ctx, mock.MatchedBy(func(pass *entity.Pass) bool {
			return pass.PassTypeIdentifier == "pass.com.example.loyalty" && pass.SerialNumber == "SN-1"
		})).
		Return(nil)

	pass, err := svc.CreatePass(ctx, "pass.com.example.loyalty", "SN-1")
	require.NoError(t, err)
	assert.Equal(t, "SN-1", pass.SerialNumber)
	assert.Nil(t, pass.Modified)
}

func TestPassService_StampPass_NotFound(t *testing.T) {
	svc, mockPassRepo, _, _ := newPassService(t)

	ctx := context.Background()
	stamp := time.Unix(1700000300, 0).UTC()

	mockPassRepo.EXPECT().
		StampPassModified(ctx, "pass.com.example.loyalty", "missing", stamp).
		Return(repository.ErrPassNotFound)

	err := svc.StampPass(ctx, "pass.com.example.loyalty", "missing", stamp)
	assert.ErrorIs(t, err, domainerrors.ErrPassNotFound)
}

func TestPassService_DistributionQR(t *testing.T) {
	svc, mockPassRepo, _, mockQRService := newPassService(t)

	ctx := context.Background()
	pass := &entity.Pass{PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-1"}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	mockQRService.EXPECT().
		GeneratePassQR("pass.com.example.loyalty", "SN-1").
		Return([]byte("qr-png"), nil)

	qrCode, err := svc.DistributionQR(ctx, "pass.com.example.loyalty", "SN-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("qr-png"), qrCode)
}

func TestPassService_DistributionQR_PassNotFound(t *testing.T) {
	svc, mockPassRepo, _, _ := newPassService(t)

	ctx := context.Background()

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "missing").
		Return(nil, repository.ErrPassNotFound)

	qrCode, err := svc.DistributionQR(ctx, "pass.com.example.loyalty", "missing")
	assert.Nil(t, qrCode)
	assert.ErrorIs(t, err, domainerrors.ErrPassNotFound)
}
