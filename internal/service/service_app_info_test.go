package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/mock"
	"github.com/MKhiriev/go-cert-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetGlobalInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestGetGlobalInfo(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		err     error
		want    models.GlobalInfo
		wantErr bool
	}{
		{
			name:  "fresh deployment",
			count: 0,
			want:  models.GlobalInfo{AppName: "keeper", Version: "2.0.0", Initialized: false},
		},
		{
			name:  "bootstrapped",
			count: 1,
			want:  models.GlobalInfo{AppName: "keeper", Version: "2.0.0", Initialized: true},
		},
		{
			name:    "storage failure",
			err:     errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mock.NewMockAccountRepository(gomock.NewController(t))
			accounts.EXPECT().Count(gomock.Any()).Return(tt.count, tt.err)

			svc, err := NewAppInfoService(config.App{Name: "keeper", Version: "2.0.0"}, accounts, logger.Nop())
			require.NoError(t, err)

			got, err := svc.GetGlobalInfo(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
