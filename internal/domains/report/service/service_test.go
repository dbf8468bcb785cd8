package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vigil/config"
	"vigil/infras/otel/mocks"
	s3Mocks "vigil/infras/s3/mocks"
	monitorMocks "vigil/internal/domains/monitor/mocks"
	monitorModel "vigil/internal/domains/monitor/model"
	"vigil/internal/domains/report/model/dto"
	"vigil/internal/domains/report/service"
	"vigil/shared/failure"
)

func TestReportService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonitors := monitorMocks.NewMockMonitor(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockMonitors, mockStorage, &config.Config{}, mocks.NewOtel())

	monitor := monitorModel.Monitor{
		ID:       "m-1",
		Name:     "api",
		URL:      "https://api.example.com",
		Timezone: "Europe/Amsterdam",
		Active:   true,
	}

	base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	heartbeats := []monitorModel.Heartbeat{
		{ID: "hb-1", MonitorID: "m-1", Status: monitorModel.StatusUp, PingMs: 40, CheckedAt: base},
		{ID: "hb-2", MonitorID: "m-1", Status: monitorModel.StatusUp, PingMs: 60, CheckedAt: base.Add(time.Minute)},
		{ID: "hb-3", MonitorID: "m-1", Status: monitorModel.StatusDown, PingMs: 0, CheckedAt: base.Add(2 * time.Minute)},
		{ID: "hb-4", MonitorID: "m-1", Status: monitorModel.StatusUp, PingMs: 50, CheckedAt: base.Add(3 * time.Minute)},
	}

	mockMonitors.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(monitor, nil)
	mockMonitors.EXPECT().
		GetHeartbeats(gomock.Any(), "m-1", gomock.Any(), gomock.Any()).
		Return(heartbeats, nil)

	var uploaded []byte

	mockStorage.EXPECT().
		UploadObject(gomock.Any(), "", "reports", gomock.Any(), "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, objectName, _ string, data []byte) (string, error) {
			assert.Contains(t, objectName, "m-1-")
			uploaded = data

			return "https://cdn.example.com/reports/" + objectName, nil
		})

	res, err := svc.Generate(context.Background(), dto.GenerateReportRequest{
		MonitorID: "m-1",
		From:      "2025-01-09T00:00:00Z",
		To:        "2025-01-11T00:00:00Z",
	})

	require.NoError(t, err)
	assert.Contains(t, res.ObjectURL, "https://cdn.example.com/reports/m-1-")

	assert.Equal(t, 4, res.Report.TotalChecks)
	assert.Equal(t, 3, res.Report.UpChecks)
	assert.Equal(t, 1, res.Report.DownChecks)
	assert.InDelta(t, 75.0, res.Report.UptimePercent, 0.01)
	assert.InDelta(t, 37.5, res.Report.AveragePingMs, 0.01)
	assert.Equal(t, "Netherlands", res.Report.Region.Country)
	assert.Equal(t, "Jan 09, 2025 01:00:00", res.Report.FromLocal)

	var stored dto.UptimeReport
	require.NoError(t, json.Unmarshal(uploaded, &stored))
	assert.Equal(t, res.Report, stored)
}

func TestReportService_GenerateMonitorNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonitors := monitorMocks.NewMockMonitor(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockMonitors, mockStorage, &config.Config{}, mocks.NewOtel())

	mockMonitors.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(monitorModel.Monitor{}, nil)

	_, err := svc.Generate(context.Background(), dto.GenerateReportRequest{MonitorID: "missing"})

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestReportService_GenerateInvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonitors := monitorMocks.NewMockMonitor(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockMonitors, mockStorage, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name string
		req  dto.GenerateReportRequest
	}{
		{
			name: "unparseable from",
			req:  dto.GenerateReportRequest{MonitorID: "m-1", From: "yesterday"},
		},
		{
			name: "from after to",
			req: dto.GenerateReportRequest{
				MonitorID: "m-1",
				From:      "2025-01-11T00:00:00Z",
				To:        "2025-01-09T00:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}
