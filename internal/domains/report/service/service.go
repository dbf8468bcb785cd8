package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"vigil/config"
	"vigil/infras/otel"
	"vigil/infras/s3"
	monitorModel "vigil/internal/domains/monitor/model"
	monitorRepo "vigil/internal/domains/monitor/repository"
	"vigil/internal/domains/report/model/dto"
	"vigil/shared"
	"vigil/shared/constant"
	"vigil/shared/failure"
	"vigil/shared/timezone"

	"github.com/rs/zerolog/log"
)

const reportDirectory = "reports"

type Report interface {
	Generate(ctx context.Context, req dto.GenerateReportRequest) (dto.GenerateReportResponse, error)
}

type serviceImpl struct {
	monitors monitorRepo.Monitor
	storage  s3.S3
	cfg      *config.Config
	otel     otel.Otel
}

func New(monitors monitorRepo.Monitor, storage s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		monitors: monitors,
		storage:  storage,
		cfg:      cfg,
		otel:     otel,
	}
}

// Generate aggregates a monitor's heartbeats over a window into an uptime
// report, uploads it as a JSON object, and returns the report together
// with the object URL.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateReportRequest) (res dto.GenerateReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := parseWindow(req.From, req.To)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	monitor, err := s.monitors.Get(ctx, shared.FilterByID(req.MonitorID, monitorModel.FieldID, monitorModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get monitor")

		return res, fmt.Errorf("failed to get monitor: %w", err)
	}

	if monitor.ID == "" {
		return res, failure.NotFound("monitor not found") // nolint:wrapcheck
	}

	heartbeats, err := s.monitors.GetHeartbeats(ctx, monitor.ID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get heartbeats")

		return res, fmt.Errorf("failed to get heartbeats: %w", err)
	}

	report := buildReport(monitor, heartbeats, from, to)

	data, err := json.Marshal(report)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal report")

		return res, fmt.Errorf("failed to marshal report: %w", err)
	}

	objectName := fmt.Sprintf("%s-%d.json", monitor.ID, time.Now().Unix())

	objectURL, err := s.storage.UploadObject(ctx, "", reportDirectory, objectName, constant.ContentTypeJSON, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload report")

		return res, fmt.Errorf("failed to upload report: %w", err)
	}

	res.Report = report
	res.ObjectURL = objectURL

	return res, nil
}

func parseWindow(fromStr, toStr string) (from, to time.Time, err error) {
	to = time.Now().UTC()
	if toStr != "" {
		to, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			return from, to, fmt.Errorf("invalid 'to' timestamp: %w", err)
		}
	}

	from = to.Add(-7 * 24 * time.Hour)
	if fromStr != "" {
		from, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return from, to, fmt.Errorf("invalid 'from' timestamp: %w", err)
		}
	}

	if !from.Before(to) {
		return from, to, fmt.Errorf("'from' (%s) must be before 'to' (%s)", from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	return from, to, nil
}

func buildReport(monitor monitorModel.Monitor, heartbeats []monitorModel.Heartbeat, from, to time.Time) dto.UptimeReport {
	var upChecks, downChecks int
	var pingSum int64

	for _, hb := range heartbeats {
		switch hb.Status {
		case monitorModel.StatusUp:
			upChecks++
		case monitorModel.StatusDown:
			downChecks++
		}

		pingSum += hb.PingMs
	}

	total := len(heartbeats)

	var uptimePercent, averagePing float64
	if counted := upChecks + downChecks; counted > 0 {
		uptimePercent = float64(upChecks) / float64(counted) * 100
	}

	if total > 0 {
		averagePing = float64(pingSum) / float64(total)
	}

	fromUTC := from.UTC().Format(time.RFC3339)
	toUTC := to.UTC().Format(time.RFC3339)
	generatedAt := time.Now().UTC().Format(time.RFC3339)

	return dto.UptimeReport{
		MonitorID:     monitor.ID,
		MonitorName:   monitor.Name,
		MonitorURL:    monitor.URL,
		Timezone:      monitor.Timezone,
		Region:        timezone.Resolve(monitor.Timezone),
		From:          fromUTC,
		To:            toUTC,
		FromLocal:     localStamp(fromUTC, monitor.Timezone),
		ToLocal:       localStamp(toUTC, monitor.Timezone),
		TotalChecks:   total,
		UpChecks:      upChecks,
		DownChecks:    downChecks,
		UptimePercent: uptimePercent,
		AveragePingMs: averagePing,
		GeneratedAt:   generatedAt,
	}
}

func localStamp(utc, tz string) string {
	date := timezone.FormatDate(utc, tz)
	clock := timezone.FormatClockTime(utc, tz)

	if date == "" || clock == "" {
		return ""
	}

	return fmt.Sprintf("%s %s", date, clock)
}
