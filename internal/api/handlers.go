package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/timeflow/internal/error_values"
	"github.com/limbo/timeflow/internal/service"
	"github.com/limbo/timeflow/pkg/entity"
	"github.com/limbo/timeflow/pkg/httputil"
	"github.com/limbo/timeflow/pkg/timeslot"
)

type SaveSlotRequest struct {
	Activity string `json:"activity"`
	Category string `json:"category"`
}

type CalendarResponse struct {
	Slots         []timeslot.Slot     `json:"slots"`
	Categories    []timeslot.Category `json:"categories"`
	CurrentSlotID string              `json:"currentSlotId"`
}

// GetCalendar serves the fixed slot grid and category taxonomy the UI
// renders the log view from.
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, CalendarResponse{
		Slots:         timeslot.Slots(),
		Categories:    timeslot.Categories,
		CurrentSlotID: timeslot.CurrentSlotID(time.Now()),
	})
}

func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	dayData, err := s.trackerService.GetDay(ctx, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("get day error: invalid date", slog.String("date", date))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrInvalidDate.Error(), nil)
			return
		}
		logger.Error("get day error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reading day", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dayData)
}

func (s *Server) SaveSlot(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SaveSlotRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save slot error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.trackerService.SaveEntry(ctx, &service.SaveEntryRequest{
		Date:     chi.URLParam(r, "date"),
		SlotID:   chi.URLParam(r, "slotID"),
		Activity: req.Activity,
		Category: req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("save slot error: clearing empty slot")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no entry logged for this slot", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("save slot error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry", err)
		default:
			logger.Error("save slot error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving entry", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date":   chi.URLParam(r, "date"),
		"slotId": chi.URLParam(r, "slotID"),
	})
	logger.Info("slot saved")
}

func (s *Server) GetDailyAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	metrics, err := s.analyticsService.DailyMetrics(ctx, date)
	s.writeMetrics(w, logger, metrics, err)
}

func (s *Server) GetWeeklyAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	metrics, err := s.analyticsService.WeeklyMetrics(ctx, date)
	s.writeMetrics(w, logger, metrics, err)
}

func (s *Server) GetMonthlyAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	metrics, err := s.analyticsService.MonthlyMetrics(ctx, date)
	s.writeMetrics(w, logger, metrics, err)
}

// writeMetrics is the shared response path of the three analytics
// handlers; metrics may be *entity.DailyMetrics or *entity.PeriodMetrics.
func (s *Server) writeMetrics(w http.ResponseWriter, logger *slog.Logger, metrics any, err error) {
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("analytics error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrInvalidDate.Error(), nil)
			return
		}
		logger.Error("analytics error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing analytics", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, metrics)
}

func (s *Server) ExportBackup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	payload, err := s.backupService.Export(ctx)
	if err != nil {
		logger.Error("export error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while exporting backup", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, payload)
	logger.Info("backup exported")
}

func (s *Server) ImportBackup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var payload entity.BackupPayload
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		logger.Error("import error: unreadable payload")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrUnreadableBackup.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	err = s.backupService.Import(ctx, &payload)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidBackupFormat) {
			logger.Error("import error: invalid format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrInvalidBackupFormat.Error(), nil)
			return
		}
		logger.Error("import error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while importing backup", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"imported": len(payload.Data),
	})
	logger.Info("backup imported")
}
