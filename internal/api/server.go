package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/timeflow/internal/service"
)

type Server struct {
	mx               *chi.Mux
	trackerService   service.TrackerServiceI
	analyticsService service.AnalyticsServiceI
	backupService    service.BackupServiceI
}

type ServicesList struct {
	TrackerService   service.TrackerServiceI
	AnalyticsService service.AnalyticsServiceI
	BackupService    service.BackupServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		trackerService:   servicesOptions.TrackerService,
		analyticsService: servicesOptions.AnalyticsService,
		backupService:    servicesOptions.BackupService,
	}
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendar", s.GetCalendar)
		r.Get("/days/{date}", s.GetDay)
		r.Put("/days/{date}/slots/{slotID}", s.SaveSlot)
		r.Get("/analytics/daily/{date}", s.GetDailyAnalytics)
		r.Get("/analytics/weekly/{date}", s.GetWeeklyAnalytics)
		r.Get("/analytics/monthly/{date}", s.GetMonthlyAnalytics)
		r.Get("/backup", s.ExportBackup)
		r.Post("/backup", s.ImportBackup)
	})
	return s
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}

// Handler exposes the routed mux without binding a listener, for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
