package service

import (
	"github.com/MKhiriev/aion/internal/adapter"
	"github.com/MKhiriev/aion/internal/config"
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/validators"
)

type Services struct {
	AuthService        AuthService
	LifeDomainService  LifeDomainService
	EventService       EventService
	MoodService        MoodService
	TransactionService TransactionService
	GoalService        GoalService
	ContactService     ContactService
	InsightService     InsightService
	DashboardService   DashboardService
	SuggestionService  SuggestionService
}

func NewServices(storages *store.Storages, suggestionClient adapter.SuggestionClient, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewEntityValidator()

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		LifeDomainService:  NewLifeDomainService(storages.LifeDomainRepository, validator, logger),
		EventService:       NewEventService(storages.EventRepository, validator, logger),
		MoodService:        NewMoodService(storages.MoodRepository, validator, logger),
		TransactionService: NewTransactionService(storages.TransactionRepository, validator, logger),
		GoalService:        NewGoalService(storages.GoalRepository, validator, logger),
		ContactService:     NewContactService(storages.ContactRepository, validator, logger),
		InsightService:     NewInsightService(storages.InsightRepository, validator, logger),
		DashboardService:   NewDashboardService(storages, logger),
		SuggestionService:  NewSuggestionService(suggestionClient, storages, logger),
	}
}
