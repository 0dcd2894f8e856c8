package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"booking/internal/adapters/out/notify"
	"booking/internal/adapters/out/postgres"
	"booking/internal/adapters/out/postgres/contactrepo"
	"booking/internal/core/application/notifications"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/services"
	"booking/internal/jobs"

	"gorm.io/gorm"
)

const defaultReminderLead = 30 * time.Minute

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	planner      services.AudiencePlanner
	dispatcher   *notifications.Dispatcher
	logger       *slog.Logger
	reminderLead time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gateway := notify.NewHTTPGateway(config.PushGatewayURL, config.SMSGatewayURL, config.NotifyAPIKey)
	directory := contactrepo.NewGormRecipientDirectory(gormDB)

	reminderLead := defaultReminderLead
	if minutes, err := strconv.Atoi(config.ReminderLeadMinutes); err == nil && minutes > 0 {
		reminderLead = time.Duration(minutes) * time.Minute
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		planner:      services.NewAudiencePlanner(),
		dispatcher:   notifications.NewDispatcher(directory, gateway, logger),
		logger:       logger,
		reminderLead: reminderLead,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) metadataUoWFactory() commands.MetadataUoWFactory {
	return FuncMetadataUoWFactory(func() commands.MetadataUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateStartJobCommandHandler() commands.StartJobCommandHandler {
	return commands.NewStartJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateEndJobCommandHandler() commands.EndJobCommandHandler {
	return commands.NewEndJobCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateCustomerNotCallCommandHandler() commands.CustomerNotCallCommandHandler {
	return commands.NewCustomerNotCallCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateReopenJobCommandHandler() commands.ReopenJobCommandHandler {
	return commands.NewReopenJobCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateAdminMetadataCommandHandler() commands.UpdateAdminMetadataCommandHandler {
	return commands.NewUpdateAdminMetadataCommandHandler(c.metadataUoWFactory())
}

func (c *CompositionRoot) CreateResendNotificationsCommandHandler() commands.ResendNotificationsCommandHandler {
	return commands.NewResendNotificationsCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateResendSMSCommandHandler() commands.ResendSMSCommandHandler {
	return commands.NewResendSMSCommandHandler(c.jobUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateExpireJobsCommandHandler() commands.ExpireJobsCommandHandler {
	return commands.NewExpireJobsCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateRemindUpcomingSessionsCommandHandler() commands.RemindUpcomingSessionsCommandHandler {
	return commands.NewRemindUpcomingSessionsCommandHandler(c.jobUoWFactory(), c.planner, c.dispatcher)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserJobsQueryHandler() queries.GetUserJobsQueryHandler {
	return queries.NewGetUserJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobHistoryQueryHandler() queries.GetJobHistoryQueryHandler {
	return queries.NewGetJobHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPotentialJobsQueryHandler() queries.GetPotentialJobsQueryHandler {
	return queries.NewGetPotentialJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireJobsCommandHandler(),
		c.CreateRemindUpcomingSessionsCommandHandler(),
		c.reminderLead,
		c.logger,
	)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncMetadataUoWFactory func() commands.MetadataUoW

func (f FuncMetadataUoWFactory) Create() commands.MetadataUoW {
	return f()
}
