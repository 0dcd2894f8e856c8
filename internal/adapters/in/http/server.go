// Package http exposes the booking use cases over a JSON API. Handlers only
// translate between the wire format and commands or queries; every rule lives
// in the core. The acting user arrives in headers, set by the gateway that
// authenticated the request.
package http

import (
	"net/http"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/actor"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

// Server wires the HTTP routes to the application command and query handlers.
type Server struct {
	validate *validator.Validate

	createJobHandler           commands.CreateJobCommandHandler
	updateJobHandler           commands.UpdateJobCommandHandler
	acceptJobHandler           commands.AcceptJobCommandHandler
	startJobHandler            commands.StartJobCommandHandler
	endJobHandler              commands.EndJobCommandHandler
	cancelJobHandler           commands.CancelJobCommandHandler
	customerNotCallHandler     commands.CustomerNotCallCommandHandler
	reopenJobHandler           commands.ReopenJobCommandHandler
	updateAdminHandler         commands.UpdateAdminMetadataCommandHandler
	resendNotificationsHandler commands.ResendNotificationsCommandHandler
	resendSMSHandler           commands.ResendSMSCommandHandler

	getJobHandler           queries.GetJobQueryHandler
	getUserJobsHandler      queries.GetUserJobsQueryHandler
	getJobHistoryHandler    queries.GetJobHistoryQueryHandler
	getAllJobsHandler       queries.GetAllJobsQueryHandler
	getPotentialJobsHandler queries.GetPotentialJobsQueryHandler
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	updateJobHandler commands.UpdateJobCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	startJobHandler commands.StartJobCommandHandler,
	endJobHandler commands.EndJobCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	customerNotCallHandler commands.CustomerNotCallCommandHandler,
	reopenJobHandler commands.ReopenJobCommandHandler,
	updateAdminHandler commands.UpdateAdminMetadataCommandHandler,
	resendNotificationsHandler commands.ResendNotificationsCommandHandler,
	resendSMSHandler commands.ResendSMSCommandHandler,
	getJobHandler queries.GetJobQueryHandler,
	getUserJobsHandler queries.GetUserJobsQueryHandler,
	getJobHistoryHandler queries.GetJobHistoryQueryHandler,
	getAllJobsHandler queries.GetAllJobsQueryHandler,
	getPotentialJobsHandler queries.GetPotentialJobsQueryHandler,
) *Server {
	return &Server{
		validate:                   validator.New(),
		createJobHandler:           createJobHandler,
		updateJobHandler:           updateJobHandler,
		acceptJobHandler:           acceptJobHandler,
		startJobHandler:            startJobHandler,
		endJobHandler:              endJobHandler,
		cancelJobHandler:           cancelJobHandler,
		customerNotCallHandler:     customerNotCallHandler,
		reopenJobHandler:           reopenJobHandler,
		updateAdminHandler:         updateAdminHandler,
		resendNotificationsHandler: resendNotificationsHandler,
		resendSMSHandler:           resendSMSHandler,
		getJobHandler:              getJobHandler,
		getUserJobsHandler:         getUserJobsHandler,
		getJobHistoryHandler:       getJobHistoryHandler,
		getAllJobsHandler:          getAllJobsHandler,
		getPotentialJobsHandler:    getPotentialJobsHandler,
	}
}

// RegisterRoutes mounts every route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/jobs", s.CreateJob)
	api.GET("/jobs", s.GetAllJobs)
	api.GET("/jobs/:id", s.GetJob)
	api.PUT("/jobs/:id", s.UpdateJob)
	api.POST("/jobs/accept", s.AcceptJobFromBody)
	api.POST("/jobs/:id/accept", s.AcceptJob)
	api.POST("/jobs/:id/start", s.StartJob)
	api.POST("/jobs/:id/end", s.EndJob)
	api.POST("/jobs/:id/cancel", s.CancelJob)
	api.POST("/jobs/:id/customer-not-call", s.CustomerNotCall)
	api.POST("/jobs/:id/reopen", s.ReopenJob)
	api.PATCH("/jobs/:id/admin", s.UpdateAdminMetadata)
	api.POST("/jobs/:id/resend-notifications", s.ResendNotifications)
	api.POST("/jobs/:id/resend-sms", s.ResendSMS)

	api.GET("/users/:id/jobs", s.GetUserJobs)
	api.GET("/users/:id/jobs/history", s.GetJobHistory)
	api.GET("/translators/:id/potential-jobs", s.GetPotentialJobs)
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	acting, err := s.actorFromHeaders(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	var req CreateJobRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	details := job.Details{
		LanguageFrom: req.LanguageFrom,
		LanguageTo:   req.LanguageTo,
		City:         req.City,
		Immediate:    req.Immediate,
		Duration:     time.Duration(req.DurationMinutes) * time.Minute,
	}
	if req.WindowStart != nil && req.WindowEnd != nil {
		details.Window, err = kernel.NewTimeWindow(*req.WindowStart, *req.WindowEnd)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewCreateJobCommand(kernel.NewUUID(), customerID, acting, details)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TransitionResponse{
		Job:                  jobToResponse(result.Job),
		NotificationFailures: failuresToResponse(result.NotificationFailures),
	})
}

// UpdateJob handles PUT /api/v1/jobs/:id, replacing the booking details of a
// job that has not started yet.
func (s *Server) UpdateJob(ctx echo.Context) error {
	var req UpdateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	details := job.Details{
		LanguageFrom: req.LanguageFrom,
		LanguageTo:   req.LanguageTo,
		City:         req.City,
		Immediate:    req.Immediate,
		Duration:     time.Duration(req.DurationMinutes) * time.Minute,
	}
	if req.WindowStart != nil && req.WindowEnd != nil {
		window, err := kernel.NewTimeWindow(*req.WindowStart, *req.WindowEnd)
		if err != nil {
			return writeError(ctx, err)
		}
		details.Window = window
	}

	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewUpdateJobCommand(jobID, acting, details)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.updateJobHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// AcceptJob handles POST /api/v1/jobs/:id/accept. A lost acceptance race is a
// 200 with accepted=false; only malformed input or unknown jobs are errors.
func (s *Server) AcceptJob(ctx echo.Context) error {
	return s.acceptWithRawID(ctx, ctx.Param("id"))
}

// AcceptJobFromBody handles POST /api/v1/jobs/accept, the body-based variant
// kept for clients that send the job id in the payload.
func (s *Server) AcceptJobFromBody(ctx echo.Context) error {
	var req AcceptJobRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	return s.acceptWithRawID(ctx, req.JobID)
}

func (s *Server) acceptWithRawID(ctx echo.Context, rawJobID string) error {
	acting, err := s.actorFromHeaders(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptJobCommandFromID(rawJobID, acting)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	result, err := s.acceptJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := AcceptResponse{
		Accepted:             result.Accepted,
		Reason:               result.Reason,
		NotificationFailures: failuresToResponse(result.NotificationFailures),
	}
	if result.Job != nil {
		jobResp := jobToResponse(result.Job)
		resp.Job = &jobResp
	}

	return ctx.JSON(http.StatusOK, resp)
}

// StartJob handles POST /api/v1/jobs/:id/start.
func (s *Server) StartJob(ctx echo.Context) error {
	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewStartJobCommand(jobID, acting)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.startJobHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// EndJob handles POST /api/v1/jobs/:id/end.
func (s *Server) EndJob(ctx echo.Context) error {
	var req EndJobRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewEndJobCommand(jobID, acting, time.Duration(req.SessionMinutes)*time.Minute)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.endJobHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelJob handles POST /api/v1/jobs/:id/cancel. The cancel reason is
// derived from the caller's role, never taken from the request.
func (s *Server) CancelJob(ctx echo.Context) error {
	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewCancelJobCommand(jobID, acting)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.cancelJobHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CustomerNotCall handles POST /api/v1/jobs/:id/customer-not-call.
func (s *Server) CustomerNotCall(ctx echo.Context) error {
	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewCustomerNotCallCommand(jobID, acting)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.customerNotCallHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ReopenJob handles POST /api/v1/jobs/:id/reopen.
func (s *Server) ReopenJob(ctx echo.Context) error {
	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewReopenJobCommand(jobID, acting)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.reopenJobHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// UpdateAdminMetadata handles PATCH /api/v1/jobs/:id/admin.
func (s *Server) UpdateAdminMetadata(ctx echo.Context) error {
	var req AdminUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return writeError(ctx, err)
	}

	update := job.AdminUpdate{
		Flagged:         req.Flagged,
		ManuallyHandled: req.ManuallyHandled,
		ByAdmin:         req.ByAdmin,
		AdminComment:    req.AdminComment,
	}
	if req.SessionMinutes != nil {
		sessionTime := time.Duration(*req.SessionMinutes) * time.Minute
		update.SessionTime = &sessionTime
	}

	var travelTime *time.Duration
	if req.TravelMinutes != nil {
		t := time.Duration(*req.TravelMinutes) * time.Minute
		travelTime = &t
	}

	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewUpdateAdminMetadataCommand(jobID, acting, update, req.DistanceKm, travelTime)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.updateAdminHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ResendNotifications handles POST /api/v1/jobs/:id/resend-notifications.
func (s *Server) ResendNotifications(ctx echo.Context) error {
	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewResendNotificationsCommand(jobID, acting)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.resendNotificationsHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ResendSMS handles POST /api/v1/jobs/:id/resend-sms.
func (s *Server) ResendSMS(ctx echo.Context) error {
	return s.handleTransition(ctx, func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error) {
		cmd, err := commands.NewResendSMSCommand(jobID, acting)
		if err != nil {
			return commands.TransitionResult{}, err
		}
		return s.resendSMSHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// GetJob handles GET /api/v1/jobs/:id.
func (s *Server) GetJob(ctx echo.Context) error {
	acting, err := s.actorFromHeaders(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetJobQuery(jobID, acting)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getJobHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewToResponse(view))
}

// GetUserJobs handles GET /api/v1/users/:id/jobs.
func (s *Server) GetUserJobs(ctx echo.Context) error {
	acting, err := s.actorFromHeaders(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetUserJobsQuery(userID, acting)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getUserJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsToResponse(views))
}

// GetJobHistory handles GET /api/v1/users/:id/jobs/history.
// Optional query parameters: from and to (RFC 3339), status (repeatable).
func (s *Server) GetJobHistory(ctx echo.Context) error {
	acting, err := s.actorFromHeaders(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	var statuses []job.Status
	for _, raw := range ctx.QueryParams()["status"] {
		status, statusErr := job.StatusFromString(raw)
		if statusErr != nil {
			return writeBadRequest(ctx, statusErr.Error())
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewGetJobHistoryQuery(userID, acting, from, to, statuses)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getJobHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsToResponse(views))
}

// GetAllJobs handles GET /api/v1/jobs.
func (s *Server) GetAllJobs(ctx echo.Context) error {
	acting, err := s.actorFromHeaders(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetAllJobsQuery(acting)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getAllJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsToResponse(views))
}

// GetPotentialJobs handles GET /api/v1/translators/:id/potential-jobs.
func (s *Server) GetPotentialJobs(ctx echo.Context) error {
	acting, err := s.actorFromHeaders(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	translatorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetPotentialJobsQuery(translatorID, acting)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getPotentialJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsToResponse(views))
}

func (s *Server) handleTransition(
	ctx echo.Context,
	run func(jobID kernel.UUID, acting actor.Actor) (commands.TransitionResult, error),
) error {
	acting, err := s.actorFromHeaders(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	result, err := run(jobID, acting)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{
		Job:                  jobToResponse(result.Job),
		NotificationFailures: failuresToResponse(result.NotificationFailures),
	})
}

func (s *Server) actorFromHeaders(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerActorID))
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get(headerActorRole))
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
