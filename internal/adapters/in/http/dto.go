package http

import (
	"time"

	"booking/internal/core/application/notifications"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/job"
)

// CreateJobRequest is the payload for booking a new job.
// Durations cross the wire in minutes.
type CreateJobRequest struct {
	CustomerID      string     `json:"customer_id" validate:"required,uuid"`
	LanguageFrom    string     `json:"language_from" validate:"required"`
	LanguageTo      string     `json:"language_to" validate:"required"`
	City            string     `json:"city"`
	WindowStart     *time.Time `json:"window_start"`
	WindowEnd       *time.Time `json:"window_end"`
	Immediate       bool       `json:"immediate"`
	DurationMinutes int        `json:"duration_minutes" validate:"required,gt=0"`
}

// UpdateJobRequest replaces the booking details of an existing job. The
// payload is complete, not a patch: every detail field is written.
type UpdateJobRequest struct {
	LanguageFrom    string     `json:"language_from" validate:"required"`
	LanguageTo      string     `json:"language_to" validate:"required"`
	City            string     `json:"city"`
	WindowStart     *time.Time `json:"window_start"`
	WindowEnd       *time.Time `json:"window_end"`
	Immediate       bool       `json:"immediate"`
	DurationMinutes int        `json:"duration_minutes" validate:"required,gt=0"`
}

// AcceptJobRequest is the payload of the body-based acceptance route.
type AcceptJobRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// EndJobRequest carries the actual session length reported at completion.
type EndJobRequest struct {
	SessionMinutes int `json:"session_minutes" validate:"required,gt=0"`
}

// AdminUpdateRequest is the admin metadata side channel. Absent fields are
// left unchanged; booleans are explicit, never string sentinels.
type AdminUpdateRequest struct {
	SessionMinutes  *int     `json:"session_minutes" validate:"omitempty,gt=0"`
	Flagged         *bool    `json:"flagged"`
	ManuallyHandled *bool    `json:"manually_handled"`
	ByAdmin         *bool    `json:"by_admin"`
	AdminComment    *string  `json:"admin_comment"`
	DistanceKm      *float64 `json:"distance_km" validate:"omitempty,gte=0"`
	TravelMinutes   *int     `json:"travel_minutes" validate:"omitempty,gte=0"`
}

// DeliveryFailureResponse reports one notification that could not be
// delivered. Failures accompany a successful transition; they never fail it.
type DeliveryFailureResponse struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient,omitempty"`
	Reason    string `json:"reason"`
}

// JobResponse is the wire representation of a job.
type JobResponse struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	TranslatorID *string    `json:"translator_id,omitempty"`
	LanguageFrom string     `json:"language_from"`
	LanguageTo   string     `json:"language_to"`
	City         string     `json:"city,omitempty"`
	WindowStart  *time.Time `json:"window_start,omitempty"`
	WindowEnd    *time.Time `json:"window_end,omitempty"`
	Immediate    bool       `json:"immediate"`

	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	CancelReason    string `json:"cancel_reason,omitempty"`

	SessionMinutes  int    `json:"session_minutes,omitempty"`
	AdminComment    string `json:"admin_comment,omitempty"`
	Flagged         bool   `json:"flagged"`
	ManuallyHandled bool   `json:"manually_handled"`
	ByAdmin         bool   `json:"by_admin"`

	CreatedAt time.Time `json:"created_at"`
}

// TransitionResponse pairs the job after a lifecycle transition with any
// notification delivery failures.
type TransitionResponse struct {
	Job                  JobResponse               `json:"job"`
	NotificationFailures []DeliveryFailureResponse `json:"notification_failures,omitempty"`
}

// AcceptResponse reports the outcome of an acceptance attempt. A lost race is
// a 200 with accepted=false, not an error.
type AcceptResponse struct {
	Accepted             bool                      `json:"accepted"`
	Reason               string                    `json:"reason,omitempty"`
	Job                  *JobResponse              `json:"job,omitempty"`
	NotificationFailures []DeliveryFailureResponse `json:"notification_failures,omitempty"`
}

func jobToResponse(j *job.Job) JobResponse {
	resp := JobResponse{
		ID:              j.ID().String(),
		CustomerID:      j.CustomerID().String(),
		LanguageFrom:    j.LanguageFrom(),
		LanguageTo:      j.LanguageTo(),
		City:            j.City(),
		Immediate:       j.Immediate(),
		DurationMinutes: int(j.Duration().Minutes()),
		Status:          j.Status().String(),
		SessionMinutes:  int(j.SessionTime().Minutes()),
		AdminComment:    j.AdminComment(),
		Flagged:         j.Flagged(),
		ManuallyHandled: j.ManuallyHandled(),
		ByAdmin:         j.ByAdmin(),
		CreatedAt:       j.CreatedAt(),
	}

	if translatorID := j.Translator(); translatorID != nil {
		id := translatorID.String()
		resp.TranslatorID = &id
	}
	if j.CancelReason() != job.ReasonNone {
		resp.CancelReason = j.CancelReason().String()
	}
	if j.Window().Validate() == nil {
		start := j.Window().Start()
		end := j.Window().End()
		resp.WindowStart = &start
		resp.WindowEnd = &end
	}

	return resp
}

func viewToResponse(view queries.JobView) JobResponse {
	resp := JobResponse{
		ID:              view.ID.String(),
		CustomerID:      view.CustomerID.String(),
		LanguageFrom:    view.LanguageFrom,
		LanguageTo:      view.LanguageTo,
		City:            view.City,
		WindowStart:     view.WindowStart,
		WindowEnd:       view.WindowEnd,
		Immediate:       view.Immediate,
		DurationMinutes: int(view.Duration.Minutes()),
		Status:          view.Status,
		SessionMinutes:  int(view.SessionTime.Minutes()),
		AdminComment:    view.AdminComment,
		Flagged:         view.Flagged,
		ManuallyHandled: view.ManuallyHandled,
		ByAdmin:         view.ByAdmin,
		CreatedAt:       view.CreatedAt,
	}

	if view.TranslatorID != nil {
		id := view.TranslatorID.String()
		resp.TranslatorID = &id
	}
	if view.CancelReason != "None" {
		resp.CancelReason = view.CancelReason
	}

	return resp
}

func viewsToResponse(views []queries.JobView) []JobResponse {
	responses := make([]JobResponse, len(views))
	for i, view := range views {
		responses[i] = viewToResponse(view)
	}
	return responses
}

func failuresToResponse(failures []notifications.DeliveryFailure) []DeliveryFailureResponse {
	if len(failures) == 0 {
		return nil
	}

	responses := make([]DeliveryFailureResponse, len(failures))
	for i, failure := range failures {
		responses[i] = DeliveryFailureResponse{
			Channel: failure.Channel,
			Reason:  failure.Reason,
		}
		if failure.Recipient.Validate() == nil {
			responses[i].Recipient = failure.Recipient.String()
		}
	}
	return responses
}
