package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-registration-api/internal/auth"
	"github.com/gdg-garage/hotel-registration-api/internal/editor"
	"github.com/gdg-garage/hotel-registration-api/internal/format"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/gdg-garage/hotel-registration-api/internal/service"
)

type RegistrationHandler struct {
	registrations *service.Registrations
	authHandler   *auth.AuthHandler
	formatter     *format.Formatter
}

func NewRegistrationHandler(registrations *service.Registrations, authHandler *auth.AuthHandler, formatter *format.Formatter) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations, authHandler: authHandler, formatter: formatter}
}

// RegistrationFields is the editable part of a registration as sent by
// the booking form.
type RegistrationFields struct {
	FirstName        string    `json:"first_name" doc:"Guest first name"`
	LastName         string    `json:"last_name" doc:"Guest last name"`
	Email            string    `json:"email" doc:"Guest email address"`
	CheckInDate      time.Time `json:"check_in_date" doc:"Date of arrival"`
	CheckOutDate     time.Time `json:"check_out_date" doc:"Date of departure, at least one day after arrival"`
	NumberOfAdults   int       `json:"number_of_adults" minimum:"0"`
	NumberOfChildren int       `json:"number_of_children" minimum:"0"`
	WifiEnabled      bool      `json:"wifi_enabled"`
	RoomID           *int      `json:"room_id,omitempty" doc:"Catalog room id"`
}

// applyTo copies the form into an editing session.
func (in RegistrationFields) applyTo(sess *editor.Session) error {
	err := sess.Apply(func(r *models.Registration) {
		r.Owner = models.Person{FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}
		r.CheckInDate = in.CheckInDate
		r.CheckOutDate = in.CheckOutDate
		r.NumberOfAdults = in.NumberOfAdults
		r.NumberOfChildren = in.NumberOfChildren
		r.WifiEnabled = in.WifiEnabled
		r.Room = nil
	})
	if err != nil {
		return err
	}
	if in.RoomID != nil {
		return sess.SelectRoom(*in.RoomID)
	}
	return nil
}

type ListRegistrationsResponse struct {
	Body struct {
		Sections []SectionView `json:"sections"`
	}
}

func (h *RegistrationHandler) HandleList(ctx context.Context, input *struct{}) (*ListRegistrationsResponse, error) {
	sections := h.registrations.Sections()

	res := &ListRegistrationsResponse{}
	res.Body.Sections = make([]SectionView, 0, len(sections))
	for _, s := range sections {
		rows := make([]RegistrationView, 0, len(s.Registrations))
		for _, r := range s.Registrations {
			rows = append(rows, h.view(r))
		}
		res.Body.Sections = append(res.Body.Sections, sectionView(s, rows, h.formatter))
	}
	return res, nil
}

type RegistrationIDInput struct {
	ID string `path:"id" doc:"Registration id"`
}

type RegistrationResponse struct {
	Body RegistrationView
}

func (h *RegistrationHandler) HandleGet(ctx context.Context, input *RegistrationIDInput) (*RegistrationResponse, error) {
	reg, err := h.registrations.Get(input.ID)
	if err != nil {
		return nil, apiError(err)
	}
	return &RegistrationResponse{Body: h.view(reg)}, nil
}

type CreateRegistrationRequest struct {
	auth.AuthInput
	Body RegistrationFields
}

func (h *RegistrationHandler) HandleCreate(ctx context.Context, input *CreateRegistrationRequest) (*RegistrationResponse, error) {
	staffID, err := h.authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	sess := h.registrations.NewDraft()
	if err := input.Body.applyTo(sess); err != nil {
		return nil, apiError(err)
	}
	reg, err := sess.Save()
	if err != nil {
		return nil, apiError(err)
	}

	created, err := h.registrations.Create(ctx, staffID, reg)
	if err != nil {
		return nil, apiError(err)
	}
	return &RegistrationResponse{Body: h.view(created)}, nil
}

type UpdateRegistrationRequest struct {
	auth.AuthInput
	ID   string `path:"id" doc:"Registration id"`
	Body RegistrationFields
}

func (h *RegistrationHandler) HandleUpdate(ctx context.Context, input *UpdateRegistrationRequest) (*RegistrationResponse, error) {
	staffID, err := h.authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	sess, err := h.registrations.Open(input.ID)
	if err != nil {
		return nil, apiError(err)
	}
	if err := sess.BeginEdit(); err != nil {
		return nil, apiError(err)
	}
	if err := input.Body.applyTo(sess); err != nil {
		return nil, apiError(err)
	}
	reg, err := sess.Save()
	if err != nil {
		return nil, apiError(err)
	}

	updated, err := h.registrations.Update(ctx, staffID, input.ID, reg)
	if err != nil {
		return nil, apiError(err)
	}
	return &RegistrationResponse{Body: h.view(updated)}, nil
}

type DeleteRegistrationRequest struct {
	auth.AuthInput
	ID string `path:"id" doc:"Registration id"`
}

func (h *RegistrationHandler) HandleDelete(ctx context.Context, input *DeleteRegistrationRequest) (*struct{}, error) {
	staffID, err := h.authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	if err := h.registrations.Delete(ctx, staffID, input.ID); err != nil {
		return nil, apiError(err)
	}
	return nil, nil
}

type HistoryRequest struct {
	auth.AuthInput
	ID string `path:"id" doc:"Registration id"`
}

type HistoryEntry struct {
	Action    string           `json:"action"`
	StaffID   uint             `json:"staff_id"`
	CreatedAt time.Time        `json:"created_at"`
	Snapshot  RegistrationView `json:"snapshot"`
}

type HistoryResponse struct {
	Body struct {
		Entries []HistoryEntry `json:"entries"`
	}
}

// HandleHistory lists the stored snapshots of a registration, newest first.
// Deleted registrations keep their history.
func (h *RegistrationHandler) HandleHistory(ctx context.Context, input *HistoryRequest) (*HistoryResponse, error) {
	if _, err := h.authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	history, err := h.registrations.History(ctx, input.ID)
	if err != nil {
		return nil, apiError(err)
	}
	if len(history) == 0 {
		return nil, huma.Error404NotFound("No history for registration " + input.ID)
	}

	res := &HistoryResponse{}
	res.Body.Entries = make([]HistoryEntry, 0, len(history))
	for _, entry := range history {
		snapshot := entry.Registration(entry.RegistrationUID)
		res.Body.Entries = append(res.Body.Entries, HistoryEntry{
			Action:    entry.Action,
			StaffID:   entry.StaffID,
			CreatedAt: entry.CreatedAt,
			Snapshot:  registrationView(snapshot, h.registrations.Quote(snapshot), false, h.formatter),
		})
	}
	return res, nil
}

func (h *RegistrationHandler) view(reg models.Registration) RegistrationView {
	return registrationView(reg, h.registrations.Quote(reg), h.registrations.CanEdit(reg), h.formatter)
}

func (h *RegistrationHandler) authorize(ctx context.Context, cookie string) (uint, error) {
	staffID, err := h.authHandler.Authorize(ctx, cookie)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized")
	}
	return staffID, nil
}

// apiError maps domain errors to HTTP problems.
func apiError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, service.ErrNotEditable), errors.Is(err, editor.ErrReadOnly):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, editor.ErrNotReady), errors.Is(err, editor.ErrUnknownRoom):
		return huma.Error422UnprocessableEntity(err.Error())
	}
	log.Printf("Request failed: %v", err)
	return huma.Error500InternalServerError("Failed to process registration")
}
