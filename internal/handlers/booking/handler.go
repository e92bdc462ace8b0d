package booking

import (
	"net/http"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/service"
	"shareit/shared"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/shared/validator"
	"shareit/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/owner", handler.GetOwnerBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.DecideBooking)
	})
}

// CreateBooking handles a booking request by the acting user.
// @Summary Book an item
// @Description The booking starts out WAITING for the owner's decision.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	userID, err := shared.RequireUserID(ctx)
	if err != nil {
		response.WithError(writer, request, err)

		return
	}

	req := dto.CreateBookingRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, request, err)

		return
	}

	booking, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, request, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + userID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists the acting user's bookings in a state.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	userID, state, ok := handler.listing(writer, request)
	if !ok {
		return
	}

	bookings, err := handler.service.GetByState(ctx, userID, state)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetOwnerBookings lists bookings of the acting user's items in a state.
// @Summary Get bookings of my items
// @Description An empty result is reported as 404.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /bookings/owner [get]
func (handler *Handler) GetOwnerBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerBookings")
	defer scope.End()

	userID, state, ok := handler.listing(writer, request)
	if !ok {
		return
	}

	bookings, err := handler.service.GetByOwner(ctx, userID, state)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner bookings")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// listing reads the acting user and the state parameter, answering the request itself on failure.
func (handler *Handler) listing(writer http.ResponseWriter, request *http.Request) (string, model.State, bool) {
	userID, err := shared.RequireUserID(request.Context())
	if err != nil {
		response.WithError(writer, request, err)

		return "", "", false
	}

	state, err := model.ParseState(request.URL.Query().Get(constant.RequestParamState))
	if err != nil {
		response.WithError(writer, request, failure.BadRequestFromString(model.MessageInvalidState))

		return "", "", false
	}

	return userID, state, true
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	userID, err := shared.RequireUserID(ctx)
	if err != nil {
		response.WithError(writer, request, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	if err = validator.ValidateID(id); err != nil {
		response.WithError(writer, request, err)

		return
	}

	booking, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// DecideBooking approves or rejects a booking on behalf of the item owner.
// @Summary Approve or reject a booking
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /bookings/{id} [patch]
func (handler *Handler) DecideBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideBooking")
	defer scope.End()

	userID, err := shared.RequireUserID(ctx)
	if err != nil {
		response.WithError(writer, request, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	if err = validator.ValidateID(id); err != nil {
		response.WithError(writer, request, err)

		return
	}

	approved, err := strconv.ParseBool(request.URL.Query().Get(constant.RequestParamApproved))
	if err != nil {
		response.WithError(writer, request, failure.BadRequestFromString(model.MessageApproved))

		return
	}

	booking, err := handler.service.Approve(ctx, userID, id, approved)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decide booking")

		response.WithError(writer, request, err)

		return
	}

	scope.AddEvent("Booking " + booking.Status + " by user " + userID)

	response.WithJSON(writer, http.StatusOK, booking)
}
