package request

import (
	"net/http"
	"shareit/infras/otel"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/service"
	"shareit/shared"
	"shareit/shared/constant"
	"shareit/shared/validator"
	"shareit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ItemRequest
	otel    otel.Otel
}

func New(service service.ItemRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetOwnRequests)
		routerGroup.Get("/all", handler.GetOtherRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
	})
}

// CreateRequest records a request for an item nobody offers yet.
// @Summary Create an item request
// @Tags Request
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param request body dto.CreateItemRequestRequest true "Create Item Request"
// @Success 201 {object} response.Data[dto.ItemRequestResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /requests [post]
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	userID, err := shared.RequireUserID(ctx)
	if err != nil {
		response.WithError(writer, request, err)

		return
	}

	req := dto.CreateItemRequestRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, request, err)

		return
	}

	itemRequest, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item request")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, itemRequest)
}

// GetOwnRequests lists the acting user's requests with the items answering them.
// @Summary Get my item requests
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Success 200 {object} response.Data[[]dto.ItemRequestResponse]
// @Failure 400 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /requests [get]
func (handler *Handler) GetOwnRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnRequests")
	defer scope.End()

	userID, err := shared.RequireUserID(ctx)
	if err != nil {
		response.WithError(writer, request, err)

		return
	}

	requests, err := handler.service.GetOwn(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own item requests")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, requests)
}

// GetOtherRequests lists the requests of everybody else.
// @Summary Get item requests of other users
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Success 200 {object} response.Data[[]dto.ItemRequestResponse]
// @Failure 400 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /requests/all [get]
func (handler *Handler) GetOtherRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOtherRequests")
	defer scope.End()

	userID, err := shared.RequireUserID(ctx)
	if err != nil {
		response.WithError(writer, request, err)

		return
	}

	requests, err := handler.service.GetAll(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item requests")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, requests)
}

// GetRequestByID retrieves a request with its answering items.
// @Summary Get an item request by ID
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header string false "Acting user"
// @Param id path string true "Request ID"
// @Success 200 {object} response.Data[dto.ItemRequestResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /requests/{id} [get]
func (handler *Handler) GetRequestByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateID(id); err != nil {
		response.WithError(writer, request, err)

		return
	}

	userID, _ := shared.UserIDFromContext(ctx)

	itemRequest, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item request by ID")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, itemRequest)
}
