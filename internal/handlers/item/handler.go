package item

import (
	"net/http"
	"shareit/infras/otel"
	commentDto "shareit/internal/domains/comment/model/dto"
	commentService "shareit/internal/domains/comment/service"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/service"
	"shareit/shared"
	"shareit/shared/constant"
	"shareit/shared/validator"
	"shareit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageItemDeleted = "Item deleted successfully"

type Handler struct {
	service  service.Item
	comments commentService.Comment
	otel     otel.Otel
}

func New(service service.Item, comments commentService.Comment, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		comments: comments,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/search", handler.SearchItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
		routerGroup.Post("/{id}/comment", handler.CreateComment)
	})
}

// CreateItem handles the creation of an item owned by the acting user.
// @Summary Create an item
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Data[dto.ItemResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /items [post]
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	userID, err := shared.RequireUserID(ctx)
	if err != nil {
		response.WithError(writer, request, err)

		return
	}

	req := dto.CreateItemRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, request, err)

		return
	}

	item, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(writer, request, err)

		return
	}

	scope.AddEvent("Item created successfully by user " + userID)

	response.WithJSON(writer, http.StatusCreated, item)
}

// GetItems lists the acting user's items with their bookings and comments.
// @Summary Get my items
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Success 200 {object} response.Data[[]dto.ItemDetailResponse]
// @Failure 400 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /items [get]
func (handler *Handler) GetItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	userID, err := shared.RequireUserID(ctx)
	if err != nil {
		response.WithError(writer, request, err)

		return
	}

	items, err := handler.service.GetByOwner(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// SearchItems finds available items by name or description.
// @Summary Search items
// @Tags Item
// @Produce json
// @Param text query string false "Case-insensitive fragment"
// @Success 200 {object} response.Data[[]dto.ItemResponse]
// @Failure 500 {object} response.Problem
// @Router /items/search [get]
func (handler *Handler) SearchItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchItems")
	defer scope.End()

	items, err := handler.service.Search(ctx, request.URL.Query().Get(constant.RequestParamText))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search items")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// GetItemByID retrieves an item with its last and next booking and its comments.
// @Summary Get an item by ID
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string false "Acting user"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Data[dto.ItemDetailResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /items/{id} [get]
func (handler *Handler) GetItemByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateID(id); err != nil {
		response.WithError(writer, request, err)

		return
	}

	userID, _ := shared.UserIDFromContext(ctx)

	item, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item by ID")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}

// UpdateItem patches an item of the acting user.
// @Summary Update an item by ID
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Data[dto.ItemResponse]
// @Failure 400 {object} response.Problem
// @Failure 403 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /items/{id} [patch]
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
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

	req := dto.UpdateItemRequest{}
	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, request, err)

		return
	}

	item, err := handler.service.Update(ctx, userID, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(writer, request, err)

		return
	}

	scope.AddEvent("Item updated successfully by user " + userID)

	response.WithJSON(writer, http.StatusOK, item)
}

// DeleteItem removes an item of the acting user.
// @Summary Delete an item by ID
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /items/{id} [delete]
func (handler *Handler) DeleteItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
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

	if err = handler.service.Delete(ctx, userID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(writer, request, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, messageItemDeleted)
}

// CreateComment posts a review of an item the acting user has finished booking.
// @Summary Comment on an item
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Item ID"
// @Param request body commentDto.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} response.Data[commentDto.CommentResponse]
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 500 {object} response.Problem
// @Router /items/{id}/comment [post]
func (handler *Handler) CreateComment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComment")
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

	req := commentDto.CreateCommentRequest{}
	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, request, err)

		return
	}

	comment, err := handler.comments.Create(ctx, userID, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create comment")

		response.WithError(writer, request, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, comment)
}
