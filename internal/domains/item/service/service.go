package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Item=MockItemService

import (
	"context"
	"fmt"
	"shareit/config"
	"shareit/infras/otel"
	bookingModel "shareit/internal/domains/booking/model"
	bookingService "shareit/internal/domains/booking/service"
	commentService "shareit/internal/domains/comment/service"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/repository"
	requestModel "shareit/internal/domains/request/model"
	requestRepo "shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

type Item interface {
	Create(ctx context.Context, userID string, req dto.CreateItemRequest) (dto.ItemResponse, error)
	Update(ctx context.Context, userID, id string, req dto.UpdateItemRequest) (dto.ItemResponse, error)
	Get(ctx context.Context, userID, id string) (dto.ItemDetailResponse, error)
	GetByOwner(ctx context.Context, userID string) ([]dto.ItemDetailResponse, error)
	Search(ctx context.Context, text string) ([]dto.ItemResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type serviceImpl struct {
	repo        repository.Item
	userRepo    userRepo.User
	requestRepo requestRepo.ItemRequest
	bookings    bookingService.Booking
	comments    commentService.Comment
	cfg         *config.Config
	cache       cache.RedisCache
	clock       timezone.Clock
	otel        otel.Otel
}

func New(
	repo repository.Item,
	userRepo userRepo.User,
	requestRepo requestRepo.ItemRequest,
	bookings bookingService.Booking,
	comments commentService.Comment,
	cfg *config.Config,
	cache cache.RedisCache,
	clock timezone.Clock,
	otel otel.Otel,
) Item {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookings:    bookings,
		comments:    comments,
		cfg:         cfg,
		cache:       cache,
		clock:       clock,
		otel:        otel,
	}
}

var byCreation = gDto.QueryParams{
	SortBy:  model.TableName + "." + constant.FieldCreatedAt + ", " + model.TableName + "." + model.FieldID,
	SortDir: gDto.SortDirAsc,
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if owner exists")

		return res, fmt.Errorf("failed to check if owner exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound(userModel.MessageNotFound) //nolint:wrapcheck
	}

	if req.RequestID != nil {
		exists, err = s.requestRepo.Exist(ctx, shared.FilterByID(*req.RequestID, requestModel.FieldID, requestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if item request exists")

			return res, fmt.Errorf("failed to check if item request exists: %w", err)
		}

		if !exists {
			return res, failure.NotFound(requestModel.MessageNotFound) //nolint:wrapcheck
		}
	}

	item := req.ToModel(userID, s.clock.Now())

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	s.invalidateRequest(ctx, item.RequestID)

	res.FromModel(item)

	return res, nil
}

// Update is reserved to the owner of the item.
func (s *serviceImpl) Update(ctx context.Context, userID, id string, req dto.UpdateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound(model.MessageNotFound) //nolint:wrapcheck
	}

	if item.OwnerID != userID {
		return res, failure.Forbidden(model.MessageForbidden) //nolint:wrapcheck
	}

	if req.IsEmpty() {
		res.FromModel(item)

		return res, nil
	}

	if _, err = s.repo.Update(ctx, shared.TransformFields(req, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update item")

		return res, fmt.Errorf("failed to update item: %w", err)
	}

	s.invalidateRequest(ctx, item.RequestID)

	if req.Name != nil {
		shared.InvalidateCaches(ctx, s.cache, bookingModel.CacheKeyGet)
	}

	res.FromModel(req.Apply(item))

	return res, nil
}

// Get shows the item to anyone, with its last and next booking and its comments.
func (s *serviceImpl) Get(ctx context.Context, _, id string) (res dto.ItemDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound(model.MessageNotFound) //nolint:wrapcheck
	}

	details, err := s.details(ctx, []model.Item{item})
	if err != nil {
		return res, err
	}

	return details[0], nil
}

// GetByOwner lists the items of userID, enriched like Get.
func (s *serviceImpl) GetByOwner(ctx context.Context, userID string) (res []dto.ItemDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.repo.GetAll(ctx, byCreation, ownerFilter(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get items by owner")

		return nil, fmt.Errorf("failed to get items by owner: %w", err)
	}

	return s.details(ctx, items)
}

// details resolves bookings and comments for all items with one batch call each.
func (s *serviceImpl) details(ctx context.Context, items []model.Item) ([]dto.ItemDetailResponse, error) {
	res := make([]dto.ItemDetailResponse, len(items))
	if len(items) == 0 {
		return res, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	lastNext, err := s.bookings.ResolveLastNext(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bookings of items: %w", err)
	}

	comments, err := s.comments.GetByItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments of items: %w", err)
	}

	for i, item := range items {
		res[i].FromModel(item, lastNext[item.ID], comments[item.ID])
	}

	return res, nil
}

// Search matches available items whose name or description contains text, ignoring case.
// Blank text matches nothing.
func (s *serviceImpl) Search(ctx context.Context, text string) (res []dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	text = strings.TrimSpace(text)
	if text == constant.Empty {
		return []dto.ItemResponse{}, nil
	}

	scope.SetAttribute("text", text)

	items, err := s.repo.GetAll(ctx, byCreation, searchFilter(text))
	if err != nil {
		log.Error().Err(err).Msg("failed to search items")

		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	return dto.FromModels(items), nil
}

// Delete removes the item only when userID owns it. Anything else is a silent no-op.
func (s *serviceImpl) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(shared.FilterByID(id, model.FieldID, model.TableName), ownerFilter(userID))

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return nil
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	// Bookings cascade with the item; the request no longer lists it.
	s.invalidateRequest(ctx, item.RequestID)
	shared.InvalidateCaches(ctx, s.cache, bookingModel.CacheKeyGet)

	return nil
}

// invalidateRequest drops the cached view of the request an item answers.
func (s *serviceImpl) invalidateRequest(ctx context.Context, requestID *string) {
	if requestID == nil {
		return
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(requestModel.CacheKeyGet, *requestID)); err != nil {
		log.Error().Err(err).Msg("failed to delete item request from cache")
	}
}

func ownerFilter(ownerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
				Table:    model.TableName,
			},
		},
	}
}

func searchFilter(text string) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{ArgName: "search_available", Field: model.FieldAvailable, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Or(
			gDto.Filter{ArgName: "search_name", Field: model.FieldName, Value: text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "search_description", Field: model.FieldDescription, Value: text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
		),
	)
}
