package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=ItemRequest=MockItemRequestService

import (
	"context"
	"fmt"
	"shareit/config"
	"shareit/infras/otel"
	itemModel "shareit/internal/domains/item/model"
	itemRepo "shareit/internal/domains/item/repository"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"

	"github.com/rs/zerolog/log"
)

type ItemRequest interface {
	Create(ctx context.Context, userID string, req dto.CreateItemRequestRequest) (dto.ItemRequestResponse, error)
	GetOwn(ctx context.Context, userID string) ([]dto.ItemRequestResponse, error)
	GetAll(ctx context.Context, userID string) ([]dto.ItemRequestResponse, error)
	Get(ctx context.Context, userID, id string) (dto.ItemRequestResponse, error)
}

type serviceImpl struct {
	repo     repository.ItemRequest
	userRepo userRepo.User
	itemRepo itemRepo.Item
	cfg      *config.Config
	cache    cache.RedisCache
	clock    timezone.Clock
	otel     otel.Otel
}

func New(
	repo repository.ItemRequest,
	userRepo userRepo.User,
	itemRepo itemRepo.Item,
	cfg *config.Config,
	cache cache.RedisCache,
	clock timezone.Clock,
	otel otel.Otel,
) ItemRequest {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		cfg:      cfg,
		cache:    cache,
		clock:    clock,
		otel:     otel,
	}
}

// byCreation orders requests oldest first.
var byCreation = gDto.QueryParams{
	SortBy:  model.TableName + "." + constant.FieldCreatedAt + ", " + model.TableName + "." + model.FieldID,
	SortDir: gDto.SortDirAsc,
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateItemRequestRequest) (res dto.ItemRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if requestor exists")

		return res, fmt.Errorf("failed to check if requestor exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound(userModel.MessageNotFound) //nolint:wrapcheck
	}

	request := req.ToModel(userID, s.clock.Now())

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create item request")

		return res, fmt.Errorf("failed to create item request: %w", err)
	}

	res.FromModel(request, nil)

	return res, nil
}

// GetOwn lists the requests of userID with the items answering them.
func (s *serviceImpl) GetOwn(ctx context.Context, userID string) (res []dto.ItemRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetOwn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequestorID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, filter)
}

// GetAll lists the requests made by everyone except userID.
func (s *serviceImpl) GetAll(ctx context.Context, userID string) (res []dto.ItemRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequestorID,
				Operator: gDto.FilterOperatorNotEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, filter)
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]dto.ItemRequestResponse, error) {
	requests, err := s.repo.GetAll(ctx, byCreation, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item requests")

		return nil, fmt.Errorf("failed to get item requests: %w", err)
	}

	ids := make([]string, len(requests))
	for i, request := range requests {
		ids[i] = request.ID
	}

	answers, err := s.answers(ctx, ids)
	if err != nil {
		return nil, err
	}

	return dto.FromModels(requests, answers), nil
}

// Get is open to every user.
func (s *serviceImpl) Get(ctx context.Context, _, id string) (res dto.ItemRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for item request")

		return res, nil
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item request")

		return res, fmt.Errorf("failed to get item request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound(model.MessageNotFound) //nolint:wrapcheck
	}

	answers, err := s.answers(ctx, []string{request.ID})
	if err != nil {
		return res, err
	}

	res.FromModel(request, answers[request.ID])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save item request to cache")
		}
	}()

	return res, nil
}

// answers loads the items answering requestIDs in one query and groups them by request.
func (s *serviceImpl) answers(ctx context.Context, requestIDs []string) (map[string][]itemModel.Item, error) {
	res := map[string][]itemModel.Item{}
	if len(requestIDs) == 0 {
		return res, nil
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(requestIDs, itemModel.FieldRequestID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get answering items")

		return nil, fmt.Errorf("failed to get answering items: %w", err)
	}

	for _, item := range items {
		if item.RequestID == nil {
			continue
		}

		res[*item.RequestID] = append(res[*item.RequestID], item)
	}

	return res, nil
}
