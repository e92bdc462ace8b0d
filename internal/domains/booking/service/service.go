package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"shareit/config"
	"shareit/infras/metrics"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepo "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/shared/logger"
	"shareit/shared/timezone"
	"slices"

	"github.com/rs/zerolog/log"
)

const (
	metricsCacheKey = "booking"
)

// Booking drives the booking lifecycle: creation, lookups, state listings, and owner decisions.
type Booking interface {
	Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, userID, id string) (dto.BookingResponse, error)
	GetByState(ctx context.Context, userID string, state model.State) ([]dto.BookingResponse, error)
	GetByOwner(ctx context.Context, userID string, state model.State) ([]dto.BookingResponse, error)
	Approve(ctx context.Context, userID, id string, approved bool) (dto.BookingResponse, error)
	ResolveLastNext(ctx context.Context, itemIDs []string) (map[string]model.LastNext, error)
}

type serviceImpl struct {
	repo     repository.Booking
	userRepo userRepo.User
	itemRepo itemRepo.Item
	cfg      *config.Config
	cache    cache.RedisCache
	clock    timezone.Clock
	metrics  *metrics.Metrics
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	userRepo userRepo.User,
	itemRepo itemRepo.Item,
	cfg *config.Config,
	cache cache.RedisCache,
	clock timezone.Clock,
	metrics *metrics.Metrics,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		cfg:      cfg,
		cache:    cache,
		clock:    clock,
		metrics:  metrics,
		otel:     otel,
	}
}

// Create books an item for userID. The booking always starts out WAITING.
// Overlapping bookings of the same item are accepted.
func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booker, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booker")

		return res, fmt.Errorf("failed to get booker: %w", err)
	}

	if booker.ID == constant.Empty {
		return res, failure.NotFound(userModel.MessageNotFound) //nolint:wrapcheck
	}

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(req.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound(itemModel.MessageNotFound) //nolint:wrapcheck
	}

	if !item.Available {
		return res, failure.Unavailable(model.MessageUnavailable) //nolint:wrapcheck
	}

	booking, err := req.ToModel(booker.ID, s.clock.Now())
	if err != nil {
		return res, err
	}

	booking.ItemName = item.Name
	booking.ItemOwnerID = item.OwnerID
	booking.BookerName = booker.Name

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.metrics.IncBookingCreated(booking.Status.String())

	logger.FromContext(ctx).Info().
		Str("booking_id", booking.ID).
		Str("item_id", booking.ItemID).
		Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

// Get is not restricted to the booker or the owner.
func (s *serviceImpl) Get(ctx context.Context, _, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		s.metrics.IncCacheLookup(metricsCacheKey, true)

		return res, nil
	}

	s.metrics.IncCacheLookup(metricsCacheKey, false)

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(model.MessageNotFound) //nolint:wrapcheck
	}

	res.FromModel(booking)

	// Saved inline so a later decision always lands after it.
	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

// GetByState lists the bookings made by userID. No match is an empty list.
func (s *serviceImpl) GetByState(ctx context.Context, userID string, state model.State) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByState")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("state", string(state))

	bookings, err := s.repo.FindByBooker(ctx, userID, state, s.clock.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to find bookings by booker")

		return nil, fmt.Errorf("failed to find bookings by booker: %w", err)
	}

	return dto.FromModels(bookings), nil
}

// GetByOwner lists the bookings of items owned by userID. No match is a not found failure.
func (s *serviceImpl) GetByOwner(ctx context.Context, userID string, state model.State) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("state", string(state))

	find := s.repo.FindByItemOwner
	if s.cfg.App.Booking.LegacyOwnerFilter {
		find = s.repo.FindByBooker
	}

	bookings, err := find(ctx, userID, state, s.clock.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to find bookings by owner")

		return nil, fmt.Errorf("failed to find bookings by owner: %w", err)
	}

	if len(bookings) == 0 {
		return nil, failure.NotFound(model.MessageNotFound) //nolint:wrapcheck
	}

	return dto.FromModels(bookings), nil
}

// Approve records the item owner's decision: APPROVED when approved, REJECTED otherwise.
// Deciding again overwrites the previous decision.
func (s *serviceImpl) Approve(ctx context.Context, userID, id string, approved bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(model.MessageNotFound) //nolint:wrapcheck
	}

	if booking.ItemOwnerID != userID {
		return res, failure.BadRequestFromString(model.MessageNotAllowed) //nolint:wrapcheck
	}

	status := model.StatusRejected
	if approved {
		status = model.StatusApproved
	}

	now := s.clock.Now()

	err = s.repo.UpdateStatus(ctx, id, status, userID, now)
	if errors.Is(err, repository.ErrNotFound) {
		return res, failure.NotFound(model.MessageNotFound) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = status
	booking.ModifiedAt = now
	booking.ModifiedBy = userID

	res.FromModel(booking)

	// Overwrite rather than delete: a read that missed before the update may still be saving.
	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)
	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save decided booking to cache")

		if err := s.cache.Delete(ctx, cacheKey); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}

	s.metrics.IncBookingDecision(status.String())

	logger.FromContext(ctx).Info().
		Str("booking_id", id).
		Str("status", status.String()).
		Msg("booking decided")

	return res, nil
}

// ResolveLastNext finds the bookings around today for each item in one batch.
// Bookings starting today belong to neither side.
func (s *serviceImpl) ResolveLastNext(ctx context.Context, itemIDs []string) (res map[string]model.LastNext, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ResolveLastNext")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ids := slices.Clone(itemIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	if len(ids) == 0 {
		return map[string]model.LastNext{}, nil
	}

	now := s.clock.Now()

	res, err = s.repo.FindLastNext(ctx, ids, timezone.StartOfDay(now), timezone.StartOfNextDay(now))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve last and next bookings")

		return nil, fmt.Errorf("failed to resolve last and next bookings: %w", err)
	}

	return res, nil
}
