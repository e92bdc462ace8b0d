package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Comment=MockCommentService

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	bookingRepo "shareit/internal/domains/booking/repository"
	"shareit/internal/domains/comment/model"
	"shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/comment/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepo "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/shared/logger"
	"shareit/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Comment interface {
	Create(ctx context.Context, userID, itemID string, req dto.CreateCommentRequest) (dto.CommentResponse, error)
	GetByItems(ctx context.Context, itemIDs []string) (map[string][]dto.CommentResponse, error)
}

type serviceImpl struct {
	repo        repository.Comment
	userRepo    userRepo.User
	itemRepo    itemRepo.Item
	bookingRepo bookingRepo.Booking
	clock       timezone.Clock
	otel        otel.Otel
}

func New(
	repo repository.Comment,
	userRepo userRepo.User,
	itemRepo itemRepo.Item,
	bookingRepo bookingRepo.Booking,
	clock timezone.Clock,
	otel otel.Otel,
) Comment {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		clock:       clock,
		otel:        otel,
	}
}

// Create lets userID comment on itemID once one of their bookings of it has ended.
func (s *serviceImpl) Create(ctx context.Context, userID, itemID string, req dto.CreateCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	author, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get comment author")

		return res, fmt.Errorf("failed to get comment author: %w", err)
	}

	if author.ID == constant.Empty {
		return res, failure.NotFound(userModel.MessageNotFound) //nolint:wrapcheck
	}

	exists, err := s.itemRepo.Exist(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if item exists")

		return res, fmt.Errorf("failed to check if item exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound(itemModel.MessageNotFound) //nolint:wrapcheck
	}

	now := s.clock.Now()

	finished, err := s.bookingRepo.ExistFinished(ctx, userID, itemID, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to check finished bookings")

		return res, fmt.Errorf("failed to check finished bookings: %w", err)
	}

	if !finished {
		log.Warn().Str("user_id", userID).Str("item_id", itemID).Msg("comment without a finished booking")

		return res, failure.BadRequestFromString(model.MessageNotAllowed) //nolint:wrapcheck
	}

	comment := req.ToModel(itemID, author.ID, author.Name, now)

	if err = s.repo.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	logger.FromContext(ctx).Info().Str("comment_id", comment.ID).Str("item_id", itemID).Msg("comment created")

	res.FromModel(comment)

	return res, nil
}

// GetByItems groups the comments of itemIDs by item. Items without comments are absent.
func (s *serviceImpl) GetByItems(ctx context.Context, itemIDs []string) (res map[string][]dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.GetByItems")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	comments, err := s.repo.FindByItems(ctx, itemIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	res = make(map[string][]dto.CommentResponse, len(itemIDs))

	for _, comment := range comments {
		var c dto.CommentResponse
		c.FromModel(comment)

		res[comment.ItemID] = append(res[comment.ItemID], c)
	}

	return res, nil
}
