package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/comment/model"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	gRepo "shareit/shared/repository"
)

type Comment interface {
	Insert(ctx context.Context, model model.Comment) error
	FindByItems(ctx context.Context, itemIDs []string) ([]model.Comment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Comment]
}

func New(db *postgres.Connection, otel otel.Otel) Comment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Comment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FindByItems returns the comments of every item in itemIDs, oldest first.
func (r *repositoryImpl) FindByItems(ctx context.Context, itemIDs []string) ([]model.Comment, error) {
	if len(itemIDs) == 0 {
		return []model.Comment{}, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt + ", " + model.TableName + "." + model.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	return r.GetAll(ctx, params, shared.FilterByIDs(itemIDs, model.FieldItemID, model.TableName))
}
