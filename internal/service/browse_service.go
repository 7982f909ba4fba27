package service

import (
	"context"
	"errors"

	"github.com/mihirp/lostfound/internal/model"
	"github.com/mihirp/lostfound/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type BrowseService interface {
	List(ctx context.Context, term string) ([]model.Item, error)
	Get(ctx context.Context, id uint64) (*model.Item, error)
}

type browseService struct {
	repo repository.ItemRepository
}

func NewBrowseService(repo repository.ItemRepository) BrowseService {
	return &browseService{repo: repo}
}

func (s *browseService) List(ctx context.Context, term string) ([]model.Item, error) {
	return s.repo.Search(ctx, term)
}

func (s *browseService) Get(ctx context.Context, id uint64) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}
