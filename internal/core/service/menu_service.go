package service

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
	"cafe/internal/core/util"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

// ImageStore persists uploaded menu images and returns their relative path.
type ImageStore interface {
	Save(originalName string, content io.Reader) (string, error)
	Remove(relPath string) error
}

// MenuCache is the subset of cache.Cache the menu listing uses.
type MenuCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Upload is an image file attached to a menu create/update request.
type Upload struct {
	Filename string
	Content  io.Reader
}

// MenuInput holds the client-supplied menu fields. Nil pointers mean the
// field was not sent.
type MenuInput struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
	ImageURL    string
}

type MenuService interface {
	List(ctx context.Context) ([]*model.MenuItem, error)
	Create(ctx context.Context, in MenuInput, upload *Upload) (*model.MenuItem, error)
	Update(ctx context.Context, id string, in MenuInput, upload *Upload) (*model.MenuItem, error)
	Delete(ctx context.Context, id string) error
	// Seed replaces the menu with items when fewer than minItems exist and
	// reports whether it did.
	Seed(ctx context.Context, items []*model.MenuItem, minItems int64) (bool, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
	images   ImageStore
	cache    MenuCache
	baseURL  string

	// generation is bumped by every invalidation; a listing read across a
	// bump is not written back to the cache.
	generation atomic.Uint64
}

// NewMenuService builds the menu service. baseURL is the public address the
// upload dir is served under; cache may be nil.
func NewMenuService(menuRepo repository.MenuRepository, images ImageStore, cache MenuCache, baseURL string) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		images:   images,
		cache:    cache,
		baseURL:  baseURL,
	}
}

func (s *menuService) List(ctx context.Context) ([]*model.MenuItem, error) {
	var items []*model.MenuItem
	if s.cache != nil {
		err := s.cache.Get(ctx, menuCacheKey, &items)
		if err != nil && err != redis.Nil {
			zap.L().Warn("menu cache read failed", zap.Error(err))
		}
		if err != nil {
			items = nil
		}
	}

	if items == nil {
		gen := s.generation.Load()
		var err error
		items, err = s.menuRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list menu")
		}
		if s.cache != nil {
			s.fill(ctx, gen, items)
		}
	}

	for _, item := range items {
		item.Image = util.AbsoluteImageURL(s.baseURL, item.Image)
	}
	return items, nil
}

func (s *menuService) Create(ctx context.Context, in MenuInput, upload *Upload) (*model.MenuItem, error) {
	if in.Name == nil || *in.Name == "" || in.Price == nil || in.Category == nil || *in.Category == "" {
		return nil, errors.Wrap(ErrValidation, "name, price and category are required")
	}

	image := in.ImageURL
	if upload != nil {
		stored, err := s.images.Save(upload.Filename, upload.Content)
		if err != nil {
			return nil, errors.Wrap(err, "store image")
		}
		image = stored
	}

	item := model.NewMenuItem(*in.Name, *in.Price, *in.Category, image, deref(in.Description))
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "create menu item")
	}
	s.invalidate(ctx)

	item.Image = util.AbsoluteImageURL(s.baseURL, item.Image)
	return item, nil
}

func (s *menuService) Update(ctx context.Context, id string, in MenuInput, upload *Upload) (*model.MenuItem, error) {
	oid, ok := util.ParseID(id)
	if !ok {
		return nil, ErrNotFound
	}

	update := model.MenuUpdate{
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.ImageURL,
	}
	if upload != nil {
		stored, err := s.images.Save(upload.Filename, upload.Content)
		if err != nil {
			return nil, errors.Wrap(err, "store image")
		}
		update.Image = stored
	}

	item, err := s.menuRepo.Update(ctx, oid, update)
	if err != nil {
		return nil, errors.Wrap(err, "update menu item")
	}
	if item == nil {
		return nil, ErrNotFound
	}
	s.invalidate(ctx)

	item.Image = util.AbsoluteImageURL(s.baseURL, item.Image)
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	oid, ok := util.ParseID(id)
	if !ok {
		return ErrNotFound
	}
	item, err := s.menuRepo.Delete(ctx, oid)
	if err != nil {
		return errors.Wrap(err, "delete menu item")
	}
	if item == nil {
		return ErrNotFound
	}
	s.invalidate(ctx)

	if util.IsLocalUpload(item.Image) {
		if err := s.images.Remove(item.Image); err != nil {
			return errors.Wrap(err, "remove image")
		}
	}
	return nil
}

// fill caches a listing read at generation gen. If an invalidation lands
// while the write is in flight the entry is dropped again.
func (s *menuService) fill(ctx context.Context, gen uint64, items []*model.MenuItem) {
	if s.generation.Load() != gen {
		return
	}
	if err := s.cache.Set(ctx, menuCacheKey, items, menuCacheTTL); err != nil {
		zap.L().Warn("menu cache write failed", zap.Error(err))
		return
	}
	if s.generation.Load() != gen {
		if err := s.cache.Delete(ctx, menuCacheKey); err != nil {
			zap.L().Warn("menu cache invalidation failed", zap.Error(err))
		}
	}
}

func (s *menuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.generation.Add(1)
	if err := s.cache.Delete(ctx, menuCacheKey); err != nil {
		zap.L().Warn("menu cache invalidation failed", zap.Error(err))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
