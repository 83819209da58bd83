package menu

import (
	"context"

	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
	"github.com/sirajbinsyed/silverstar-server-local/internal/storage"
	"github.com/sirajbinsyed/silverstar-server-local/internal/validate"
)

const imageUploadFailed = "Image upload failed"

var (
	ErrNotFound         = apperr.NotFound("Menu item not found")
	ErrCategoryNotFound = apperr.Invalid("Category not found")
)

type Service struct {
	repo       Repository
	categories core.CategoryReader
	media      core.MediaStore
	folder     string
	log        *zap.Logger
}

func NewService(
	repo Repository,
	categories core.CategoryReader,
	media core.MediaStore,
	folder string,
	log *zap.Logger,
) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		media:      media,
		folder:     folder,
		log:        log,
	}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

// CreateItem validates in, checks the category exists, uploads image when
// one is supplied and persists the item. An upload failure aborts before
// anything is written.
func (s *Service) CreateItem(ctx context.Context, in Input, image []byte) (*MenuItem, error) {
	item := &MenuItem{
		IsAvailable:     true,
		PreparationTime: DefaultPreparationTime,
		Tags:            []string{},
	}
	if err := s.applyInput(item, in); err != nil {
		return nil, err
	}

	verr := validate.Struct(item)
	if in.Price == nil {
		return nil, requirePrice(verr)
	}
	if verr != nil {
		return nil, verr
	}

	ref, err := s.categoryRef(ctx, item)
	if err != nil {
		return nil, err
	}

	if image != nil {
		asset, err := s.upload(ctx, image)
		if err != nil {
			return nil, err
		}
		item.Image = *asset
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.discard(ctx, item.Image.PublicID)
		return nil, err
	}

	item.CategoryRef = ref
	return item, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

// UpdateItem merges the supplied fields into the stored item. When image
// is supplied the new asset is uploaded first and the previous one is
// deleted once the item points at the new one; failing to delete the old
// asset is logged and does not fail the update.
func (s *Service) UpdateItem(ctx context.Context, id string, in Input, image []byte) (*MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousCategory := item.Category
	previousImage := item.Image

	if err := s.applyInput(item, in); err != nil {
		return nil, err
	}
	if err := validate.Struct(item); err != nil {
		return nil, err
	}

	var ref *core.CategoryRef
	if item.Category != previousCategory {
		if ref, err = s.categoryRef(ctx, item); err != nil {
			return nil, err
		}
	} else if ref, err = s.categories.FindRef(ctx, item.Category.Hex()); err != nil {
		if !apperr.IsNotFound(err) {
			return nil, err
		}
		ref = nil
	}

	if image != nil {
		asset, err := s.upload(ctx, image)
		if err != nil {
			return nil, err
		}
		item.Image = *asset
	}

	if err := s.repo.Update(ctx, item); err != nil {
		if image != nil {
			s.discard(ctx, item.Image.PublicID)
		}
		return nil, err
	}

	if image != nil {
		s.discard(ctx, previousImage.PublicID)
	}

	item.CategoryRef = ref
	return item, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

// DeleteItem removes the item's image, tolerating failure, then the item.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.discard(ctx, item.Image.PublicID)
	return s.repo.Delete(ctx, id)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

// categoryRef resolves the item's category, which must exist.
func (s *Service) categoryRef(ctx context.Context, item *MenuItem) (*core.CategoryRef, error) {
	ref, err := s.categories.FindRef(ctx, item.Category.Hex())
	if apperr.IsNotFound(err) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *Service) upload(ctx context.Context, image []byte) (*storage.Asset, error) {
	asset, err := s.media.Upload(ctx, image, s.folder, storage.MenuImageProfile)
	if err != nil {
		s.log.Warn("image upload failed", zap.Error(err))
		return nil, apperr.InvalidWrap(err, imageUploadFailed)
	}
	return asset, nil
}

// discard deletes a remote image. Failures leave an orphaned asset and
// are only logged.
func (s *Service) discard(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.media.Delete(ctx, publicID); err != nil {
		s.log.Warn("failed to delete image",
			zap.String("public_id", publicID),
			zap.Error(err),
		)
	}
}
