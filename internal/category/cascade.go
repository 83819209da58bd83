package category

import (
	"context"

	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

// DeleteCategoryCascade removes a category, the menu items that reference
// it and their remote images.
//
// The steps are not atomic. A missing category fails before anything is
// touched; image cleanup failures are logged and skipped; any later
// persistence failure is returned as a server error and the steps already
// completed stay applied. Items created under the category after the
// dependents lookup are not deleted.
func (s *Service) DeleteCategoryCascade(ctx context.Context, id string) (*CascadeSummary, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	categoryID := c.ID.Hex()
	log := s.log.With(zap.String("category_id", categoryID))

	dependents, err := s.items.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperr.Server(err)
	}

	summary := &CascadeSummary{CategoryID: categoryID}

	if len(dependents) > 0 {
		itemIDs := make([]string, 0, len(dependents))
		var imageIDs []string
		for _, item := range dependents {
			itemIDs = append(itemIDs, item.ID)
			if item.ImagePublicID != "" {
				imageIDs = append(imageIDs, item.ImagePublicID)
			}
		}

		if len(imageIDs) > 0 {
			if err := s.media.DeleteMany(ctx, imageIDs); err != nil {
				summary.ImageCleanupFailed = true
				log.Warn("image cleanup failed, continuing with cascade",
					zap.Strings("public_ids", imageIDs),
					zap.Error(err),
				)
			} else {
				summary.ImagesDeleted = len(imageIDs)
			}
		}

		deleted, err := s.items.DeleteByIDs(ctx, itemIDs)
		if err != nil {
			return nil, apperr.Server(err)
		}
		summary.ItemsDeleted = deleted
	}

	if err := s.repo.Delete(ctx, categoryID); err != nil {
		return nil, apperr.Server(err)
	}

	s.invalidate(ctx)
	s.metrics.ObserveCascade(summary.ItemsDeleted)

	log.Info("category deleted",
		zap.Int64("items_deleted", summary.ItemsDeleted),
		zap.Int("images_deleted", summary.ImagesDeleted),
	)
	return summary, nil
}
