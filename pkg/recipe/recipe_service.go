package recipe

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/internal/utils/storage"
	"Recipe-Book-Backend/pkg/food"
	"Recipe-Book-Backend/pkg/quantity"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, identity domain.Identity, page, limit int) ([]domain.RecipeSummary, int64, error)
		GetRecipeDetail(ctx context.Context, identity domain.Identity, recipeID string, targetServings string) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.SaveRecipeRequest, identity domain.Identity) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, recipeID string, identity domain.Identity) error
		GetRecipesForUser(ctx context.Context, identity domain.Identity, username string) ([]domain.RecipeSummary, error)
		UploadRecipeImage(ctx context.Context, identity domain.Identity, recipeID string, file *multipart.FileHeader, isPrimary bool) (domain.ImageView, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodRepository   food.FoodRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodRepository food.FoodRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodRepository:   foodRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, identity domain.Identity, page, limit int) ([]domain.RecipeSummary, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, identity, true, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, Summarize(r, s.s3.DefaultImageURL()))
	}
	return result, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, identity domain.Identity, recipeID string, targetServings string) (domain.RecipeDetail, error) {
	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	if err := CanView(identity, r); err != nil {
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		RecipeSummary: Summarize(r, s.s3.DefaultImageURL()),
		Directions:    r.Directions,
		Notes:         r.Notes,
	}

	if targetServings != "" {
		ingredients, err := ScaledIngredients(r, targetServings)
		if err != nil {
			return domain.RecipeDetail{}, err
		}
		detail.Ingredients = ingredients
		detail.Servings = formatServings(&targetServings)
	} else {
		ingredients, err := FormatIngredients(r.Ingredients)
		if err != nil {
			return domain.RecipeDetail{}, err
		}
		detail.Ingredients = ingredients
	}

	for _, img := range r.Images {
		detail.Images = append(detail.Images, domain.ImageView{
			ID:        img.ID.String(),
			URL:       img.URL,
			IsPrimary: img.IsPrimary,
		})
	}

	for _, related := range r.RelatedRecipes {
		if CanView(identity, related) != nil {
			continue
		}
		detail.RelatedRecipes = append(detail.RelatedRecipes, Summarize(related, s.s3.DefaultImageURL()))
	}

	return detail, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.RecipeDetail, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrParseUUID
	}

	r := &entities.Recipe{
		ID:       uuid.New(),
		AuthorID: &authorID,
	}
	return s.saveRecipe(ctx, r, req, domain.Identity{IsAuthenticated: true, UserID: authorID})
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.SaveRecipeRequest, identity domain.Identity) (domain.RecipeDetail, error) {
	existing, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	if !isAuthor(identity, existing) {
		return domain.RecipeDetail{}, domain.ErrUserNotAllowed
	}

	return s.saveRecipe(ctx, existing, req, identity)
}

func (s *recipeService) saveRecipe(ctx context.Context, r *entities.Recipe, req domain.SaveRecipeRequest, identity domain.Identity) (domain.RecipeDetail, error) {
	if req.Servings != nil {
		servings, err := quantity.Parse(*req.Servings)
		if err != nil || !servings.Positive() {
			return domain.RecipeDetail{}, domain.ErrInvalidServings
		}
	}

	ingredients, err := s.buildIngredients(ctx, r.ID, req.Ingredients)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	images, err := buildImages(r.ID, req.Images)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	r.Title = req.Title
	r.Introduction = req.Introduction
	r.Directions = req.Directions
	r.PrepTime = req.PrepTime
	r.Servings = req.Servings
	r.Notes = req.Notes
	r.Public = req.Public

	// resolve category and related-recipe IDs against stored rows; an
	// unknown ID is rejected instead of letting the save invent a row
	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	r.Categories, err = s.recipeRepository.GetCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	if len(r.Categories) != len(categoryIDs) {
		return domain.RecipeDetail{}, domain.ErrCategoryNotFound
	}

	relatedIDs, err := parseUUIDs(req.RelatedRecipes)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	relatedIDs = withoutID(relatedIDs, r.ID)
	r.RelatedRecipes, err = s.recipeRepository.GetRecipesByIDs(ctx, relatedIDs)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	if len(r.RelatedRecipes) != len(relatedIDs) {
		return domain.RecipeDetail{}, domain.ErrRecipeNotFound
	}

	if err := s.recipeRepository.SaveRecipe(ctx, r, ingredients, images); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, identity, r.ID.String(), "")
}

func (s *recipeService) buildIngredients(ctx context.Context, recipeID uuid.UUID, reqs []domain.IngredientRequest) ([]*entities.Ingredient, error) {
	ingredients := make([]*entities.Ingredient, 0, len(reqs))
	for _, req := range reqs {
		amount, err := quantity.Parse(req.Amount)
		if err != nil || !amount.Positive() {
			return nil, domain.ErrInvalidAmount
		}

		foodObj, err := s.foodRepository.GetOrCreateByName(ctx, req.FoodName)
		if err != nil {
			return nil, err
		}

		ingredients = append(ingredients, &entities.Ingredient{
			ID:       uuid.New(),
			RecipeID: recipeID,
			FoodID:   foodObj.ID,
			Amount:   amount.Decimal(),
			Unit:     req.Unit,
			Notes:    req.Notes,
		})
	}
	return ingredients, nil
}

func buildImages(recipeID uuid.UUID, reqs []domain.ImageRequest) ([]*entities.Image, error) {
	primaries := 0
	images := make([]*entities.Image, 0, len(reqs))
	for _, req := range reqs {
		if req.IsPrimary {
			primaries++
		}
		images = append(images, &entities.Image{
			ID:        uuid.New(),
			RecipeID:  recipeID,
			ObjectKey: req.ObjectKey,
			URL:       req.URL,
			IsPrimary: req.IsPrimary,
		})
	}
	if primaries > 1 {
		return nil, domain.ErrOnePrimaryImage
	}
	return images, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, identity domain.Identity) error {
	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if !isAuthor(identity, r) {
		return domain.ErrUserNotAllowed
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipesForUser(ctx context.Context, identity domain.Identity, username string) ([]domain.RecipeSummary, error) {
	recipes, err := s.recipeRepository.GetRecipesByAuthor(ctx, username)
	if err != nil {
		return nil, err
	}

	// drafts stay visible to their author (and admins) but not to anyone
	// else, public or not
	includeDrafts := identity.IsAdmin
	for _, r := range recipes {
		if isAuthor(identity, r) {
			includeDrafts = true
			break
		}
	}
	visible := FilterVisible(identity, recipes, !includeDrafts)

	result := make([]domain.RecipeSummary, 0, len(visible))
	for _, r := range visible {
		result = append(result, Summarize(r, s.s3.DefaultImageURL()))
	}
	return result, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, identity domain.Identity, recipeID string, file *multipart.FileHeader, isPrimary bool) (domain.ImageView, error) {
	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImageView{}, domain.ErrRecipeNotFound
		}
		return domain.ImageView{}, err
	}

	if !isAuthor(identity, r) {
		return domain.ImageView{}, domain.ErrUserNotAllowed
	}

	if isPrimary {
		for _, img := range r.Images {
			if img.IsPrimary {
				return domain.ImageView{}, domain.ErrOnePrimaryImage
			}
		}
	}

	key := fmt.Sprintf("recipe_pics/%s/%d_%s", r.ID, time.Now().Unix(), file.Filename)
	url, err := s.s3.UploadFile(ctx, key, file)
	if err != nil {
		return domain.ImageView{}, err
	}

	image := &entities.Image{
		ID:        uuid.New(),
		RecipeID:  r.ID,
		ObjectKey: key,
		URL:       url,
		IsPrimary: isPrimary,
	}
	if err := s.recipeRepository.AddImage(ctx, image); err != nil {
		return domain.ImageView{}, err
	}

	return domain.ImageView{
		ID:        image.ID.String(),
		URL:       image.URL,
		IsPrimary: image.IsPrimary,
	}, nil
}

// parseUUIDs parses and deduplicates, keeping first-seen order.
func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func withoutID(ids []uuid.UUID, drop uuid.UUID) []uuid.UUID {
	kept := ids[:0]
	for _, id := range ids {
		if id != drop {
			kept = append(kept, id)
		}
	}
	return kept
}

func isAuthor(identity domain.Identity, r *entities.Recipe) bool {
	return identity.IsAuthenticated && r.AuthorID != nil && *r.AuthorID == identity.UserID
}

// Summarize maps a recipe entity to its listing representation. defaultImage
// fills primary_image for recipes without an uploaded picture.
func Summarize(r *entities.Recipe, defaultImage string) domain.RecipeSummary {
	summary := domain.RecipeSummary{
		ID:           r.ID.String(),
		Title:        r.Title,
		Introduction: r.Introduction,
		PrepTime:     r.PrepTime,
		Servings:     formatServings(r.Servings),
		Public:       r.Public,
		CreatedAt:    r.CreatedAt,
		ModifiedAt:   r.UpdatedAt,
	}
	if r.Author != nil {
		summary.Author = r.Author.Username
	}
	for _, c := range r.Categories {
		summary.Categories = append(summary.Categories, c.Title)
	}
	if img := primaryImage(r); img != nil {
		summary.PrimaryImage = img.URL
	} else {
		summary.PrimaryImage = defaultImage
	}
	return summary
}

// primaryImage prefers the image flagged as primary, falling back to the
// first stored image.
func primaryImage(r *entities.Recipe) *entities.Image {
	for _, img := range r.Images {
		if img.IsPrimary {
			return img
		}
	}
	if len(r.Images) > 0 {
		return r.Images[0]
	}
	return nil
}

// formatServings drops a superfluous fraction part, so "4.00" reads as "4".
func formatServings(servings *string) string {
	if servings == nil {
		return ""
	}
	amount, err := quantity.Parse(*servings)
	if err != nil {
		return *servings
	}
	return amount.String()
}
