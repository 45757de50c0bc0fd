package handlers

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/internal/api/presenters"
	"Recipe-Book-Backend/internal/middleware"
	"Recipe-Book-Backend/pkg/search"

	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		Search(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
	}
)

func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{searchService: searchService}
}

// Search handles the advanced search: free text (q), categories (c),
// included foods (f) with any/all matching, excluded foods (ex).
func (h *searchHandler) Search(c *fiber.Ctx) error {
	identity := middleware.IdentityFromLocals(c)

	req := domain.SearchRequest{
		Term:        c.Query("q"),
		CategoryIDs: queryList(c, "c"),
		FoodIDs:     queryList(c, "f"),
		ExcludedIDs: queryList(c, "ex"),
		RequireAll:  c.Query("mode") == "all",
	}

	res, err := h.searchService.Search(c.Context(), identity, req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSearch, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"search_term": req.Term,
		"results":     res,
		"total":       len(res),
	}, fiber.StatusOK, domain.MessageSuccessSearch)
}

func queryList(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if len(v) > 0 {
			values = append(values, string(v))
		}
	}
	return values
}
