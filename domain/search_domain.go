package domain

var (
	MessageSuccessSearch = "success search recipes"
	MessageFailedSearch  = "failed to search recipes"
)

type SearchRequest struct {
	Term         string   `json:"q"`
	CategoryIDs  []string `json:"c" validate:"dive,uuid"`
	FoodIDs      []string `json:"f" validate:"dive,uuid"`
	ExcludedIDs  []string `json:"ex" validate:"dive,uuid"`
	RequireAll   bool     `json:"all"`
}
