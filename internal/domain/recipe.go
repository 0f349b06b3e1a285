package domain

// Recipe is a single search hit. Identity for caching is the
// (title, link) pair; there is no surrogate key.
type Recipe struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// SearchRequest is the recipe search request.
type SearchRequest struct {
	Query string `form:"query" binding:"required"`
	Page  int    `form:"page"`
}

// SearchPage is one page of ranked results cut from the cached
// top-K result set. HasMore is true iff the page came back full,
// so an exact multiple of the page size reports one phantom page.
type SearchPage struct {
	Query   string   `json:"query"`
	Page    int      `json:"page"`
	Results []Recipe `json:"results"`
	HasMore bool     `json:"has_more"`
}

// ClickRequest is the click tracking request body.
type ClickRequest struct {
	Query string `json:"query" binding:"required"`
	Link  string `json:"link" binding:"required"`
}
