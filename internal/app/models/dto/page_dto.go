package dto

// PageContentResponse carries the stored HTML for a content page. HTML is
// the empty string when the slug has never been set.
type PageContentResponse struct {
	HTML string `json:"html"`
}

// SetPageContentRequest carries the admin_set_page_content payload.
type SetPageContentRequest struct {
	Slug string `json:"slug" form:"slug"`
	HTML string `json:"html" form:"html"`
}

// StatsResponse is the admin_stats dashboard summary.
type StatsResponse struct {
	TotalResources int64 `json:"total_resources"`
	TotalViews30d  int64 `json:"total_views_30d"`
}
