package dto

type CreateProjectRequest struct {
	Name         string  `json:"name"          validate:"required,min=1"`
	Location     *string `json:"location"`
	CapexCode    *string `json:"capex_code"`
	CostCategory string  `json:"cost_category" validate:"omitempty,oneof=Capex Goods Services"`
	// RootFolder overrides the default <storage root>/<project name> layout.
	RootFolder *string `json:"root_folder"`
}

type ProjectResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     *string `json:"location,omitempty"`
	CapexCode    *string `json:"capex_code,omitempty"`
	CostCategory string  `json:"cost_category"`
	RootFolder   string  `json:"root_folder"`
	CreatedAt    string  `json:"created_at"`
}
