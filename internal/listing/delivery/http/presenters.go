package http

import "agenda-bff/internal/listing"

// =====================================================
// Request DTOs
// =====================================================

type browseReq struct {
	Page   int    `form:"page,default=1"`
	Filter string `form:"filtro"`
}

type changePageReq struct {
	Page *int `json:"page" binding:"required"`
}

type changeFilterReq struct {
	// empty string clears the filter
	Filter *string `json:"filter" binding:"required"`
}

// =====================================================
// Response DTOs
// =====================================================

type viewResp struct {
	Entity      string  `json:"entity"`
	Items       any     `json:"items"`
	Count       int     `json:"count"`
	Total       int     `json:"total"`
	Limit       int     `json:"limit"`
	CurrentPage int     `json:"current_page"`
	TotalPages  int     `json:"total_pages"`
	Pages       []int   `json:"pages"`
	HasNext     bool    `json:"has_next"`
	HasPrev     bool    `json:"has_prev"`
	From        int     `json:"from"`
	To          int     `json:"to"`
	Filter      string  `json:"filter"`
	Loading     bool    `json:"loading"`
	PageLoading bool    `json:"page_loading"`
	Error       *string `json:"error"`
	Phase       string  `json:"phase"`
	Version     uint64  `json:"version"`
}

type sessionResp struct {
	ID   string   `json:"id"`
	View viewResp `json:"view"`
}

type changePageResp struct {
	Changed bool     `json:"changed"`
	View    viewResp `json:"view"`
}

type filterOptionResp struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type entityResp struct {
	Entity        string             `json:"entity"`
	DefaultFilter string             `json:"default_filter"`
	Limit         int                `json:"limit"`
	FreeText      bool               `json:"free_text"`
	Filters       []filterOptionResp `json:"filters"`
}

func (h *handler) newViewResp(v listing.View) viewResp {
	resp := viewResp{
		Entity:      v.Entity,
		Items:       v.Items,
		Count:       v.Count,
		Total:       v.Total,
		Limit:       v.Limit,
		CurrentPage: v.CurrentPage,
		TotalPages:  v.TotalPages,
		Pages:       v.Pages,
		HasNext:     v.HasNext,
		HasPrev:     v.HasPrev,
		From:        v.From,
		To:          v.To,
		Filter:      v.Filter,
		Loading:     v.Loading,
		PageLoading: v.PageLoading,
		Phase:       string(v.Phase),
		Version:     v.Version,
	}
	if v.Err != "" {
		msg := v.Err
		resp.Error = &msg
	}
	return resp
}

func (h *handler) newFilterOptionsResp(opts []listing.FilterOption) []filterOptionResp {
	resp := make([]filterOptionResp, len(opts))
	for i, o := range opts {
		resp[i] = filterOptionResp{Value: o.Value, Label: o.Label}
	}
	return resp
}

func (h *handler) newEntitiesResp(descs []listing.Descriptor) []entityResp {
	resp := make([]entityResp, len(descs))
	for i, d := range descs {
		resp[i] = entityResp{
			Entity:        d.Entity,
			DefaultFilter: d.DefaultFilter,
			Limit:         d.Limit,
			FreeText:      d.FreeText(),
			Filters:       h.newFilterOptionsResp(d.Filters),
		}
	}
	return resp
}
