package response

import (
	"grocery-admin/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

func newPagination(p queries.Page) Pagination {
	return Pagination(p)
}

// mapAll copies every view into a fresh response value.
func mapAll[V any, R any](views []*V) ([]R, error) {
	out := make([]R, 0, len(views))
	for _, v := range views {
		var r R
		if err := copier.Copy(&r, v); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
