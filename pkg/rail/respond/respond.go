package respond

import (
	"errors"

	"github.com/ib-77/rail/pkg/rail"
)

// ErrorDetail mirrors one link of a failure's causal chain.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
}

// ErrorResponse is the public-safe projection of a rail.Error. Details[0]
// mirrors the top-level error; subsequent entries walk the causal chain one
// level at a time until exhausted.
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details"`
}

// PageInfo is the public projection of rail.Pagination.
type PageInfo struct {
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Meta is the public projection of rail.MetaInfo.
type Meta struct {
	Pagination *PageInfo      `json:"pagination,omitempty"`
	Additional map[string]any `json:"additional,omitempty"`
}

// Response wraps a terminal result: a success populates Data, a failure
// populates Error; exactly one is ever set.
type Response[T any] struct {
	Data  *T             `json:"data,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
	Meta  *Meta          `json:"meta,omitempty"`
}

// From projects a terminal result into a response wrapper.
func From[T any](r rail.Result[T]) Response[T] {
	resp := Response[T]{Meta: metaOf(r.Meta())}

	if v, ok := r.Get(); ok {
		resp.Data = &v
		return resp
	}

	e := NewErrorResponse(r.Err())
	resp.Error = &e
	return resp
}

// NewErrorResponse projects a rail.Error and its causal chain.
func NewErrorResponse(e *rail.Error) ErrorResponse {
	if e == nil {
		e = rail.New("unknown error")
	}

	details := []ErrorDetail{{
		Code:    e.Code(),
		Message: e.Message(),
		Source:  e.Source(),
	}}

	for cause := e.Cause(); cause != nil; {
		if re, ok := cause.(*rail.Error); ok {
			details = append(details, ErrorDetail{
				Code:    re.Code(),
				Message: re.Message(),
				Source:  re.Source(),
			})
			cause = re.Cause()
			continue
		}
		details = append(details, ErrorDetail{
			Code:    rail.TypeName(cause),
			Message: cause.Error(),
		})
		cause = errors.Unwrap(cause)
	}

	return ErrorResponse{
		Code:    e.Code(),
		Message: e.Message(),
		Details: details,
	}
}

func metaOf(m *rail.MetaInfo) *Meta {
	if m == nil {
		return nil
	}

	out := &Meta{}
	if p := m.Pagination(); p != nil {
		out.Pagination = &PageInfo{
			Page:            p.Page(),
			PageSize:        p.PageSize(),
			TotalCount:      p.TotalCount(),
			TotalPages:      p.TotalPages(),
			HasNextPage:     p.HasNextPage(),
			HasPreviousPage: p.HasPreviousPage(),
		}
	}
	if add := m.Additional(); len(add) > 0 {
		out.Additional = add
	}
	return out
}
