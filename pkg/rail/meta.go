package rail

import "maps"

// Pagination describes the position of a page within a countable source.
// TotalPages is derived at construction; the value is immutable.
type Pagination struct {
	page       int
	pageSize   int
	totalCount int
	totalPages int
}

func NewPagination(page, pageSize, totalCount int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return Pagination{
		page:       page,
		pageSize:   pageSize,
		totalCount: totalCount,
		totalPages: totalPages,
	}
}

func (p Pagination) Page() int {
	return p.page
}

func (p Pagination) PageSize() int {
	return p.pageSize
}

func (p Pagination) TotalCount() int {
	return p.totalCount
}

func (p Pagination) TotalPages() int {
	return p.totalPages
}

func (p Pagination) HasNextPage() bool {
	return p.page < p.totalPages
}

func (p Pagination) HasPreviousPage() bool {
	return p.page > 1
}

// MetaInfo is an immutable side-channel payload attached optionally to any
// Result: a pagination block plus a free-form key/value map. Updates return
// new instances; a shared MetaInfo is safe without synchronization.
type MetaInfo struct {
	pagination *Pagination
	additional map[string]any
}

func NewMeta() *MetaInfo {
	return &MetaInfo{}
}

func MetaWithPagination(p Pagination) *MetaInfo {
	return &MetaInfo{pagination: &p}
}

func (m *MetaInfo) Pagination() *Pagination {
	if m == nil {
		return nil
	}
	return m.pagination
}

// Additional returns a copy of the key/value map; mutating it does not
// affect the MetaInfo.
func (m *MetaInfo) Additional() map[string]any {
	if m == nil || m.additional == nil {
		return map[string]any{}
	}
	return maps.Clone(m.additional)
}

// WithAdditional returns a new MetaInfo with the key added or overwritten;
// other keys and the pagination block are preserved. Safe on a nil receiver.
func (m *MetaInfo) WithAdditional(key string, value any) *MetaInfo {
	c := m.cloneOrNew()
	c.additional[key] = value
	return c
}

// WithPagination returns a new MetaInfo with the pagination block replaced.
func (m *MetaInfo) WithPagination(p Pagination) *MetaInfo {
	c := m.cloneOrNew()
	c.pagination = &p
	return c
}

func (m *MetaInfo) cloneOrNew() *MetaInfo {
	c := &MetaInfo{additional: map[string]any{}}
	if m == nil {
		return c
	}
	c.pagination = m.pagination
	if m.additional != nil {
		c.additional = maps.Clone(m.additional)
	}
	return c
}
