// Package paging adapts countable, sliceable sources into paged results
// carrying rail.MetaInfo pagination blocks. Faults from the source are
// captured with the DATA_ACCESS error code.
package paging
