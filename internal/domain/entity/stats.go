package entity

import "math"

// AdminStats is the aggregate view shown on the admin dashboard.
type AdminStats struct {
	TotalCodes  int64 `json:"totalCodes"`
	LinkedCodes int64 `json:"linkedCodes"`
	TotalScans  int64 `json:"totalScans"`
	ActiveUsers int64 `json:"activeUsers"`
}

// CodeFilter selects a page of codes, optionally restricted to one status.
type CodeFilter struct {
	Status   *CodeStatus
	Page     int // 1-based.
	PageSize int
}

// MaxPage is the highest page whose offset fits in an int.
func (f CodeFilter) MaxPage() int {
	if f.PageSize <= 1 {
		return math.MaxInt
	}

	return math.MaxInt/f.PageSize + 1
}

// Offset returns the row offset of the requested page, saturating at
// math.MaxInt instead of wrapping.
func (f CodeFilter) Offset() int {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	if f.Page > f.MaxPage() {
		return math.MaxInt
	}

	return (f.Page - 1) * f.PageSize
}

// CodePage is one page of codes plus the number of codes matching the filter.
type CodePage struct {
	Codes      []*QRCode
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}
