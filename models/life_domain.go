package models

// LifeDomain is a named life category (Health, Work, Social, ...) with a
// 0-100 self-assessed score. The store does not clamp the score; clamping is
// a presentation concern.
type LifeDomain struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// InsertLifeDomain is the insertable shape of LifeDomain.
type InsertLifeDomain struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// LifeDomainPatch enumerates the fields settable by a partial update.
// Nil fields are left unchanged.
type LifeDomainPatch struct {
	UserID *int64  `json:"userId,omitempty"`
	Name   *string `json:"name,omitempty"`
	Score  *int    `json:"score,omitempty"`
	Icon   *string `json:"icon,omitempty"`
	Color  *string `json:"color,omitempty"`
}
