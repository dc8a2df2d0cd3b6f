package fambot

// Identity is the caller identity record carried by every command.
type Identity struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// WishItem is a single wishlist entry. Identity is the server-assigned ID;
// title and URL are independently mutable.
type WishItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Done        bool   `json:"is_done"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// RelationshipStats is computed by the service and treated as opaque by the
// client: it is only formatted for display, never recomputed locally.
// When Future is true the start date lies ahead of today and every derived
// field is absent.
type RelationshipStats struct {
	StartDateISO   string `json:"start_date_iso"`
	StartDateHuman string `json:"start_date_human"`
	Future         bool   `json:"future"`

	DaysTogether  int `json:"days_together"`
	Years         int `json:"years"`
	Months        int `json:"months"`
	DaysUntilNext int `json:"days_until_next"`
	PercentToNext int `json:"percent_to_next"`

	NextMilestoneDays     int    `json:"next_milestone_days"`
	NextMilestoneDate     string `json:"next_milestone_date"`
	NextMilestoneDaysLeft int    `json:"next_milestone_days_left"`

	NextBigYear         int    `json:"next_big_year"`
	NextBigYearDate     string `json:"next_big_year_date"`
	NextBigYearDaysLeft int    `json:"next_big_year_days_left"`
}

// Pair describes the shared half of the pairing record.
type Pair struct {
	ID         int64              `json:"id"`
	StartDate  string             `json:"start_date"`
	StartStats *RelationshipStats `json:"start_stats"`
	CloudURL   string             `json:"cloud_url"`
}

// Partner describes the other member of the pairing.
type Partner struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	PhotoURL  string `json:"photo_url"`
}

// InitResponse mirrors the /api/init success payload.
type InitResponse struct {
	HasPair         bool       `json:"has_pair"`
	Pair            *Pair      `json:"pair"`
	Partner         *Partner   `json:"partner"`
	MyWishlist      []WishItem `json:"my_wishlist"`
	PartnerWishlist []WishItem `json:"partner_wishlist"`
}

// AddWishResponse mirrors the /api/wishlist/add success payload.
type AddWishResponse struct {
	Item WishItem `json:"item"`
}

// StartDateResponse mirrors the /api/startdate/set success payload.
type StartDateResponse struct {
	StartDate  string             `json:"start_date"`
	StartStats *RelationshipStats `json:"start_stats"`
}
