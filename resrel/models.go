package resrel

// Transport DTOs mirroring backend JSON. The client imposes no invariants
// beyond optional-field presence; the backend owns the business rules.

// User is the authenticated account as returned by the backend.
type User struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	IsVerified  bool     `json:"is_verified"`
	Permissions []string `json:"permissions,omitempty"`
}

// Page is one page of a Laravel-style paginated collection.
type Page[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// HasNext reports whether more pages follow this one.
func (p *Page[T]) HasNext() bool {
	return p.CurrentPage < p.LastPage
}

// Resource is an educational resource in the catalog.
type Resource struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	Type          string `json:"type,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
	Status        string `json:"status,omitempty"`
	Author        *User  `json:"author,omitempty"`
	IsFavorite    bool   `json:"is_favorite"`
	FavoriteCount int    `json:"favorite_count"`
	ViewCount     int    `json:"view_count,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// Category groups resources in the catalog.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Count int    `json:"resources_count,omitempty"`
}

// Activity is a group activity users can join.
type Activity struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	Status           string `json:"status,omitempty"`
	Location         string `json:"location,omitempty"`
	StartsAt         string `json:"starts_at,omitempty"`
	EndsAt           string `json:"ends_at,omitempty"`
	MaxParticipants  int    `json:"max_participants,omitempty"`
	ParticipantCount int    `json:"participant_count"`
	IsParticipant    bool   `json:"is_participant"`
}

// Favorite links a user to a bookmarked resource.
type Favorite struct {
	ID         int       `json:"id"`
	ResourceID int       `json:"resource_id"`
	Resource   *Resource `json:"resource,omitempty"`
	CreatedAt  string    `json:"created_at,omitempty"`
}

// FavoriteToggle is the passthrough response of the favorite toggle
// endpoint, returned to callers exactly as the backend shaped it.
type FavoriteToggle struct {
	IsFavorite    bool           `json:"is_favorite"`
	FavoriteCount int            `json:"favorite_count"`
	Data          FavoriteAction `json:"data"`
}

// FavoriteAction says what the toggle did.
type FavoriteAction struct {
	ResourceID int    `json:"resource_id"`
	Action     string `json:"action"`
}

// Comment is one message in a resource discussion.
type Comment struct {
	ID         int    `json:"id"`
	ResourceID int    `json:"resource_id"`
	Author     *User  `json:"author,omitempty"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// DashboardSummary aggregates a user's platform activity.
type DashboardSummary struct {
	ResourceCount   int        `json:"resource_count"`
	FavoriteCount   int        `json:"favorite_count"`
	ActivityCount   int        `json:"activity_count"`
	CommentCount    int        `json:"comment_count"`
	RecentResources []Resource `json:"recent_resources,omitempty"`
}

// ProgressionEntry is one step of the user's progression timeline.
type ProgressionEntry struct {
	Label       string `json:"label"`
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// envelope is the {data: T} wrapper used by single-resource endpoints.
type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// ActionResult is the {message, data?} shape of action endpoints
// (join, leave, publish, verify, ...).
type ActionResult struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
