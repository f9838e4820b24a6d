package templates

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	AppName     string
	SignedIn    bool
	UserName    string
	UserRole    string
}

// PostView carries one post prepared for rendering.
type PostView struct {
	ID             string
	Title          string
	Body           string
	Category       string
	AuthorName     string
	AuthorInitials string
	AuthorRole     string
	CreatedAt      string
	CommentCount   int
	CanDelete      bool
}

// CommentView carries one comment prepared for rendering.
type CommentView struct {
	ID             string
	Body           string
	AuthorName     string
	AuthorInitials string
	AuthorRole     string
	CreatedAt      string
	CanDelete      bool
}
