package api

import "time"

// Video is one YouTube search result as returned by the backend.
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ChannelTitle  string    `json:"channelTitle"`
	Thumbnail     string    `json:"thumbnail"`
	ThumbnailHigh string    `json:"thumbnailHigh"`
	Description   string    `json:"description"`
	PublishedAt   time.Time `json:"publishedAt"`
	Duration      string    `json:"duration"` // ISO-8601, e.g. "PT15M33S"
	ViewCount     string    `json:"viewCount"`
	LikeCount     string    `json:"likeCount"`
}

// WatchURL returns the public watch page for the video.
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// WebResult is one general web search hit.
type WebResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

// WebPage is one page of web search results. NextStart is nil when the
// result set is exhausted.
type WebPage struct {
	Items     []WebResult `json:"items"`
	NextStart *int        `json:"nextPageStartIndex"`
}

// Article is one aggregated news item.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Snippet     string    `json:"snippet"`
	SourceName  string    `json:"sourceName"`
	PublishedAt time.Time `json:"publishedAt"`
}

// VideoDetails is the search summary plus everything the detail endpoint
// adds, most notably the comment threads.
type VideoDetails struct {
	Video
	Comments []CommentThread `json:"comments"`
}

// CommentThread mirrors the YouTube comment-thread resource. Nearly every
// nested field is optional on the wire; the accessor methods below supply
// the defined fallbacks so callers never chase nil chains.
type CommentThread struct {
	ID      string `json:"id"`
	Snippet *struct {
		TopLevelComment *Comment `json:"topLevelComment"`
		TotalReplyCount int      `json:"totalReplyCount"`
	} `json:"snippet"`
	Replies *struct {
		Comments []Comment `json:"comments"`
	} `json:"replies"`
}

// Comment is a single comment (top-level or reply).
type Comment struct {
	ID      string          `json:"id"`
	Snippet *CommentSnippet `json:"snippet"`
}

// CommentSnippet carries the displayable comment fields.
type CommentSnippet struct {
	AuthorDisplayName string    `json:"authorDisplayName"`
	TextOriginal      string    `json:"textOriginal"`
	LikeCount         int       `json:"likeCount"`
	PublishedAt       time.Time `json:"publishedAt"`
}

// Author returns the top-level comment author, or "Unknown Author".
func (t CommentThread) Author() string {
	if s := t.topSnippet(); s != nil && s.AuthorDisplayName != "" {
		return s.AuthorDisplayName
	}
	return "Unknown Author"
}

// Text returns the top-level comment text, or "Comment unavailable".
func (t CommentThread) Text() string {
	if s := t.topSnippet(); s != nil && s.TextOriginal != "" {
		return s.TextOriginal
	}
	return "Comment unavailable"
}

// Likes returns the top-level comment like count, defaulting to zero.
func (t CommentThread) Likes() int {
	if s := t.topSnippet(); s != nil {
		return s.LikeCount
	}
	return 0
}

// Published returns the top-level comment publish time (zero when absent).
func (t CommentThread) Published() time.Time {
	if s := t.topSnippet(); s != nil {
		return s.PublishedAt
	}
	return time.Time{}
}

// ReplyList returns the thread's replies, possibly empty.
func (t CommentThread) ReplyList() []Comment {
	if t.Replies == nil {
		return nil
	}
	return t.Replies.Comments
}

// Usable reports whether the thread carries anything worth rendering.
func (t CommentThread) Usable() bool {
	return t.Author() != "Unknown Author" || t.Text() != "Comment unavailable"
}

func (t CommentThread) topSnippet() *CommentSnippet {
	if t.Snippet == nil || t.Snippet.TopLevelComment == nil {
		return nil
	}
	return t.Snippet.TopLevelComment.Snippet
}

// Author returns the reply author, or "Unknown Author".
func (c Comment) Author() string {
	if c.Snippet != nil && c.Snippet.AuthorDisplayName != "" {
		return c.Snippet.AuthorDisplayName
	}
	return "Unknown Author"
}

// Text returns the reply text, or "Reply unavailable".
func (c Comment) Text() string {
	if c.Snippet != nil && c.Snippet.TextOriginal != "" {
		return c.Snippet.TextOriginal
	}
	return "Reply unavailable"
}

// TranscriptEntry is one caption line. The wire format carries the offset
// in milliseconds; the client converts to seconds on decode.
type TranscriptEntry struct {
	OffsetSeconds float64
	Text          string
}

// AuthStatus is the profile-check response.
type AuthStatus struct {
	LoggedIn bool  `json:"loggedIn"`
	User     *User `json:"user"`
}

// User identifies the logged-in account.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}
