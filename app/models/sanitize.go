package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout renders timestamps as "Posted DDMMYYYY at HH:MM".
const DateLayout = "Posted 02012006 at 15:04"

// ErrSanitize is returned when a stored document cannot be shaped for output.
var ErrSanitize = errors.New("invalid data sanitization")

// PostView is the client-facing form of a Post.
type PostView struct {
	ID       string        `json:"id"`
	Author   string        `json:"author"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Date     string        `json:"date"`
	Comments []CommentView `json:"comments"`
}

// CommentView is the client-facing form of a Comment.
type CommentView struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// FormatDate renders t in DateLayout, in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// SanitizePost renames and reformats the fields of p for output.
func SanitizePost(p *Post) (PostView, error) {
	if p == nil {
		return PostView{}, fmt.Errorf("%w: nil post", ErrSanitize)
	}
	if p.ID.IsZero() || p.Date.IsZero() {
		return PostView{}, fmt.Errorf("%w: post %s has no id or date", ErrSanitize, p.ID.Hex())
	}

	comments := make([]CommentView, 0, len(p.Comments))
	for _, c := range p.Comments {
		if c.Date.IsZero() {
			return PostView{}, fmt.Errorf("%w: comment %s on post %s has no date", ErrSanitize, c.ID.Hex(), p.ID.Hex())
		}
		comments = append(comments, CommentView{
			ID:      c.ID.Hex(),
			Author:  c.Author,
			Message: c.Message,
			Date:    FormatDate(c.Date),
		})
	}

	return PostView{
		ID:       p.ID.Hex(),
		Author:   p.Author,
		Title:    p.Title,
		Message:  p.Message,
		Date:     FormatDate(p.Date),
		Comments: comments,
	}, nil
}

// SanitizePosts sanitizes every post, failing on the first bad one.
func SanitizePosts(posts []*Post) ([]PostView, error) {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		v, err := SanitizePost(p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
