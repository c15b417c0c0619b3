package entity

import (
	"errors"
	"time"
)

// ErrCommentNotFound is returned when a comment id does not exist within a blog's thread.
var ErrCommentNotFound = errors.New("comment not found")

// Blog is the aggregate root for the blog domain. Its comment thread (and
// each comment's replies) is embedded: the whole aggregate is created,
// mutated, and deleted as one unit, so a comment can never outlive its blog.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	AuthorID    string    `json:"author_id"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`

	// Version supports optimistic concurrency on aggregate writes.
	// It is owned by the persistence layer and not serialized.
	Version int64 `json:"-"`
}

// Comment is an embedded child of Blog, addressed by (blogID, commentID).
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	Replies   []Reply   `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
}

// Reply is an embedded child of Comment, addressed by (blogID, commentID, replyID).
type Reply struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AppendComment appends c to the blog's thread, preserving insertion order.
func (b *Blog) AppendComment(c Comment) {
	b.Comments = append(b.Comments, c)
}

// FindComment locates a comment by id within the blog's thread.
func (b *Blog) FindComment(commentID string) (*Comment, error) {
	for i := range b.Comments {
		if b.Comments[i].ID == commentID {
			return &b.Comments[i], nil
		}
	}
	return nil, ErrCommentNotFound
}

// AppendReply appends r to the replies of the comment identified by commentID.
func (b *Blog) AppendReply(commentID string, r Reply) error {
	c, err := b.FindComment(commentID)
	if err != nil {
		return err
	}
	c.Replies = append(c.Replies, r)
	return nil
}
