package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlog_AppendComment_PreservesOrder(t *testing.T) {
	b := &Blog{}
	b.AppendComment(Comment{ID: "c1", Text: "first"})
	b.AppendComment(Comment{ID: "c2", Text: "second"})
	b.AppendComment(Comment{ID: "c3", Text: "third"})

	require.Len(t, b.Comments, 3)
	assert.Equal(t, "c1", b.Comments[0].ID)
	assert.Equal(t, "c2", b.Comments[1].ID)
	assert.Equal(t, "c3", b.Comments[2].ID)
}

func TestBlog_FindComment(t *testing.T) {
	b := &Blog{Comments: []Comment{{ID: "c1"}, {ID: "c2"}}}

	c, err := b.FindComment("c2")
	require.NoError(t, err)
	assert.Equal(t, "c2", c.ID)

	_, err = b.FindComment("missing")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestBlog_AppendReply(t *testing.T) {
	b := &Blog{Comments: []Comment{{ID: "c1"}, {ID: "c2"}}}

	require.NoError(t, b.AppendReply("c1", Reply{ID: "r1", Text: "hi"}))
	require.NoError(t, b.AppendReply("c1", Reply{ID: "r2", Text: "again"}))

	// The reply must land on the comment stored in the blog, not a copy.
	require.Len(t, b.Comments[0].Replies, 2)
	assert.Equal(t, "r1", b.Comments[0].Replies[0].ID)
	assert.Empty(t, b.Comments[1].Replies)

	err := b.AppendReply("missing", Reply{ID: "r3"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestUser_Public_OmitsPasswordHash(t *testing.T) {
	u := &User{ID: "u1", Email: "a@example.com", Password: "bcrypt-hash", ProfileImage: "/uploads/a.png"}
	pub := u.Public()

	assert.Equal(t, PublicUser{ID: "u1", Email: "a@example.com", ProfileImage: "/uploads/a.png"}, pub)
}
