package model

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-backend/internal/shared/apperror"
)

func TestCreatePostRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreatePostRequest{Title: "Guess What", Content: validContent, Category: CategoryFiction}
		assert.NoError(t, req.Validate())
	})

	t.Run("collects all failing fields", func(t *testing.T) {
		req := CreatePostRequest{
			Title:    "Plain",
			Content:  "short",
			Summary:  strPtr(strings.Repeat("s", 251)),
			Category: "Fantasy",
		}

		var ve *apperror.ValidationError
		require.ErrorAs(t, req.Validate(), &ve)
		assert.Equal(t, FieldCategory, ve.Field)
		assert.Equal(t, MsgCategory, ve.Message)
		assert.Equal(t, map[string]string{
			FieldTitle:    clickbaitMessage,
			FieldContent:  MsgContentLength,
			FieldSummary:  MsgSummaryLength,
			FieldCategory: MsgCategory,
		}, ve.Details)
	})
}

func TestUpdatePostRequest(t *testing.T) {
	base := func() *Post {
		return &Post{ID: 1, Title: "Top 10", Content: validContent, Summary: strPtr("sum"), Category: CategoryFiction}
	}

	t.Run("partial update validates present fields only", func(t *testing.T) {
		cat := CategoryNonFiction
		req := UpdatePostRequest{Category: &cat}
		require.NoError(t, req.Validate())

		p := base()
		require.NoError(t, req.ApplyTo(p))
		assert.Equal(t, CategoryNonFiction, p.Category)
		assert.Equal(t, "Top 10", p.Title)
	})

	t.Run("invalid field leaves post untouched", func(t *testing.T) {
		req := UpdatePostRequest{Title: strPtr("Secret plans"), Content: strPtr("short")}
		assert.Error(t, req.Validate())

		p := base()
		assert.EqualError(t, req.ApplyTo(p), MsgContentLength)
		assert.Equal(t, "Top 10", p.Title)
		assert.Equal(t, validContent, p.Content)
	})

	t.Run("clear summary", func(t *testing.T) {
		req := UpdatePostRequest{ClearSummary: true}
		assert.False(t, req.IsEmpty())

		p := base()
		require.NoError(t, req.ApplyTo(p))
		assert.Nil(t, p.Summary)
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, UpdatePostRequest{}.IsEmpty())
	})
}

func TestPostFilterNormalize(t *testing.T) {
	f := PostFilter{Category: CategoryFiction, Limit: 1000, Offset: -1}
	f.Normalize()
	assert.Equal(t, PostFilter{Category: CategoryFiction, Limit: MaxLimit}, f)

	f = PostFilter{}
	f.Normalize()
	assert.Equal(t, DefaultLimit, f.Limit)
}

func TestPostFilterValidate(t *testing.T) {
	assert.NoError(t, PostFilter{}.Validate())
	assert.NoError(t, PostFilter{Category: CategoryNonFiction}.Validate())

	err := PostFilter{Category: "fiction"}.Validate()
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, FieldCategory, ve.Field)
	assert.Equal(t, MsgCategory, ve.Message)
}

func TestPostErrorMapping(t *testing.T) {
	ve := apperror.NewValidation(FieldTitle, "bad")
	assert.Equal(t, http.StatusUnprocessableEntity, ToHTTPStatus(ve))
	assert.Equal(t, "VALIDATION_ERROR", ToErrorCode(ve))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(ErrPostNotFound))
	assert.Equal(t, "POST_NOT_FOUND", ToErrorCode(ErrPostNotFound))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(assert.AnError))
}
