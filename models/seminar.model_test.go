package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendLinkItem(t *testing.T) {
	// nil column behaves as an empty list
	raw, err := AppendLinkItem(nil, LinkItem{Label: "Sertifikat Umum", URL: "/uploads/a.pdf"})
	require.NoError(t, err)

	items, err := DecodeLinkItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Sertifikat Umum", items[0].Label)

	raw, err = AppendLinkItem(raw, LinkItem{Label: "Materi", URL: "/uploads/b.pdf"})
	require.NoError(t, err)

	items, err = DecodeLinkItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Materi", items[1].Label)
	assert.Equal(t, "/uploads/b.pdf", items[1].URL)
}

func TestDecodeLinkItemsInvalid(t *testing.T) {
	_, err := DecodeLinkItems([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestIsValidSeminarType(t *testing.T) {
	assert.True(t, IsValidSeminarType(SeminarOnline))
	assert.True(t, IsValidSeminarType(SeminarOnsite))
	assert.True(t, IsValidSeminarType(SeminarHybrid))
	assert.False(t, IsValidSeminarType("offline"))
	assert.False(t, IsValidSeminarType(""))
}
