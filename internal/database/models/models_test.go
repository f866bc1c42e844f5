package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumsIsValid(t *testing.T) {
	for _, c := range WeaponCategories {
		assert.True(t, c.IsValid(), c)
	}
	for _, s := range AttachmentSlots {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, WeaponCategory("pistol").IsValid())
	assert.False(t, AttachmentSlot("bayonet").IsValid())
	assert.Len(t, AttachmentSlots, 9)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b,"))
	assert.Equal(t, "a,b", JoinList([]string{"a", "b"}))
}

func TestProfileHasLiked(t *testing.T) {
	p := &Profile{LikedPosts: "x,y"}
	assert.True(t, p.HasLiked("y"))
	assert.False(t, p.HasLiked("z"))
	assert.False(t, (&Profile{}).HasLiked(""))
}

func TestLoadoutAttachmentCount(t *testing.T) {
	one, two := uint(1), uint(2)
	l := &Loadout{Muzzle: &one, Perk: &two}
	assert.Equal(t, 2, l.AttachmentCount())

	*l.SlotRef(SlotOptic) = &one
	assert.Equal(t, 3, l.AttachmentCount())
	assert.Nil(t, l.SlotRef(AttachmentSlot("bayonet")))
}

func TestRecordID(t *testing.T) {
	assert.Equal(t, "", Model{}.RecordID())
	m := Model{ReferenceModel: ReferenceModel{ID: 42}}
	assert.Equal(t, "42", m.RecordID())
	assert.Equal(t, "", Loadout{}.RecordID())
}
