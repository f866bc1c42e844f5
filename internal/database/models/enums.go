package models

import "strconv"

// WeaponCategory defines the category a weapon model belongs to
type WeaponCategory string

const (
	WeaponCategoryAssault  WeaponCategory = "assault"
	WeaponCategorySniper   WeaponCategory = "sniper"
	WeaponCategoryLMG      WeaponCategory = "lmg"
	WeaponCategorySMG      WeaponCategory = "smg"
	WeaponCategoryShotgun  WeaponCategory = "shotgun"
	WeaponCategoryMarksman WeaponCategory = "marksman"
)

// AttachmentSlot defines the slot an attachment type occupies on a loadout
type AttachmentSlot string

const (
	SlotMuzzle      AttachmentSlot = "muzzle"
	SlotBarrel      AttachmentSlot = "barrel"
	SlotOptic       AttachmentSlot = "optic"
	SlotStock       AttachmentSlot = "stock"
	SlotGrip        AttachmentSlot = "grip"
	SlotMagazine    AttachmentSlot = "magazine"
	SlotUnderbarrel AttachmentSlot = "underbarrel"
	SlotLaser       AttachmentSlot = "laser"
	SlotPerk        AttachmentSlot = "perk"
)

// WeaponCategories lists every weapon category in display order
var WeaponCategories = []WeaponCategory{
	WeaponCategoryAssault,
	WeaponCategorySniper,
	WeaponCategoryLMG,
	WeaponCategorySMG,
	WeaponCategoryShotgun,
	WeaponCategoryMarksman,
}

// AttachmentSlots lists every attachment slot in loadout order
var AttachmentSlots = []AttachmentSlot{
	SlotMuzzle,
	SlotBarrel,
	SlotOptic,
	SlotStock,
	SlotGrip,
	SlotMagazine,
	SlotUnderbarrel,
	SlotLaser,
	SlotPerk,
}

// IsValid checks if the WeaponCategory is valid
func (w WeaponCategory) IsValid() bool {
	switch w {
	case WeaponCategoryAssault, WeaponCategorySniper, WeaponCategoryLMG,
		WeaponCategorySMG, WeaponCategoryShotgun, WeaponCategoryMarksman:
		return true
	}
	return false
}

// IsValid checks if the AttachmentSlot is valid
func (s AttachmentSlot) IsValid() bool {
	switch s {
	case SlotMuzzle, SlotBarrel, SlotOptic, SlotStock, SlotGrip,
		SlotMagazine, SlotUnderbarrel, SlotLaser, SlotPerk:
		return true
	}
	return false
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
