package domain

import "time"

// EquipmentSlot is a named slot on a character sheet.
type EquipmentSlot string

const (
	SlotWeapon  EquipmentSlot = "weapon"
	SlotArmor   EquipmentSlot = "armor"
	SlotTrinket EquipmentSlot = "trinket"
)

// KnownSlots lists every valid equipment slot.
var KnownSlots = []EquipmentSlot{SlotWeapon, SlotArmor, SlotTrinket}

// ValidSlot reports whether s is a known equipment slot.
func ValidSlot(s EquipmentSlot) bool {
	for _, known := range KnownSlots {
		if s == known {
			return true
		}
	}
	return false
}

// Character is a player character sheet.
type Character struct {
	ID        string                   `json:"character_id"`
	Name      string                   `json:"name"`
	Class     string                   `json:"class,omitempty"`
	Level     int                      `json:"level"`
	Equipment map[EquipmentSlot]string `json:"equipment,omitempty"`
	CreatedAt time.Time                `json:"created_at,omitempty"`
}
