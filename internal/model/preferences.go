package model

import "time"

// Font size values accepted by the preference store.
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
)

// Preferences are the per-device display settings. A device that has never
// written anything gets DefaultPreferences.
type Preferences struct {
	DeviceID             string    `db:"device_id" json:"-"`
	DarkMode             bool      `db:"dark_mode" json:"dark_mode"`
	NotificationsEnabled bool      `db:"notifications_enabled" json:"notifications_enabled"`
	AdhanSoundEnabled    bool      `db:"adhan_sound_enabled" json:"adhan_sound_enabled"`
	FontSize             string    `db:"font_size" json:"font_size"`
	CreatedAt            time.Time `db:"created_at" json:"-"`
	UpdatedAt            time.Time `db:"updated_at" json:"-"`
}

// DefaultPreferences returns the first-run settings for a device.
func DefaultPreferences(deviceID string) Preferences {
	return Preferences{
		DeviceID:             deviceID,
		DarkMode:             false,
		NotificationsEnabled: true,
		AdhanSoundEnabled:    true,
		FontSize:             FontMedium,
	}
}

// ValidFontSize reports whether s is one of the accepted font size values.
func ValidFontSize(s string) bool {
	switch s {
	case FontSmall, FontMedium, FontLarge:
		return true
	}
	return false
}
