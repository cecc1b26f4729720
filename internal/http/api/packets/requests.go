package packets

// UpdatePreferencesRequest is the full preference record written back on
// every toggle. Booleans are pointers so "false" survives required-field
// validation.
type UpdatePreferencesRequest struct {
	DarkMode             *bool  `json:"dark_mode" binding:"required"`
	NotificationsEnabled *bool  `json:"notifications_enabled" binding:"required"`
	AdhanSoundEnabled    *bool  `json:"adhan_sound_enabled" binding:"required"`
	FontSize             string `json:"font_size" binding:"required"`
}
