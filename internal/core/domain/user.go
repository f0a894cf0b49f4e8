package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Preferences is the fixed set of per-user settings.
type Preferences struct {
	LowStockNotifications bool   `json:"lowStockNotifications"`
	EmailNotifications    bool   `json:"emailNotifications"`
	TwoFactorAuth         bool   `json:"twoFactorAuth"`
	AutoLogout            bool   `json:"autoLogout"`
	Language              string `json:"language"`
}

// DefaultPreferences returns the settings assigned to newly registered users.
func DefaultPreferences() Preferences {
	return Preferences{
		LowStockNotifications: true,
		AutoLogout:            true,
		Language:              "es",
	}
}

// PreferencesPatch is a partial update; nil fields keep their current value.
type PreferencesPatch struct {
	LowStockNotifications *bool   `json:"lowStockNotifications"`
	EmailNotifications    *bool   `json:"emailNotifications"`
	TwoFactorAuth         *bool   `json:"twoFactorAuth"`
	AutoLogout            *bool   `json:"autoLogout"`
	Language              *string `json:"language"`
}

// ApplyTo overlays the patch field by field onto prefs.
func (p PreferencesPatch) ApplyTo(prefs Preferences) Preferences {
	if p.LowStockNotifications != nil {
		prefs.LowStockNotifications = *p.LowStockNotifications
	}
	if p.EmailNotifications != nil {
		prefs.EmailNotifications = *p.EmailNotifications
	}
	if p.TwoFactorAuth != nil {
		prefs.TwoFactorAuth = *p.TwoFactorAuth
	}
	if p.AutoLogout != nil {
		prefs.AutoLogout = *p.AutoLogout
	}
	if p.Language != nil {
		prefs.Language = *p.Language
	}
	return prefs
}

// User is the public view of an account. It has no password field at all:
// credentials live only on UserRecord and never reach an API response.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// UserRecord is the persistence-side account record, including the bcrypt
// password hash.
type UserRecord struct {
	User
	PasswordHash string
}

// Public returns the serializable projection of the record.
func (r *UserRecord) Public() *User {
	u := r.User
	return &u
}
