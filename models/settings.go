package models

// Settings 系統設定（settings.json）。
// AdminPasswordHash（bcrypt）存在時優先於明碼 AdminPassword；
// 兩者都不得經由 /api/settings 外流。
type Settings struct {
	AdminPassword     string `json:"admin_password,omitempty"`
	AdminPasswordHash string `json:"admin_password_hash,omitempty"`
	SiteTitle         string `json:"site_title,omitempty"`
	SchoolYear        int    `json:"school_year,omitempty"`
}

// Public returns a copy safe to hand to browsers: password fields stripped.
func (s Settings) Public() map[string]any {
	out := map[string]any{}
	if s.SiteTitle != "" {
		out["site_title"] = s.SiteTitle
	}
	if s.SchoolYear != 0 {
		out["school_year"] = s.SchoolYear
	}
	return out
}
