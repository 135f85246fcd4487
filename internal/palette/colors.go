package palette

// Role names one semantic color slot.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleWarm       Role = "warm"
	RoleCool       Role = "cool"
	RoleBackground Role = "background"
	RoleSurface    Role = "surface"
	RoleForeground Role = "foreground"
	RoleMuted      Role = "muted"
	RoleBorder     Role = "border"
	RoleSuccess    Role = "success"
	RoleWarning    Role = "warning"
	RoleError      Role = "error"
	RoleInfo       Role = "info"
)

// Roles lists every role in canonical order.
var Roles = []Role{
	RolePrimary, RoleSecondary, RoleAccent, RoleWarm, RoleCool,
	RoleBackground, RoleSurface, RoleForeground, RoleMuted, RoleBorder,
	RoleSuccess, RoleWarning, RoleError, RoleInfo,
}

// Colors maps each role to a hex color value. Values are not validated.
type Colors struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" yaml:"accent"`
	Warm       string `json:"warm" yaml:"warm"`
	Cool       string `json:"cool" yaml:"cool"`
	Background string `json:"background" yaml:"background"`
	Surface    string `json:"surface" yaml:"surface"`
	Foreground string `json:"foreground" yaml:"foreground"`
	Muted      string `json:"muted" yaml:"muted"`
	Border     string `json:"border" yaml:"border"`
	Success    string `json:"success" yaml:"success"`
	Warning    string `json:"warning" yaml:"warning"`
	Error      string `json:"error" yaml:"error"`
	Info       string `json:"info" yaml:"info"`
}

func (c *Colors) slot(r Role) *string {
	switch r {
	case RolePrimary:
		return &c.Primary
	case RoleSecondary:
		return &c.Secondary
	case RoleAccent:
		return &c.Accent
	case RoleWarm:
		return &c.Warm
	case RoleCool:
		return &c.Cool
	case RoleBackground:
		return &c.Background
	case RoleSurface:
		return &c.Surface
	case RoleForeground:
		return &c.Foreground
	case RoleMuted:
		return &c.Muted
	case RoleBorder:
		return &c.Border
	case RoleSuccess:
		return &c.Success
	case RoleWarning:
		return &c.Warning
	case RoleError:
		return &c.Error
	case RoleInfo:
		return &c.Info
	}
	return nil
}

// Get returns the value for r, or "" for an unknown role.
func (c Colors) Get(r Role) string {
	if s := c.slot(r); s != nil {
		return *s
	}
	return ""
}

// Set assigns the value for r. It returns false for an unknown role.
func (c *Colors) Set(r Role, value string) bool {
	s := c.slot(r)
	if s == nil {
		return false
	}
	*s = value
	return true
}

// ParseRole maps a role name onto a Role.
func ParseRole(name string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == name {
			return r, true
		}
	}
	return "", false
}

// DefaultLight is the starting point for a new palette.
func DefaultLight() Colors {
	return Colors{
		Primary:    "#3B82F6",
		Secondary:  "#E5E7EB",
		Accent:     "#10B981",
		Warm:       "#F59E0B",
		Cool:       "#06B6D4",
		Background: "#FFFFFF",
		Surface:    "#F9FAFB",
		Foreground: "#111827",
		Muted:      "#6B7280",
		Border:     "#D1D5DB",
		Success:    "#10B981",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
		Info:       "#3B82F6",
	}
}

// DefaultDark is the starting point for a new dark variant.
func DefaultDark() Colors {
	return Colors{
		Primary:    "#60A5FA",
		Secondary:  "#374151",
		Accent:     "#34D399",
		Warm:       "#FBBF24",
		Cool:       "#22D3EE",
		Background: "#111827",
		Surface:    "#1F2937",
		Foreground: "#F9FAFB",
		Muted:      "#9CA3AF",
		Border:     "#374151",
		Success:    "#34D399",
		Warning:    "#FBBF24",
		Error:      "#F87171",
		Info:       "#60A5FA",
	}
}
