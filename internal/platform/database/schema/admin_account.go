package schema

// AdminAccountTable represents the 'admin.account' table
type AdminAccountTable struct {
	Table        string
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    string
}

// AdminAccount is the schema definition for admin.account
var AdminAccount = AdminAccountTable{
	Table:        "admin.account",
	ID:           "id",
	Username:     "username",
	PasswordHash: "password_hash",
	Role:         "role",
	CreatedAt:    "created_at",
}

func (t AdminAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.PasswordHash, t.Role, t.CreatedAt}
}
