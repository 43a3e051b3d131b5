package registry

import (
	"time"

	"github.com/uptrace/bun"
)

// WhitelistEntryDao is a data access object that maps directly to the 'whitelist' table in PostgreSQL.
type WhitelistEntryDao struct {
	bun.BaseModel `bun:"table:whitelist,alias:w"`
	Address       string    `bun:"address,pk,type:varchar(42)"`
	Note          *string   `bun:"note,type:varchar(500)"`
	AddedAt       time.Time `bun:"added_at,nullzero,default:current_timestamp"`
}

// AdminWalletDao is a data access object that maps directly to the 'admin_wallets' table in PostgreSQL.
type AdminWalletDao struct {
	bun.BaseModel `bun:"table:admin_wallets,alias:aw"`
	Address       string    `bun:"address,pk,type:varchar(42)"`
	Label         *string   `bun:"label,type:varchar(100)"`
	AddedAt       time.Time `bun:"added_at,nullzero,default:current_timestamp"`
}
