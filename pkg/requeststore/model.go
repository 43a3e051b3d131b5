package requeststore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/rwalabs/platform-middleware/pkg/request"
)

// RequestDao is a data access object that maps directly to the 'whitelist_requests' table in PostgreSQL.
type RequestDao struct {
	bun.BaseModel `bun:"table:whitelist_requests,alias:wr"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	WalletAddress string    `bun:"wallet_address,notnull,type:varchar(42)"`
	Name          string    `bun:"name,notnull,type:varchar(100)"`
	Email         string    `bun:"email,notnull,type:varchar(255)"`
	Company       *string   `bun:"company,type:varchar(100)"`
	Reason        string    `bun:"reason,notnull,type:text"`
	Experience    *string   `bun:"experience,type:text"`
	Status        string    `bun:"status,notnull,type:varchar(16)"`
	SubmittedAt   time.Time `bun:"submitted_at,nullzero,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,default:current_timestamp"`
}

func toRequestDao(req *request.Request) *RequestDao {
	dao := &RequestDao{
		ID:            req.ID,
		WalletAddress: req.WalletAddress,
		Name:          req.Name,
		Email:         req.Email,
		Reason:        req.Reason,
		Status:        string(req.Status),
		SubmittedAt:   req.SubmittedAt,
		UpdatedAt:     req.UpdatedAt,
	}
	if req.Company != "" {
		dao.Company = &req.Company
	}
	if req.Experience != "" {
		dao.Experience = &req.Experience
	}
	return dao
}

func toRequest(dao *RequestDao) *request.Request {
	req := &request.Request{
		ID:            dao.ID,
		WalletAddress: dao.WalletAddress,
		Name:          dao.Name,
		Email:         dao.Email,
		Reason:        dao.Reason,
		Status:        request.Status(dao.Status),
		SubmittedAt:   dao.SubmittedAt,
		UpdatedAt:     dao.UpdatedAt,
	}
	if dao.Company != nil {
		req.Company = *dao.Company
	}
	if dao.Experience != nil {
		req.Experience = *dao.Experience
	}
	return req
}
